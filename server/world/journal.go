package world

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/klauspost/compress/zstd"
)

// Write is a single block write recorded by a Journal.
type Write struct {
	Pos        cube.Pos       `json:"pos"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Journal is an ordered record of block writes. Two generation runs that produced the same writes in the
// same order have the same Fingerprint.
type Journal struct {
	writes []Write
}

// Add records a write of block b at pos. A nil block is recorded as air.
func (j *Journal) Add(pos cube.Pos, b Block) {
	w := Write{Pos: pos, Name: "minecraft:air"}
	if b != nil {
		w.Name, w.Properties = b.EncodeBlock()
	}
	j.writes = append(j.writes, w)
}

// Len returns the amount of writes recorded.
func (j *Journal) Len() int {
	return len(j.writes)
}

// Writes returns a copy of all writes recorded, in the order they were made.
func (j *Journal) Writes() []Write {
	return slices.Clone(j.writes)
}

// Fingerprint returns a hash of all writes in the Journal, including their order.
func (j *Journal) Fingerprint() uint64 {
	var (
		d   = xxhash.New()
		buf [24]byte
	)
	for _, w := range j.writes {
		for i, v := range w.Pos {
			binary.LittleEndian.PutUint64(buf[i*8:], uint64(int64(v)))
		}
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(w.Name)
		for _, k := range slices.Sorted(maps.Keys(w.Properties)) {
			_, _ = fmt.Fprintf(d, ";%v=%v", k, w.Properties[k])
		}
		_, _ = d.Write([]byte{'\n'})
	}
	return d.Sum64()
}

// Export writes the Journal to w as zstd compressed JSON lines, one write per line.
func (j *Journal) Export(w io.Writer) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}
	bw := bufio.NewWriter(enc)
	je := json.NewEncoder(bw)
	for _, write := range j.writes {
		if err := je.Encode(write); err != nil {
			_ = enc.Close()
			return fmt.Errorf("encode write at %v: %w", write.Pos, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("flush journal: %w", err)
	}
	return enc.Close()
}

// ReadJournal reads a Journal previously written using Journal.Export.
func ReadJournal(r io.Reader) (*Journal, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()

	j := &Journal{}
	jd := json.NewDecoder(dec)
	for {
		var w Write
		if err := jd.Decode(&w); err == io.EOF {
			return j, nil
		} else if err != nil {
			return nil, fmt.Errorf("decode write %v: %w", len(j.writes), err)
		}
		j.writes = append(j.writes, w)
	}
}
