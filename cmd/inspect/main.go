package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dm-vev/shaftgen/server/block/cube"
	"github.com/dm-vev/shaftgen/server/world"
	"github.com/dm-vev/shaftgen/server/world/structure/mineshaft"
	"github.com/dm-vev/shaftgen/server/world/structure/piecedb"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

func main() {
	db := flag.String("db", "", "folder of a piece database to list the stored entrances of")
	raw := flag.Bool("raw", false, "print the stored NBT of entrances instead of their decoded geometry")
	journal := flag.String("journal", "", "path of an exported journal to summarise")
	flag.Parse()

	if *db == "" && *journal == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *db != "" {
		if err := listEntrances(*db, *raw); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *journal != "" {
		if err := summariseJournal(*journal); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func listEntrances(dir string, raw bool) error {
	prov, err := piecedb.NewProvider(dir)
	if err != nil {
		return err
	}
	defer prov.Close()

	if raw {
		return prov.Raw(printNBT)
	}
	entrances, err := prov.Entrances(mineshaft.Config{})
	if err != nil {
		return fmt.Errorf("read entrances: %w", err)
	}
	for _, e := range entrances {
		t := e.Tunnel()
		fmt.Printf("%v: %v facing %v, %v, shaft %v", e.Centre(), e.Variant(), e.Facing(), e.State(), e.Shaft().YAxisLen)
		if t.HasTunnel {
			fmt.Printf(", tunnel %v length %v floor %v", t.Direction, t.Length, t.FloorAltitude)
		}
		fmt.Println()
	}
	return nil
}

// printNBT prints the keys of the NBT stored for the entrance at centre, sorted by name.
func printNBT(centre cube.Pos, data []byte) error {
	var m map[string]any
	if err := nbt.UnmarshalEncoding(data, &m, nbt.LittleEndian); err != nil {
		return fmt.Errorf("decode entrance at %v: %w", centre, err)
	}
	fmt.Printf("%v:\n", centre)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		fmt.Printf("  %v = %v\n", k, m[k])
	}
	return nil
}

func summariseJournal(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	j, err := world.ReadJournal(f)
	if err != nil {
		return err
	}
	counts := make(map[string]int)
	for _, w := range j.Writes() {
		counts[w.Name]++
	}
	fmt.Printf("%v writes, fingerprint %016x\n", j.Len(), j.Fingerprint())
	for _, name := range slices.Sorted(maps.Keys(counts)) {
		fmt.Printf("  %-28v %v\n", name, counts[name])
	}
	return nil
}
