package cube

// BlockBox is an axis-aligned box of block positions. Both Min and Max are inclusive.
type BlockBox struct {
	Min, Max Pos
}

// NewBlockBox returns a BlockBox spanning the two corners passed. The corners may be passed in any
// order.
func NewBlockBox(x0, y0, z0, x1, y1, z1 int) BlockBox {
	return BlockBox{
		Min: Pos{min(x0, x1), min(y0, y1), min(z0, z1)},
		Max: Pos{max(x0, x1), max(y0, y1), max(z0, z1)},
	}
}

// Contains checks if pos lies inside the box.
func (b BlockBox) Contains(pos Pos) bool {
	return pos[0] >= b.Min[0] && pos[0] <= b.Max[0] &&
		pos[1] >= b.Min[1] && pos[1] <= b.Max[1] &&
		pos[2] >= b.Min[2] && pos[2] <= b.Max[2]
}

// Intersects checks if the two boxes share at least one position.
func (b BlockBox) Intersects(o BlockBox) bool {
	return b.Min[0] <= o.Max[0] && b.Max[0] >= o.Min[0] &&
		b.Min[1] <= o.Max[1] && b.Max[1] >= o.Min[1] &&
		b.Min[2] <= o.Max[2] && b.Max[2] >= o.Min[2]
}

// Intersection returns the positions shared by both boxes. The bool returned is false if the boxes do
// not intersect.
func (b BlockBox) Intersection(o BlockBox) (BlockBox, bool) {
	if !b.Intersects(o) {
		return BlockBox{}, false
	}
	return BlockBox{
		Min: Pos{max(b.Min[0], o.Min[0]), max(b.Min[1], o.Min[1]), max(b.Min[2], o.Min[2])},
		Max: Pos{min(b.Max[0], o.Max[0]), min(b.Max[1], o.Max[1]), min(b.Max[2], o.Max[2])},
	}, true
}

// Range calls f for every position in the box, x outermost and z innermost.
func (b BlockBox) Range(f func(pos Pos)) {
	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for y := b.Min[1]; y <= b.Max[1]; y++ {
			for z := b.Min[2]; z <= b.Max[2]; z++ {
				f(Pos{x, y, z})
			}
		}
	}
}

// Range represents the height range of a Dimension in blocks. The first value of the Range holds the
// minimum Y value, the second value holds the maximum Y value.
type Range [2]int

// Min returns the minimum Y value of a Range. It is equivalent to Range[0].
func (r Range) Min() int {
	return r[0]
}

// Max returns the maximum Y value of a Range. It is equivalent to Range[1].
func (r Range) Max() int {
	return r[1]
}
