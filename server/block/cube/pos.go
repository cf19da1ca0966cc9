package cube

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pos holds the position of a block. The position is represented of an array with an x, y and z value,
// where the y value is positive.
type Pos [3]int

// String converts the Pos to a string in the format (1,2,3) and returns it.
func (p Pos) String() string {
	return fmt.Sprintf("(%v,%v,%v)", p[0], p[1], p[2])
}

// X returns the X coordinate of the block position.
func (p Pos) X() int {
	return p[0]
}

// Y returns the Y coordinate of the block position.
func (p Pos) Y() int {
	return p[1]
}

// Z returns the Z coordinate of the block position.
func (p Pos) Z() int {
	return p[2]
}

// Add adds two block positions together and returns a new one with the combined values.
func (p Pos) Add(pos Pos) Pos {
	return Pos{p[0] + pos[0], p[1] + pos[1], p[2] + pos[2]}
}

// Offset returns the position n blocks away from p in the direction passed. A negative n moves the
// position the opposite way.
func (p Pos) Offset(d Direction, n int) Pos {
	dx, dz := d.Vector()
	return Pos{p[0] + dx*n, p[1], p[2] + dz*n}
}

// Side returns the position directly next to p in the direction passed.
func (p Pos) Side(d Direction) Pos {
	return p.Offset(d, 1)
}

// Manhattan returns the taxicab distance between p and pos.
func (p Pos) Manhattan(pos Pos) int {
	return abs(p[0]-pos[0]) + abs(p[1]-pos[1]) + abs(p[2]-pos[2])
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
