package cube

import "math"

// Direction represents a direction towards one of the horizontal axes of the world.
type Direction int

const (
	// NoDirection is the zero-information direction. It is used for pieces whose orientation has not
	// been set yet and is encoded as -1.
	NoDirection Direction = iota - 1
	// North represents the north direction, towards the negative Z.
	North
	// South represents the south direction, towards the positive Z.
	South
	// West represents the west direction, towards the negative X.
	West
	// East represents the east direction, towards the positive X.
	East
)

// Directions returns the four horizontal directions in their canonical order: North, South, West and
// East. Searches that stop at the first match depend on this order.
func Directions() []Direction {
	return []Direction{North, South, West, East}
}

// DirectionFromHorizontal returns the direction with the horizontal index passed. Indices are taken
// modulo 4, with South at 0, West at 1, North at 2 and East at 3. A negative index returns NoDirection.
func DirectionFromHorizontal(i int) Direction {
	if i < 0 {
		return NoDirection
	}
	switch i & 3 {
	case 0:
		return South
	case 1:
		return West
	case 2:
		return North
	}
	return East
}

// DirectionFromRotation returns the direction closest to the yaw rotation in degrees passed.
func DirectionFromRotation(deg float64) Direction {
	return DirectionFromHorizontal(int(math.Floor(deg/90+0.5)) & 3)
}

// Horizontal returns the horizontal index of the direction: South=0, West=1, North=2 and East=3.
// NoDirection returns -1.
func (d Direction) Horizontal() int {
	switch d {
	case South:
		return 0
	case West:
		return 1
	case North:
		return 2
	case East:
		return 3
	}
	return -1
}

// Rotation returns the yaw rotation in degrees that the direction points at.
func (d Direction) Rotation() float64 {
	return float64(d.Horizontal() * 90)
}

// Valid reports if the direction is one of the four horizontal directions.
func (d Direction) Valid() bool {
	return d >= North && d <= East
}

// Axis returns the axis the direction travels along.
func (d Direction) Axis() Axis {
	if d == West || d == East {
		return X
	}
	return Z
}

// Vector returns the unit offset on the X and Z axes of the direction.
func (d Direction) Vector() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	}
	return 0, 0
}

// DirectionOf returns the direction of the unit vector passed, or NoDirection if it is not one.
func DirectionOf(dx, dz int) Direction {
	switch {
	case dx == 0 && dz == -1:
		return North
	case dx == 0 && dz == 1:
		return South
	case dx == -1 && dz == 0:
		return West
	case dx == 1 && dz == 0:
		return East
	}
	return NoDirection
}

// String returns the Direction as a string.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return "none"
}

// ParseDirection parses a direction name as returned by Direction.String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions() {
		if d.String() == s {
			return d, true
		}
	}
	return NoDirection, false
}
