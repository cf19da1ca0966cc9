package cube

// Axis represents the axis that a block may be directed in. Most blocks do not have an axis, but blocks
// such as logs or rails do.
type Axis int

const (
	// Y represents the vertical Y axis.
	Y Axis = iota
	// Z represents the horizontal Z axis.
	Z
	// X represents the horizontal X axis.
	X
)

// String converts an Axis into either x, y or z, depending on which axis it is.
func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	}
	return "z"
}
