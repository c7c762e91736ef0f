package gimbal

import "fmt"

// Orientation selects the axis a gimbal resizes along and whether the
// position-to-size mapping is inverted.
type Orientation int

const (
	Horizontal Orientation = iota
	HorizontalReverse
	Vertical
	VerticalReverse
)

// String returns the canonical configuration spelling of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case HorizontalReverse:
		return "horizontal-reverse"
	case Vertical:
		return "vertical"
	case VerticalReverse:
		return "vertical-reverse"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation converts a configuration string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal":
		return Horizontal, nil
	case "horizontal-reverse":
		return HorizontalReverse, nil
	case "vertical":
		return Vertical, nil
	case "vertical-reverse":
		return VerticalReverse, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// AxisConfig is the orientation plus its derived booleans. It is computed
// once at construction and immutable for the lifetime of a gimbal instance.
type AxisConfig struct {
	Orientation Orientation
	// Vertical reports whether sizes are measured along height rather
	// than width.
	Vertical bool
	// Reverse reports whether the position-to-size mapping is inverted.
	Reverse bool
}

// NewAxisConfig derives the axis booleans from an orientation.
func NewAxisConfig(o Orientation) AxisConfig {
	return AxisConfig{
		Orientation: o,
		Vertical:    o == Vertical || o == VerticalReverse,
		Reverse:     o == HorizontalReverse || o == VerticalReverse,
	}
}
