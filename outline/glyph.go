package outline

// Point is a position in pixels, y growing downward from the baseline.
type Point struct {
	X, Y float64
}

// Op is the type of outline segment.
type Op uint8

const (
	// OpMoveTo starts a new contour.
	OpMoveTo Op = iota
	// OpLineTo draws a line to Points[0].
	OpLineTo
	// OpQuadTo draws a quadratic Bézier with control Points[0] to Points[1].
	OpQuadTo
	// OpCubicTo draws a cubic Bézier with controls Points[0], Points[1] to Points[2].
	OpCubicTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one outline command.
type Segment struct {
	Op     Op
	Points [3]Point
}

// Glyph is the scaled outline of a single rune.
type Glyph struct {
	// Segments are relative to the pen position on the baseline.
	// Contours are implicitly closed.
	Segments []Segment

	// Advance is the horizontal pen advance in pixels.
	Advance float64
}

// IsEmpty reports whether the glyph draws nothing (e.g. a space).
func (g Glyph) IsEmpty() bool {
	return len(g.Segments) == 0
}
