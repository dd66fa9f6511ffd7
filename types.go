package sdftext

import "math"

// Epsilon is the extent below which a contour or a segment is treated as
// noise rather than renderable geometry. It is expressed in the same units
// as the coordinates it is compared against.
const Epsilon = 0.01

// Render range shared by every pipeline invocation. After normalization all
// coordinates lie in [RangeMin, RangeMax] on both axes.
const (
	RangeMin = -3.0
	RangeMax = 3.0
)

// Point is a 2D position. Points are values and carry no identity.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Contour is one continuous sub-path as an ordered point sequence.
// Order defines traversal direction and adjacency for line building.
type Contour []Point

// PathCollection is an ordered set of contours.
type PathCollection []Contour

// PointCount returns the total number of points across all contours.
func (pc PathCollection) PointCount() int {
	n := 0
	for _, c := range pc {
		n += len(c)
	}
	return n
}

// Clone returns a deep copy of the collection.
func (pc PathCollection) Clone() PathCollection {
	if pc == nil {
		return nil
	}
	out := make(PathCollection, len(pc))
	for i, c := range pc {
		out[i] = append(Contour(nil), c...)
	}
	return out
}

// LineSegment is a directed segment. The From→To order encodes the sweep
// direction the shader uses to orient the distance field.
type LineSegment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// IsDegenerate reports whether the segment is shorter than Epsilon on both
// axes. The test is per axis rather than Euclidean.
func (s LineSegment) IsDegenerate() bool {
	return math.Abs(s.To.X-s.From.X) < Epsilon && math.Abs(s.To.Y-s.From.Y) < Epsilon
}

// LineCollection groups segments by the contour they were built from.
// The inner slices hold consecutive segments along that contour.
type LineCollection [][]LineSegment

// RenderGeometry is a normalized LineCollection, ready for the renderer.
type RenderGeometry = LineCollection

// SegmentCount returns the number of segments across all contours.
func (lc LineCollection) SegmentCount() int {
	n := 0
	for _, c := range lc {
		n += len(c)
	}
	return n
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Bounds returns the bounding box over every segment endpoint.
// ok is false when the collection holds no segments.
func (lc LineCollection) Bounds() (b Bounds, ok bool) {
	b = Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, c := range lc {
		for _, s := range c {
			b = b.extend(s.From).extend(s.To)
			ok = true
		}
	}
	if !ok {
		return Bounds{}, false
	}
	return b, true
}

func (b Bounds) extend(p Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}
