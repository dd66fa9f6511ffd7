package path

// Edge represents a line segment from P0 to P1.
type Edge struct {
	P0, P1 Point
}

// EdgeIter iterates over the straight edges of a path.
// Curves are flattened on the fly. A subpath is closed only by an explicit
// Close element: stroked outlines are measured as drawn, not as filled.
// Zero-length edges are skipped.
type EdgeIter struct {
	elements  []PathElement
	index     int
	tolerance float64
	current   Point
	moveTo    Point   // start of the current subpath
	pending   []Point // flattened curve points not yet emitted
}

// NewEdgeIter creates an edge iterator that flattens curves to within tolerance.
func NewEdgeIter(elements []PathElement, tolerance float64) *EdgeIter {
	return &EdgeIter{
		elements:  elements,
		tolerance: tolerance,
	}
}

// Next returns the next edge, and ok=false once the path is exhausted.
func (iter *EdgeIter) Next() (Edge, bool) {
	for {
		var target Point
		switch {
		case len(iter.pending) > 0:
			target = iter.pending[0]
			iter.pending = iter.pending[1:]

		case iter.index >= len(iter.elements):
			return Edge{}, false

		default:
			elem := iter.elements[iter.index]
			iter.index++

			switch e := elem.(type) {
			case MoveTo:
				iter.moveTo = e.Point
				iter.current = e.Point
				continue
			case LineTo:
				target = e.Point
			case QuadTo:
				iter.pending = flattenQuadratic(iter.current, e.Control, e.Point, iter.tolerance)
				continue
			case CubicTo:
				iter.pending = flattenCubic(iter.current, e.Control1, e.Control2, e.Point, iter.tolerance)
				continue
			case Close:
				target = iter.moveTo
			default:
				continue
			}
		}

		if edge, ok := iter.lineTo(target); ok {
			return edge, true
		}
	}
}

// lineTo advances the current point and returns the edge, unless it has zero length.
func (iter *EdgeIter) lineTo(p Point) (Edge, bool) {
	p0 := iter.current
	iter.current = p
	if p0 == p {
		return Edge{}, false
	}
	return Edge{P0: p0, P1: p}, true
}

// CollectEdges returns all edges from the path elements.
func CollectEdges(elements []PathElement, tolerance float64) []Edge {
	var edges []Edge
	iter := NewEdgeIter(elements, tolerance)
	for {
		edge, ok := iter.Next()
		if !ok {
			break
		}
		edges = append(edges, edge)
	}
	return edges
}
