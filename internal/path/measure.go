package path

import "sort"

// Polyline is a path flattened into edges with a cumulative arc-length table.
// Separate subpaths are kept apart: moving between them adds no length.
type Polyline struct {
	edges []Edge
	cum   []float64 // cum[i] is the length of edges[:i+1]
}

// Measure flattens the path elements to within tolerance and records
// cumulative arc lengths.
func Measure(elements []PathElement, tolerance float64) *Polyline {
	pl := &Polyline{}
	iter := NewEdgeIter(elements, tolerance)
	total := 0.0
	for {
		e, ok := iter.Next()
		if !ok {
			break
		}
		total += e.P0.Distance(e.P1)
		pl.edges = append(pl.edges, e)
		pl.cum = append(pl.cum, total)
	}
	return pl
}

// Length returns the total arc length.
func (pl *Polyline) Length() float64 {
	if len(pl.cum) == 0 {
		return 0
	}
	return pl.cum[len(pl.cum)-1]
}

// Start returns the first point of the polyline.
func (pl *Polyline) Start() (Point, bool) {
	if len(pl.edges) == 0 {
		return Point{}, false
	}
	return pl.edges[0].P0, true
}

// PointAt returns the point at arc length dist from the start.
// dist is clamped to [0, Length()].
func (pl *Polyline) PointAt(dist float64) Point {
	if len(pl.edges) == 0 {
		return Point{}
	}
	if dist <= 0 {
		return pl.edges[0].P0
	}
	if dist >= pl.Length() {
		return pl.edges[len(pl.edges)-1].P1
	}

	i := sort.SearchFloat64s(pl.cum, dist)
	e := pl.edges[i]
	before := 0.0
	if i > 0 {
		before = pl.cum[i-1]
	}
	segLen := pl.cum[i] - before
	if segLen <= 0 {
		return e.P1
	}
	return e.P0.Lerp(e.P1, (dist-before)/segLen)
}
