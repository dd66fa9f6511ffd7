package sdftext

// BuildLines connects consecutive points of each contour into directed
// segments: a contour of m points yields m-1 segments. Contours with fewer
// than two points produce no group.
func BuildLines(pc PathCollection) LineCollection {
	out := make(LineCollection, 0, len(pc))
	for _, c := range pc {
		if len(c) < 2 {
			continue
		}
		segs := make([]LineSegment, len(c)-1)
		for i := range segs {
			segs[i] = LineSegment{From: c[i], To: c[i+1]}
		}
		out = append(out, segs)
	}
	return out
}

// FilterDegenerate drops segments shorter than Epsilon on both axes, then
// drops contours left without segments.
func FilterDegenerate(lc LineCollection) LineCollection {
	out := make(LineCollection, 0, len(lc))
	for _, c := range lc {
		var kept []LineSegment
		for _, s := range c {
			if !s.IsDegenerate() {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
