package sdftext

// LineStride is the number of float32 values per segment in Buffer:
// from.x, from.y, to.x, to.y.
const LineStride = 4

// Buffer flattens the collection into a tightly packed float32 slice in
// contour-then-segment order, ready for upload as the shader's line array.
func (lc LineCollection) Buffer() []float32 {
	buf := make([]float32, 0, lc.SegmentCount()*LineStride)
	for _, c := range lc {
		for _, s := range c {
			buf = append(buf,
				float32(s.From.X), float32(s.From.Y),
				float32(s.To.X), float32(s.To.Y))
		}
	}
	return buf
}
