package outline

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// freetypeBackend implements Backend using github.com/golang/freetype.
// It reads TrueType (glyf) outlines only; CFF fonts fail to parse.
type freetypeBackend struct{}

func (freetypeBackend) Parse(data []byte) (Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: freetype: %w", err)
	}
	return &freetypeFont{font: f}, nil
}

type freetypeFont struct {
	font *truetype.Font
}

func (f *freetypeFont) Face(size float64) Face {
	m := truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}).Metrics()
	return &freetypeFace{
		font:    f.font,
		scale:   floatToFixed(size),
		ascent:  fixedToFloat(m.Ascent),
		descent: fixedToFloat(m.Descent),
	}
}

type freetypeFace struct {
	font    *truetype.Font
	buf     truetype.GlyphBuf
	scale   fixed.Int26_6
	ascent  float64
	descent float64
}

func (f *freetypeFace) Metrics() (ascent, descent float64) {
	return f.ascent, f.descent
}

func (f *freetypeFace) Glyph(r rune) (Glyph, error) {
	// Index returns 0, the .notdef glyph, for missing runes.
	idx := f.font.Index(r)
	if err := f.buf.Load(f.font, f.scale, idx, font.HintingNone); err != nil {
		return Glyph{}, err
	}

	var out []Segment
	start := 0
	for _, end := range f.buf.Ends {
		out = appendQuadContour(out, f.buf.Points[start:end])
		start = end
	}
	return Glyph{Segments: out, Advance: fixedToFloat(f.buf.AdvanceWidth)}, nil
}

// appendQuadContour converts one TrueType contour into segments. TrueType
// stores quadratic B-splines: two consecutive off-curve points imply an
// on-curve point at their midpoint.
func appendQuadContour(dst []Segment, pts []truetype.Point) []Segment {
	n := len(pts)
	if n == 0 {
		return dst
	}
	at := func(i int) Point {
		return Point{X: fixedToFloat(pts[i].X), Y: -fixedToFloat(pts[i].Y)}
	}
	onCurve := func(i int) bool { return pts[i].Flags&0x01 != 0 }
	mid := func(a, b Point) Point { return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2} }

	// Start on the first on-curve point. An all off-curve contour starts
	// at the implied point between its first two points.
	first := -1
	for i := range n {
		if onCurve(i) {
			first = i
			break
		}
	}
	var start Point
	offset := 0
	if first >= 0 {
		start, offset = at(first), first
	} else {
		start = mid(at(0), at(1%n))
	}
	dst = append(dst, Segment{Op: OpMoveTo, Points: [3]Point{start}})

	var ctrl Point
	pending := false
	for k := 1; k <= n; k++ {
		i := (offset + k) % n
		p := at(i)
		switch {
		case onCurve(i) && pending:
			dst = append(dst, Segment{Op: OpQuadTo, Points: [3]Point{ctrl, p}})
			pending = false
		case onCurve(i):
			dst = append(dst, Segment{Op: OpLineTo, Points: [3]Point{p}})
		case pending:
			dst = append(dst, Segment{Op: OpQuadTo, Points: [3]Point{ctrl, mid(ctrl, p)}})
			ctrl = p
		default:
			ctrl, pending = p, true
		}
	}
	if pending {
		dst = append(dst, Segment{Op: OpQuadTo, Points: [3]Point{ctrl, start}})
	}
	return dst
}
