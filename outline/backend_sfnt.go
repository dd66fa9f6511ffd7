package outline

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntBackend implements Backend using golang.org/x/image/font/sfnt.
type sfntBackend struct{}

func (sfntBackend) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: sfnt: %w", err)
	}
	return &sfntFont{font: f}, nil
}

// sfntFont wraps *sfnt.Font, which is safe for concurrent use as long as
// every call gets its own sfnt.Buffer.
type sfntFont struct {
	font *sfnt.Font
}

func (f *sfntFont) Face(size float64) Face {
	return &sfntFace{font: f.font, ppem: floatToFixed(size)}
}

type sfntFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6
}

func (f *sfntFace) Metrics() (ascent, descent float64) {
	m, err := f.font.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return 0, 0
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

func (f *sfntFace) Glyph(r rune) (Glyph, error) {
	// A missing rune yields index 0, the .notdef glyph.
	gid, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return Glyph{}, err
	}
	advance, err := f.font.GlyphAdvance(&f.buf, gid, f.ppem, font.HintingNone)
	if err != nil {
		return Glyph{}, err
	}
	// The returned segments alias f.buf and are copied out below.
	segs, err := f.font.LoadGlyph(&f.buf, gid, f.ppem, nil)
	if err != nil {
		return Glyph{}, err
	}

	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		var seg Segment
		n := 1
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = OpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = OpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op, n = OpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			seg.Op, n = OpCubicTo, 3
		default:
			return Glyph{}, fmt.Errorf("unknown segment op %d", s.Op)
		}
		// sfnt already reports y growing downward.
		for i := range n {
			seg.Points[i] = Point{X: fixedToFloat(s.Args[i].X), Y: fixedToFloat(s.Args[i].Y)}
		}
		out = append(out, seg)
	}
	return Glyph{Segments: out, Advance: fixedToFloat(advance)}, nil
}

// fixedToFloat converts fixed.Int26_6 to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

// floatToFixed converts float64 to fixed.Int26_6, rounding to nearest.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
