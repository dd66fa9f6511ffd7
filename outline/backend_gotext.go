package outline

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// gotextBackend implements Backend using github.com/go-text/typesetting.
type gotextBackend struct{}

func (gotextBackend) Parse(data []byte) (Font, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: gotext: %w", err)
	}
	return &gotextFont{font: face.Font}, nil
}

// gotextFont caches the read-only *font.Font. font.Face is not safe for
// concurrent use, so each Face call wraps a fresh one.
type gotextFont struct {
	font *font.Font
}

func (f *gotextFont) Face(size float64) Face {
	return &gotextFace{
		face:  font.NewFace(f.font),
		scale: size / float64(f.font.Upem()),
	}
}

type gotextFace struct {
	face  *font.Face
	scale float64
}

func (f *gotextFace) Metrics() (ascent, descent float64) {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return 0, 0
	}
	// go-text reports the descender as a negative offset.
	return float64(ext.Ascender) * f.scale, -float64(ext.Descender) * f.scale
}

func (f *gotextFace) Glyph(r rune) (Glyph, error) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		gid = 0
	}
	advance := float64(f.face.HorizontalAdvance(gid)) * f.scale

	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return Glyph{}, fmt.Errorf("glyph %d has no vector outline", gid)
	}

	out := make([]Segment, 0, len(outline.Segments))
	for _, s := range outline.Segments {
		var seg Segment
		n := 1
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			seg.Op = OpMoveTo
		case opentype.SegmentOpLineTo:
			seg.Op = OpLineTo
		case opentype.SegmentOpQuadTo:
			seg.Op, n = OpQuadTo, 2
		case opentype.SegmentOpCubeTo:
			seg.Op, n = OpCubicTo, 3
		default:
			return Glyph{}, fmt.Errorf("unknown segment op %d", s.Op)
		}
		// Font units grow upward; flip into the downward pixel space.
		for i := range n {
			seg.Points[i] = Point{
				X: float64(s.Args[i].X) * f.scale,
				Y: -float64(s.Args[i].Y) * f.scale,
			}
		}
		out = append(out, seg)
	}
	return Glyph{Segments: out, Advance: advance}, nil
}
