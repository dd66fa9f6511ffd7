package outline

import (
	"math"
	"strconv"
	"strings"
)

// pathWriter accumulates SVG path data with coordinates rounded to two
// decimals. Each contour is closed with Z.
type pathWriter struct {
	b    strings.Builder
	open bool
}

// glyph appends g's segments translated by (dx, dy).
func (w *pathWriter) glyph(g Glyph, dx, dy float64) {
	for _, s := range g.Segments {
		switch s.Op {
		case OpMoveTo:
			w.close()
			w.cmd('M', dx, dy, s.Points[:1])
			w.open = true
		case OpLineTo:
			w.cmd('L', dx, dy, s.Points[:1])
		case OpQuadTo:
			w.cmd('Q', dx, dy, s.Points[:2])
		case OpCubicTo:
			w.cmd('C', dx, dy, s.Points[:3])
		}
	}
}

func (w *pathWriter) cmd(c byte, dx, dy float64, pts []Point) {
	w.b.WriteByte(c)
	for i, p := range pts {
		if i > 0 {
			w.b.WriteByte(' ')
		}
		w.b.WriteString(formatCoord(p.X + dx))
		w.b.WriteByte(' ')
		w.b.WriteString(formatCoord(p.Y + dy))
	}
}

func (w *pathWriter) close() {
	if w.open {
		w.b.WriteByte('Z')
		w.open = false
	}
}

// String closes the last contour and returns the path data.
func (w *pathWriter) String() string {
	w.close()
	return w.b.String()
}

// formatCoord renders v with at most two decimals and no negative zero.
func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// paint holds the presentation attributes written on the path element.
type paint struct {
	fill   string
	stroke string
}

// document wraps path data in a standalone SVG document.
func document(width, height float64, d string, p paint) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="`)
	b.WriteString(formatCoord(width))
	b.WriteString(`" height="`)
	b.WriteString(formatCoord(height))
	b.WriteString(`"><path`)
	if p.fill != "" {
		b.WriteString(` fill="` + escapeAttr(p.fill) + `"`)
	}
	if p.stroke != "" {
		b.WriteString(` stroke="` + escapeAttr(p.stroke) + `"`)
	}
	b.WriteString(` d="`)
	b.WriteString(d)
	b.WriteString(`"/></svg>`)
	return b.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
