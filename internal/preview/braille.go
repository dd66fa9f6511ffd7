package preview

import "github.com/gogpu/sdftext"

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// brailleBits maps a micro-pixel (column rx, row ry) inside a cell to its
// braille dot.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%2][my%4]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := range b.h {
		row := make([]rune, b.w)
		for x := range b.w {
			if mask := b.m[y][x]; mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

// Braille rasterizes geom onto a cols×rows grid of braille cells and returns
// one string per row. Non-positive sizes yield no rows.
func Braille(geom sdftext.RenderGeometry, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	b := newBrailleBuf(cols, rows)
	v := newViewport(float64(cols*2-1), float64(rows*4-1), 0)
	for _, c := range geom {
		for _, s := range c {
			x0, y0 := v.project(s.From)
			x1, y1 := v.project(s.To)
			b.drawLineMicro(round(x0), round(y0), round(x1), round(y1))
		}
	}
	return b.toLines()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
