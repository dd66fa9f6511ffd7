package preview

import (
	"math"

	"github.com/gogpu/sdftext"
)

// viewport projects render-range coordinates onto a width×height surface
// with pad units of margin on every side.
type viewport struct {
	pad    float64
	sx, sy float64
}

func newViewport(width, height, pad float64) viewport {
	span := sdftext.RangeMax - sdftext.RangeMin
	return viewport{
		pad: pad,
		sx:  (width - 2*pad) / span,
		sy:  (height - 2*pad) / span,
	}
}

// project returns surface coordinates for p with the half turn undone.
func (v viewport) project(p sdftext.Point) (x, y float64) {
	return v.pad + (sdftext.RangeMax-p.X)*v.sx, v.pad + (p.Y-sdftext.RangeMin)*v.sy
}

func round(v float64) int {
	return int(math.Round(v))
}
