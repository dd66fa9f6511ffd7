package sdftext

import (
	"fmt"
	"math"
)

// affine maps one axis with f(v) = a*v + b, f(srcMin) = dstMax and
// f(srcMax) = dstMin.
type affine struct {
	a              float64
	srcMin, srcMax float64
	dstMin, dstMax float64
}

func newAffine(srcMin, srcMax, dstMin, dstMax float64) affine {
	return affine{
		a:      (dstMin - dstMax) / (srcMax - srcMin),
		srcMin: srcMin,
		srcMax: srcMax,
		dstMin: dstMin,
		dstMax: dstMax,
	}
}

// apply evaluates f from the nearer source endpoint so both endpoints map
// exactly.
func (f affine) apply(v float64) float64 {
	if v-f.srcMin <= f.srcMax-v {
		return f.dstMax + f.a*(v-f.srcMin)
	}
	return f.dstMin + f.a*(v-f.srcMax)
}

// Normalize rescales every endpoint into [rangeMin, rangeMax].
//
// Each axis is mapped independently with the source minimum landing on
// rangeMax and the source maximum on rangeMin; y is then negated:
//
//	x' =  f_x(x)
//	y' = -f_y(y)
//
// The outline's y axis grows downward while the renderer's grows upward.
// Combined with the inverted axis maps, upright text ends up rotated a half
// turn, which is the orientation the renderer's camera expects. The range
// must be symmetric (rangeMin == -rangeMax) for the negation to stay inside it.
//
// An empty collection normalizes to an empty collection. Zero width or
// height fails with ErrDegenerateBounds.
func Normalize(lc LineCollection, rangeMin, rangeMax float64) (LineCollection, error) {
	b, ok := lc.Bounds()
	if !ok {
		return LineCollection{}, nil
	}
	if b.Width() == 0 || b.Height() == 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrDegenerateBounds, b.Width(), b.Height())
	}

	fx := newAffine(b.MinX, b.MaxX, rangeMin, rangeMax)
	fy := newAffine(b.MinY, b.MaxY, rangeMin, rangeMax)
	clamp := func(v float64) float64 {
		return math.Max(rangeMin, math.Min(rangeMax, v))
	}
	mapPoint := func(p Point) Point {
		return Point{
			X: clamp(fx.apply(p.X)),
			Y: clamp(-fy.apply(p.Y)),
		}
	}

	out := make(LineCollection, len(lc))
	for i, c := range lc {
		segs := make([]LineSegment, len(c))
		for j, s := range c {
			segs[j] = LineSegment{From: mapPoint(s.From), To: mapPoint(s.To)}
		}
		out[i] = segs
	}
	return out, nil
}
