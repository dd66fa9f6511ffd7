package sdftext

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// Simplify reduces every contour with Douglas–Peucker: points closer than
// tolerance to the simplified chord are dropped.
//
// The first and last points of each contour survive, no contour grows, and
// the contour count is unchanged. A tolerance of zero returns an exact copy;
// a negative or NaN tolerance fails with ErrInvalidTolerance.
func Simplify(pc PathCollection, tolerance float64) (PathCollection, error) {
	if tolerance < 0 || math.IsNaN(tolerance) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidTolerance, tolerance)
	}
	if tolerance == 0 {
		return pc.Clone(), nil
	}

	dp := simplify.DouglasPeucker(tolerance)
	out := make(PathCollection, len(pc))
	for i, c := range pc {
		// orb simplifies in place, so hand it a fresh line string.
		ls := make(orb.LineString, len(c))
		for j, p := range c {
			ls[j] = orb.Point{p.X, p.Y}
		}
		ls = dp.LineString(ls)

		sc := make(Contour, len(ls))
		for j, p := range ls {
			sc[j] = Point{X: p[0], Y: p[1]}
		}
		out[i] = sc
	}
	return out, nil
}
