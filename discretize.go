package sdftext

import (
	"fmt"

	"github.com/gogpu/sdftext/internal/path"
)

// Discretize samples every contour at evenly spaced arc-length positions.
//
// The budget is shared evenly: each contour receives floor(budget/len(contours))
// points regardless of its length. Contours shorter than Epsilon are skipped,
// so the result may hold fewer contours than the input.
//
// Fails with ErrInvalidSampleBudget when budget < len(contours), and with
// ErrMalformedOutline when a contour's path data cannot be parsed.
func Discretize(contours []string, budget int) (PathCollection, error) {
	if len(contours) == 0 {
		return PathCollection{}, nil
	}
	if budget < len(contours) {
		return nil, fmt.Errorf("%w: %d points for %d contours", ErrInvalidSampleBudget, budget, len(contours))
	}
	n := budget / len(contours)

	out := make(PathCollection, 0, len(contours))
	for i, d := range contours {
		elements, err := path.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%w: contour %d: %v", ErrMalformedOutline, i, err)
		}
		pl := path.Measure(elements, path.MeasureTolerance)
		if pl.Length() < Epsilon {
			Logger().Warn("sdftext: skipping degenerate contour",
				"contour", i, "length", pl.Length())
			continue
		}
		out = append(out, sample(pl, n))
	}
	return out, nil
}

// sample returns n points at arc lengths L*j/(n-1), both ends included.
func sample(pl *path.Polyline, n int) Contour {
	if n == 1 {
		start, _ := pl.Start()
		return Contour{{X: start.X, Y: start.Y}}
	}
	length := pl.Length()
	c := make(Contour, n)
	for j := range c {
		p := pl.PointAt(length * float64(j) / float64(n-1))
		c[j] = Point{X: p.X, Y: p.Y}
	}
	return c
}
