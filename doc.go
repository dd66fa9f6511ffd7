// Package sdftext converts text into normalized line-segment geometry for a
// signed-distance-field text shader.
//
// The pipeline fetches an SVG outline of the text, extracts its path data,
// splits it into contours, samples each contour at evenly spaced arc-length
// positions, simplifies the samples with Douglas–Peucker, optionally snaps
// them onto shared k-means centroids, connects them into directed segments,
// drops segments too short to matter and rescales everything into
// [RangeMin, RangeMax].
//
// # Quick Start
//
//	p := sdftext.New()
//	geom, err := p.Run(ctx, sdftext.Request{
//	    Text:   "Hello",
//	    FontID: "default",
//	    Params: sdftext.DefaultParams(),
//	})
//	if err != nil {
//	    return err
//	}
//	frame := sdftext.NewFrame(geom, sdftext.DefaultShaderParams()).WithShader()
//
// Each stage is also exported on its own (ExtractPathData, SegmentPath,
// Discretize, Simplify, Cluster, BuildLines, FilterDegenerate, Normalize)
// and Process runs them all on an outline document that is already at hand.
//
// # Orientation
//
// Normalize maps each axis minimum onto RangeMax and then negates y, so
// upright text comes out rotated a half turn. The shader's camera expects
// that orientation.
//
// # Errors
//
// Pipeline failures are *StageError values. Use errors.Is with the package
// sentinels (ErrInvalidSampleBudget, ErrInvalidClusterCount, ...) or the
// outline package's ErrFontNotFound to tell them apart.
package sdftext
