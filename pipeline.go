package sdftext

import (
	"context"
	"time"

	"github.com/gogpu/sdftext/outline"
)

// Request is one pipeline invocation.
type Request struct {
	Text   string
	FontID string
	Params Params
}

// Pipeline turns text into normalized line geometry.
//
// Pipeline holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	source outline.Source
}

// New creates a Pipeline. Without WithSource it renders outlines locally
// with an outline.Generator.
func New(opts ...Option) *Pipeline {
	var o pipelineOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = outline.New(o.outlineOpts...)
	}
	return &Pipeline{source: o.source}
}

// Run fetches the outline for req.Text and processes it into geometry.
//
// Empty text yields empty geometry and a nil error. Any stage failure aborts
// the run with a *StageError; no partial geometry is returned.
func (p *Pipeline) Run(ctx context.Context, req Request) (RenderGeometry, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := p.source.FetchOutline(ctx, req.Text, req.FontID)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}

	geom, err := Process(doc, req.Params)
	if err != nil {
		return nil, err
	}
	Logger().Info("sdftext: pipeline finished",
		"font", req.FontID,
		"contours", len(geom),
		"segments", geom.SegmentCount(),
		"elapsed", time.Since(start))
	return geom, nil
}

// Process runs every stage after the outline fetch on an SVG document:
// extract, segment, discretize, simplify, optionally cluster, build lines,
// filter degenerate segments and normalize into [RangeMin, RangeMax].
func Process(doc string, params Params) (RenderGeometry, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	d, err := ExtractPathData(doc)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}
	contours := SegmentPath(d)
	log.Debug("sdftext: segmented path", "contours", len(contours))
	if len(contours) == 0 {
		return RenderGeometry{}, nil
	}

	pc, err := Discretize(contours, params.DiscretizeCount)
	if err != nil {
		return nil, &StageError{Stage: StageDiscretize, Err: err}
	}
	log.Debug("sdftext: discretized", "contours", len(pc), "points", pc.PointCount())

	pc, err = Simplify(pc, params.SimplifyTolerance)
	if err != nil {
		return nil, &StageError{Stage: StageSimplify, Err: err}
	}
	log.Debug("sdftext: simplified", "points", pc.PointCount())

	if params.Cluster {
		pc, err = Cluster(pc, params.ClusterPercentage)
		if err != nil {
			return nil, &StageError{Stage: StageCluster, Err: err}
		}
	}

	lc := FilterDegenerate(BuildLines(pc))
	log.Debug("sdftext: built lines", "contours", len(lc), "segments", lc.SegmentCount())

	geom, err := Normalize(lc, RangeMin, RangeMax)
	if err != nil {
		return nil, &StageError{Stage: StageNormalize, Err: err}
	}
	return geom, nil
}
