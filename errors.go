package sdftext

import "errors"

// Sentinel errors for the sdftext pipeline.
var (
	// ErrMalformedOutline is returned when the outline document carries no
	// path data, or the path data cannot be parsed.
	ErrMalformedOutline = errors.New("sdftext: malformed outline")

	// ErrInvalidSampleBudget is returned when the discretize count is not
	// positive or is smaller than the number of contours.
	ErrInvalidSampleBudget = errors.New("sdftext: invalid sample budget")

	// ErrInvalidClusterCount is returned when clustering would produce zero clusters.
	ErrInvalidClusterCount = errors.New("sdftext: invalid cluster count")

	// ErrDegenerateBounds is returned when the geometry has zero width or height.
	ErrDegenerateBounds = errors.New("sdftext: degenerate bounds")

	// ErrInvalidTolerance is returned for a negative or NaN simplification
	// tolerance.
	ErrInvalidTolerance = errors.New("sdftext: invalid simplify tolerance")
)

// Stage names reported by StageError.
const (
	StageFetch      = "fetch"
	StageExtract    = "extract"
	StageDiscretize = "discretize"
	StageSimplify   = "simplify"
	StageCluster    = "cluster"
	StageNormalize  = "normalize"
)

// StageError records which pipeline stage aborted an invocation.
// Use errors.Is against the sentinels to get the failure kind.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return "sdftext: " + e.Stage + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
