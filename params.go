package sdftext

import (
	"fmt"
	"math"
)

// Params tunes one pipeline invocation.
type Params struct {
	// DiscretizeCount is the total sample budget shared evenly by all contours.
	DiscretizeCount int `toml:"discretize_count" json:"discretizeCount"`

	// SimplifyTolerance is the Douglas–Peucker tolerance in outline units.
	SimplifyTolerance float64 `toml:"simplify_tolerance" json:"simplifyTolerance"`

	// Cluster enables point clustering.
	Cluster bool `toml:"cluster" json:"cluster"`

	// ClusterPercentage sets the cluster count as a fraction of all points.
	// Only read when Cluster is set.
	ClusterPercentage float64 `toml:"cluster_percentage" json:"clusterPercentage,omitempty"`
}

// DefaultParams returns 100 samples, tolerance 2.4 and no clustering.
func DefaultParams() Params {
	return Params{
		DiscretizeCount:   100,
		SimplifyTolerance: 2.4,
	}
}

// Validate checks the parameters that can be rejected before any work.
// Errors are *StageError values naming the stage that owns the parameter.
func (p Params) Validate() error {
	if p.DiscretizeCount <= 0 {
		return &StageError{
			Stage: StageDiscretize,
			Err:   fmt.Errorf("%w: %d", ErrInvalidSampleBudget, p.DiscretizeCount),
		}
	}
	if p.SimplifyTolerance < 0 || math.IsNaN(p.SimplifyTolerance) {
		return &StageError{
			Stage: StageSimplify,
			Err:   fmt.Errorf("%w: %g", ErrInvalidTolerance, p.SimplifyTolerance),
		}
	}
	return nil
}
