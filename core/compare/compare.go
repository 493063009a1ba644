// Package compare orchestrates cost-model evaluation over sampled
// domains and collects the curves and break-even points for rendering.
package compare

import (
	"time"

	"fabcost/core/model"
	"fabcost/core/sampling"
)

// Request describes a single comparison run.
type Request struct {
	Volume     model.VolumeCostModel
	Complexity model.ComplexityCostModel

	// MaxVolume and MaxComplexity bound the sampled domains, which
	// always start at sampling.Start.
	MaxVolume     float64
	MaxComplexity float64

	// Points is the resolution of each curve.
	Points int
}

// Curve holds one sampled comparison axis: the domain, both cost
// curves, and the break-even point when one exists.
type Curve struct {
	// X is the sampled domain, ascending.
	X []float64 `json:"x"`

	// Conventional and Additive are the evaluated costs, same length
	// and order as X.
	Conventional []float64 `json:"conventional"`
	Additive     []float64 `json:"additive"`

	// Breakeven is nil when no break-even exists for the model's
	// coefficients.
	Breakeven *float64 `json:"breakeven,omitempty"`
}

// Marker reports where to draw a vertical break-even marker. The
// marker is drawn only when the break-even falls inside the sampled
// domain.
func (c *Curve) Marker() (float64, bool) {
	if c.Breakeven == nil || len(c.X) == 0 {
		return 0, false
	}
	x := *c.Breakeven
	if x < c.X[0] || x > c.X[len(c.X)-1] {
		return 0, false
	}
	return x, true
}

// Metadata contains execution context for a run.
type Metadata struct {
	// Timestamp is when the comparison was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the evaluation took
	Duration string `json:"duration"`
}

// Result contains the complete comparison output.
type Result struct {
	// VolumeModel and ComplexityModel echo the coefficients used.
	VolumeModel     model.VolumeCostModel     `json:"volume_model"`
	ComplexityModel model.ComplexityCostModel `json:"complexity_model"`

	// Volume is the cost-per-unit vs volume axis.
	Volume Curve `json:"volume"`

	// Complexity is the cost-per-piece vs complexity axis.
	Complexity Curve `json:"complexity"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Run samples both domains and evaluates all four cost curves. Domain
// parameters are validated before any model evaluation.
func Run(req Request) (*Result, error) {
	start := time.Now()

	volumes, err := sampling.Domain("max-volume", req.MaxVolume, req.Points)
	if err != nil {
		return nil, err
	}
	complexities, err := sampling.Domain("max-complexity", req.MaxComplexity, req.Points)
	if err != nil {
		return nil, err
	}

	result := &Result{
		VolumeModel:     req.Volume,
		ComplexityModel: req.Complexity,
		Volume: Curve{
			X:            volumes,
			Conventional: req.Volume.ConventionalCost(volumes),
			Additive:     req.Volume.AdditiveCost(volumes),
		},
		Complexity: Curve{
			X:            complexities,
			Conventional: req.Complexity.ConventionalCost(complexities),
			Additive:     req.Complexity.AdditiveCost(complexities),
		},
	}

	if v, ok := req.Volume.BreakevenVolume(); ok {
		result.Volume.Breakeven = &v
	}
	if x, ok := req.Complexity.BreakevenComplexity(); ok {
		result.Complexity.Breakeven = &x
	}

	result.Metadata = Metadata{
		Timestamp: start.UTC().Format(time.RFC3339),
		Duration:  time.Since(start).String(),
	}
	return result, nil
}
