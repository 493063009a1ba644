// Package model provides the two manufacturing cost models.
//
// Both models are immutable value types with pure evaluation methods:
// the same coefficients and inputs always produce the same outputs, so
// a model can be shared across goroutines without synchronization. A
// break-even that does not exist is reported through the boolean
// result, never through a sentinel value.
package model

import "math"

// volumeFloor keeps the amortization term finite for zero or negative
// volumes. Sampled domains start at 1, so realistic inputs never reach
// the floor.
const volumeFloor = 1e-9

// Default volume model coefficients.
const (
	DefaultSetupCost        = 100.0
	DefaultVariableCost     = 10.0
	DefaultAdditiveUnitCost = 20.0
)

// VolumeCostModel compares cost per unit as production volume amortizes
// a fixed setup cost against a flat additive per-unit cost.
type VolumeCostModel struct {
	// SetupCost is the fixed tooling/setup cost amortized over volume.
	SetupCost float64 `json:"setup_cost"`

	// VariableCost is the conventional per-unit marginal cost.
	VariableCost float64 `json:"variable_cost"`

	// AdditiveUnitCost is the flat additive per-unit cost.
	AdditiveUnitCost float64 `json:"additive_unit_cost"`
}

// DefaultVolumeModel returns a model with the documented defaults.
func DefaultVolumeModel() VolumeCostModel {
	return VolumeCostModel{
		SetupCost:        DefaultSetupCost,
		VariableCost:     DefaultVariableCost,
		AdditiveUnitCost: DefaultAdditiveUnitCost,
	}
}

// ConventionalCost evaluates setup/v + variable for each volume.
// Volumes at or below the floor are clamped before dividing, so the
// output is finite for every real input. For positive setup cost the
// curve is strictly decreasing over positive volumes.
func (m VolumeCostModel) ConventionalCost(volumes []float64) []float64 {
	costs := make([]float64, len(volumes))
	for i, v := range volumes {
		costs[i] = m.SetupCost/math.Max(v, volumeFloor) + m.VariableCost
	}
	return costs
}

// AdditiveCost broadcasts the flat additive unit cost over the domain.
func (m VolumeCostModel) AdditiveCost(volumes []float64) []float64 {
	costs := make([]float64, len(volumes))
	for i := range costs {
		costs[i] = m.AdditiveUnitCost
	}
	return costs
}

// BreakevenVolume returns the volume at which conventional and additive
// cost per unit meet. A break-even exists only when the additive unit
// cost exceeds the conventional variable cost; the margin check runs
// before the division, so a non-positive margin never reaches the
// formula regardless of the setup cost.
func (m VolumeCostModel) BreakevenVolume() (float64, bool) {
	margin := m.AdditiveUnitCost - m.VariableCost
	if margin <= 0 {
		return 0, false
	}
	return m.SetupCost / margin, true
}
