// Package model - complexity-driven cost model
package model

import "math"

// Default complexity model coefficients.
const (
	DefaultCoefficient       = 0.1
	DefaultExponent          = 2.0
	DefaultAdditivePieceCost = 50.0
)

// ComplexityCostModel compares cost per piece as conventional cost grows
// as a power function of geometric complexity against a flat additive
// per-piece cost.
type ComplexityCostModel struct {
	// Coefficient multiplies the power term.
	Coefficient float64 `json:"coefficient"`

	// Exponent is the power applied to complexity.
	Exponent float64 `json:"exponent"`

	// AdditivePieceCost is the flat additive per-piece cost.
	AdditivePieceCost float64 `json:"additive_piece_cost"`
}

// DefaultComplexityModel returns a model with the documented defaults.
func DefaultComplexityModel() ComplexityCostModel {
	return ComplexityCostModel{
		Coefficient:       DefaultCoefficient,
		Exponent:          DefaultExponent,
		AdditivePieceCost: DefaultAdditivePieceCost,
	}
}

// ConventionalCost evaluates coefficient * x^exponent for each
// complexity. Zero complexity is defined (it yields zero for a positive
// exponent) and a negative coefficient simply produces a negative cost:
// the evaluation never rejects inputs, sanity of the coefficients is
// the caller's concern.
func (m ComplexityCostModel) ConventionalCost(complexities []float64) []float64 {
	costs := make([]float64, len(complexities))
	for i, x := range complexities {
		costs[i] = m.Coefficient * math.Pow(x, m.Exponent)
	}
	return costs
}

// AdditiveCost broadcasts the flat additive piece cost over the domain.
func (m ComplexityCostModel) AdditiveCost(complexities []float64) []float64 {
	costs := make([]float64, len(complexities))
	for i := range costs {
		costs[i] = m.AdditivePieceCost
	}
	return costs
}

// BreakevenComplexity solves coefficient * x^exponent = additive for x.
// The root is real and meaningful only when the coefficient, the
// exponent, and the additive piece cost are all strictly positive; each
// condition is checked explicitly before the power is taken.
func (m ComplexityCostModel) BreakevenComplexity() (float64, bool) {
	if m.Coefficient <= 0 {
		return 0, false
	}
	if m.Exponent <= 0 {
		return 0, false
	}
	if m.AdditivePieceCost <= 0 {
		return 0, false
	}
	return math.Pow(m.AdditivePieceCost/m.Coefficient, 1/m.Exponent), true
}
