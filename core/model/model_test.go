package model

import (
	"math"
	"testing"
)

func TestVolumeDefaultBreakeven(t *testing.T) {
	m := DefaultVolumeModel()
	v, ok := m.BreakevenVolume()
	if !ok {
		t.Fatal("default volume model should have a break-even")
	}
	if math.Abs(v-10.0) > 1e-9 {
		t.Fatalf("break-even volume = %g, want 10.0", v)
	}
}

func TestVolumeBreakevenUndefined(t *testing.T) {
	tests := []struct {
		name  string
		model VolumeCostModel
	}{
		{
			name:  "additive cheaper than variable",
			model: VolumeCostModel{SetupCost: 100, VariableCost: 20, AdditiveUnitCost: 15},
		},
		{
			name:  "zero margin",
			model: VolumeCostModel{SetupCost: 100, VariableCost: 20, AdditiveUnitCost: 20},
		},
		{
			name:  "negative setup with negative margin",
			model: VolumeCostModel{SetupCost: -100, VariableCost: 20, AdditiveUnitCost: 15},
		},
		{
			name:  "zero setup with zero margin",
			model: VolumeCostModel{SetupCost: 0, VariableCost: 10, AdditiveUnitCost: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := tt.model.BreakevenVolume(); ok {
				t.Fatalf("expected no break-even, got %g", v)
			}
		})
	}
}

func TestVolumeConventionalCostStrictlyDecreasing(t *testing.T) {
	m := DefaultVolumeModel()
	xs := []float64{2, 5, 20, 80, 500}
	ys := m.ConventionalCost(xs)
	if len(ys) != len(xs) {
		t.Fatalf("output length = %d, want %d", len(ys), len(xs))
	}
	for i := 1; i < len(ys); i++ {
		if ys[i]-ys[i-1] >= 0 {
			t.Fatalf("cost did not decrease from v=%g to v=%g: %g -> %g", xs[i-1], xs[i], ys[i-1], ys[i])
		}
	}
}

func TestVolumeConventionalCostFiniteAtZero(t *testing.T) {
	m := DefaultVolumeModel()
	ys := m.ConventionalCost([]float64{0, -1, 1e-12})
	for i, y := range ys {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			t.Fatalf("cost[%d] = %g, want finite", i, y)
		}
	}
}

func TestVolumeAdditiveCostBroadcast(t *testing.T) {
	m := DefaultVolumeModel()
	ys := m.AdditiveCost([]float64{1, 50, 100})
	if len(ys) != 3 {
		t.Fatalf("output length = %d, want 3", len(ys))
	}
	for i, y := range ys {
		if y != m.AdditiveUnitCost {
			t.Fatalf("cost[%d] = %g, want %g", i, y, m.AdditiveUnitCost)
		}
	}
}

func TestVolumeRoundTripAtBreakeven(t *testing.T) {
	m := DefaultVolumeModel()
	v, ok := m.BreakevenVolume()
	if !ok {
		t.Fatal("default model should have a break-even")
	}
	conv := m.ConventionalCost([]float64{v})
	add := m.AdditiveCost([]float64{v})
	if math.Abs(conv[0]-add[0]) > 1e-6 {
		t.Fatalf("costs at break-even differ: conventional=%g additive=%g", conv[0], add[0])
	}
}

func TestComplexityDefaultBreakeven(t *testing.T) {
	m := DefaultComplexityModel()
	x, ok := m.BreakevenComplexity()
	if !ok {
		t.Fatal("default complexity model should have a break-even")
	}
	want := math.Pow(50.0/0.1, 1/2.0)
	if math.Abs(x-want) > 1e-9 {
		t.Fatalf("break-even complexity = %g, want %g", x, want)
	}
}

func TestComplexityBreakevenUndefined(t *testing.T) {
	tests := []struct {
		name  string
		model ComplexityCostModel
	}{
		{
			name:  "zero coefficient",
			model: ComplexityCostModel{Coefficient: 0, Exponent: 2, AdditivePieceCost: 50},
		},
		{
			name:  "negative coefficient",
			model: ComplexityCostModel{Coefficient: -0.1, Exponent: 2, AdditivePieceCost: 50},
		},
		{
			name:  "zero exponent",
			model: ComplexityCostModel{Coefficient: 0.1, Exponent: 0, AdditivePieceCost: 50},
		},
		{
			name:  "zero additive cost",
			model: ComplexityCostModel{Coefficient: 0.1, Exponent: 2, AdditivePieceCost: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if x, ok := tt.model.BreakevenComplexity(); ok {
				t.Fatalf("expected no break-even, got %g", x)
			}
		})
	}
}

func TestComplexityConventionalCostEdgeInputs(t *testing.T) {
	m := DefaultComplexityModel()
	ys := m.ConventionalCost([]float64{0, 1, 10})
	if ys[0] != 0 {
		t.Fatalf("cost at zero complexity = %g, want 0", ys[0])
	}
	if math.Abs(ys[1]-0.1) > 1e-12 {
		t.Fatalf("cost at complexity 1 = %g, want 0.1", ys[1])
	}
	if math.Abs(ys[2]-10.0) > 1e-12 {
		t.Fatalf("cost at complexity 10 = %g, want 10", ys[2])
	}

	neg := ComplexityCostModel{Coefficient: -2, Exponent: 2, AdditivePieceCost: 50}
	got := neg.ConventionalCost([]float64{3})
	if math.Abs(got[0]-(-18)) > 1e-12 {
		t.Fatalf("negative coefficient cost = %g, want -18", got[0])
	}
}

func TestComplexityRoundTripAtBreakeven(t *testing.T) {
	m := DefaultComplexityModel()
	x, ok := m.BreakevenComplexity()
	if !ok {
		t.Fatal("default model should have a break-even")
	}
	conv := m.ConventionalCost([]float64{x})
	add := m.AdditiveCost([]float64{x})
	if math.Abs(conv[0]-add[0]) > 1e-6 {
		t.Fatalf("costs at break-even differ: conventional=%g additive=%g", conv[0], add[0])
	}
}
