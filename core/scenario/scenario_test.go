package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"fabcost/internal/errors"
)

func TestLoadFullScenario(t *testing.T) {
	src := []byte(`
volume {
  setup_cost         = 250
  variable_cost      = 8
  additive_unit_cost = 22
}

complexity {
  coefficient         = 0.05
  exponent            = 2.4
  additive_piece_cost = 40
}

domain {
  max_volume     = 150
  max_complexity = 120
  points         = 750
}
`)

	sc, err := LoadBytes(src, "full.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Volume.SetupCost != 250 || sc.Volume.VariableCost != 8 || sc.Volume.AdditiveUnitCost != 22 {
		t.Fatalf("volume model = %+v", sc.Volume)
	}
	if sc.Complexity.Coefficient != 0.05 || sc.Complexity.Exponent != 2.4 || sc.Complexity.AdditivePieceCost != 40 {
		t.Fatalf("complexity model = %+v", sc.Complexity)
	}
	if sc.MaxVolume != 150 || sc.MaxComplexity != 120 || sc.Points != 750 {
		t.Fatalf("domain = %g/%g/%d", sc.MaxVolume, sc.MaxComplexity, sc.Points)
	}
}

func TestLoadPartialScenarioKeepsDefaults(t *testing.T) {
	src := []byte(`
volume {
  setup_cost = 300
}
`)

	sc, err := LoadBytes(src, "partial.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if sc.Volume.SetupCost != 300 {
		t.Fatalf("setup_cost = %g, want 300", sc.Volume.SetupCost)
	}
	if sc.Volume.VariableCost != want.Volume.VariableCost {
		t.Fatalf("variable_cost = %g, want default %g", sc.Volume.VariableCost, want.Volume.VariableCost)
	}
	if sc.Complexity != want.Complexity {
		t.Fatalf("complexity model = %+v, want defaults", sc.Complexity)
	}
	if sc.Points != want.Points {
		t.Fatalf("points = %d, want default %d", sc.Points, want.Points)
	}
}

func TestLoadZeroIsNotOmitted(t *testing.T) {
	src := []byte(`
complexity {
  coefficient = 0
}
`)

	sc, err := LoadBytes(src, "zero.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Complexity.Coefficient != 0 {
		t.Fatalf("coefficient = %g, want explicit 0", sc.Complexity.Coefficient)
	}
	if _, ok := sc.Complexity.BreakevenComplexity(); ok {
		t.Fatal("zero coefficient should make the break-even undefined")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	_, err := LoadBytes([]byte(`volume { setup_cost = `), "broken.hcl")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.IsType(err, errors.TypeScenario) {
		t.Fatalf("error type = %v, want scenario error", err)
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	if err := os.WriteFile(path, []byte("domain {\n  points = 25\n}\n"), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Points != 25 {
		t.Fatalf("points = %d, want 25", sc.Points)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
