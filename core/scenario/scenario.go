// Package scenario loads comparison inputs from HCL scenario files.
//
// A scenario file declares any subset of the cost coefficients and the
// sampling domain; everything omitted falls back to the documented
// defaults:
//
//	volume {
//	  setup_cost         = 250
//	  variable_cost      = 8
//	  additive_unit_cost = 22
//	}
//
//	complexity {
//	  coefficient         = 0.05
//	  exponent            = 2.4
//	  additive_piece_cost = 40
//	}
//
//	domain {
//	  max_volume     = 150
//	  max_complexity = 120
//	  points         = 750
//	}
package scenario

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"fabcost/core/model"
	"fabcost/internal/errors"
)

// Scenario is a complete set of comparison inputs.
type Scenario struct {
	Volume     model.VolumeCostModel
	Complexity model.ComplexityCostModel

	MaxVolume     float64
	MaxComplexity float64
	Points        int
}

// Default returns a scenario with the documented defaults.
func Default() Scenario {
	return Scenario{
		Volume:        model.DefaultVolumeModel(),
		Complexity:    model.DefaultComplexityModel(),
		MaxVolume:     100.0,
		MaxComplexity: 100.0,
		Points:        500,
	}
}

// Pointer fields distinguish "omitted" from "set to zero".
type fileSchema struct {
	Volume     *volumeBlock     `hcl:"volume,block"`
	Complexity *complexityBlock `hcl:"complexity,block"`
	Domain     *domainBlock     `hcl:"domain,block"`
}

type volumeBlock struct {
	SetupCost        *float64 `hcl:"setup_cost,optional"`
	VariableCost     *float64 `hcl:"variable_cost,optional"`
	AdditiveUnitCost *float64 `hcl:"additive_unit_cost,optional"`
}

type complexityBlock struct {
	Coefficient       *float64 `hcl:"coefficient,optional"`
	Exponent          *float64 `hcl:"exponent,optional"`
	AdditivePieceCost *float64 `hcl:"additive_piece_cost,optional"`
}

type domainBlock struct {
	MaxVolume     *float64 `hcl:"max_volume,optional"`
	MaxComplexity *float64 `hcl:"max_complexity,optional"`
	Points        *int     `hcl:"points,optional"`
}

// Load parses an HCL scenario file and overlays it on the defaults.
func Load(path string) (Scenario, error) {
	return load(path, nil)
}

// LoadBytes parses scenario source held in memory; the filename is used
// only for diagnostics.
func LoadBytes(src []byte, filename string) (Scenario, error) {
	return load(filename, src)
}

func load(path string, src []byte) (Scenario, error) {
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if src != nil {
		file, diags = parser.ParseHCL(src, path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return Scenario{}, errors.Scenario("failed to parse scenario file", diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return Scenario{}, errors.Scenario("failed to decode scenario file", diags)
	}

	sc := Default()
	sc.apply(&schema)
	return sc, nil
}

func (s *Scenario) apply(schema *fileSchema) {
	if v := schema.Volume; v != nil {
		setFloat(&s.Volume.SetupCost, v.SetupCost)
		setFloat(&s.Volume.VariableCost, v.VariableCost)
		setFloat(&s.Volume.AdditiveUnitCost, v.AdditiveUnitCost)
	}
	if c := schema.Complexity; c != nil {
		setFloat(&s.Complexity.Coefficient, c.Coefficient)
		setFloat(&s.Complexity.Exponent, c.Exponent)
		setFloat(&s.Complexity.AdditivePieceCost, c.AdditivePieceCost)
	}
	if d := schema.Domain; d != nil {
		setFloat(&s.MaxVolume, d.MaxVolume)
		setFloat(&s.MaxComplexity, d.MaxComplexity)
		if d.Points != nil {
			s.Points = *d.Points
		}
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
