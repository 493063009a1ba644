package output

import (
	"encoding/json"
	"io"

	"fabcost/core/compare"
	"fabcost/core/model"
)

// jsonFormatter emits the summary without the sampled curves, which are
// bulky and reproducible from the coefficients.
type jsonFormatter struct{}

// jsonSummary is the machine-readable report shape.
type jsonSummary struct {
	VolumeModel         model.VolumeCostModel     `json:"volume_model"`
	ComplexityModel     model.ComplexityCostModel `json:"complexity_model"`
	BreakevenVolume     *float64                  `json:"breakeven_volume"`
	BreakevenComplexity *float64                  `json:"breakeven_complexity"`
	Metadata            compare.Metadata          `json:"metadata"`
}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, result *compare.Result) error {
	summary := jsonSummary{
		VolumeModel:         result.VolumeModel,
		ComplexityModel:     result.ComplexityModel,
		BreakevenVolume:     result.Volume.Breakeven,
		BreakevenComplexity: result.Complexity.Breakeven,
		Metadata:            result.Metadata,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
