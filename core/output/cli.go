package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"fabcost/core/compare"
)

// cliFormatter prints the break-even summary for terminal consumption.
type cliFormatter struct{}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, result *compare.Result) error {
	fmt.Fprintln(w, "Cost comparison: conventional vs additive manufacturing")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Volume model:     setup=%s variable=%s additive=%s\n",
		fixed(result.VolumeModel.SetupCost),
		fixed(result.VolumeModel.VariableCost),
		fixed(result.VolumeModel.AdditiveUnitCost))
	fmt.Fprintf(w, "  Complexity model: coefficient=%s exponent=%s additive=%s\n",
		fixed(result.ComplexityModel.Coefficient),
		fixed(result.ComplexityModel.Exponent),
		fixed(result.ComplexityModel.AdditivePieceCost))
	fmt.Fprintln(w)

	if result.Volume.Breakeven == nil {
		fmt.Fprintln(w, "Volume break-even: not defined with current cost assumptions.")
	} else {
		fmt.Fprintf(w, "Volume break-even: %s units\n", fixed(*result.Volume.Breakeven))
	}

	if result.Complexity.Breakeven == nil {
		fmt.Fprintln(w, "Complexity break-even: not defined with current cost assumptions.")
	} else {
		fmt.Fprintf(w, "Complexity break-even: %s complexity units\n", fixed(*result.Complexity.Breakeven))
	}

	return nil
}

// fixed renders a value with two decimal places.
func fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
