package output

import (
	"fmt"
	"io"

	"fabcost/core/compare"
)

// markdownFormatter produces a report suitable for CI comments or docs.
type markdownFormatter struct{}

func (f *markdownFormatter) Format() Format {
	return FormatMarkdown
}

func (f *markdownFormatter) Render(w io.Writer, result *compare.Result) error {
	fmt.Fprintln(w, "## Manufacturing cost break-even")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Axis | Conventional model | Additive cost | Break-even |")
	fmt.Fprintln(w, "|------|--------------------|---------------|------------|")

	volumeModel := fmt.Sprintf("%s / v + %s",
		fixed(result.VolumeModel.SetupCost), fixed(result.VolumeModel.VariableCost))
	fmt.Fprintf(w, "| Volume | %s | %s | %s |\n",
		volumeModel,
		fixed(result.VolumeModel.AdditiveUnitCost),
		breakevenCell(result.Volume.Breakeven, "units"))

	complexityModel := fmt.Sprintf("%s * x^%s",
		fixed(result.ComplexityModel.Coefficient), fixed(result.ComplexityModel.Exponent))
	fmt.Fprintf(w, "| Complexity | %s | %s | %s |\n",
		complexityModel,
		fixed(result.ComplexityModel.AdditivePieceCost),
		breakevenCell(result.Complexity.Breakeven, "complexity units"))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "_Generated %s in %s._\n", result.Metadata.Timestamp, result.Metadata.Duration)
	return nil
}

func breakevenCell(value *float64, unit string) string {
	if value == nil {
		return "not defined"
	}
	return fmt.Sprintf("%s %s", fixed(*value), unit)
}
