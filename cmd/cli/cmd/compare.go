// Package cmd - compare command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"fabcost/core/compare"
	"fabcost/core/model"
	"fabcost/core/output"
	"fabcost/core/scenario"
	"fabcost/internal/chart"
	"fabcost/internal/config"
	"fabcost/internal/display"
	"fabcost/internal/errors"
	"fabcost/internal/logging"
	"fabcost/internal/watch"
)

var (
	scenarioFile string
	outputFormat string
	savePath     string
	noShow       bool
	watchMode    bool

	maxVolume     float64
	maxComplexity float64
	points        int

	setupCost        float64
	variableCost     float64
	additiveUnitCost float64

	complexityCoefficient float64
	complexityExponent    float64
	additivePieceCost     float64
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare conventional and additive manufacturing costs",
	Long: `Evaluate both cost models over their sampled domains, print the
break-even summary, and render the comparison figure.

Coefficients come from flags, an HCL scenario file, or the config file;
an explicit flag always wins. With --watch the scenario file is
re-evaluated on every change (the interactive window is skipped in
watch mode).

Examples:
  fabcost compare
  fabcost compare --format json
  fabcost compare --scenario part.hcl --save-path out/figure.png --no-show`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()

	f.Float64Var(&maxVolume, "max-volume", 100.0, "max units for the volume graph")
	f.Float64Var(&maxComplexity, "max-complexity", 100.0, "max complexity for the complexity graph")
	f.IntVar(&points, "points", 500, "number of points per curve")

	f.Float64Var(&setupCost, "setup-cost", model.DefaultSetupCost, "conventional setup/tooling cost")
	f.Float64Var(&variableCost, "variable-cost", model.DefaultVariableCost, "conventional variable cost per unit")
	f.Float64Var(&additiveUnitCost, "additive-unit-cost", model.DefaultAdditiveUnitCost, "additive cost per unit")

	f.Float64Var(&complexityCoefficient, "complexity-coefficient", model.DefaultCoefficient, "conventional complexity coefficient")
	f.Float64Var(&complexityExponent, "complexity-exponent", model.DefaultExponent, "conventional complexity exponent")
	f.Float64Var(&additivePieceCost, "additive-piece-cost", model.DefaultAdditivePieceCost, "additive cost per piece vs complexity")

	f.StringVar(&scenarioFile, "scenario", "", "HCL scenario file with coefficients and domain")
	f.StringVarP(&outputFormat, "format", "f", "", "summary format (cli, json, markdown)")
	f.StringVar(&savePath, "save-path", "", "output path for the figure, e.g. output.png")
	f.BoolVar(&noShow, "no-show", false, "do not open an interactive window")
	f.BoolVarP(&watchMode, "watch", "w", false, "re-run when the scenario file changes")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if watchMode && scenarioFile == "" {
		return errors.Input("--watch requires --scenario")
	}

	if err := runOnce(cmd); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("watching scenario file", zap.String("path", scenarioFile))
	err := watch.File(ctx, scenarioFile, func() error {
		if err := runOnce(cmd); err != nil {
			// Keep watching: a half-saved scenario should not kill the loop.
			logging.Error("comparison failed", zap.Error(err))
		}
		return nil
	})
	if err == context.Canceled {
		return nil
	}
	return err
}

func runOnce(cmd *cobra.Command) error {
	sc, err := buildScenario(cmd)
	if err != nil {
		return err
	}

	result, err := compare.Run(compare.Request{
		Volume:        sc.Volume,
		Complexity:    sc.Complexity,
		MaxVolume:     sc.MaxVolume,
		MaxComplexity: sc.MaxComplexity,
		Points:        sc.Points,
	})
	if err != nil {
		return err
	}

	formatter, err := output.New(resolveFormat())
	if err != nil {
		return err
	}
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	cfg := config.Get()
	save := savePath
	if save == "" {
		save = cfg.Output.SavePath
	}
	show := !noShow && !watchMode && !cfg.Output.NoShow
	if save == "" && !show {
		return nil
	}

	canvas, err := chart.Render(result, chart.Options{
		Width:  vg.Length(cfg.Chart.WidthInches) * vg.Inch,
		Height: vg.Length(cfg.Chart.HeightInches) * vg.Inch,
	})
	if err != nil {
		return err
	}

	if save != "" {
		if err := chart.SavePNG(canvas, save); err != nil {
			return err
		}
		fmt.Printf("Saved figure: %s\n", save)
	}

	if show {
		if err := display.Show(canvas.Image(), "fabcost"); err != nil {
			return err
		}
	}
	return nil
}

// buildScenario resolves inputs: config defaults, then the scenario
// file, then explicitly set flags.
func buildScenario(cmd *cobra.Command) (scenario.Scenario, error) {
	cfg := config.Get()
	sc := scenario.Default()
	sc.Volume = cfg.Models.Volume
	sc.Complexity = cfg.Models.Complexity
	sc.MaxVolume = cfg.Domain.MaxVolume
	sc.MaxComplexity = cfg.Domain.MaxComplexity
	sc.Points = cfg.Domain.Points

	if scenarioFile != "" {
		loaded, err := scenario.Load(scenarioFile)
		if err != nil {
			return sc, err
		}
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("max-volume") {
		sc.MaxVolume = maxVolume
	}
	if flags.Changed("max-complexity") {
		sc.MaxComplexity = maxComplexity
	}
	if flags.Changed("points") {
		sc.Points = points
	}
	if flags.Changed("setup-cost") {
		sc.Volume.SetupCost = setupCost
	}
	if flags.Changed("variable-cost") {
		sc.Volume.VariableCost = variableCost
	}
	if flags.Changed("additive-unit-cost") {
		sc.Volume.AdditiveUnitCost = additiveUnitCost
	}
	if flags.Changed("complexity-coefficient") {
		sc.Complexity.Coefficient = complexityCoefficient
	}
	if flags.Changed("complexity-exponent") {
		sc.Complexity.Exponent = complexityExponent
	}
	if flags.Changed("additive-piece-cost") {
		sc.Complexity.AdditivePieceCost = additivePieceCost
	}
	return sc, nil
}

func resolveFormat() output.Format {
	if outputFormat != "" {
		return output.Format(outputFormat)
	}
	return output.Format(config.Get().Output.DefaultFormat)
}
