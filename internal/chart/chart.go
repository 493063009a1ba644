// Package chart renders the side-by-side cost comparison figure.
package chart

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"fabcost/core/compare"
	"fabcost/internal/errors"
)

var (
	conventionalColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	additiveColor     = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	volumeMarker      = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	complexityMarker  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Options controls figure geometry.
type Options struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the standard 14x6 inch figure.
func DefaultOptions() Options {
	return Options{Width: 14 * vg.Inch, Height: 6 * vg.Inch}
}

// Render draws both comparison panels onto a single raster canvas.
func Render(result *compare.Result, opts Options) (*vgimg.Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts = DefaultOptions()
	}

	left, err := panel(panelSpec{
		title:       "Cost per Unit vs Volume",
		xLabel:      "Units Manufactured",
		yLabel:      "Cost per Unit",
		markerLabel: "Volume break-even",
		markerColor: volumeMarker,
	}, &result.Volume)
	if err != nil {
		return nil, err
	}

	right, err := panel(panelSpec{
		title:       "Cost per Piece vs Geometric Complexity",
		xLabel:      "Geometric Complexity",
		yLabel:      "Cost per Piece",
		markerLabel: "Complexity break-even",
		markerColor: complexityMarker,
	}, &result.Complexity)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.New(opts.Width, opts.Height)
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	plots := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(plots, tiles, dc)
	plots[0][0].Draw(canvases[0][0])
	plots[0][1].Draw(canvases[0][1])
	return canvas, nil
}

// SavePNG writes the figure to disk, creating parent directories.
func SavePNG(canvas *vgimg.Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Render("failed to create figure directory", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Render("failed to create figure file", err)
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Render("failed to encode figure", err)
	}
	return f.Close()
}

type panelSpec struct {
	title       string
	xLabel      string
	yLabel      string
	markerLabel string
	markerColor color.Color
}

func panel(spec panelSpec, curve *compare.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	conv, err := plotter.NewLine(xys(curve.X, curve.Conventional))
	if err != nil {
		return nil, errors.Render("failed to build conventional curve", err)
	}
	conv.LineStyle.Color = conventionalColor
	conv.LineStyle.Width = vg.Points(1.5)

	add, err := plotter.NewLine(xys(curve.X, curve.Additive))
	if err != nil {
		return nil, errors.Render("failed to build additive curve", err)
	}
	add.LineStyle.Color = additiveColor
	add.LineStyle.Width = vg.Points(1.5)
	add.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(conv, add)
	p.Legend.Add("Conventional Manufacturing", conv)
	p.Legend.Add("Additive Manufacturing", add)

	if x, ok := curve.Marker(); ok {
		lo, hi := valueRange(curve)
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: lo}, {X: x, Y: hi}})
		if err != nil {
			return nil, errors.Render("failed to build break-even marker", err)
		}
		marker.LineStyle.Color = spec.markerColor
		marker.LineStyle.Width = vg.Points(1)
		marker.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(marker)
		p.Legend.Add(spec.markerLabel, marker)
	}

	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// valueRange spans both curves so the marker crosses the full panel.
func valueRange(curve *compare.Curve) (lo, hi float64) {
	first := true
	for _, ys := range [][]float64{curve.Conventional, curve.Additive} {
		for _, y := range ys {
			if first {
				lo, hi = y, y
				first = false
				continue
			}
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
	}
	return lo, hi
}
