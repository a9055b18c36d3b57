// SPDX-License-Identifier: MIT

// Package plot draws the solution x against the right-hand side b.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrLength indicates x and b of different or zero length.
var ErrLength = errors.New("plot: x and b must have the same non-zero length")

var (
	colorX = color.RGBA{B: 255, A: 255}
	colorB = color.RGBA{R: 255, A: 255}
)

// Options sizes the image and formats the annotations.
type Options struct {
	Width     vg.Length
	Height    vg.Length
	Precision int
}

// DefaultOptions matches the 20×15 cm default of the config file.
func DefaultOptions() Options {
	return Options{Width: 20 * vg.Centimeter, Height: 15 * vg.Centimeter, Precision: 2}
}

// Render builds the chart: x as bars, b as a dashed line with circle
// markers, each point annotated with its value, on a dashed grid.
func Render(x, b []float64, opts Options) (*plot.Plot, error) {
	if len(x) == 0 || len(x) != len(b) {
		return nil, fmt.Errorf("Render: len(x)=%d len(b)=%d: %w", len(x), len(b), ErrLength)
	}

	p := plot.New()
	p.Title.Text = "Linear system solution and b"
	p.X.Label.Text = "Index"
	p.Y.Label.Text = "Value"

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(grid)

	bars, err := plotter.NewBarChart(plotter.Values(x), vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("Render: bars: %w", err)
	}
	bars.Color = colorX
	bars.LineStyle.Width = 0

	bxy := make(plotter.XYs, len(b))
	xxy := make(plotter.XYs, len(x))
	for i := range b {
		bxy[i] = plotter.XY{X: float64(i), Y: b[i]}
		xxy[i] = plotter.XY{X: float64(i), Y: x[i]}
	}
	line, points, err := plotter.NewLinePoints(bxy)
	if err != nil {
		return nil, fmt.Errorf("Render: line: %w", err)
	}
	line.Color = colorB
	line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	points.Shape = draw.CircleGlyph{}
	points.Color = colorB

	xLabels, err := annotate(xxy, opts.Precision, colorX, vg.Points(10))
	if err != nil {
		return nil, err
	}
	bLabels, err := annotate(bxy, opts.Precision, colorB, -vg.Points(15))
	if err != nil {
		return nil, err
	}

	p.Add(bars, line, points, xLabels, bLabels)
	p.Legend.Add("Solution x", bars)
	p.Legend.Add("Result b", line, points)
	p.Legend.Top = true

	return p, nil
}

func annotate(xys plotter.XYs, precision int, c color.Color, dy vg.Length) (*plotter.Labels, error) {
	text := make([]string, len(xys))
	for i, pt := range xys {
		text[i] = strconv.FormatFloat(pt.Y, 'f', precision, 64)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, fmt.Errorf("Render: labels: %w", err)
	}
	labels.Offset = vg.Point{Y: dy}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = c
		labels.TextStyle[i].XAlign = draw.XCenter
	}

	return labels, nil
}

// WritePNG renders the chart as PNG into w.
func WritePNG(w io.Writer, x, b []float64, opts Options) error {
	p, err := Render(x, b, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WritePNG: %w", err)
	}

	return nil
}

// SaveFile renders the chart into path; the format follows the extension
// (.png, .svg, .pdf, or .html for an interactive page).
func SaveFile(path string, x, b []float64, opts Options) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return saveHTML(path, x, b, opts.Precision)
	}
	p, err := Render(x, b, opts)
	if err != nil {
		return err
	}
	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	return nil
}
