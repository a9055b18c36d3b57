// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the same chart as Render into an interactive HTML page:
// x as bars, b as a dashed line, both labelled with their values.
func WriteHTML(w io.Writer, x, b []float64, precision int) error {
	if len(x) == 0 || len(x) != len(b) {
		return fmt.Errorf("WriteHTML: len(x)=%d len(b)=%d: %w", len(x), len(b), ErrLength)
	}

	index := make([]string, len(x))
	bars := make([]opts.BarData, len(x))
	points := make([]opts.LineData, len(b))
	for i := range x {
		index[i] = strconv.Itoa(i)
		bars[i] = opts.BarData{Value: round(x[i], precision)}
		points[i] = opts.LineData{Value: round(b[i], precision), Symbol: "circle"}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Linear system solution and b"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Index"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value", Scale: opts.Bool(true)}),
	)
	bar.SetXAxis(index).AddSeries("Solution x", bars,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	line := charts.NewLine()
	line.SetXAxis(index).AddSeries("Result b", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Type: "dashed"}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "bottom"}),
	)
	bar.Overlap(line)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("WriteHTML: %w", err)
	}

	return nil
}

func saveHTML(path string, x, b []float64, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = WriteHTML(f, x, b, precision); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func round(v float64, precision int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err != nil {
		return v
	}

	return r
}
