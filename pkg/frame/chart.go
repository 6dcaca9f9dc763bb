package frame

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartWidthPx = 900

// RenderChart renders the circles as an echarts scatter plot, in the
// same bottom-origin coordinates as Output. Symbols are sized to the
// circle diameters, roughly.
func (f *Frame) RenderChart() ([]byte, error) {
	w, h := f.Width(), f.Height()
	scale := 1.0
	if w > 0 {
		scale = 0.8 * chartWidthPx / float64(w)
	}

	data := make([]opts.ScatterData, 0, len(f.Result.Circles))
	for _, c := range f.Result.Circles {
		size := int(2 * float64(c.R) * scale)
		if size < 1 {
			size = 1
		}
		data = append(data, opts.ScatterData{
			Value:      []interface{}{c.X, h - c.Y, c.R},
			SymbolSize: size,
		})
	}

	chartHeight := chartWidthPx
	if w > 0 {
		chartHeight = chartWidthPx * h / w
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "mkbubble",
			Width:     fmt.Sprintf("%dpx", chartWidthPx),
			Height:    fmt.Sprintf("%dpx", chartHeight),
		}),
		charts.WithTitleOpts(opts.Title{Title: f.Filename(), Subtitle: fmt.Sprintf("%dx%d, %d circles", w, h, len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: w, Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: h, Name: "y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("bubbles", data)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *Frame) WriteChart(filename string) error {
	b, err := f.RenderChart()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("write chart '%s': %w", filename, err)
	}
	return nil
}
