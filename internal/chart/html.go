package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/poverty.report/internal/series"
)

// RenderHTML writes the series as a self-contained interactive line chart.
// This is the quick-look counterpart to the PNG output; span annotations are
// PNG-only.
func RenderHTML(s *series.Series, o Options, w io.Writer) error {
	if s.Len() == 0 {
		return fmt.Errorf("series %q is empty", s.Name)
	}

	labels := make([]string, s.Len())
	data := make([]opts.LineData, s.Len())
	for i, tp := range s.Times {
		labels[i] = tp.String()
		data[i] = opts.LineData{Value: s.Values[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel}),
	)
	line.SetXAxis(labels).
		AddSeries(o.YLabel, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
