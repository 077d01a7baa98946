// Package chart renders parsed series as line charts. It is a thin wrapper
// over gonum/plot and go-echarts; all tolerant-parsing logic lives upstream
// in internal/tabular.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/poverty.report/internal/series"
)

// Span is a shaded vertical band highlighting a date range on the chart.
type Span struct {
	Label string
	Start int // first year covered
	End   int // last year covered, inclusive
	Color color.Color
}

// ReaganTerms returns the two highlighted presidential terms. The second
// term is shown ending with 1988; the weeks into 1989 don't count for that
// year's statistics.
func ReaganTerms() []Span {
	return []Span{
		{Label: "Reagan 1st Term (1981-1984)", Start: 1981, End: 1984, Color: color.NRGBA{R: 0xFF, G: 0xB3, B: 0x47, A: 0x99}},
		{Label: "Reagan 2nd Term (1985-1988)", Start: 1985, End: 1988, Color: color.NRGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0x99}},
	}
}

// Options are the per-chart labels and annotations. A nil Spans slice
// renders a plain chart with no legend.
type Options struct {
	Title         string
	XLabel        string
	YLabel        string
	YTickInterval float64
	Spans         []Span
}

// RenderPNG draws the series as an annotated line chart and writes PNG
// bytes to w.
func RenderPNG(s *series.Series, o Options, w io.Writer) error {
	if s.Len() == 0 {
		return fmt.Errorf("series %q is empty", s.Name)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, s.Len())
	for i, tp := range s.Times {
		pts[i] = plotter.XY{X: tp.X(), Y: s.Values[i]}
	}

	// Fix the Y range from the data before adding span polygons, so the
	// shading covers the full plot height without stretching the axis.
	yMin, yMax := floats.Min(s.Values), floats.Max(s.Values)
	pad := (yMax - yMin) * 0.05
	if pad == 0 {
		pad = 1
	}
	p.Y.Min = yMin - pad
	p.Y.Max = yMax + pad

	for _, span := range o.Spans {
		poly, err := plotter.NewPolygon(spanRect(span, p.Y.Min, p.Y.Max))
		if err != nil {
			return fmt.Errorf("span %s: %w", span.Label, err)
		}
		poly.Color = span.Color
		poly.LineStyle.Color = color.Transparent
		p.Add(poly)
		p.Legend.Add(span.Label, poly)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("line points: %w", err)
	}
	line.Color = color.Black
	line.Width = vg.Points(1)
	points.Color = color.Black
	points.Radius = vg.Points(2)
	p.Add(line, points)

	p.X.Tick.Marker = yearTicks{step: 5}
	if o.YTickInterval > 0 {
		p.Y.Tick.Marker = intervalTicks{step: o.YTickInterval}
	}

	if len(o.Spans) > 0 {
		p.Legend.Top = true
		p.Legend.Left = false
		p.Legend.XOffs = -10
		p.Legend.YOffs = -10
	}

	wt, err := p.WriterTo(14*vg.Inch, 7*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// spanRect is the shaded rectangle for a span. The band runs to the end of
// the span's last year, so End+1 on the x axis.
func spanRect(span Span, yMin, yMax float64) plotter.XYs {
	x0, x1 := float64(span.Start), float64(span.End+1)
	return plotter.XYs{
		{X: x0, Y: yMin},
		{X: x1, Y: yMin},
		{X: x1, Y: yMax},
		{X: x0, Y: yMax},
	}
}

// yearTicks places a labelled tick on every multiple of step years.
type yearTicks struct{ step int }

func (t yearTicks) Ticks(min, max float64) []plot.Tick {
	step := t.step
	if step <= 0 {
		step = 5
	}
	start := int(math.Ceil(min))
	start -= ((start % step) + step) % step
	var ticks []plot.Tick
	for y := start; float64(y) <= max; y += step {
		if float64(y) < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}

// intervalTicks places a labelled tick on every multiple of a fixed value,
// the matplotlib MultipleLocator behaviour.
type intervalTicks struct{ step float64 }

func (t intervalTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := math.Ceil(min/t.step) * t.step; v <= max; v += t.step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
	}
	return ticks
}
