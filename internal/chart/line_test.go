package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/poverty.report/internal/series"
)

func testSeries() *series.Series {
	s := &series.Series{Name: "test"}
	for year := 1959; year <= 2023; year++ {
		s.AppendWithCount(series.Annual(year), 10+float64(year%7), int64(30000+year))
	}
	return s
}

func TestRenderPNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderPNG(testSeries(), Options{
		Title:         "Percent of People Below Poverty in the US (All Races)",
		XLabel:        "Year",
		YLabel:        "Percent (%)",
		YTickInterval: 2,
	}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "output is not a PNG")
}

func TestRenderPNG_Annotated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderPNG(testSeries(), Options{
		Title:         "Annotated",
		XLabel:        "Year",
		YLabel:        "Percent (%)",
		YTickInterval: 2,
		Spans:         ReaganTerms(),
	}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestRenderPNG_EmptySeries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderPNG(&series.Series{Name: "empty"}, Options{}, &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestRenderPNG_MonthlySeries(t *testing.T) {
	t.Parallel()

	s := &series.Series{Name: "unemployment"}
	for year := 1980; year <= 1990; year++ {
		for m := time.January; m <= time.December; m++ {
			s.Append(series.Monthly(year, m), 5+float64(m)/10)
		}
	}
	var buf bytes.Buffer
	err := RenderPNG(s, Options{Title: "US Unemployment Rate", XLabel: "Year", YLabel: "Rate (%)"}, &buf)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderHTML(testSeries(), Options{Title: "Poverty", XLabel: "Year", YLabel: "Percent (%)"}, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "echarts")
	assert.Contains(t, html, "Poverty")
}

func TestRenderHTML_EmptySeries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := RenderHTML(&series.Series{}, Options{}, &buf)
	assert.Error(t, err)
}

func TestYearTicks(t *testing.T) {
	t.Parallel()

	ticks := yearTicks{step: 5}.Ticks(1959, 2023)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 1960.0, ticks[0].Value)
	assert.Equal(t, "1960", ticks[0].Label)
	assert.Equal(t, 2020.0, ticks[len(ticks)-1].Value)
	for _, tick := range ticks {
		assert.Zero(t, int(tick.Value)%5, "tick %v not on a 5-year boundary", tick.Value)
	}
}

func TestYearTicks_StartOnBoundary(t *testing.T) {
	t.Parallel()

	ticks := yearTicks{step: 5}.Ticks(1980, 1990)
	require.Len(t, ticks, 3)
	assert.Equal(t, 1980.0, ticks[0].Value)
	assert.Equal(t, 1990.0, ticks[2].Value)
}

func TestIntervalTicks(t *testing.T) {
	t.Parallel()

	ticks := intervalTicks{step: 2}.Ticks(10.3, 16.2)
	require.Len(t, ticks, 3)
	assert.Equal(t, 12.0, ticks[0].Value)
	assert.Equal(t, "16", ticks[2].Label)
}

func TestReaganTerms(t *testing.T) {
	t.Parallel()

	terms := ReaganTerms()
	require.Len(t, terms, 2)
	assert.Equal(t, 1981, terms[0].Start)
	assert.Equal(t, 1984, terms[0].End)
	assert.Equal(t, 1985, terms[1].Start)
	assert.Equal(t, 1988, terms[1].End)
	assert.True(t, strings.Contains(terms[0].Label, "1st"))
}
