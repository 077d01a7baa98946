// Package dataset describes the ingested source files: where each one
// lives, how to locate its data section, and how to label its charts.
package dataset

import (
	"fmt"

	"github.com/banshee-data/poverty.report/internal/tabular"
)

// DemographicBreaks are the labels whose appearance in the year column of a
// Census poverty table signals that the "All Races" section has ended and a
// per-demographic sub-table follows.
var DemographicBreaks = []string{
	"White Alone", "Black Alone", "Asian Alone",
	"American Indian", "Hispanic", "Two or More",
}

// Config is the immutable per-file record: one source CSV, its parse
// options, and its chart labels. Validated once at startup.
type Config struct {
	Filename   string
	Title      string
	YLabel     string
	OutputBase string
	Parse      tabular.Options
}

// Validate checks the record for the mistakes that would otherwise surface
// as silent empty parses.
func (c Config) Validate() error {
	if c.Filename == "" {
		return fmt.Errorf("dataset has no filename")
	}
	if c.OutputBase == "" {
		return fmt.Errorf("dataset %s: no output basename", c.Filename)
	}
	if c.Parse.Header.Indicator == "" {
		return fmt.Errorf("dataset %s: no header indicator", c.Filename)
	}
	if c.Parse.SkipCount < 0 {
		return fmt.Errorf("dataset %s: negative skip count %d", c.Filename, c.Parse.SkipCount)
	}
	switch c.Parse.Layout {
	case tabular.LayoutAnnual:
		a := c.Parse.Annual
		if a.Year < 0 || a.Count < 0 || a.Percent < 0 {
			return fmt.Errorf("dataset %s: negative column index", c.Filename)
		}
		if a.Count == a.Year || a.Percent == a.Year || a.Count == a.Percent {
			return fmt.Errorf("dataset %s: column indices must be distinct", c.Filename)
		}
	case tabular.LayoutMonthly:
		if c.Parse.Monthly.Year < 0 {
			return fmt.Errorf("dataset %s: negative year column", c.Filename)
		}
		if n := len(c.Parse.Monthly.Months); n != 0 && n != 12 {
			return fmt.Errorf("dataset %s: %d month columns, want 12 or none", c.Filename, n)
		}
	default:
		return fmt.Errorf("dataset %s: unknown layout %d", c.Filename, c.Parse.Layout)
	}
	return nil
}

// Defaults returns the deployed dataset configurations.
func Defaults() []Config {
	return []Config{
		{
			Filename:   "hstpov2.csv",
			Title:      "Percent of People Below Poverty in the US (All Races)",
			YLabel:     "Percent (%)",
			OutputBase: "poverty_percent_plot",
			Parse: tabular.Options{
				Header:     tabular.HeaderRule{Indicator: "All Races", Match: tabular.MatchFirstCell},
				SkipCount:  3,
				Layout:     tabular.LayoutAnnual,
				Annual:     tabular.AnnualColumns{Year: 0, Count: 2, Percent: 3},
				Boundaries: DemographicBreaks,
			},
		},
		{
			Filename:   "hstpov6.csv",
			Title:      "Percent of People Below 1.25 of Poverty Level in the US (All Races)",
			YLabel:     "Percent (%) Below 1.25 of Poverty Level",
			OutputBase: "poverty_below_125_plot",
			Parse: tabular.Options{
				// The "Below 1.25" header is embedded in a compound label
				// spanning several sub-columns, hence the any-cell match.
				Header:     tabular.HeaderRule{Indicator: "Below 1.25", Match: tabular.MatchAnyCell},
				SkipCount:  0,
				Layout:     tabular.LayoutAnnual,
				Annual:     tabular.AnnualColumns{Year: 0, Count: 4, Percent: 5},
				Boundaries: DemographicBreaks,
			},
		},
		{
			Filename:   "unemployment.csv",
			Title:      "US Unemployment Rate",
			YLabel:     "Unemployment Rate (%)",
			OutputBase: "unemployment_rate_plot",
			Parse: tabular.Options{
				Header:  tabular.HeaderRule{Indicator: "Year", Match: tabular.MatchFirstCell},
				Layout:  tabular.LayoutMonthly,
				Monthly: tabular.MonthlyColumns{Year: 0},
			},
		},
	}
}
