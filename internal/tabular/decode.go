package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// AnnualColumns names the column positions of the year-per-row layout used
// by the Census historical poverty tables.
type AnnualColumns struct {
	Year    int
	Count   int
	Percent int
}

// maxIndex returns the highest referenced column.
func (c AnnualColumns) maxIndex() int {
	m := c.Year
	if c.Count > m {
		m = c.Count
	}
	if c.Percent > m {
		m = c.Percent
	}
	return m
}

// AnnualPoint is one decoded year of data. Count is 0 when the source
// suppressed the count but published the percent.
type AnnualPoint struct {
	Year    int
	Count   int64
	Percent float64
}

// isMissing reports whether a cleaned cell denotes a suppressed data point.
// The Census tables use "N" and "NA" interchangeably.
func isMissing(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "n", "na":
		return true
	}
	return false
}

// cleanNumber strips thousands separators and surrounding whitespace.
func cleanNumber(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}

// yearFromCell extracts the year from a label cell. The leading
// whitespace-delimited token must be entirely digits; footnote rows start
// with markers like "1/" and are rejected here. Cells like "2017 (40)"
// carry revision notes after the year and decode fine.
func yearFromCell(cell string) (int, error) {
	fields := strings.Fields(cell)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty year cell")
	}
	tok := fields[0]
	for _, r := range tok {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("year token %q is not numeric", tok)
		}
	}
	return strconv.Atoi(tok)
}

// DecodeAnnual converts one candidate data row into an AnnualPoint.
//
// The percent column is mandatory: if it is empty, a missing-data sentinel,
// or unparseable, the row contributes nothing and an error describes why.
// The count column is optional per-row: missing, sentinel, or unparseable
// counts become a 0 placeholder so the percent series never loses an entry
// to a suppressed count. The asymmetry is intentional and matches the
// published tables; do not even it out.
func DecodeAnnual(row []string, cols AnnualColumns) (AnnualPoint, error) {
	if len(row) <= cols.maxIndex() {
		return AnnualPoint{}, fmt.Errorf("row has %d cells, need %d", len(row), cols.maxIndex()+1)
	}

	year, err := yearFromCell(row[cols.Year])
	if err != nil {
		return AnnualPoint{}, err
	}

	percentStr := cleanNumber(row[cols.Percent])
	if isMissing(percentStr) {
		return AnnualPoint{}, fmt.Errorf("year %d: percent is missing", year)
	}
	percent, err := strconv.ParseFloat(percentStr, 64)
	if err != nil {
		return AnnualPoint{}, fmt.Errorf("year %d: percent %q: %w", year, percentStr, err)
	}

	var count int64
	if countStr := cleanNumber(row[cols.Count]); !isMissing(countStr) {
		if v, err := strconv.ParseInt(countStr, 10, 64); err == nil {
			count = v
		}
		// Unparseable counts fall through to the 0 placeholder.
	}

	return AnnualPoint{Year: year, Count: count, Percent: percent}, nil
}
