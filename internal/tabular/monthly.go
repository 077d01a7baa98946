package tabular

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// monthIndex is the fixed month-name table used to resolve month columns
// from a header row. The BLS exports abbreviate month names to three letters.
var monthIndex = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// MonthlyColumns names the column positions of the month-per-column layout
// used by the BLS unemployment tables: one row per year, twelve value
// columns in January-first order.
type MonthlyColumns struct {
	Year   int
	Months []int
}

// ResolveMonthColumns builds January-first month column positions from a
// header row, matching cells against the fixed month-name table. Returns an
// error unless all twelve months are present.
func ResolveMonthColumns(header []string) ([]int, error) {
	cols := make([]int, 12)
	for i := range cols {
		cols[i] = -1
	}
	found := 0
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if len(name) > 3 {
			name = name[:3]
		}
		m, ok := monthIndex[name]
		if !ok || cols[m-1] != -1 {
			continue
		}
		cols[m-1] = i
		found++
	}
	if found != 12 {
		return nil, fmt.Errorf("header names %d month columns, want 12", found)
	}
	return cols, nil
}

// MonthObs is one decoded monthly observation.
type MonthObs struct {
	Month time.Month
	Value float64
}

// DecodeMonthly converts one candidate data row of the month-per-column
// layout. Months are independent observations: empty and sentinel cells are
// skipped outright, and a cell that fails numeric conversion is logged and
// omitted rather than zero-placeholdered. Only a malformed year rejects the
// whole row.
func DecodeMonthly(row []string, cols MonthlyColumns) (int, []MonthObs, error) {
	if len(row) <= cols.Year {
		return 0, nil, fmt.Errorf("row has %d cells, year column is %d", len(row), cols.Year)
	}

	year, err := yearFromCell(row[cols.Year])
	if err != nil {
		return 0, nil, err
	}

	obs := make([]MonthObs, 0, len(cols.Months))
	for i, col := range cols.Months {
		month := time.Month(i + 1)
		if col >= len(row) {
			continue
		}
		cell := cleanNumber(row[col])
		if isMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			log.Printf("WARNING: %d %s: dropping value %q: %v", year, month, row[col], err)
			continue
		}
		obs = append(obs, MonthObs{Month: month, Value: v})
	}
	return year, obs, nil
}
