package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/banshee-data/poverty.report/internal/fsutil"
	"github.com/banshee-data/poverty.report/internal/series"
)

// ErrNoData reports that the header was never found, or that no rows decoded
// after it. Callers skip chart generation for the dataset and move on; this
// is an outcome, not a failure.
var ErrNoData = errors.New("no data rows found")

// Layout selects which row decoder a dataset uses.
type Layout int

const (
	// LayoutAnnual is one row per year with count and percent columns
	// (Census historical poverty tables).
	LayoutAnnual Layout = iota
	// LayoutMonthly is one row per year with one column per month
	// (BLS unemployment tables).
	LayoutMonthly
)

// Options configures one parse: where the section starts, how wide it is,
// and where the section ends.
type Options struct {
	Header     HeaderRule
	SkipCount  int
	Layout     Layout
	Annual     AnnualColumns
	Monthly    MonthlyColumns // Months nil: resolved from the header row
	Boundaries []string
}

// Load streams CSV rows from r and assembles the section's series,
// oldest-first. Row-level problems are logged and recovered here; only
// malformed CSV input and the ErrNoData outcome reach the caller.
func Load(r io.Reader, opts Options) (*series.Series, error) {
	labelCol, minFields := opts.dimensions()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	ex := NewExtractor(opts.Header, opts.SkipCount, labelCol, minFields, opts.Boundaries)
	monthly := opts.Monthly
	s := &series.Series{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		wasFound := ex.HeaderFound()
		action := ex.Feed(row)
		if !wasFound && ex.HeaderFound() && opts.Layout == LayoutMonthly && monthly.Months == nil {
			cols, err := ResolveMonthColumns(row)
			if err != nil {
				return nil, fmt.Errorf("resolve month columns: %w", err)
			}
			monthly.Months = cols
		}

		if action == Stop {
			break
		}
		if action != Emit {
			continue
		}

		switch opts.Layout {
		case LayoutAnnual:
			point, err := DecodeAnnual(row, opts.Annual)
			if err != nil {
				log.Printf("WARNING: skipping row %v: %v", row, err)
				continue
			}
			s.AppendWithCount(series.Annual(point.Year), point.Percent, point.Count)

		case LayoutMonthly:
			year, obs, err := DecodeMonthly(row, monthly)
			if err != nil {
				log.Printf("WARNING: skipping row %v: %v", row, err)
				continue
			}
			for _, ob := range obs {
				s.Append(series.Monthly(year, ob.Month), ob.Value)
			}
		}
	}

	if s.Len() == 0 {
		return nil, ErrNoData
	}
	s.SortChronological()
	return s, nil
}

// LoadFile opens path on fsys for the duration of one parse call.
func LoadFile(fsys fsutil.FileSystem, path string, opts Options) (*series.Series, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// dimensions derives the boundary-label column and the minimum cell count a
// row needs before it can be a candidate data row.
func (o Options) dimensions() (labelCol, minFields int) {
	if o.Layout == LayoutMonthly {
		// Year plus at least one month value.
		return o.Monthly.Year, o.Monthly.Year + 2
	}
	return o.Annual.Year, o.Annual.maxIndex() + 1
}
