// Package series holds the time-series data model produced by the tabular
// parsers and consumed by the chart renderers.
package series

import (
	"fmt"
	"sort"
	"time"
)

// TimePoint identifies one observation time: a calendar year, optionally
// refined to a month. Month is zero for annual observations.
type TimePoint struct {
	Year  int
	Month time.Month
}

// Annual returns a TimePoint for a whole calendar year.
func Annual(year int) TimePoint {
	return TimePoint{Year: year}
}

// Monthly returns a TimePoint for a specific month of a year.
func Monthly(year int, month time.Month) TimePoint {
	return TimePoint{Year: year, Month: month}
}

// Date normalizes the point to a calendar date (first of the month, or
// January 1 for annual points).
func (tp TimePoint) Date() time.Time {
	m := tp.Month
	if m == 0 {
		m = time.January
	}
	return time.Date(tp.Year, m, 1, 0, 0, 0, 0, time.UTC)
}

// X returns the point as a fractional-year plot coordinate.
func (tp TimePoint) X() float64 {
	if tp.Month == 0 {
		return float64(tp.Year)
	}
	return float64(tp.Year) + float64(tp.Month-1)/12.0
}

// Before reports whether tp is chronologically earlier than other.
func (tp TimePoint) Before(other TimePoint) bool {
	if tp.Year != other.Year {
		return tp.Year < other.Year
	}
	return tp.Month < other.Month
}

func (tp TimePoint) String() string {
	if tp.Month == 0 {
		return fmt.Sprintf("%d", tp.Year)
	}
	return fmt.Sprintf("%s %d", tp.Month.String()[:3], tp.Year)
}

// Series is a set of parallel slices: observation times, a primary numeric
// measure, and an optional secondary count measure. Counts is nil when the
// dataset carries no count column; when non-nil it advances in lockstep with
// Times and Values (a count of 0 is the placeholder for a suppressed value).
type Series struct {
	Name   string
	Times  []TimePoint
	Values []float64
	Counts []int64
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Times)
}

// Append adds an observation with no count measure.
func (s *Series) Append(t TimePoint, value float64) {
	s.Times = append(s.Times, t)
	s.Values = append(s.Values, value)
}

// AppendWithCount adds an observation carrying both measures.
func (s *Series) AppendWithCount(t TimePoint, value float64, count int64) {
	s.Times = append(s.Times, t)
	s.Values = append(s.Values, value)
	s.Counts = append(s.Counts, count)
}

// Validate checks the parallel-slice invariant.
func (s *Series) Validate() error {
	if len(s.Times) != len(s.Values) {
		return fmt.Errorf("series %q: %d times but %d values", s.Name, len(s.Times), len(s.Values))
	}
	if s.Counts != nil && len(s.Counts) != len(s.Times) {
		return fmt.Errorf("series %q: %d times but %d counts", s.Name, len(s.Times), len(s.Counts))
	}
	return nil
}

// Chronological reports whether observations are strictly increasing in time.
func (s *Series) Chronological() bool {
	for i := 1; i < len(s.Times); i++ {
		if !s.Times[i-1].Before(s.Times[i]) {
			return false
		}
	}
	return true
}

// Reverse flips the observation order in place. Source files list the most
// recent year first; charts want oldest-first.
func (s *Series) Reverse() {
	for i, j := 0, len(s.Times)-1; i < j; i, j = i+1, j-1 {
		s.swap(i, j)
	}
}

// SortChronological puts observations in oldest-first order. The common case
// (newest-first source files) is handled by a single reverse; anything else
// falls back to a stable sort.
func (s *Series) SortChronological() {
	if s.Chronological() {
		return
	}
	s.Reverse()
	if s.Chronological() {
		return
	}
	sort.Stable(byTime{s})
}

func (s *Series) swap(i, j int) {
	s.Times[i], s.Times[j] = s.Times[j], s.Times[i]
	s.Values[i], s.Values[j] = s.Values[j], s.Values[i]
	if s.Counts != nil {
		s.Counts[i], s.Counts[j] = s.Counts[j], s.Counts[i]
	}
}

// byTime adapts a Series to sort.Interface, keeping the slices parallel.
type byTime struct{ s *Series }

func (b byTime) Len() int           { return b.s.Len() }
func (b byTime) Less(i, j int) bool { return b.s.Times[i].Before(b.s.Times[j]) }
func (b byTime) Swap(i, j int)      { b.s.swap(i, j) }
