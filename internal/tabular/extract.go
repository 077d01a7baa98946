// Package tabular extracts clean time series from irregular,
// human-formatted government CSV exports. The files intermix preamble text,
// sub-headers, multiple demographic sections, and footnotes with no
// structural markup, so everything rests on per-row content heuristics.
package tabular

import "strings"

// HeaderMatch selects how the header indicator is matched against a row.
type HeaderMatch int

const (
	// MatchFirstCell locates the header when the first cell contains the
	// indicator substring.
	MatchFirstCell HeaderMatch = iota
	// MatchAnyCell locates the header when any cell contains the indicator,
	// for headers embedded in a compound label spanning sub-columns.
	MatchAnyCell
)

// HeaderRule identifies the header row of one logical section.
type HeaderRule struct {
	Indicator string
	Match     HeaderMatch
}

// Matches reports whether row is the section header.
func (r HeaderRule) Matches(row []string) bool {
	if len(row) == 0 {
		return false
	}
	if r.Match == MatchAnyCell {
		for _, cell := range row {
			if strings.Contains(cell, r.Indicator) {
				return true
			}
		}
		return false
	}
	return strings.Contains(row[0], r.Indicator)
}

// Action is the Extractor's verdict on one row.
type Action int

const (
	// Skip discards the row and continues scanning.
	Skip Action = iota
	// Emit passes the row downstream as a candidate data row.
	Emit
	// Stop ends extraction; the row and everything after it are ignored.
	Stop
)

// extractState is the phase of the scan.
type extractState int

const (
	stateSeekingHeader extractState = iota
	stateSkippingPreamble
	stateEmitting
	stateDone
)

// Extractor scopes a row stream to one logical section of a file: it
// discards rows until the header rule matches, unconditionally skips a fixed
// number of sub-header rows, then emits candidate data rows until a section
// boundary or trailing footnotes are reached. If the header never matches,
// nothing is emitted; the caller treats that as "no data", not an error.
type Extractor struct {
	rule       HeaderRule
	skipCount  int
	labelCol   int
	minFields  int
	boundaries []string

	state   extractState
	toSkip  int
	emitted bool
}

// NewExtractor builds an Extractor. labelCol is the column checked for
// section-boundary markers; rows with fewer than minFields cells, or an
// empty label cell, count as empty/short.
func NewExtractor(rule HeaderRule, skipCount, labelCol, minFields int, boundaries []string) *Extractor {
	if minFields <= labelCol {
		minFields = labelCol + 1
	}
	return &Extractor{
		rule:       rule,
		skipCount:  skipCount,
		labelCol:   labelCol,
		minFields:  minFields,
		boundaries: boundaries,
	}
}

// Feed classifies the next row of the stream.
func (e *Extractor) Feed(row []string) Action {
	switch e.state {
	case stateDone:
		return Stop

	case stateSeekingHeader:
		if e.rule.Matches(row) {
			if e.skipCount > 0 {
				e.state = stateSkippingPreamble
				e.toSkip = e.skipCount
			} else {
				e.state = stateEmitting
			}
		}
		return Skip

	case stateSkippingPreamble:
		e.toSkip--
		if e.toSkip == 0 {
			e.state = stateEmitting
		}
		return Skip
	}

	// stateEmitting: three-way classification.
	if len(row) < e.minFields || row[e.labelCol] == "" {
		// Trailing notes follow the data; a blank or short row after the
		// first emitted row marks the end of the section.
		if e.emitted {
			e.state = stateDone
			return Stop
		}
		return Skip
	}
	for _, marker := range e.boundaries {
		if strings.Contains(row[e.labelCol], marker) {
			e.state = stateDone
			return Stop
		}
	}
	e.emitted = true
	return Emit
}

// Done reports whether the extractor has terminated.
func (e *Extractor) Done() bool {
	return e.state == stateDone
}

// HeaderFound reports whether the header rule ever matched.
func (e *Extractor) HeaderFound() bool {
	return e.state != stateSeekingHeader
}
