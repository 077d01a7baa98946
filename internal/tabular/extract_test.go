package tabular

import "testing"

var testBoundaries = []string{
	"White Alone", "Black Alone", "Asian Alone",
	"American Indian", "Hispanic", "Two or More",
}

func feedAll(e *Extractor, rows [][]string) [][]string {
	var emitted [][]string
	for _, row := range rows {
		switch e.Feed(row) {
		case Emit:
			emitted = append(emitted, row)
		case Stop:
			return emitted
		}
	}
	return emitted
}

func TestHeaderRule_Matches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rule HeaderRule
		row  []string
		want bool
	}{
		{"first cell hit", HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, []string{"All Races 22", "x"}, true},
		{"first cell miss in later cell", HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, []string{"", "All Races"}, false},
		{"any cell hit in later cell", HeaderRule{Indicator: "Below 1.25", Match: MatchAnyCell}, []string{"", "", "Below 1.25 of poverty level"}, true},
		{"any cell miss", HeaderRule{Indicator: "Below 1.25", Match: MatchAnyCell}, []string{"Year", "Number"}, false},
		{"empty row", HeaderRule{Indicator: "Year", Match: MatchFirstCell}, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Matches(tc.row); got != tc.want {
				t.Errorf("Matches(%v) = %v, want %v", tc.row, got, tc.want)
			}
		})
	}
}

func TestExtractor_SkipsUntilHeaderThenPreamble(t *testing.T) {
	t.Parallel()

	e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 3, 0, 4, testBoundaries)
	rows := [][]string{
		{"Table 2. Poverty Status", "", "", ""},
		{"(Numbers in thousands)", "", "", ""},
		{"All Races", "", "", ""},
		{"", "Total", "Below poverty", ""},
		{"Year", "", "Number", "Percent"},
		{"", "", "", ""},
		{"2023", "X", "36,400", "11.1"},
		{"2022", "X", "37,900", "11.5"},
	}

	emitted := feedAll(e, rows)
	if len(emitted) != 2 {
		t.Fatalf("emitted %d rows, want 2: %v", len(emitted), emitted)
	}
	if emitted[0][0] != "2023" || emitted[1][0] != "2022" {
		t.Errorf("wrong rows emitted: %v", emitted)
	}
}

func TestExtractor_HeaderNeverFound(t *testing.T) {
	t.Parallel()

	e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 3, 0, 4, testBoundaries)
	rows := [][]string{
		{"Some other table", "", "", ""},
		{"2023", "X", "36,400", "11.1"},
	}

	if emitted := feedAll(e, rows); emitted != nil {
		t.Errorf("emitted %v without a header", emitted)
	}
	if e.HeaderFound() {
		t.Error("HeaderFound = true, want false")
	}
}

func TestExtractor_BoundaryTerminates(t *testing.T) {
	t.Parallel()

	e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
	rows := [][]string{
		{"All Races", "", "", ""},
		{"2023", "X", "36,400", "11.1"},
		{"Black Alone", "", "", ""},
		// Well-formed rows after the boundary belong to another section.
		{"2023", "X", "10,000", "17.9"},
	}

	emitted := feedAll(e, rows)
	if len(emitted) != 1 {
		t.Fatalf("emitted %d rows, want 1: %v", len(emitted), emitted)
	}
	if !e.Done() {
		t.Error("extractor not done after boundary")
	}
	if got := e.Feed([]string{"2022", "X", "1", "1.0"}); got != Stop {
		t.Errorf("Feed after boundary = %v, want Stop", got)
	}
}

func TestExtractor_BoundaryBeforeAnyData(t *testing.T) {
	t.Parallel()

	e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
	rows := [][]string{
		{"All Races", "", "", ""},
		{"Hispanic (any race)", "", "", ""},
	}

	if emitted := feedAll(e, rows); emitted != nil {
		t.Errorf("emitted %v, want none", emitted)
	}
}

func TestExtractor_EmptyRowClassification(t *testing.T) {
	t.Parallel()

	t.Run("before data is skipped", func(t *testing.T) {
		t.Parallel()
		e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
		e.Feed([]string{"All Races", "", "", ""})

		if got := e.Feed([]string{"", "", "", ""}); got != Skip {
			t.Errorf("empty row before data = %v, want Skip", got)
		}
		if got := e.Feed([]string{"2023", "X", "36,400", "11.1"}); got != Emit {
			t.Errorf("data row after blank = %v, want Emit", got)
		}
	})

	t.Run("after data terminates", func(t *testing.T) {
		t.Parallel()
		e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
		e.Feed([]string{"All Races", "", "", ""})
		e.Feed([]string{"2023", "X", "36,400", "11.1"})

		if got := e.Feed([]string{"", "", "", ""}); got != Stop {
			t.Errorf("empty row after data = %v, want Stop", got)
		}
	})

	t.Run("short row after data terminates", func(t *testing.T) {
		t.Parallel()
		e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
		e.Feed([]string{"All Races", "", "", ""})
		e.Feed([]string{"2023", "X", "36,400", "11.1"})

		if got := e.Feed([]string{"Source: Current Population Survey"}); got != Stop {
			t.Errorf("short trailing row = %v, want Stop", got)
		}
	})
}

func TestExtractor_FootnoteRowIsStillEmitted(t *testing.T) {
	t.Parallel()

	// Rows like "1/ Footnote text" are wide enough to be candidates; the
	// decoder is what rejects them.
	e := NewExtractor(HeaderRule{Indicator: "All Races", Match: MatchFirstCell}, 0, 0, 4, testBoundaries)
	e.Feed([]string{"All Races", "", "", ""})
	e.Feed([]string{"2023", "X", "36,400", "11.1"})

	if got := e.Feed([]string{"1/ Revised", "a", "b", "c"}); got != Emit {
		t.Errorf("footnote-style row = %v, want Emit", got)
	}
}

func TestExtractor_ZeroSkipCountEmitsImmediately(t *testing.T) {
	t.Parallel()

	e := NewExtractor(HeaderRule{Indicator: "Year", Match: MatchFirstCell}, 0, 0, 2, nil)
	if got := e.Feed([]string{"Year", "Jan"}); got != Skip {
		t.Fatalf("header row = %v, want Skip", got)
	}
	if got := e.Feed([]string{"1985", "6.1"}); got != Emit {
		t.Errorf("first data row = %v, want Emit", got)
	}
}
