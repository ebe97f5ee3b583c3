package parser_test

import (
	"testing"

	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/parser"
)

func newTimelineExtractor() *parser.TimelineExtractor {
	return parser.NewTimelineExtractor(parser.DefaultVocabulary())
}

func TestExtractTimelineFromMonthRow(t *testing.T) {
	rows := [][]string{
		{"Activity", "JAN", "JAN", "FEB", "FEB"},
		{"", "WK1", "WK2", "WK3", "WK4"},
	}

	trace := model.NewTrace()
	timeline := newTimelineExtractor().Extract(rows, trace)

	if len(timeline) == 0 {
		t.Fatal("timeline empty, want columns for month header with >=3 tokens")
	}
	if got, want := len(timeline), 4; got != want {
		t.Fatalf("len(timeline)=%d, want %d", got, want)
	}
	if got, want := trace.MonthHeaderRow, 0; got != want {
		t.Fatalf("MonthHeaderRow=%d, want %d", got, want)
	}
	if got, want := trace.FirstTimelineColumn, 1; got != want {
		t.Fatalf("FirstTimelineColumn=%d, want %d", got, want)
	}

	wantMonths := []string{"JAN", "JAN", "FEB", "FEB"}
	wantLabels := []string{"WK1", "WK2", "WK3", "WK4"}
	for i, tc := range timeline {
		if tc.Index != i {
			t.Errorf("column %d: Index=%d, want %d", i, tc.Index, i)
		}
		if got, want := tc.SourceColumn, i+1; got != want {
			t.Errorf("column %d: SourceColumn=%d, want %d", i, got, want)
		}
		if tc.Month != wantMonths[i] {
			t.Errorf("column %d: Month=%q, want %q", i, tc.Month, wantMonths[i])
		}
		if tc.Label != wantLabels[i] {
			t.Errorf("column %d: Label=%q, want %q", i, tc.Label, wantLabels[i])
		}
	}
}

func TestExtractTimelineCarriesCurrentMonth(t *testing.T) {
	rows := [][]string{
		{"JAN", "", "FEB", "", "MAR", ""},
	}

	timeline := newTimelineExtractor().Extract(rows, model.NewTrace())

	if got, want := len(timeline), 6; got != want {
		t.Fatalf("len(timeline)=%d, want %d", got, want)
	}
	wantMonths := []string{"JAN", "JAN", "FEB", "FEB", "MAR", "MAR"}
	for i, tc := range timeline {
		if tc.Month != wantMonths[i] {
			t.Errorf("column %d: Month=%q, want %q", i, tc.Month, wantMonths[i])
		}
	}
}

func TestExtractTimelineSynthesizesLabelsAndRanges(t *testing.T) {
	rows := [][]string{
		{"JAN", "FEB", "MAR"},
	}

	timeline := newTimelineExtractor().Extract(rows, model.NewTrace())

	if got, want := len(timeline), 3; got != want {
		t.Fatalf("len(timeline)=%d, want %d", got, want)
	}
	if got, want := timeline[0].Label, "WK1"; got != want {
		t.Fatalf("Label=%q, want %q", got, want)
	}
	if got, want := timeline[0].DateRange, "1-7"; got != want {
		t.Fatalf("DateRange=%q, want %q", got, want)
	}
	if got, want := timeline[2].DateRange, "15-21"; got != want {
		t.Fatalf("DateRange=%q, want %q", got, want)
	}
}

func TestExtractTimelineUsesDateRangeRow(t *testing.T) {
	rows := [][]string{
		{"", "JAN", "FEB", "MAR"},
		{"", "1-7", "8-14", "15-21"},
	}

	trace := model.NewTrace()
	timeline := newTimelineExtractor().Extract(rows, trace)

	if got, want := trace.DateRangeRow, 1; got != want {
		t.Fatalf("DateRangeRow=%d, want %d", got, want)
	}
	if got, want := timeline[1].DateRange, "8-14"; got != want {
		t.Fatalf("DateRange=%q, want %q", got, want)
	}
}

func TestExtractTimelineNoMonthHeader(t *testing.T) {
	rows := [][]string{
		{"Activity", "foo", "bar"},
		{"Planting", "", ""},
	}

	trace := model.NewTrace()
	timeline := newTimelineExtractor().Extract(rows, trace)

	if len(timeline) != 0 {
		t.Fatalf("len(timeline)=%d, want 0 when no month header row", len(timeline))
	}
	if got, want := trace.MonthHeaderRow, -1; got != want {
		t.Fatalf("MonthHeaderRow=%d, want %d", got, want)
	}
}

// Columns mapped from the source must keep strictly increasing source
// positions and contiguous indices from 0.
func TestExtractTimelineInvariants(t *testing.T) {
	rows := [][]string{
		{"Stage", "x", "JAN", "JAN", "FEB", "FEB", "MAR"},
	}

	timeline := newTimelineExtractor().Extract(rows, model.NewTrace())

	last := -1
	for i, tc := range timeline {
		if tc.Index != i {
			t.Fatalf("Index not contiguous at %d: got %d", i, tc.Index)
		}
		if tc.SourceColumn <= last {
			t.Fatalf("SourceColumn not strictly increasing at index %d", i)
		}
		last = tc.SourceColumn
	}
}
