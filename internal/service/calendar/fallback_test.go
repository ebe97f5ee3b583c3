package calendar_test

import (
	"testing"

	"github.com/samankwah/agromet-sub000/internal/model"
	"github.com/samankwah/agromet-sub000/internal/service/calendar"
)

func TestSynthesizeCanonicalCalendar(t *testing.T) {
	trace := model.NewTrace()
	cal := calendar.Synthesize(model.Classification{Type: model.CalendarUnknown}, "classification unknown", trace)

	if got, want := len(cal.Timeline), 28; got != want {
		t.Fatalf("len(timeline)=%d, want %d", got, want)
	}
	if got, want := len(cal.Activities), 9; got != want {
		t.Fatalf("len(activities)=%d, want %d", got, want)
	}
	if got, want := cal.Classification.Type, model.CalendarUnknown; got != want {
		t.Fatalf("classification type=%s, want %s", got, want)
	}
	if got, want := cal.Classification.Commodity, "maize"; got != want {
		t.Fatalf("commodity=%q, want %q", got, want)
	}
	if got, want := trace.FallbackReason, "classification unknown"; got != want {
		t.Fatalf("FallbackReason=%q, want %q", got, want)
	}

	// 7 months of 4 weeks each.
	if got, want := cal.Timeline[0].Month, "JAN"; got != want {
		t.Fatalf("first month=%q, want %q", got, want)
	}
	if got, want := cal.Timeline[27].Month, "JUL"; got != want {
		t.Fatalf("last month=%q, want %q", got, want)
	}
	if got, want := cal.Timeline[4].Month, "FEB"; got != want {
		t.Fatalf("week 5 month=%q, want %q", got, want)
	}

	if got, want := cal.Summary.TotalActivities, 9; got != want {
		t.Fatalf("TotalActivities=%d, want %d", got, want)
	}
	if cal.Summary.ActivePeriodsCount == 0 {
		t.Fatal("ActivePeriodsCount=0, want >0")
	}
}

func TestSynthesizeSchedule(t *testing.T) {
	cal := calendar.Synthesize(model.Classification{Type: model.CalendarUnknown}, "x", nil)

	if got, want := len(cal.Schedule), 9; got != want {
		t.Fatalf("len(schedule)=%d, want %d", got, want)
	}

	for _, act := range cal.Activities {
		periods := cal.Schedule[act.ID]
		if len(periods) == 0 {
			t.Fatalf("activity %q has no active periods", act.Name)
		}
		if act.Color == "" {
			t.Fatalf("activity %q has no canonical color", act.Name)
		}
		for _, p := range periods {
			if !p.Active {
				t.Fatalf("activity %q carries an inactive period", act.Name)
			}
			if p.TimelineIndex < 0 || p.TimelineIndex >= len(cal.Timeline) {
				t.Fatalf("activity %q period index %d out of timeline range", act.Name, p.TimelineIndex)
			}
			if got, want := p.Color, act.Color; got != want {
				t.Fatalf("activity %q period color=%q, want %q", act.Name, got, want)
			}
		}
	}

	// Site selection opens the season, post-harvest closes it.
	first := cal.Activities[0]
	if got := cal.Schedule[first.ID][0].TimelineIndex; got != 0 {
		t.Fatalf("first activity starts at index %d, want 0", got)
	}
	last := cal.Activities[len(cal.Activities)-1]
	lastPeriods := cal.Schedule[last.ID]
	if got := lastPeriods[len(lastPeriods)-1].TimelineIndex; got != 27 {
		t.Fatalf("last activity ends at index %d, want 27", got)
	}
}

func TestSynthesizeKeepsKnownClassification(t *testing.T) {
	cls := model.Classification{Type: model.CalendarSeasonal, Commodity: "rice", Title: "Rice Calendar"}
	cal := calendar.Synthesize(cls, "no timeline detected", nil)

	if got, want := cal.Classification.Commodity, "rice"; got != want {
		t.Fatalf("commodity=%q, want %q", got, want)
	}
	if got, want := cal.Classification.Title, "Rice Calendar"; got != want {
		t.Fatalf("title=%q, want %q", got, want)
	}
}
