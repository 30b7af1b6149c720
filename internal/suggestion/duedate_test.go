package suggestion

import (
	"strings"
	"testing"
	"time"

	"task-intent/pkg/datemath"
)

// Thursday, January 22, 2026
var thursday = time.Date(2026, 1, 22, 9, 0, 0, 0, time.UTC)

func newEngine() *Engine {
	return New(datemath.FixedClock{At: thursday})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSuggestDueDate(t *testing.T) {
	tests := []struct {
		in           string
		want         time.Time
		wantPattern  string
		wantDeadline bool
	}{
		{"Call back today", day(2026, 1, 22), "today", false},
		{"Task tonight", day(2026, 1, 22), "today", false},
		{"Buy milk tomorrow", day(2026, 1, 23), "tomorrow", false},
		{"Dentist day after tomorrow", day(2026, 1, 24), "day-after-tomorrow", false},
		{"urgent: fix production bug", day(2026, 1, 22), "urgency-today", true},
		{"Reply asap", day(2026, 1, 22), "urgency-today", true},
		{"Report in 3 days", day(2026, 1, 25), "relative-in", false},
		{"Do this in 2 weeks", day(2026, 2, 5), "relative-in", false},
		{"Renew in 1 month", day(2026, 2, 22), "relative-in", false},
		{"Finish this week", day(2026, 1, 23), "this-week", false},
		{"Plan next week", day(2026, 1, 29), "next-week", false},
		{"Close books this month", day(2026, 1, 31), "this-month", false},
		{"Kickoff next month", day(2026, 2, 22), "next-month", false},
		{"Dentist on monday", day(2026, 1, 26), "weekday-this", false},
		{"Submit by friday", day(2026, 1, 23), "weekday-this", false},
		{"Sync next tuesday", day(2026, 1, 27), "weekday-next", false},
		{"Same weekday thursday", day(2026, 1, 29), "weekday-this", false},
		{"deadline friday", day(2026, 1, 23), "explicit-deadline", true},
		{"Report due by monday", day(2026, 1, 26), "explicit-deadline", true},
		{"Ship eod", day(2026, 1, 22), "end-of-day", true},
		{"Wrap up eow", day(2026, 1, 23), "end-of-week", true},
		{"Invoices eom", day(2026, 1, 31), "end-of-month", true},
		{"Party jan 25", day(2026, 1, 25), "month-day", false},
		{"Renewal january 15th", day(2027, 1, 15), "month-day", false},
		{"Trip 15 feb", day(2026, 2, 15), "day-month", false},
		{"Launch 2026-02-14", day(2026, 2, 14), "date-iso", false},
		{"Dinner 1/25", day(2026, 1, 25), "date-slash-us", false},
		{"Dinner 1/5", day(2027, 1, 5), "date-slash-us", false},
		{"Gift 12/25/27", day(2027, 12, 25), "date-slash-us", false},
		{"Hike this weekend", day(2026, 1, 24), "this-weekend", false},
		{"Hike next weekend", day(2026, 1, 31), "next-weekend", false},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := e.SuggestDueDate(tt.in)
			if !ok {
				t.Fatal("expected a suggestion")
			}
			if !got.Value.Date.Equal(tt.want) {
				t.Errorf("date = %v, want %v", got.Value.Date, tt.want)
			}
			if got.Value.MatchedPattern != tt.wantPattern {
				t.Errorf("pattern = %q, want %q", got.Value.MatchedPattern, tt.wantPattern)
			}
			if got.Value.IsDeadline != tt.wantDeadline {
				t.Errorf("deadline = %v, want %v", got.Value.IsDeadline, tt.wantDeadline)
			}
			if got.Type != TypeDueDate || got.Source != SourceLocal || got.ID == "" {
				t.Errorf("envelope = %+v", got.Suggestion)
			}
			if !got.CreatedAt.Equal(thursday) {
				t.Errorf("created at = %v", got.CreatedAt)
			}
		})
	}
}

func TestSuggestDueDateUrgency(t *testing.T) {
	got, ok := newEngine().SuggestDueDate("urgent: fix production bug")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got.Value.UrgencyScore != 1.0 || !got.Value.IsDeadline {
		t.Errorf("value = %+v", got.Value)
	}
	if got.Confidence != 0.9 {
		t.Errorf("confidence = %v", got.Confidence)
	}
}

func TestSuggestDueDateNone(t *testing.T) {
	e := newEngine()
	for _, in := range []string{"", "   ", "Clean the garage", "Meet 2/30", "Call 13/45"} {
		if got, ok := e.SuggestDueDate(in); ok {
			t.Errorf("SuggestDueDate(%q) = %+v, want none", in, got.Value)
		}
	}
}

func TestSuggestDueDateReasoning(t *testing.T) {
	got, _ := newEngine().SuggestDueDate("Buy milk tomorrow")
	want := `Detected "tomorrow" keyword, due Friday, Jan 23`
	if got.Reasoning != want {
		t.Errorf("reasoning = %q, want %q", got.Reasoning, want)
	}
}

func TestSuggestDueDateIDsAreUnique(t *testing.T) {
	e := newEngine()
	a, _ := e.SuggestDueDate("today")
	b, _ := e.SuggestDueDate("today")
	if a.ID == b.ID {
		t.Errorf("duplicate id %q", a.ID)
	}
}

func TestAllDueDateMatches(t *testing.T) {
	e := newEngine()
	ms := e.AllDueDateMatches("today, tomorrow or next week")
	if len(ms) < 3 {
		t.Fatalf("got %d matches", len(ms))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].Confidence > ms[i-1].Confidence {
			t.Errorf("not sorted at %d: %v > %v", i, ms[i].Confidence, ms[i-1].Confidence)
		}
	}
	if got := e.AllDueDateMatches("nothing here"); len(got) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestFlexibleDate(t *testing.T) {
	today := day(2026, 1, 22)
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"End of Month", day(2026, 1, 31), true},
		{" eow ", day(2026, 1, 23), true},
		{"march 3", day(2026, 3, 3), true},
		{"whenever", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			got, ok := flexibleDate(tt.in, today)
			if ok != tt.ok || (ok && !datemath.SameDay(got, tt.want)) {
				t.Errorf("flexibleDate = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
