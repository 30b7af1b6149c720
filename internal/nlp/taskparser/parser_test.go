package taskparser

import (
	"math"
	"slices"
	"testing"
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/action"
	"task-intent/internal/nlp/urgency"
)

// Monday, January 12, 2026, mid-morning
var now = time.Date(2026, 1, 12, 10, 30, 0, 0, time.UTC)

var ctx = Context{
	Projects: []model.Project{
		{ID: "p1", Name: "Work"},
		{ID: "p2", Name: "Personal"},
		{ID: "p3", Name: "Workshop"},
	},
	Labels: []model.Label{
		{ID: "l1", Name: "urgent"},
		{ID: "l2", Name: "important"},
	},
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func TestParseScenarios(t *testing.T) {
	t.Run("date and action", func(t *testing.T) {
		got := Parse("Buy groceries tomorrow", ctx, now)
		if got.Title != "Buy groceries" {
			t.Errorf("title = %q", got.Title)
		}
		if got.DueDate == nil || !got.DueDate.Equal(day(2026, 1, 13)) {
			t.Errorf("due date = %v", got.DueDate)
		}
		if got.ActionType != action.TypeBuy {
			t.Errorf("action = %q", got.ActionType)
		}
		if !near(got.Confidence, 0.95) {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("time only", func(t *testing.T) {
		got := Parse("Meeting at 3pm", ctx, now)
		if got.Title != "Meeting" || got.DueTime != "15:00" || got.DueDate != nil {
			t.Errorf("got title %q time %q date %v", got.Title, got.DueTime, got.DueDate)
		}
		if !near(got.Confidence, 0.7) {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("everything at once", func(t *testing.T) {
		got := Parse("Meet John for coffee tomorrow at 3pm #work @important p2", ctx, now)
		if got.Title != "Meet John for coffee" {
			t.Errorf("title = %q", got.Title)
		}
		if got.DueDate == nil || !got.DueDate.Equal(time.Date(2026, 1, 13, 15, 0, 0, 0, time.UTC)) {
			t.Errorf("due date = %v", got.DueDate)
		}
		if got.DueTime != "15:00" {
			t.Errorf("due time = %q", got.DueTime)
		}
		if got.ProjectID != "p1" || got.ProjectName != "Work" {
			t.Errorf("project = %q %q", got.ProjectID, got.ProjectName)
		}
		if !slices.Contains(got.LabelIDs, "l2") {
			t.Errorf("labels = %v", got.LabelIDs)
		}
		if got.Priority != model.PriorityP2 {
			t.Errorf("priority = %q", got.Priority)
		}
		if !near(got.Confidence, (0.95+0.95+0.9+0.9)/4) {
			t.Errorf("confidence = %v", got.Confidence)
		}
	})

	t.Run("multi part", func(t *testing.T) {
		got := Parse("Call mom and email John", ctx, now)
		if !got.IsMultiPart {
			t.Fatal("expected multi-part")
		}
		if want := []string{"Call mom", "Email John"}; !slices.Equal(got.SuggestedSubtasks, want) {
			t.Errorf("subtasks = %q, want %q", got.SuggestedSubtasks, want)
		}
		if got.Title != "Call mom and email John" {
			t.Errorf("title = %q", got.Title)
		}
	})
}

func TestParsePriorityPrecedence(t *testing.T) {
	tests := []struct {
		in           string
		wantExplicit model.Priority
		wantImplicit model.Priority
		wantTitle    string
	}{
		{"urgent p2 task", model.PriorityP2, model.PriorityP1, "Task"},
		{"fix the sink soon", model.PriorityNone, model.PriorityP3, "Fix the sink"},
		{"someday learn piano", model.PriorityP4, model.PriorityP4, "Learn piano"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in, ctx, now)
			if got.Priority != tt.wantExplicit {
				t.Errorf("priority = %q, want %q", got.Priority, tt.wantExplicit)
			}
			if got.ImplicitPriority != tt.wantImplicit {
				t.Errorf("implicit = %q, want %q", got.ImplicitPriority, tt.wantImplicit)
			}
			want := tt.wantExplicit
			if want == model.PriorityNone {
				want = tt.wantImplicit
			}
			if got.EffectivePriority() != want {
				t.Errorf("effective = %q, want %q", got.EffectivePriority(), want)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestParseUrgencyDeadlineWinsOverDate(t *testing.T) {
	got := Parse("finish report by friday at 2pm", ctx, now)
	want := time.Date(2026, 1, 16, 14, 0, 0, 0, time.UTC)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Fatalf("due date = %v, want %v", got.DueDate, want)
	}
	if got.DeadlineType != urgency.DeadlineHard {
		t.Errorf("deadline type = %q", got.DeadlineType)
	}
	if got.DueTime != "14:00" {
		t.Errorf("due time = %q", got.DueTime)
	}
	if got.Title != "Finish report" {
		t.Errorf("title = %q", got.Title)
	}
	if got.ActionType != action.TypeComplete {
		t.Errorf("action = %q", got.ActionType)
	}
}

func TestParseNormalizes(t *testing.T) {
	got := Parse("mtg w/ mgr tmrw", ctx, now)
	if got.NormalizedText != "meeting with manager tomorrow" {
		t.Errorf("normalized = %q", got.NormalizedText)
	}
	if got.Title != "Meeting with manager" {
		t.Errorf("title = %q", got.Title)
	}
	if got.DueDate == nil || !got.DueDate.Equal(day(2026, 1, 13)) {
		t.Errorf("due date = %v", got.DueDate)
	}
	if len(got.Replacements) != 4 {
		t.Errorf("replacements = %+v", got.Replacements)
	}
	if got.ActionType != action.TypeMeeting {
		t.Errorf("action = %q", got.ActionType)
	}
}

func TestParseDurationOverridesAction(t *testing.T) {
	got := Parse("Write report 2 hours", ctx, now)
	if got.Duration != 120 || got.EstimatedDuration != 120 || got.EstimatedDurationConfidence != 0.9 {
		t.Errorf("duration = %d, estimate = %d (%v)", got.Duration, got.EstimatedDuration, got.EstimatedDurationConfidence)
	}
	if got.ActionType != action.TypeWrite {
		t.Errorf("action = %q", got.ActionType)
	}
	if got.Title != "Write report" {
		t.Errorf("title = %q", got.Title)
	}

	got = Parse("Write report", ctx, now)
	if got.Duration != 0 || got.EstimatedDuration != 60 {
		t.Errorf("duration = %d, estimate = %d", got.Duration, got.EstimatedDuration)
	}
}

func TestParseRecurrenceAndLocation(t *testing.T) {
	got := Parse("Standup meeting daily at Office HQ", ctx, now)
	if got.Recurrence == nil || got.Recurrence.Frequency != model.FrequencyDaily {
		t.Errorf("recurrence = %+v", got.Recurrence)
	}
	if got.Location != "Office HQ" {
		t.Errorf("location = %q", got.Location)
	}
	if got.Title != "Standup meeting" {
		t.Errorf("title = %q", got.Title)
	}
	if !near(got.Confidence, 0.8) {
		t.Errorf("confidence = %v", got.Confidence)
	}
}

func TestParseTitleCleanup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Email Sarah about tomorrow", "Email Sarah"},
		{"- water plants tomorrow -", "Water plants"},
		{"tomorrow", "tomorrow"},
		{"!!!", "!!!"},
		{"pay rent, today", "Pay rent"},
		{"Meeting at noon", "Meeting"},
		{"Call mom in the morning", "Call mom"},
		{"Gym this evening", "Gym"},
		{"Lunch at Cafe Roma tomorrow at noon", "Lunch"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Parse(tt.in, ctx, now); got.Title != tt.want {
				t.Errorf("title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestParseBlank(t *testing.T) {
	got := Parse("   ", ctx, now)
	if got.Title != "" || got.Confidence != 0 || len(got.ParsedFields) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestParseTitleOnlyConfidence(t *testing.T) {
	got := Parse("think about life", ctx, now)
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v", got.Confidence)
	}
}

func TestParseInvariants(t *testing.T) {
	inputs := []string{
		"!!!", "#", "@", "p1", "urgent", ".", "at 3pm", "  x ", "#work @important",
		"日本語のタスク tomorrow", "((unbalanced", "asap asap asap p1 p2 !!! daily 3 hours",
		"Call mom and email John and then book flights; pay rent",
	}
	for _, in := range inputs {
		got := Parse(in, ctx, now)
		if got.Title == "" {
			t.Errorf("Parse(%q) produced an empty title", in)
		}
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Parse(%q) confidence %v out of range", in, got.Confidence)
		}
		for _, f := range got.ParsedFields {
			if f.Confidence < 0 || f.Confidence > 1 {
				t.Errorf("Parse(%q) field %s confidence %v out of range", in, f.Field, f.Confidence)
			}
		}
	}
}
