package urgency

import (
	"testing"
	"time"

	"task-intent/internal/model"
)

// Monday, January 12, 2026
var now = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantPriority model.Priority
		wantDeadline *time.Time
		wantType     DeadlineType
		wantPhrase   string
		wantConf     float64
	}{
		{
			name:         "asap is immediate",
			in:           "send the deck as soon as possible",
			wantPriority: model.PriorityP1,
			wantDeadline: &now,
			wantType:     DeadlineHard,
			wantPhrase:   "as soon as possible",
			wantConf:     0.9,
		},
		{
			name:         "urgent has no deadline",
			in:           "urgent call with bank",
			wantPriority: model.PriorityP1,
			wantPhrase:   "urgent",
			wantConf:     0.85,
		},
		{
			name:         "by eod",
			in:           "finish report by end of day",
			wantPriority: model.PriorityP2,
			wantDeadline: ptr(at(2026, 1, 12, 17, 0)),
			wantType:     DeadlineHard,
			wantPhrase:   "by end of day",
			wantConf:     0.9,
		},
		{
			name:         "by noon",
			in:           "submit form before lunch",
			wantPriority: model.PriorityP2,
			wantDeadline: ptr(at(2026, 1, 12, 12, 0)),
			wantType:     DeadlineHard,
			wantConf:     0.9,
			wantPhrase:   "before lunch",
		},
		{
			name:         "by morning is tomorrow at nine",
			in:           "review PR first thing tomorrow morning",
			wantPriority: model.PriorityP2,
			wantDeadline: ptr(at(2026, 1, 13, 9, 0)),
			wantType:     DeadlineHard,
			wantConf:     0.85,
			wantPhrase:   "first thing tomorrow morning",
		},
		{
			name:         "by tonight has no priority",
			in:           "pack bags by tonight",
			wantDeadline: ptr(at(2026, 1, 12, 21, 0)),
			wantType:     DeadlineHard,
			wantConf:     0.85,
			wantPhrase:   "by tonight",
		},
		{
			name:         "by weekday resolves to the next occurrence",
			in:           "file taxes by friday",
			wantDeadline: ptr(at(2026, 1, 16, 17, 0)),
			wantType:     DeadlineHard,
			wantConf:     0.8,
			wantPhrase:   "by friday",
		},
		{
			name:         "by same weekday skips a week",
			in:           "due on monday: slides",
			wantDeadline: ptr(at(2026, 1, 19, 17, 0)),
			wantType:     DeadlineHard,
			wantConf:     0.8,
			wantPhrase:   "due on monday",
		},
		{
			name:         "end of week",
			in:           "ship it by end of the week",
			wantDeadline: ptr(time.Date(2026, 1, 18, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)),
			wantType:     DeadlineHard,
			wantConf:     0.85,
			wantPhrase:   "by end of the week",
		},
		{
			name:         "soft deadline",
			in:           "clean garage next week",
			wantPriority: model.PriorityP3,
			wantDeadline: ptr(time.Date(2026, 1, 25, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)),
			wantType:     DeadlineSoft,
			wantConf:     0.7,
			wantPhrase:   "next week",
		},
		{
			name:         "no rush beats eventually",
			in:           "eventually read this, no rush",
			wantPriority: model.PriorityP4,
			wantConf:     0.8,
			wantPhrase:   "no rush",
		},
		{
			name:         "higher confidence wins over earlier",
			in:           "important: reply asap",
			wantPriority: model.PriorityP1,
			wantDeadline: &now,
			wantType:     DeadlineHard,
			wantConf:     0.9,
			wantPhrase:   "asap",
		},
		{
			name:         "equal confidence earliest wins",
			in:           "soon, whenever, later",
			wantPriority: model.PriorityP4,
			wantConf:     0.8,
			wantPhrase:   "whenever",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in, now)
			if !got.HasUrgency {
				t.Fatalf("Extract(%q) found no urgency", tt.in)
			}
			if got.ImplicitPriority != tt.wantPriority {
				t.Errorf("priority = %q, want %q", got.ImplicitPriority, tt.wantPriority)
			}
			if got.MatchedPhrase != tt.wantPhrase {
				t.Errorf("phrase = %q, want %q", got.MatchedPhrase, tt.wantPhrase)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			switch {
			case tt.wantDeadline == nil && got.Deadline != nil:
				t.Errorf("unexpected deadline %v", got.Deadline)
			case tt.wantDeadline != nil && (got.Deadline == nil || !got.Deadline.Equal(*tt.wantDeadline)):
				t.Errorf("deadline = %v, want %v", got.Deadline, tt.wantDeadline)
			}
			if got.DeadlineType != tt.wantType {
				t.Errorf("deadline type = %q, want %q", got.DeadlineType, tt.wantType)
			}
		})
	}
}

func TestExtractNoMatch(t *testing.T) {
	for _, in := range []string{"", "   ", "buy milk", "priority 2 task"} {
		if got := Extract(in, now); got.HasUrgency {
			t.Errorf("Extract(%q) = %+v, want no urgency", in, got)
		}
	}
}

func TestExtractIgnoresMentions(t *testing.T) {
	for _, in := range []string{"review PR @urgent", "file it under #important", "@asap notes"} {
		if got := Extract(in, now); got.HasUrgency {
			t.Errorf("Extract(%q) = %+v, want no urgency", in, got)
		}
	}
	if got := Extract("urgent: review PR @important", now); got.ImplicitPriority != model.PriorityP1 || got.MatchedPhrase != "urgent" {
		t.Errorf("got %+v", got)
	}
}

func TestExtractSpans(t *testing.T) {
	got := Extract("urgent: pay rent by friday", now)
	if len(got.Spans) != 2 {
		t.Fatalf("expected 2 spans, got %+v", got.Spans)
	}
	if got.Spans[0].Type != SpanUrgency || got.Spans[1].Type != SpanDeadline {
		t.Errorf("unexpected span types %+v", got.Spans)
	}
	if got.Spans[0].Start != 0 || got.Spans[0].End != 6 {
		t.Errorf("unexpected first span %+v", got.Spans[0])
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"finish report by end of day", "finish report"},
		{"urgent call with bank", "call with bank"},
		{"clean garage next week no rush", "clean garage"},
		{"buy milk", "buy milk"},
		{"fix bug priority 1", "fix bug priority 1"},
		{"this is low priority", "this is"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Remove(tt.in); got != tt.want {
				t.Errorf("Remove(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfidenceRange(t *testing.T) {
	for _, r := range rules {
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("rule %s confidence %v out of range", r.ID, r.Confidence)
		}
	}
}

func ptr(t time.Time) *time.Time { return &t }
