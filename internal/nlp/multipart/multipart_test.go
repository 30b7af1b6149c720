package multipart

import (
	"math"
	"slices"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		split  []string
		points int
		conf   float64
	}{
		{name: "and", in: "Call mom and email John", split: []string{"Call mom", "Email John"}, points: 1, conf: 0.85},
		{name: "comma before and is trimmed", in: "Call mom, and email John;", split: []string{"Call mom", "Email John"}, points: 1, conf: 0.85},
		{name: "and then recorded once", in: "Write report and then send to client", split: []string{"Write report", "Send to client"}, points: 1, conf: 0.85},
		{name: "and also recorded once", in: "Review PR and also update docs", split: []string{"Review PR", "Update docs"}, points: 1, conf: 0.85},
		{name: "then", in: "Draft email then schedule meeting", split: []string{"Draft email", "Schedule meeting"}, points: 1, conf: 0.9},
		{name: "comma also", in: "Buy groceries, also pay bills", split: []string{"Buy groceries", "Pay bills"}, points: 1, conf: 0.85},
		{name: "semicolons", in: "Call John; email Sarah; book meeting", split: []string{"Call John", "Email Sarah", "Book meeting"}, points: 2, conf: 0.9},
		{name: "dash", in: "pick up kids - water plants", split: []string{"Pick up kids", "Water plants"}, points: 1, conf: 0.5},
		{name: "single verb is low confidence", in: "Buy bread and butter", split: []string{"Buy bread", "Butter"}, points: 1, conf: 0.5},
		{name: "lowercase is capitalized", in: "call mom and email dad", split: []string{"Call mom", "Email dad"}, points: 1, conf: 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.in)
			if !got.IsMultiPart {
				t.Fatalf("Detect(%q) not multi-part", tt.in)
			}
			if !slices.Equal(got.SuggestedSplit, tt.split) {
				t.Errorf("split = %q, want %q", got.SuggestedSplit, tt.split)
			}
			if len(got.SplitPoints) != tt.points {
				t.Errorf("split points = %+v, want %d", got.SplitPoints, tt.points)
			}
			if !near(got.Confidence, tt.conf) {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.conf)
			}
		})
	}
}

func TestDetectSinglePart(t *testing.T) {
	for _, in := range []string{"", "   ", "Buy groceries", "Do a and b", "and then"} {
		got := Detect(in)
		if got.IsMultiPart || got.Confidence != 0 || len(got.SuggestedSplit) != 0 {
			t.Errorf("Detect(%q) = %+v, want single part", in, got)
		}
	}
}

func TestMoreVerbsNeverLowerConfidence(t *testing.T) {
	two := Detect("Email John and call Sarah")
	three := Detect("Email John and call Sarah and schedule meeting")
	if three.Confidence < two.Confidence {
		t.Errorf("three verbs %v < two verbs %v", three.Confidence, two.Confidence)
	}
	if three.Confidence > 1 {
		t.Errorf("confidence %v out of range", three.Confidence)
	}
}

func TestCountActionVerbs(t *testing.T) {
	if got := CountActionVerbs("Call Bob, call Ann and EMAIL Joe"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestWouldSplitCleanly(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		sep       string
		wantValid bool
		wantParts []string
	}{
		{name: "valid", in: "Call mom and email John", sep: "and", wantValid: true, wantParts: []string{"Call mom", "email John"}},
		{name: "unknown separator", in: "Call mom xyz email John", sep: "xyz"},
		{name: "too short", in: "a and b", sep: "and", wantParts: []string{}},
		{name: "edge punctuation trimmed", in: "Call mom, and email John.", sep: "and", wantValid: true, wantParts: []string{"Call mom", "email John."}},
		{name: "short parts dropped", in: "Call mom and a and email John", sep: "and", wantValid: true, wantParts: []string{"Call mom", "email John"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, parts := WouldSplitCleanly(tt.in, tt.sep)
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", valid, tt.wantValid)
			}
			if len(parts) != len(tt.wantParts) || (len(parts) > 0 && !slices.Equal(parts, tt.wantParts)) {
				t.Errorf("parts = %q, want %q", parts, tt.wantParts)
			}
		})
	}
}
