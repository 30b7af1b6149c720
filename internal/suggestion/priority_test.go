package suggestion

import (
	"slices"
	"testing"

	"task-intent/internal/model"
)

func TestSuggestPriority(t *testing.T) {
	tests := []struct {
		in         string
		want       model.Priority
		wantConf   float64
		wantFactor string
	}{
		{"p1 fix login", model.PriorityP1, 0.98, "Explicit P1 priority marker"},
		{"P2 tidy desk", model.PriorityP2, 0.98, "Explicit P2 priority marker"},
		{"priority 3 item", model.PriorityP3, 0.98, "Explicit P3 priority marker"},
		{"p4 cleanup", model.PriorityP4, 0.98, "Explicit P4 priority marker"},
		{"fire !!!", model.PriorityP1, 0.98, "Explicit P1 priority marker"},
		{"Deploy !!", model.PriorityP2, 0.98, "Explicit P2 priority marker"},
		{"call back ! now", model.PriorityP3, 0.7, "Single exclamation mark detected"},
		{"critical bug", model.PriorityP1, 0.9, "Critical urgency keyword detected"},
		{"production bug in payment flow", model.PriorityP1, 0.92, "Production issue detected"},
		{"security vulnerability in login", model.PriorityP1, 0.95, "Security concern detected"},
		{"waiting on legal", model.PriorityP1, 0.88, "Task is blocking other work"},
		{"prepare the demo", model.PriorityP2, 0.78, "Meeting/presentation related task"},
		{"update docs", model.PriorityP3, 0.65, "Documentation/maintenance task"},
		{"someday learn piano", model.PriorityP4, 0.88, "Low priority indicator"},
		{"maybe try the new cafe", model.PriorityP4, 0.75, "Optional/tentative task"},
		{"spike on caching", model.PriorityP4, 0.7, "Research/exploration task"},
	}

	e := newEngine()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := e.SuggestPriority(tt.in)
			if !ok {
				t.Fatal("expected a suggestion")
			}
			if got.Value.Priority != tt.want {
				t.Errorf("priority = %q, want %q", got.Value.Priority, tt.want)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if !slices.Contains(got.Value.Factors, tt.wantFactor) {
				t.Errorf("factors = %q, want %q", got.Value.Factors, tt.wantFactor)
			}
			if got.Type != TypePriority {
				t.Errorf("type = %q", got.Type)
			}
		})
	}
}

func TestSuggestPriorityTieBreaksByRank(t *testing.T) {
	got, ok := newEngine().SuggestPriority("low priority blocker")
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got.Value.Priority != model.PriorityP1 {
		t.Errorf("priority = %q, want p1", got.Value.Priority)
	}
	want := []string{"Task is blocking other work", "Low priority indicator", "Importance keyword detected"}
	if !slices.Equal(got.Value.Factors, want) {
		t.Errorf("factors = %q, want %q", got.Value.Factors, want)
	}
}

func TestSuggestPriorityFactorsCapped(t *testing.T) {
	got, _ := newEngine().SuggestPriority("urgent critical outage, security breach is blocking everyone today")
	if len(got.Value.Factors) != maxFactors {
		t.Errorf("factors = %q", got.Value.Factors)
	}
}

func TestSuggestPriorityReasoning(t *testing.T) {
	got, _ := newEngine().SuggestPriority("production bug in payment flow")
	if want := "Suggested P1 (Urgent): Production issue detected"; got.Reasoning != want {
		t.Errorf("reasoning = %q, want %q", got.Reasoning, want)
	}
}

func TestSuggestPriorityNone(t *testing.T) {
	e := newEngine()
	for _, in := range []string{"", "  ", "walk the dog"} {
		if got, ok := e.SuggestPriority(in); ok {
			t.Errorf("SuggestPriority(%q) = %+v, want none", in, got.Value)
		}
	}
}

func TestAllPriorityMatches(t *testing.T) {
	ms := newEngine().AllPriorityMatches("urgent: client demo, then research")
	if len(ms) < 4 {
		t.Fatalf("got %d matches", len(ms))
	}
	if ms[0].ID != "critical-urgency" {
		t.Errorf("first = %q", ms[0].ID)
	}
	for i := 1; i < len(ms); i++ {
		if ms[i].Confidence > ms[i-1].Confidence {
			t.Errorf("not sorted at %d", i)
		}
	}
}
