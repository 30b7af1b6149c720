package suggestion

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/pattern"
)

// PriorityValue is the value of a priority suggestion.
type PriorityValue struct {
	Priority model.Priority `json:"priority"`
	Factors  []string       `json:"factors"`
}

// PrioritySuggestion proposes a priority with the signals behind it.
type PrioritySuggestion struct {
	Suggestion
	Value PriorityValue `json:"value"`
}

const maxFactors = 3

func priorityRule(id, expr string, p model.Priority, conf float64, factor string) pattern.Rule[PriorityValue] {
	v := PriorityValue{Priority: p, Factors: []string{factor}}
	return pattern.Rule[PriorityValue]{
		ID:         id,
		Pattern:    regexp.MustCompile(expr),
		Confidence: conf,
		Extract:    func(pattern.Submatch, time.Time) (PriorityValue, bool) { return v, true },
	}
}

var priorityRules = pattern.Table[PriorityValue]{
	priorityRule("explicit-p1", `(?i)\b(?:p1|priority\s*1)\b|!!!`, model.PriorityP1, 0.98, "Explicit P1 priority marker"),
	priorityRule("explicit-p2", `(?i)\b(?:p2|priority\s*2)\b|!!`, model.PriorityP2, 0.98, "Explicit P2 priority marker"),
	priorityRule("explicit-p3", `(?i)\b(?:p3|priority\s*3)\b`, model.PriorityP3, 0.98, "Explicit P3 priority marker"),
	priorityRule("explicit-p4", `(?i)\b(?:p4|priority\s*4)\b`, model.PriorityP4, 0.98, "Explicit P4 priority marker"),
	priorityRule("single-exclamation", `(?:^|\s)!(?:\s|$)`, model.PriorityP3, 0.7, "Single exclamation mark detected"),
	priorityRule("critical-urgency", `(?i)\b(critical|emergency|crisis|urgent|asap|immediately|right\s+away|show\s*stopper)\b`,
		model.PriorityP1, 0.9, "Critical urgency keyword detected"),
	priorityRule("production-issue", `(?i)\b(production\s+(?:bug|issue|error|down|outage)|outage|downtime|site\s+down|server\s+down|service\s+down)\b`,
		model.PriorityP1, 0.92, "Production issue detected"),
	priorityRule("security-issue", `(?i)\b(security\s+(?:breach|vulnerability|issue|bug|hole)|vulnerability|exploit|data\s+(?:leak|breach))\b`,
		model.PriorityP1, 0.95, "Security concern detected"),
	priorityRule("deadline-pressure", `(?i)\b(eod|end\s+of\s+day|before\s+(?:end\s+of\s+)?day|today|must\s+finish\s+today)\b`,
		model.PriorityP1, 0.85, "Same-day deadline detected"),
	priorityRule("blocker", `(?i)\b(block(?:er|ing|ed)|depends\s+on\s+this|waiting\s+on|unblocks?)\b`,
		model.PriorityP1, 0.88, "Task is blocking other work"),
	priorityRule("important", `(?i)\b(important|high\s+priority|priority|essential|key|vital|crucial)\b`,
		model.PriorityP2, 0.82, "Importance keyword detected"),
	priorityRule("soon-deadline", `(?i)\b(tomorrow|soon|this\s+week|by\s+(?:monday|tuesday|wednesday|thursday|friday))\b`,
		model.PriorityP2, 0.75, "Near-term deadline detected"),
	priorityRule("meeting-prep", `(?i)\b(before\s+(?:the\s+)?meeting|for\s+(?:the\s+)?meeting|meeting\s+prep|presentation|demo|review)\b`,
		model.PriorityP2, 0.78, "Meeting/presentation related task"),
	priorityRule("client-facing", `(?i)\b(client|customer|stakeholder|user\s+reported|user\s+request)\b`,
		model.PriorityP2, 0.8, "Client/customer facing task"),
	priorityRule("standard-task", `(?i)\b(should|need\s+to|needs|required|todo)\b`,
		model.PriorityP3, 0.6, "Standard task indicator"),
	priorityRule("docs-cleanup", `(?i)\b(document(?:ation)?|cleanup?|refactor|improve|optimize|update\s+(?:docs?|readme))\b`,
		model.PriorityP3, 0.65, "Documentation/maintenance task"),
	priorityRule("low-priority", `(?i)\b(low\s+priority|someday|eventually|when\s+(?:i\s+)?have\s+time|nice\s+to\s+have)\b`,
		model.PriorityP4, 0.88, "Low priority indicator"),
	priorityRule("optional", `(?i)\b(maybe|optional|consider|idea|might|could|would\s+be\s+nice)\b`,
		model.PriorityP4, 0.75, "Optional/tentative task"),
	priorityRule("research", `(?i)\b(research|explore|investigate|look\s+into|spike|experiment)\b`,
		model.PriorityP4, 0.7, "Research/exploration task"),
	priorityRule("future-task", `(?i)\b(next\s+month|next\s+quarter|backlog|future|later|long\s+term|stretch\s+goal)\b`,
		model.PriorityP4, 0.8, "Future/backlog task"),
}

func byRank(a, b pattern.Match[PriorityValue]) int {
	return a.Value.Priority.Rank() - b.Value.Priority.Rank()
}

// factors gathers the distinct factors of every match within 90% of the
// winner's confidence. ms must already be sorted.
func factors(ms []pattern.Match[PriorityValue]) []string {
	threshold := ms[0].Confidence * 0.9
	var out []string
	for _, m := range ms {
		if m.Confidence < threshold {
			continue
		}
		for _, f := range m.Value.Factors {
			if !slices.Contains(out, f) {
				out = append(out, f)
			}
		}
	}
	if len(out) > maxFactors {
		out = out[:maxFactors]
	}
	return out
}

func priorityReasoning(p model.Priority, factors []string) string {
	label := p.Label()
	if label == "" {
		label = "No priority"
	}
	if len(factors) == 0 {
		return "Suggested " + label
	}
	return "Suggested " + label + ": " + strings.Join(factors, ", ")
}

// SuggestPriority proposes a priority from the strongest signal in content.
// Equal confidence prefers the more urgent priority.
func (e *Engine) SuggestPriority(content string) (PrioritySuggestion, bool) {
	if strings.TrimSpace(content) == "" {
		return PrioritySuggestion{}, false
	}
	ms := priorityRules.Matches(content, time.Time{})
	if len(ms) == 0 {
		return PrioritySuggestion{}, false
	}
	pattern.Sort(ms, byRank)

	p := ms[0].Value.Priority
	fs := factors(ms)
	return PrioritySuggestion{
		Suggestion: e.envelope(TypePriority, ms[0].Confidence, priorityReasoning(p, fs)),
		Value:      PriorityValue{Priority: p, Factors: fs},
	}, true
}

// AllPriorityMatches lists every priority signal in text, strongest first.
func (e *Engine) AllPriorityMatches(text string) []pattern.Match[PriorityValue] {
	all := priorityRules.All(text, time.Time{})
	pattern.Sort(all, byRank)
	return all
}
