package entity

import (
	"cmp"
	"slices"
	"strings"

	"task-intent/internal/model"
)

// LabelMatch is a caller label that task text points at.
type LabelMatch struct {
	LabelID    string  `json:"label_id"`
	LabelName  string  `json:"label_name"`
	Confidence float64 `json:"confidence"`
}

const (
	labelMentionConf = 0.9
	labelKeywordConf = 0.6
)

// labelKeywords maps well-known label names to words that imply them.
var labelKeywords = map[string][]string{
	"urgent":   {"urgent", "asap", "emergency", "immediately", "critical"},
	"work":     {"work", "office", "meeting", "client", "project", "deadline", "presentation"},
	"personal": {"personal", "home", "family", "self", "private"},
	"health":   {"health", "doctor", "gym", "exercise", "medicine", "appointment"},
	"finance":  {"finance", "money", "pay", "bill", "invoice", "budget", "expense"},
	"shopping": {"buy", "shop", "purchase", "order", "groceries"},
	"email":    {"email", "reply", "send", "respond", "message"},
	"call":     {"call", "phone", "ring", "contact"},
	"meeting":  {"meeting", "meet", "sync", "standup", "review"},
}

// SuggestLabels resolves caller labels from text without any @mention: a label
// named in the text scores 0.9, one implied by a related keyword 0.6.
// Results are ordered by confidence, then by the caller's label order.
func SuggestLabels(text string, labels []model.Label) []LabelMatch {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var out []LabelMatch
	for _, l := range labels {
		name := strings.ToLower(strings.TrimSpace(l.Name))
		if name == "" {
			continue
		}

		conf := 0.0
		if strings.Contains(lower, name) {
			conf = labelMentionConf
		} else if slices.ContainsFunc(labelKeywords[name], func(k string) bool { return strings.Contains(lower, k) }) {
			conf = labelKeywordConf
		}
		if conf > 0 {
			out = append(out, LabelMatch{LabelID: l.ID, LabelName: l.Name, Confidence: conf})
		}
	}

	slices.SortStableFunc(out, func(a, b LabelMatch) int { return cmp.Compare(b.Confidence, a.Confidence) })
	return out
}
