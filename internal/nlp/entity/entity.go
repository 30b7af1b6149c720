package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"task-intent/internal/model"
	"task-intent/internal/nlp/pattern"
)

// Entities holds everything Extract recognized. Each *Match field is the
// source text the value came from.
type Entities struct {
	Priority           model.Priority
	PriorityMatch      string
	PriorityConfidence float64

	Project           *model.Project
	ProjectMatch      string
	ProjectConfidence float64

	Labels       []model.Label
	LabelMatches []string

	Duration           int // minutes
	DurationMatch      string
	DurationConfidence float64

	Recurrence           *model.Recurrence
	RecurrenceMatch      string
	RecurrenceConfidence float64

	Location           string
	LocationMatch      string
	LocationConfidence float64

	MatchedTokens []string
}

// LabelNames returns the resolved label names in mention order.
func (e Entities) LabelNames() []string {
	names := make([]string, 0, len(e.Labels))
	for _, l := range e.Labels {
		names = append(names, l.Name)
	}
	return names
}

// LabelIDs returns the resolved label ids in mention order.
func (e Entities) LabelIDs() []string {
	ids := make([]string, 0, len(e.Labels))
	for _, l := range e.Labels {
		ids = append(ids, l.ID)
	}
	return ids
}

const (
	// LabelConfidence is the confidence reported for resolved labels.
	LabelConfidence = 0.9

	hashtagProjectConfidence  = 0.9
	fallbackProjectConfidence = 0.7
)

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

func constant[V any](v V) func(pattern.Submatch, time.Time) (V, bool) {
	return func(pattern.Submatch, time.Time) (V, bool) { return v, true }
}

var priorityRules = pattern.Table[model.Priority]{
	{
		ID:         "numeric",
		Pattern:    re(`\b(?:p|priority\s*)([1-4])\b`),
		Confidence: 0.95,
		Extract: func(s pattern.Submatch, _ time.Time) (model.Priority, bool) {
			return model.Priority("p" + s.Group(1)), true
		},
	},
	{
		ID:         "exclamation",
		Pattern:    re(`(?:^|\s)(!{1,3})`),
		Confidence: 0.9,
		Span:       1,
		Extract: func(s pattern.Submatch, _ time.Time) (model.Priority, bool) {
			if !followedBySpace(s.Text, s.Index[3]) {
				return "", false
			}
			switch len(s.Group(1)) {
			case 3:
				return model.PriorityP1, true
			case 2:
				return model.PriorityP2, true
			}
			return model.PriorityP3, true
		},
	},
	{ID: "p1-words", Pattern: re(`\b(critical|urgent|emergency)\b`), Confidence: 0.8, Extract: constant(model.PriorityP1)},
	{ID: "p2-words", Pattern: re(`\b(high\s*priority|important)\b`), Confidence: 0.8, Extract: constant(model.PriorityP2)},
	{ID: "p3-words", Pattern: re(`\b(medium\s*priority|normal\s*priority)\b`), Confidence: 0.8, Extract: constant(model.PriorityP3)},
	{ID: "p4-words", Pattern: re(`\b(low\s*priority|someday|whenever)\b`), Confidence: 0.8, Extract: constant(model.PriorityP4)},
}.SkipTags()

var durationRules = pattern.Table[int]{
	{
		ID:         "hours",
		Pattern:    re(`\b(\d+(?:\.\d+)?)\s*(?:hr|hour)s?\b`),
		Confidence: 0.9,
		Extract: func(s pattern.Submatch, _ time.Time) (int, bool) {
			h, err := strconv.ParseFloat(s.Group(1), 64)
			if err != nil || h <= 0 || h > 24*7 {
				return 0, false
			}
			return int(h*60 + 0.5), true
		},
	},
	{
		ID:         "minutes",
		Pattern:    re(`\b(\d+)\s*(?:min|minute)s?\b`),
		Confidence: 0.9,
		Extract: func(s pattern.Submatch, _ time.Time) (int, bool) {
			m, err := strconv.Atoi(s.Group(1))
			if err != nil || m <= 0 {
				return 0, false
			}
			return m, true
		},
	},
	{ID: "half-hour", Pattern: re(`\bhalf\s*(?:an?\s*)?hour\b`), Confidence: 0.85, Extract: constant(30)},
	{ID: "an-hour", Pattern: re(`\ban?\s*hour\b`), Confidence: 0.8, Extract: constant(60)},
	{ID: "quick", Pattern: re(`\bquick\b`), Confidence: 0.6, Extract: constant(15)},
	{ID: "short", Pattern: re(`\bshort\b`), Confidence: 0.6, Extract: constant(30)},
	{ID: "long", Pattern: re(`\blong\b`), Confidence: 0.6, Extract: constant(120)},
}

func recurring(f model.Frequency, interval int) func(pattern.Submatch, time.Time) (model.Recurrence, bool) {
	return constant(model.Recurrence{Frequency: f, Interval: interval})
}

var recurrenceRules = pattern.Table[model.Recurrence]{
	{ID: "daily", Pattern: re(`\bdaily\b`), Confidence: 0.9, Extract: recurring(model.FrequencyDaily, 1)},
	{ID: "every-day", Pattern: re(`\bevery\s*day\b`), Confidence: 0.9, Extract: recurring(model.FrequencyDaily, 1)},
	{ID: "weekly", Pattern: re(`\bweekly\b`), Confidence: 0.9, Extract: recurring(model.FrequencyWeekly, 1)},
	{ID: "every-week", Pattern: re(`\bevery\s*week\b`), Confidence: 0.9, Extract: recurring(model.FrequencyWeekly, 1)},
	{ID: "biweekly", Pattern: re(`\bbiweekly\b`), Confidence: 0.9, Extract: recurring(model.FrequencyBiweekly, 2)},
	{ID: "every-2-weeks", Pattern: re(`\bevery\s*2\s*weeks?\b`), Confidence: 0.9, Extract: recurring(model.FrequencyBiweekly, 2)},
	{ID: "every-other-week", Pattern: re(`\bevery\s*other\s*week\b`), Confidence: 0.9, Extract: recurring(model.FrequencyBiweekly, 2)},
	{ID: "monthly", Pattern: re(`\bmonthly\b`), Confidence: 0.9, Extract: recurring(model.FrequencyMonthly, 1)},
	{ID: "every-month", Pattern: re(`\bevery\s*month\b`), Confidence: 0.9, Extract: recurring(model.FrequencyMonthly, 1)},
	{ID: "yearly", Pattern: re(`\byearly\b`), Confidence: 0.9, Extract: recurring(model.FrequencyYearly, 1)},
	{ID: "annually", Pattern: re(`\bann?ually\b`), Confidence: 0.9, Extract: recurring(model.FrequencyYearly, 1)},
	{ID: "every-year", Pattern: re(`\bevery\s*year\b`), Confidence: 0.9, Extract: recurring(model.FrequencyYearly, 1)},
}

// Capitalized-phrase rules are case-sensitive: the capital letter is the signal.
var locationRules = pattern.Table[string]{
	{
		ID:         "location-tag",
		Pattern:    re(`@\s*location:\s*(\S+)`),
		Confidence: 0.7,
		Extract:    func(s pattern.Submatch, _ time.Time) (string, bool) { return s.Group(1), true },
	},
	{ID: "at-place", Pattern: regexp.MustCompile(`\bat\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`), Confidence: 0.7, Extract: place},
	{ID: "in-place", Pattern: regexp.MustCompile(`\bin\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`), Confidence: 0.7, Extract: place},
}

var locationStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true, "my": true, "our": true,
	"pm": true, "am": true, "noon": true, "midnight": true, "midday": true,
	"morning": true, "afternoon": true, "evening": true, "tonight": true,
	"today": true, "tomorrow": true, "yesterday": true, "least": true, "once": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true, "friday": true, "saturday": true, "sunday": true,
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true, "jul": true, "aug": true,
	"sep": true, "sept": true, "oct": true, "nov": true, "dec": true,
}

func place(s pattern.Submatch, _ time.Time) (string, bool) {
	phrase := s.Group(1)
	first, _, _ := strings.Cut(phrase, " ")
	if locationStopWords[strings.ToLower(first)] {
		return "", false
	}
	return phrase, true
}

var (
	hashtagPattern = regexp.MustCompile(`#(\w+)`)
	mentionPattern = regexp.MustCompile(`@(\w+)`)
	// a token-leading sigil, including a bare "#" or "@" left behind by other removals
	sigilPattern = regexp.MustCompile(`(?:^|\s)([#@]\w*)`)
)

// Extract recognizes explicit priority, project, labels, duration,
// recurrence and location in text. projects and labels may be empty.
func Extract(text string, projects []model.Project, labels []model.Label) Entities {
	var e Entities
	if strings.TrimSpace(text) == "" {
		return e
	}

	if m, ok := priorityRules.Best(text, time.Time{}, byRank); ok {
		e.Priority, e.PriorityMatch, e.PriorityConfidence = m.Value, m.Text, m.Confidence
		e.MatchedTokens = append(e.MatchedTokens, m.Text)
	}

	extractProject(&e, text, projects)
	extractLabels(&e, text, labels)

	if m, ok := durationRules.Best(text, time.Time{}, nil); ok {
		e.Duration, e.DurationMatch, e.DurationConfidence = m.Value, m.Text, m.Confidence
		e.MatchedTokens = append(e.MatchedTokens, m.Text)
	}

	if m, ok := recurrenceRules.Best(text, time.Time{}, nil); ok {
		r := m.Value
		e.Recurrence, e.RecurrenceMatch, e.RecurrenceConfidence = &r, m.Text, m.Confidence
		e.MatchedTokens = append(e.MatchedTokens, m.Text)
	}

	if m, ok := locationRules.First(text, time.Time{}); ok {
		e.Location, e.LocationMatch, e.LocationConfidence = m.Value, m.Text, m.Confidence
		e.MatchedTokens = append(e.MatchedTokens, m.Text)
	}

	return e
}

func extractProject(e *Entities, text string, projects []model.Project) {
	if len(projects) == 0 {
		return
	}

	for _, m := range hashtagPattern.FindAllStringSubmatch(text, -1) {
		if p, ok := model.FindProject(projects, m[1]); ok {
			e.Project, e.ProjectMatch, e.ProjectConfidence = &p, m[0], hashtagProjectConfidence
			e.MatchedTokens = append(e.MatchedTokens, m[0])
			return
		}
	}

	for _, p := range projects {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		name := regexp.QuoteMeta(p.Name)
		fallback := re(`\b(?:for\s+` + name + `|project\s+` + name + `|` + name + `\s+project)\b`)
		if m := fallback.FindString(text); m != "" {
			e.Project, e.ProjectMatch, e.ProjectConfidence = &p, m, fallbackProjectConfidence
			return
		}
	}
}

func extractLabels(e *Entities, text string, labels []model.Label) {
	if len(labels) == 0 {
		return
	}

	seen := make(map[string]bool)
	for _, m := range mentionPattern.FindAllStringSubmatch(text, -1) {
		l, ok := model.FindLabel(labels, m[1])
		if !ok || seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		e.Labels = append(e.Labels, l)
		e.LabelMatches = append(e.LabelMatches, m[0])
		e.MatchedTokens = append(e.MatchedTokens, m[0])
	}
}

// Remove deletes explicit entity markers from text: priority markers and
// bare "!" runs, #hashtags and @mentions (including a dangling sigil),
// duration and recurrence phrases, and accepted location phrases.
// Natural-language project references ("for Work") are kept.
func Remove(text string) string {
	var spans []pattern.Span
	spans = append(spans, priorityRules.Spans(text, time.Time{})...)
	spans = append(spans, locationRules.Spans(text, time.Time{})...)
	for _, idx := range sigilPattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, pattern.Span{Start: idx[2], End: idx[3]})
	}
	spans = append(spans, durationRules.Spans(text, time.Time{})...)
	spans = append(spans, recurrenceRules.Spans(text, time.Time{})...)
	return pattern.Collapse(pattern.Cut(text, spans))
}

func byRank(a, b pattern.Match[model.Priority]) int {
	return a.Value.Rank() - b.Value.Rank()
}

func followedBySpace(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsSpace(r)
}
