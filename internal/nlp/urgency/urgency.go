package urgency

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"

	"task-intent/internal/model"
	"task-intent/internal/nlp/pattern"
	"task-intent/pkg/datemath"
)

// DeadlineType tells whether a deadline is binding.
type DeadlineType string

const (
	DeadlineHard DeadlineType = "hard"
	DeadlineSoft DeadlineType = "soft"
)

// SpanType classifies a matched span for highlighting.
type SpanType string

const (
	SpanUrgency  SpanType = "urgency"
	SpanDeadline SpanType = "deadline"
)

const (
	eodHour     = 17
	morningHour = 9
	noonHour    = 12
	nightHour   = 21
)

// Signal is the value produced by one urgency rule.
type Signal struct {
	Priority     model.Priority
	Deadline     time.Time // zero when the rule sets no deadline
	DeadlineType DeadlineType
}

// Span is a matched phrase location in the input text.
type Span struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Type  SpanType `json:"type"`
}

// Result is the outcome of Extract.
type Result struct {
	HasUrgency       bool
	ImplicitPriority model.Priority
	Deadline         *time.Time
	DeadlineType     DeadlineType
	MatchedPhrase    string
	Confidence       float64
	Spans            []Span // every urgency phrase found, by position
}

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

func fixed(p model.Priority) func(pattern.Submatch, time.Time) (Signal, bool) {
	return func(pattern.Submatch, time.Time) (Signal, bool) { return Signal{Priority: p}, true }
}

func deadline(p model.Priority, typ DeadlineType, at func(now time.Time) time.Time) func(pattern.Submatch, time.Time) (Signal, bool) {
	return func(_ pattern.Submatch, now time.Time) (Signal, bool) {
		return Signal{Priority: p, Deadline: at(now), DeadlineType: typ}, true
	}
}

func clock(days, hour int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return datemath.AtClock(datemath.AddDays(now, days), hour, 0) }
}

var rules = pattern.Table[Signal]{
	// immediate
	{
		ID:         "asap",
		Pattern:    re(`\b(asap|as soon as possible|right away|immediately|right now)\b`),
		Confidence: 0.9,
		Extract:    deadline(model.PriorityP1, DeadlineHard, func(now time.Time) time.Time { return now }),
	},
	{
		ID:         "urgent",
		Pattern:    re(`\b(urgent|urgently|emergency|critical)\b`),
		Confidence: 0.85,
		Extract:    fixed(model.PriorityP1),
	},
	{
		ID:         "before-leave",
		Pattern:    re(`\b(before (?:i |you )?leave|before leaving)\b`),
		Confidence: 0.8,
		Extract:    deadline(model.PriorityP2, DeadlineHard, clock(0, eodHour)),
	},

	// clock deadlines
	{
		ID:         "by-eod",
		Pattern:    re(`\b(by (?:end of day|eod|close of business|cob))\b`),
		Confidence: 0.9,
		Extract:    deadline(model.PriorityP2, DeadlineHard, clock(0, eodHour)),
	},
	{
		ID:         "by-noon",
		Pattern:    re(`\b(by noon|by midday|before noon|before lunch)\b`),
		Confidence: 0.9,
		Extract:    deadline(model.PriorityP2, DeadlineHard, clock(0, noonHour)),
	},
	{
		ID:         "by-morning",
		Pattern:    re(`\b(by (?:tomorrow )?morning|first thing(?: tomorrow)?(?: morning)?)\b`),
		Confidence: 0.85,
		Extract:    deadline(model.PriorityP2, DeadlineHard, clock(1, morningHour)),
	},
	{
		ID:         "by-tonight",
		Pattern:    re(`\b(by tonight|before tonight)\b`),
		Confidence: 0.85,
		Extract:    deadline(model.PriorityNone, DeadlineHard, clock(0, nightHour)),
	},

	// day deadlines
	{
		ID:         "by-tomorrow",
		Pattern:    re(`\b(by tomorrow|before tomorrow|due tomorrow)\b`),
		Confidence: 0.85,
		Extract:    deadline(model.PriorityP2, DeadlineHard, clock(1, eodHour)),
	},
	{
		ID:         "by-eow",
		Pattern:    re(`\b(by (?:end of (?:the )?week|eow)|before (?:end of )?(?:the )?week)\b`),
		Confidence: 0.85,
		Extract:    deadline(model.PriorityNone, DeadlineHard, datemath.EndOfWeek),
	},
	{
		ID:         "by-eom",
		Pattern:    re(`\b(by (?:end of (?:the )?month|eom)|before (?:end of )?(?:the )?month)\b`),
		Confidence: 0.85,
		Extract:    deadline(model.PriorityNone, DeadlineHard, datemath.EndOfMonth),
	},
	{
		ID:         "by-weekday",
		Pattern:    re(`\b(by|before|due(?:\s+on)?)\s+(` + datemath.WeekdayPattern + `)\b`),
		Confidence: 0.8,
		Extract: func(s pattern.Submatch, now time.Time) (Signal, bool) {
			wd, ok := datemath.LookupWeekday(s.Group(2))
			if !ok {
				return Signal{}, false
			}
			return Signal{
				Deadline:     datemath.AtClock(datemath.NextWeekday(now, wd), eodHour, 0),
				DeadlineType: DeadlineHard,
			}, true
		},
	},

	// medium urgency; "priority 2" is an explicit marker, not a phrase
	{
		ID:         "important",
		Pattern:    re(`\b(important|high priority|priority|crucial)\b(\s*\d)?`),
		Confidence: 0.75,
		Span:       1,
		Extract: func(s pattern.Submatch, _ time.Time) (Signal, bool) {
			return Signal{Priority: model.PriorityP2}, !s.Has(2)
		},
	},
	{
		ID:         "needs-attention",
		Pattern:    re(`\b(needs? (?:immediate )?attention|can't wait|cannot wait)\b`),
		Confidence: 0.7,
		Extract:    fixed(model.PriorityP2),
	},

	// soft deadlines
	{
		ID:         "this-week",
		Pattern:    re(`\b(this week|during the week)\b`),
		Confidence: 0.7,
		Extract:    deadline(model.PriorityP3, DeadlineSoft, datemath.EndOfWeek),
	},
	{
		ID:         "next-week",
		Pattern:    re(`\b(next week|following week)\b`),
		Confidence: 0.7,
		Extract: deadline(model.PriorityP3, DeadlineSoft, func(now time.Time) time.Time {
			return datemath.EndOfWeek(datemath.AddDays(now, 7))
		}),
	},
	{
		ID:         "soon",
		Pattern:    re(`\b(soon|soonish|in the near future)\b`),
		Confidence: 0.6,
		Extract:    fixed(model.PriorityP3),
	},

	// can wait
	{
		ID:         "when-possible",
		Pattern:    re(`\b(when (?:you )?(?:have|get) (?:a )?chance|when possible|if (?:you )?(?:have|get) time)\b`),
		Confidence: 0.7,
		Extract:    fixed(model.PriorityP4),
	},
	{
		ID:         "no-rush",
		Pattern:    re(`\b(no rush|no hurry|not urgent|low priority|whenever|someday)\b`),
		Confidence: 0.8,
		Extract:    fixed(model.PriorityP4),
	},
	{
		ID:         "eventually",
		Pattern:    re(`\b(eventually|at some point|one day|later)\b`),
		Confidence: 0.6,
		Extract:    fixed(model.PriorityP4),
	},
}.SkipTags()

// Extract finds the strongest urgency phrase in text. now is the reference
// instant deadlines are computed from, normally the start of the current day.
func Extract(text string, now time.Time) Result {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}

	matches := rules.Matches(text, now)
	if len(matches) == 0 {
		return Result{}
	}

	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, Span{Start: m.Start, End: m.End, Type: spanType(m.Value)})
	}
	slices.SortStableFunc(spans, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })

	pattern.Sort(matches, nil)
	best := matches[0]

	res := Result{
		HasUrgency:       true,
		ImplicitPriority: best.Value.Priority,
		MatchedPhrase:    best.Text,
		Confidence:       best.Confidence,
		Spans:            spans,
	}
	if !best.Value.Deadline.IsZero() {
		d := best.Value.Deadline
		res.Deadline = &d
		res.DeadlineType = best.Value.DeadlineType
	}
	return res
}

// Matches returns every urgency rule that fired, strongest first.
func Matches(text string, now time.Time) []pattern.Match[Signal] {
	ms := rules.Matches(text, now)
	pattern.Sort(ms, nil)
	return ms
}

// Remove strips every urgency phrase from text and collapses whitespace.
func Remove(text string) string {
	return rules.Remove(text, time.Time{})
}

func spanType(s Signal) SpanType {
	if s.Deadline.IsZero() {
		return SpanUrgency
	}
	return SpanDeadline
}
