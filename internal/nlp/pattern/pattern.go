// Package pattern holds the rule-table machinery shared by every extractor:
// ordered rules, candidate matches, confidence ordering and span removal.
package pattern

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"
)

// Submatch is one regexp hit with access to its capture groups.
type Submatch struct {
	Text  string
	Index []int
}

// Group returns capture group i, or "" when it did not participate.
func (s Submatch) Group(i int) string {
	if !s.Has(i) {
		return ""
	}
	return s.Text[s.Index[2*i]:s.Index[2*i+1]]
}

// Has reports whether capture group i participated in the match.
func (s Submatch) Has(i int) bool {
	return 2*i+1 < len(s.Index) && s.Index[2*i] >= 0
}

// Rule is an immutable pattern: a matcher, a confidence and an extraction
// function turning a hit plus the reference instant into a typed value.
// Extract returning false means the hit produced no value and is skipped.
type Rule[V any] struct {
	ID         string
	Pattern    *regexp.Regexp
	Confidence float64
	// Span selects the capture group delimiting the consumed text; 0 is the whole match.
	Span    int
	Extract func(s Submatch, now time.Time) (V, bool)
}

// Match is a candidate extraction with a half-open byte span [Start, End).
type Match[V any] struct {
	ID         string
	Value      V
	Confidence float64
	Start      int
	End        int
	Text       string
	Order      int // position of the rule in its table
}

// Table is an ordered rule library. Order is only the last tie-break.
type Table[V any] []Rule[V]

func (r Rule[V]) each(text string, now time.Time, fn func(Match[V]) bool) {
	for _, idx := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
		s := Submatch{Text: text, Index: idx}
		var v V
		if r.Extract != nil {
			var ok bool
			if v, ok = r.Extract(s, now); !ok {
				continue
			}
		}
		start, end := idx[0], idx[1]
		if r.Span > 0 && s.Has(r.Span) {
			start, end = idx[2*r.Span], idx[2*r.Span+1]
		}
		if !fn(Match[V]{ID: r.ID, Value: v, Confidence: r.Confidence, Start: start, End: end, Text: text[start:end]}) {
			return
		}
	}
}

// Matches evaluates every rule and returns the first valid hit of each, in table order.
func (t Table[V]) Matches(text string, now time.Time) []Match[V] {
	var out []Match[V]
	for i, r := range t {
		r.each(text, now, func(m Match[V]) bool {
			m.Order = i
			out = append(out, m)
			return false
		})
	}
	return out
}

// First returns the hit of the earliest rule in table order that matches.
func (t Table[V]) First(text string, now time.Time) (Match[V], bool) {
	for i, r := range t {
		var found Match[V]
		ok := false
		r.each(text, now, func(m Match[V]) bool {
			m.Order = i
			found, ok = m, true
			return false
		})
		if ok {
			return found, true
		}
	}
	return Match[V]{}, false
}

// Best returns the winning hit under Sort ordering.
func (t Table[V]) Best(text string, now time.Time, tie func(a, b Match[V]) int) (Match[V], bool) {
	ms := t.Matches(text, now)
	if len(ms) == 0 {
		return Match[V]{}, false
	}
	Sort(ms, tie)
	return ms[0], true
}

// All returns every valid hit of every rule, in table then position order.
func (t Table[V]) All(text string, now time.Time) []Match[V] {
	var out []Match[V]
	for i, r := range t {
		r.each(text, now, func(m Match[V]) bool {
			m.Order = i
			out = append(out, m)
			return true
		})
	}
	return out
}

// Spans returns the span of every valid hit of every rule. Used for removal.
func (t Table[V]) Spans(text string, now time.Time) []Span {
	all := t.All(text, now)
	out := make([]Span, 0, len(all))
	for _, m := range all {
		out = append(out, Span{Start: m.Start, End: m.End})
	}
	return out
}

// Remove deletes every span matched by the table and collapses whitespace,
// repeating until nothing more matches so the result is a fixpoint.
func (t Table[V]) Remove(text string, now time.Time) string {
	const maxPasses = 8
	for i := 0; i < maxPasses; i++ {
		next := Collapse(Cut(text, t.Spans(text, now)))
		if next == text {
			return next
		}
		text = next
	}
	return text
}

// SkipTags returns a copy of t whose rules reject hits that directly follow
// a '#' or '@' sigil, so a project or label mention never doubles as a phrase.
func (t Table[V]) SkipTags() Table[V] {
	out := slices.Clone(t)
	for i := range out {
		extract := out[i].Extract
		out[i].Extract = func(s Submatch, now time.Time) (V, bool) {
			var zero V
			if s.Tagged() {
				return zero, false
			}
			if extract == nil {
				return zero, true
			}
			return extract(s, now)
		}
	}
	return out
}

// Tagged reports whether the hit starts with a non-space byte right after a
// '#' or '@'.
func (s Submatch) Tagged() bool {
	start := s.Index[0]
	if start == 0 || start >= len(s.Text) {
		return false
	}
	prev, first := s.Text[start-1], s.Text[start]
	return (prev == '#' || prev == '@') && first != ' ' && first != '\t'
}

// Sort orders matches by confidence descending, then tie (when non-nil),
// then earliest start, then table order.
func Sort[V any](ms []Match[V], tie func(a, b Match[V]) int) {
	slices.SortStableFunc(ms, func(a, b Match[V]) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		if tie != nil {
			if c := tie(a, b); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

// Span is a half-open byte range.
type Span struct {
	Start int
	End   int
}

// Cut deletes the union of spans from text. Overlapping spans are merged.
func Cut(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	spans = slices.Clone(spans)
	slices.SortFunc(spans, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.End <= pos {
			continue
		}
		if s.Start > pos {
			b.WriteString(text[pos:s.Start])
		}
		pos = s.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

var whitespace = regexp.MustCompile(`\s+`)

// Collapse folds whitespace runs into single spaces and trims the ends.
func Collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// Clamp01 bounds a confidence to [0, 1].
func Clamp01(c float64) float64 {
	return max(0, min(1, c))
}
