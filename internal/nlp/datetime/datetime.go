package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-intent/internal/nlp/pattern"
	"task-intent/pkg/datemath"
)

// Result is the outcome of Extract.
type Result struct {
	Date        time.Time // start of day, or the merged date and time
	Time        string    // "HH:MM"
	Clock       Clock
	HasDate     bool
	HasTime     bool
	MatchedText string
	Confidence  float64
}

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

func day(offset func(now time.Time) time.Time) func(pattern.Submatch, time.Time) (time.Time, bool) {
	return func(_ pattern.Submatch, now time.Time) (time.Time, bool) { return offset(now), true }
}

func days(n int) func(pattern.Submatch, time.Time) (time.Time, bool) {
	return day(func(now time.Time) time.Time { return datemath.StartOfDay(datemath.AddDays(now, n)) })
}

// Date passes are tried in order; a later pass runs only when the earlier found nothing.
var (
	relativeRules = pattern.Table[time.Time]{
		{ID: "day-after-tomorrow", Pattern: re(`\b(?:the\s+)?day after tomorrow\b`), Confidence: 0.95, Extract: days(2)},
		{ID: "today", Pattern: re(`\b(today|tonight)\b`), Confidence: 0.95, Extract: days(0)},
		{ID: "tomorrow", Pattern: re(`\btomorrow\b`), Confidence: 0.95, Extract: days(1)},
		{ID: "yesterday", Pattern: re(`\byesterday\b`), Confidence: 0.95, Extract: days(-1)},
		{ID: "next-week", Pattern: re(`\bnext week\b`), Confidence: 0.95, Extract: days(7)},
		{ID: "next-month", Pattern: re(`\bnext month\b`), Confidence: 0.95, Extract: day(func(now time.Time) time.Time {
			return datemath.StartOfDay(datemath.AddMonths(now, 1))
		})},
		{ID: "this-week", Pattern: re(`\bthis week\b`), Confidence: 0.95, Extract: day(datemath.EndOfWeek)},
		{ID: "this-month", Pattern: re(`\bthis month\b`), Confidence: 0.95, Extract: day(datemath.EndOfMonth)},
		{ID: "end-of-week", Pattern: re(`\bend of (?:the )?week\b`), Confidence: 0.95, Extract: day(datemath.EndOfWeek)},
		{ID: "end-of-month", Pattern: re(`\bend of (?:the )?month\b`), Confidence: 0.95, Extract: day(datemath.EndOfMonth)},
	}

	weekdayRules = pattern.Table[time.Time]{
		{
			ID:         "weekday",
			Pattern:    re(`\b(?:(?:on|this|next)\s+)?(` + datemath.WeekdayPattern + `)\b`),
			Confidence: 0.9,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				wd, ok := datemath.LookupWeekday(s.Group(1))
				if !ok {
					return time.Time{}, false
				}
				return datemath.NextWeekday(now, wd), true
			},
		},
	}

	inRules = pattern.Table[time.Time]{
		{
			ID:         "in-n-units",
			Pattern:    re(`\bin\s+(\d{1,4})\s+(days?|weeks?|months?)\b`),
			Confidence: 0.85,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				n, err := strconv.Atoi(s.Group(1))
				if err != nil {
					return time.Time{}, false
				}
				base := datemath.StartOfDay(now)
				switch unit := strings.ToLower(s.Group(2)); {
				case strings.HasPrefix(unit, "day"):
					return datemath.AddDays(base, n), true
				case strings.HasPrefix(unit, "week"):
					return datemath.AddDays(base, 7*n), true
				default:
					return datemath.AddMonths(base, n), true
				}
			},
		},
	}

	explicitRules = pattern.Table[time.Time]{
		{
			ID:         "slash",
			Pattern:    re(`\b(?:on\s+)?(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`),
			Confidence: 0.9,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				return explicitDate(now, s.Group(3), s.Group(1), s.Group(2))
			},
		},
		{
			ID:         "iso",
			Pattern:    re(`\b(?:on\s+)?(\d{4})-(\d{2})-(\d{2})\b`),
			Confidence: 0.9,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				return explicitDate(now, s.Group(1), s.Group(2), s.Group(3))
			},
		},
		{
			ID:         "month-day",
			Pattern:    re(`\b(?:on\s+)?(` + datemath.MonthPattern + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s*,?\s*(\d{4}))?\b`),
			Confidence: 0.9,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				return namedMonthDate(now, s.Group(1), s.Group(2), s.Group(3))
			},
		},
		{
			ID:         "day-month",
			Pattern:    re(`\b(?:on\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + datemath.MonthPattern + `)(?:\s*,?\s*(\d{4}))?\b`),
			Confidence: 0.9,
			Extract: func(s pattern.Submatch, now time.Time) (time.Time, bool) {
				return namedMonthDate(now, s.Group(2), s.Group(1), s.Group(3))
			},
		},
	}

	datePasses = []pattern.Table[time.Time]{relativeRules, weekdayRules, inRules, explicitRules}
)

// Time rules: first rule in table order wins.
var timeRules = pattern.Table[Clock]{
	{ID: "at-hh-mm", Pattern: re(`\bat\s+(\d{1,2}):(\d{2})\s*(am|pm)?\b`), Confidence: 0.9, Extract: clockOf(1, 2, 3)},
	{ID: "at-h-ampm", Pattern: re(`\bat\s+(\d{1,2})\s*(am|pm)\b`), Confidence: 0.9, Extract: clockOf(1, 0, 2)},
	{ID: "hh-mm-ampm", Pattern: re(`\b(\d{1,2}):(\d{2})\s*(am|pm)\b`), Confidence: 0.9, Extract: clockOf(1, 2, 3)},
	{ID: "h-ampm", Pattern: re(`\b(\d{1,2})\s*(am|pm)\b`), Confidence: 0.9, Extract: clockOf(1, 0, 2)},
	{ID: "noon", Pattern: re(namedLeadIn + `(noon|midday)\b`), Confidence: 0.9, Extract: named(12)},
	{ID: "midnight", Pattern: re(namedLeadIn + `midnight\b`), Confidence: 0.9, Extract: named(0)},
	{ID: "morning", Pattern: re(namedLeadIn + `morning\b`), Confidence: 0.9, Extract: named(9)},
	{ID: "afternoon", Pattern: re(namedLeadIn + `afternoon\b`), Confidence: 0.9, Extract: named(14)},
	{ID: "evening", Pattern: re(namedLeadIn + `evening\b`), Confidence: 0.9, Extract: named(18)},
}

// namedLeadIn lets a named time take its preposition with it, so Remove
// cuts "at noon" rather than leaving "at" behind.
const namedLeadIn = `\b(?:(?:at|in the|this|by)\s+)?`

// timeOnlyConfidence is reported when a time was found without any date.
const timeOnlyConfidence = 0.7

// Extract finds a date and, independently, a time of day in text.
// Relative dates are resolved against now.
func Extract(text string, now time.Time) Result {
	res := Result{}
	if strings.TrimSpace(text) == "" {
		return res
	}

	var parts []string
	remaining := text
	if m, ok := extractDate(text, now); ok {
		res.Date = m.Value
		res.HasDate = true
		res.Confidence = m.Confidence
		parts = append(parts, m.Text)
		remaining = text[:m.Start] + " " + text[m.End:]
	}

	if m, ok := timeRules.First(remaining, now); ok {
		res.Time = m.Value.String()
		res.Clock = m.Value
		res.HasTime = true
		parts = append(parts, m.Text)
		if !res.HasDate {
			res.Confidence = timeOnlyConfidence
		} else {
			res.Date = datemath.AtClock(res.Date, m.Value.Hour, m.Value.Minute)
		}
	}

	res.MatchedText = strings.Join(parts, " ")
	return res
}

// ExtractDate runs only the date passes.
func ExtractDate(text string, now time.Time) (pattern.Match[time.Time], bool) {
	return extractDate(text, now)
}

func extractDate(text string, now time.Time) (pattern.Match[time.Time], bool) {
	for _, pass := range datePasses {
		if m, ok := pass.Best(text, now, nil); ok {
			return m, true
		}
	}
	return pattern.Match[time.Time]{}, false
}

// ExtractTime runs only the time rules.
func ExtractTime(text string) (Clock, string, bool) {
	m, ok := timeRules.First(text, time.Time{})
	return m.Value, m.Text, ok
}

// Remove deletes every date and time expression the extractor recognizes and
// collapses whitespace. Remove(Remove(s)) == Remove(s).
func Remove(text string, now time.Time) string {
	const maxPasses = 8
	for i := 0; i < maxPasses; i++ {
		var spans []pattern.Span
		for _, pass := range datePasses {
			spans = append(spans, pass.Spans(text, now)...)
		}
		spans = append(spans, timeRules.Spans(text, now)...)

		next := pattern.Collapse(pattern.Cut(text, spans))
		if next == text {
			return next
		}
		text = next
	}
	return text
}

func clockOf(hourGroup, minuteGroup, periodGroup int) func(pattern.Submatch, time.Time) (Clock, bool) {
	return func(s pattern.Submatch, _ time.Time) (Clock, bool) {
		hour, err := strconv.Atoi(s.Group(hourGroup))
		if err != nil {
			return Clock{}, false
		}
		minute := 0
		if minuteGroup > 0 {
			if minute, err = strconv.Atoi(s.Group(minuteGroup)); err != nil || minute > 59 {
				return Clock{}, false
			}
		}

		switch strings.ToLower(s.Group(periodGroup)) {
		case "am":
			if hour < 1 || hour > 12 {
				return Clock{}, false
			}
			if hour == 12 {
				hour = 0
			}
		case "pm":
			if hour < 1 || hour > 12 {
				return Clock{}, false
			}
			if hour != 12 {
				hour += 12
			}
		default:
			if hour > 23 {
				return Clock{}, false
			}
		}
		return Clock{Hour: hour, Minute: minute}, true
	}
}

func named(hour int) func(pattern.Submatch, time.Time) (Clock, bool) {
	return func(pattern.Submatch, time.Time) (Clock, bool) { return Clock{Hour: hour}, true }
}

// explicitDate validates numeric year, month and day groups. A missing year
// means the current year; two-digit years are in the 2000s.
func explicitDate(now time.Time, year, month, dayOfMonth string) (time.Time, bool) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	return buildDate(now, year, time.Month(m), dayOfMonth)
}

func namedMonthDate(now time.Time, monthName, dayOfMonth, year string) (time.Time, bool) {
	m, ok := datemath.LookupMonth(monthName)
	if !ok {
		return time.Time{}, false
	}
	return buildDate(now, year, m, dayOfMonth)
}

func buildDate(now time.Time, year string, month time.Month, dayOfMonth string) (time.Time, bool) {
	d, err := strconv.Atoi(dayOfMonth)
	if err != nil {
		return time.Time{}, false
	}
	y := now.Year()
	if year != "" {
		if y, err = strconv.Atoi(year); err != nil {
			return time.Time{}, false
		}
		switch {
		case len(year) == 2:
			y += 2000
		case len(year) == 3:
			return time.Time{}, false
		}
	}
	return datemath.Date(y, month, d, now.Location())
}
