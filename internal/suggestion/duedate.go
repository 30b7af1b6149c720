package suggestion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-intent/internal/nlp/pattern"
	"task-intent/pkg/datemath"
)

// DueDate is the value of a due-date suggestion.
type DueDate struct {
	Date           time.Time `json:"date"`
	IsDeadline     bool      `json:"is_deadline"`
	UrgencyScore   float64   `json:"urgency_score"`
	MatchedPattern string    `json:"matched_pattern"`
}

// DueDateSuggestion proposes a due date for a task.
type DueDateSuggestion struct {
	Suggestion
	Value DueDate `json:"value"`
}

const weekdayAlternation = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tue|wed|thu|fri|sat`

// dateRule builds a rule whose value carries the deadline flag and urgency
// of its family. resolve maps a hit and today to a date.
func dateRule(id, expr string, conf float64, deadline bool, urgency float64, resolve func(s pattern.Submatch, today time.Time) (time.Time, bool)) pattern.Rule[DueDate] {
	return pattern.Rule[DueDate]{
		ID:         id,
		Pattern:    regexp.MustCompile(expr),
		Confidence: conf,
		Extract: func(s pattern.Submatch, today time.Time) (DueDate, bool) {
			d, ok := resolve(s, today)
			if !ok {
				return DueDate{}, false
			}
			return DueDate{Date: datemath.StartOfDay(d), IsDeadline: deadline, UrgencyScore: urgency, MatchedPattern: id}, true
		},
	}
}

func offset(days int) func(pattern.Submatch, time.Time) (time.Time, bool) {
	return func(_ pattern.Submatch, today time.Time) (time.Time, bool) {
		return datemath.AddDays(today, days), true
	}
}

func endOfWeek(_ pattern.Submatch, today time.Time) (time.Time, bool) {
	return datemath.NextWeekday(today, time.Friday), true
}

func endOfMonth(_ pattern.Submatch, today time.Time) (time.Time, bool) {
	return datemath.EndOfMonth(today), true
}

func weekend(weeks int) func(pattern.Submatch, time.Time) (time.Time, bool) {
	return func(_ pattern.Submatch, today time.Time) (time.Time, bool) {
		return datemath.AddDays(datemath.NextWeekday(today, time.Saturday), 7*weeks), true
	}
}

func weekday(s pattern.Submatch, today time.Time) (time.Time, bool) {
	name := strings.ToLower(s.Group(1))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.HasPrefix(strings.ToLower(wd.String()), name[:3]) {
			return datemath.NextWeekday(today, wd), true
		}
	}
	return time.Time{}, false
}

// monthDay resolves a month name and day in today's year, rolling to next
// year when the date has already passed.
func monthDay(monthName, dayText string, today time.Time) (time.Time, bool) {
	month, ok := datemath.LookupMonth(monthName)
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(dayText)
	d, ok := datemath.Date(today.Year(), month, day, today.Location())
	if ok && d.Before(today) {
		d, ok = datemath.Date(today.Year()+1, month, day, today.Location())
	}
	return d, ok
}

// dateRules are the due-date families other than the explicit deadline, in
// evaluation order. Explicit deadlines delegate to them for their object.
var dateRules = pattern.Table[DueDate]{
	dateRule("urgency-today", `(?i)\b(urgent|asap|immediately|right\s+away)\b`, 0.9, true, 1.0, offset(0)),
	dateRule("today", `(?i)\b(today|tonight)\b`, 0.95, false, 0.8, offset(0)),
	dateRule("tomorrow", `(?i)\b(tomorrow)\b`, 0.95, false, 0.7, offset(1)),
	dateRule("day-after-tomorrow", `(?i)\b(day\s+after\s+tomorrow|overmorrow)\b`, 0.95, false, 0.6, offset(2)),
	dateRule("this-weekend", `(?i)\b(this\s+weekend)\b`, 0.85, false, 0.5, weekend(0)),
	dateRule("next-weekend", `(?i)\b(next\s+weekend)\b`, 0.85, false, 0.4, weekend(1)),
	dateRule("this-week", `(?i)\b(this\s+week)\b`, 0.8, false, 0.6, endOfWeek),
	dateRule("next-week", `(?i)\b(next\s+week)\b`, 0.85, false, 0.4, offset(7)),
	dateRule("this-month", `(?i)\b(this\s+month)\b`, 0.8, false, 0.5, endOfMonth),
	dateRule("next-month", `(?i)\b(next\s+month)\b`, 0.85, false, 0.3, func(_ pattern.Submatch, today time.Time) (time.Time, bool) {
		return datemath.AddMonths(today, 1), true
	}),
	dateRule("end-of-week", `(?i)\b(end\s+of\s+(?:the\s+)?week|eow)\b`, 0.85, true, 0.6, endOfWeek),
	dateRule("end-of-month", `(?i)\b(end\s+of\s+(?:the\s+)?month|eom)\b`, 0.85, true, 0.5, endOfMonth),
	dateRule("end-of-day", `(?i)\b(end\s+of\s+(?:the\s+)?day|eod|before\s+(?:end\s+of\s+)?(?:the\s+)?day)\b`, 0.9, true, 0.9, offset(0)),
	dateRule("relative-in", `(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`, 0.9, false, 0.5, func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		n, err := strconv.Atoi(s.Group(1))
		if err != nil {
			return time.Time{}, false
		}
		switch unit := strings.ToLower(s.Group(2)); {
		case strings.HasPrefix(unit, "day"):
			return datemath.AddDays(today, n), true
		case strings.HasPrefix(unit, "week"):
			return datemath.AddDays(today, 7*n), true
		default:
			return datemath.AddMonths(today, n), true
		}
	}),
	dateRule("weekday-this", `(?i)\b(?:(?:on|by|this)\s+)?(`+weekdayAlternation+`)\b`, 0.85, false, 0.5, weekday),
	dateRule("weekday-next", `(?i)\bnext\s+(`+weekdayAlternation+`)\b`, 0.9, false, 0.4, weekday),
	dateRule("month-day", `(?i)\b(`+datemath.MonthPattern+`)\s+(\d{1,2})(?:st|nd|rd|th)?\b`, 0.92, false, 0.5, func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		return monthDay(s.Group(1), s.Group(2), today)
	}),
	dateRule("day-month", `(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(`+datemath.MonthPattern+`)\b`, 0.92, false, 0.5, func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		return monthDay(s.Group(2), s.Group(1), today)
	}),
	dateRule("date-iso", `\b(\d{4})-(\d{1,2})-(\d{1,2})\b`, 0.98, false, 0.5, func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		y, _ := strconv.Atoi(s.Group(1))
		m, _ := strconv.Atoi(s.Group(2))
		d, _ := strconv.Atoi(s.Group(3))
		return datemath.Date(y, time.Month(m), d, today.Location())
	}),
	dateRule("date-slash-us", `\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`, 0.85, false, 0.5, func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		m, _ := strconv.Atoi(s.Group(1))
		d, _ := strconv.Atoi(s.Group(2))
		y := today.Year()
		if s.Has(3) {
			y, _ = strconv.Atoi(s.Group(3))
			if y < 100 {
				y += 2000
			}
		}
		date, ok := datemath.Date(y, time.Month(m), d, today.Location())
		if ok && !s.Has(3) && date.Before(today) {
			date, ok = datemath.Date(y+1, time.Month(m), d, today.Location())
		}
		return date, ok
	}),
}

var deadlineRule = dateRule("explicit-deadline", `(?i)\b(?:deadline|due(?:\s+by)?)\s+(.+?)(?:\s+at|\s*$|[,.])`, 0.95, true, 0.9,
	func(s pattern.Submatch, today time.Time) (time.Time, bool) {
		return flexibleDate(s.Group(1), today)
	})

var dueDateRules = append(pattern.Table[DueDate]{deadlineRule}, dateRules...)

// flexibleDate resolves the object of an explicit deadline ("deadline eow",
// "due by march 3").
func flexibleDate(text string, today time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "today", "tonight", "eod", "end of day":
		return today, true
	case "tomorrow":
		return datemath.AddDays(today, 1), true
	case "eow", "end of week":
		return endOfWeek(pattern.Submatch{}, today)
	case "eom", "end of month":
		return endOfMonth(pattern.Submatch{}, today)
	}
	m, ok := dateRules.First(text, today)
	if !ok {
		return time.Time{}, false
	}
	return m.Value.Date, true
}

var dueDateReasons = map[string]string{
	"explicit-deadline":  "Detected explicit deadline reference pointing to %s",
	"urgency-today":      "Detected urgent task, suggesting today (%s)",
	"today":              `Detected "today" keyword, due %s`,
	"tomorrow":           `Detected "tomorrow" keyword, due %s`,
	"day-after-tomorrow": `Detected "day after tomorrow", due %s`,
	"this-weekend":       `Detected "this weekend", suggesting %s`,
	"next-weekend":       `Detected "next weekend", suggesting %s`,
	"this-week":          `Detected "this week", suggesting end of week (%s)`,
	"next-week":          `Detected "next week", suggesting %s`,
	"this-month":         `Detected "this month", suggesting end of month (%s)`,
	"next-month":         `Detected "next month", suggesting %s`,
	"end-of-week":        "Detected end of week reference, due %s",
	"end-of-month":       "Detected end of month reference, due %s",
	"end-of-day":         "Detected end of day reference, due %s",
	"relative-in":        "Detected relative time expression, due %s",
	"weekday-this":       "Detected weekday reference, due %s",
	"weekday-next":       `Detected "next [weekday]", due %s`,
	"month-day":          "Detected specific date (%s)",
	"day-month":          "Detected specific date (%s)",
	"date-iso":           "Detected ISO date format (%s)",
	"date-slash-us":      "Detected date format (%s)",
}

func dueDateReasoning(id string, date time.Time) string {
	formatted := date.Format("Monday, Jan 2")
	if f, ok := dueDateReasons[id]; ok {
		return fmt.Sprintf(f, formatted)
	}
	return "Suggested due date: " + formatted
}

// SuggestDueDate proposes a due date from the strongest date expression in
// content. It reports false for blank content or when nothing matches.
func (e *Engine) SuggestDueDate(content string) (DueDateSuggestion, bool) {
	if strings.TrimSpace(content) == "" {
		return DueDateSuggestion{}, false
	}
	best, ok := dueDateRules.Best(content, e.today(), nil)
	if !ok {
		return DueDateSuggestion{}, false
	}
	return DueDateSuggestion{
		Suggestion: e.envelope(TypeDueDate, best.Confidence, dueDateReasoning(best.ID, best.Value.Date)),
		Value:      best.Value,
	}, true
}

// AllDueDateMatches lists every date expression found in text, strongest first.
func (e *Engine) AllDueDateMatches(text string) []pattern.Match[DueDate] {
	all := dueDateRules.All(text, e.today())
	pattern.Sort(all, nil)
	return all
}
