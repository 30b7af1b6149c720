package datemath

import (
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LookupWeekday resolves a full English weekday name, case-insensitively.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// LookupMonth resolves an English month name or its three-letter prefix
// ("sep" and "sept" both resolve to September).
func LookupMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if strings.HasPrefix(full, name) {
			return m, true
		}
	}
	return 0, false
}

// WeekdayPattern is the regexp alternation of full weekday names.
const WeekdayPattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// MonthPattern is the regexp alternation of month names and abbreviations.
const MonthPattern = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`
