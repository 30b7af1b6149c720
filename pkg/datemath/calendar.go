package datemath

import "time"

// StartOfDay returns midnight at the start of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// AtClock returns t's day at hour:minute:00.
func AtClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// AddDays shifts t by n calendar days keeping the wall clock.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts t by n months. When the target month is shorter the day
// is clamped to its last day (Jan 31 + 1 month = Feb 28).
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	first = first.AddDate(0, n, 0)
	day := t.Day()
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// EndOfWeek returns the end of the Monday-based week containing t (Sunday 23:59:59).
func EndOfWeek(t time.Time) time.Time {
	offset := (7 - int(t.Weekday())) % 7
	return EndOfDay(AddDays(t, offset))
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), t.Month(), DaysIn(t.Year(), t.Month()), 0, 0, 0, 0, t.Location()))
}

// NextWeekday returns the start of the first day strictly after t that falls on wd.
// When t is already on wd the result is one week later.
func NextWeekday(t time.Time, wd time.Weekday) time.Time {
	daysUntil := int(wd - t.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return StartOfDay(AddDays(t, daysUntil))
}

// DaysIn reports the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date builds midnight of year-month-day in loc. It reports false instead of
// normalizing out-of-range values (Feb 30, month 13).
func Date(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December {
		return time.Time{}, false
	}
	if day < 1 || day > DaysIn(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc), true
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
