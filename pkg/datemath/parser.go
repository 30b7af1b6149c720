package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownExpression is returned when a reference-date expression is not understood.
var ErrUnknownExpression = errors.New("unknown date expression")

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts reference-date expressions ("today", "next monday",
// "2026-01-12") into absolute instants in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts an expression to the start of the day it denotes.
// The baseTime is used as the reference point (usually Clock.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	base := StartOfDay(baseTime.In(p.location))

	switch expr {
	case "", "today", "now":
		return base, nil
	case "tomorrow":
		return AddDays(base, 1), nil
	case "yesterday":
		return AddDays(base, -1), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", expr, p.location); err == nil {
		return t, nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, base, baseTime)
	}

	if strings.HasPrefix(expr, "next ") {
		wd, ok := LookupWeekday(strings.TrimPrefix(expr, "next "))
		if !ok {
			return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
		}
		return NextWeekday(base, wd), nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
// Unmatched expressions return baseTime untouched, like every other failure of Parse.
func (p *Parser) parseInDuration(expr string, base, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("%w: %q", ErrUnknownExpression, expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return AddDays(base, amount), nil
	case strings.HasPrefix(unit, "week"):
		return AddDays(base, amount*7), nil
	default:
		return AddMonths(base, amount), nil
	}
}
