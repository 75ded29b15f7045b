package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDaysRe = regexp.MustCompile(`^in (\d+) days?$`)

// Month-day layouts accepted by Parse. time.Parse matches month names case-insensitively.
var monthDayLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"January 2, 2006", true},
	{"Jan 2, 2006", true},
	{"January 2 2006", true},
	{"Jan 2 2006", true},
	{"January 2", false},
	{"Jan 2", false},
}

// Parser converts deadline phrases to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "UTC", "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a deadline phrase to an absolute time.Time.
// The baseTime is the reference point (usually time.Now()).
//
//	today, tomorrow, in N days  -> end of that day
//	YYYY-MM-DD                  -> start of that day
//	march 5, mar 5, march 5, 2027 -> end of that day; without a year the next occurrence is used
func (p *Parser) Parse(phrase string, baseTime time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	switch phrase {
	case "":
		return time.Time{}, ErrEmptyPhrase
	case "today":
		return p.EndOfDay(p.startOfDay(baseTime)), nil
	case "tomorrow":
		return p.EndOfDay(p.startOfDay(baseTime.AddDate(0, 0, 1))), nil
	}

	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDays(phrase, baseTime)
	}

	if t, err := time.ParseInLocation(time.DateOnly, phrase, p.location); err == nil {
		return t, nil
	}

	return p.parseMonthDay(phrase, baseTime)
}

// parseInDays handles patterns like "in 3 days", "in 1 day".
func (p *Parser) parseInDays(phrase string, baseTime time.Time) (time.Time, error) {
	matches := inDaysRe.FindStringSubmatch(phrase)
	if len(matches) != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedPhrase, phrase)
	}

	days, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnrecognizedPhrase, phrase, err)
	}

	return p.EndOfDay(p.startOfDay(baseTime.AddDate(0, 0, days))), nil
}

// parseMonthDay handles "march 5", "mar 5" and "march 5, 2027".
func (p *Parser) parseMonthDay(phrase string, baseTime time.Time) (time.Time, error) {
	for _, l := range monthDayLayouts {
		parsed, err := time.ParseInLocation(l.layout, phrase, p.location)
		if err != nil {
			continue
		}

		if l.hasYear {
			return p.EndOfDay(parsed), nil
		}

		today := p.startOfDay(baseTime)
		candidate := time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, p.location)
		if candidate.Before(today) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		// Feb 29 outside a leap year normalizes into March.
		if candidate.Month() != parsed.Month() {
			return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedPhrase, phrase)
		}
		return p.EndOfDay(candidate), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedPhrase, phrase)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:00 of the day that starts at startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute)
}
