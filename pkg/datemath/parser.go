package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser resolves day phrases ("tomorrow", "next friday", "2025-04-01") in one
// IANA timezone.
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

// Resolve turns phrase into a day relative to now. Unknown phrases are an error;
// callers decide whether to drop the field.
func (p *Parser) Resolve(phrase string, now time.Time) (Result, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return Result{}, fmt.Errorf("empty date phrase")
	}

	if t, err := time.ParseInLocation("2006-01-02", phrase, p.location); err == nil {
		return Result{Day: t}, nil
	}

	today := p.startOfDay(now)
	switch phrase {
	case "today":
		return Result{Day: today, Relative: true}, nil
	case "tomorrow":
		return Result{Day: today.AddDate(0, 0, 1), Relative: true}, nil
	case "yesterday":
		return Result{Day: today.AddDate(0, 0, -1), Relative: true}, nil
	case "day after tomorrow":
		return Result{Day: today.AddDate(0, 0, 2), Relative: true}, nil
	}

	if strings.HasPrefix(phrase, "in ") {
		day, err := p.inDuration(phrase, today)
		return Result{Day: day, Relative: true}, err
	}
	if name, ok := strings.CutPrefix(phrase, "next "); ok {
		day, err := p.weekday(name, today, true)
		return Result{Day: day, Relative: true}, err
	}
	if name, ok := strings.CutPrefix(phrase, "this "); ok {
		day, err := p.weekday(name, today, false)
		return Result{Day: day, Relative: true}, err
	}
	if _, ok := weekdays[phrase]; ok {
		day, err := p.weekday(phrase, today, false)
		return Result{Day: day, Relative: true}, err
	}

	return Result{}, fmt.Errorf("unrecognised date phrase: %q", phrase)
}

// inDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) inDuration(phrase string, today time.Time) (time.Time, error) {
	m := inDurationRe.FindStringSubmatch(phrase)
	if len(m) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", phrase)
	}
	amount, _ := strconv.Atoi(m[1])

	switch {
	case strings.HasPrefix(m[2], "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(m[2], "week"):
		return today.AddDate(0, 0, amount*7), nil
	default:
		return today.AddDate(0, amount, 0), nil
	}
}

// weekday finds the next occurrence of name. With strict set, today never
// matches ("next wednesday" on a Wednesday is a week away); otherwise today does.
func (p *Parser) weekday(name string, today time.Time, strict bool) (time.Time, error) {
	target, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", name)
	}

	days := int(target - today.Weekday())
	if days < 0 || (strict && days == 0) {
		days += 7
	}
	return today.AddDate(0, 0, days), nil
}

// startOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
