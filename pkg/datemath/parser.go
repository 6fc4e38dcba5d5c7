package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative and absolute date fragments found in free text.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
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

// relativeTerm maps a substring to a date offset from the base time.
type relativeTerm struct {
	term   string
	offset func(base time.Time) time.Time
}

// Evaluated in order; the first term found in the text wins.
var relativeTerms = []relativeTerm{
	{"today", func(b time.Time) time.Time { return b }},
	{"tonight", func(b time.Time) time.Time { return b }},
	{"tomorrow", func(b time.Time) time.Time { return b.AddDate(0, 0, 1) }},
	{"next week", func(b time.Time) time.Time { return b.AddDate(0, 0, 7) }},
	{"next month", func(b time.Time) time.Time { return b.AddDate(0, 1, 0) }},
}

// Ordered so lines naming several weekdays resolve the same way every run.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Slash-separated M/d/yyyy. Dash-separated shapes are recognized as temporal
// (see patterns.go) but not converted to a timestamp.
var absoluteDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// ExtractDate resolves the first date fragment found in text: relative terms
// first, then weekday names, then an absolute M/d/yyyy match. Returns false
// when nothing resolves; it never fails on malformed fragments.
func (p *Parser) ExtractDate(text string, base time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	for _, rt := range relativeTerms {
		if strings.Contains(lower, rt.term) {
			return p.StartOfDay(rt.offset(base)), true
		}
	}

	// Bare weekday name resolves to its next occurrence after the base day.
	for _, wd := range weekdayNames {
		if strings.Contains(lower, wd.name) {
			return p.StartOfDay(nextWeekday(base, wd.day)), true
		}
	}

	if m := absoluteDateRe.FindStringSubmatch(lower); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location), true
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of the target weekday strictly
// after the base day.
func nextWeekday(base time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// At places a wall-clock time on the day of t in the parser's timezone.
func (p *Parser) At(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}
