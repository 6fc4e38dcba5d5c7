package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

// temporalPatterns recognize text that carries scheduling information.
// Matching here means "this line talks about a time", not "this fragment is
// parseable" — numeric dash dates match but ExtractDate only converts the
// slash form.
var temporalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(am|pm)?\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s*(am|pm)\b`),
	regexp.MustCompile(`(?i)\b(today|tomorrow|tonight)\b`),
	regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`(?i)\bnext\s+(week|month)\b`),
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}([/-]\d{2,4})?\b`),
}

// HasTemporalPattern reports whether the text contains any recognizable
// time or date expression.
func HasTemporalPattern(text string) bool {
	for _, re := range temporalPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

var clockTimeRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)

// ClockTime is a wall-clock time of day in 24-hour form.
type ClockTime struct {
	Hour   int
	Minute int
}

// ExtractClockTime finds the first "H[:MM] am|pm" fragment and converts it to
// a 24-hour clock. 12am maps to 0, 12pm stays 12.
func ExtractClockTime(text string) (ClockTime, bool) {
	m := clockTimeRe.FindStringSubmatch(text)
	if m == nil {
		return ClockTime{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 12 || minute > 59 {
		return ClockTime{}, false
	}

	meridiem := strings.ToLower(m[3])
	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}

	return ClockTime{Hour: hour, Minute: minute}, true
}
