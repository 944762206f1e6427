package races

import (
	"strings"
	"time"
)

const (
	isoLayout = "2006-01-02"
	usLayout  = "1/2/2006"
	// long form used on cards and the detail page, e.g. "October 15, 2024"
	longLayout = "January 2, 2006"
)

// ParseDate parses a race date in either MM/DD/YYYY or YYYY-MM-DD form and
// returns the calendar day at UTC midnight. ok is false when the string is
// not a valid date in the detected form.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	layout := isoLayout
	if strings.Contains(s, "/") {
		layout = usLayout
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a race date in long form. Unparseable input is returned
// as is.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(longLayout)
}

// Day truncates t to its calendar day in t's location and returns that day at
// UTC midnight, comparable with ParseDate results.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
