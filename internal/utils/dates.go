package utils

import "time"

// localeLayout is the interchange format used by API clients and printed
// on confirmation documents: day first, 24h clock.
const localeLayout = "02/01/2006 15:04:05"

// ParseLocaleDateTime parses a DD/MM/YYYY HH:MM:SS string into a UTC time.
func ParseLocaleDateTime(s string) (time.Time, error) {
	t, err := time.Parse(localeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatLocaleDateTime renders a time as DD/MM/YYYY HH:MM:SS in UTC.
func FormatLocaleDateTime(t time.Time) string {
	return t.UTC().Format(localeLayout)
}
