package model

import (
	"fmt"
	"strings"
	"time"
)

// Storage layouts for Item.Date and Item.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ParseDate normalizes a user-entered date to DateLayout.
// Single-digit months and days are accepted.
func ParseDate(s string) (string, error) {
	t, err := time.Parse("2006-1-2", strings.TrimSpace(s))
	if err != nil {
		return "", &ValidationError{Field: "date", Message: fmt.Sprintf("%q is not YYYY-MM-DD", s)}
	}
	return t.Format(DateLayout), nil
}

// ParseTime normalizes a user-entered time of day to TimeLayout.
// Seconds are optional.
func ParseTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", &ValidationError{Field: "time", Message: fmt.Sprintf("%q is not HH:MM[:SS]", s)}
}

// DateOf formats the calendar day of t.
func DateOf(t time.Time) string { return t.Format(DateLayout) }

// TimeOf formats t to the minute, seconds zeroed.
func TimeOf(t time.Time) string { return t.Truncate(time.Minute).Format(TimeLayout) }
