package services

import (
	"errors"
	"regexp"
	"time"
)

// ErrInvalidMonth is returned when a month string is not a strict "YYYY-MM"
// value. Handlers map it to a 400 response.
var ErrInvalidMonth = errors.New("invalid month format")

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ResolveMonthRange converts a "YYYY-MM" string into the inclusive
// [start, end] instant pair covering that calendar month in local time.
// Loosely formatted strings ("2024-3", "2024/03") and impossible months
// ("2024-13") are rejected with ErrInvalidMonth.
func ResolveMonthRange(month string) (time.Time, time.Time, error) {
	if !monthPattern.MatchString(month) {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
