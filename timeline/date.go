package timeline

import (
	"errors"
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

var (
	// ErrNoData is returned by Compute when no element carries a usable date.
	ErrNoData = errors.New("no timeline data")
	// ErrMissingDate marks an element whose date field is empty.
	ErrMissingDate = errors.New("missing date")
)

// ParseDate reads the first 10 characters of s as YYYY-MM-DD, so timestamps
// such as "2024-03-01T09:00:00Z" are accepted.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DisplayDate trims a date string to its YYYY-MM-DD part for tables.
func DisplayDate(s string) string {
	if len(s) > 10 {
		if _, err := time.Parse(dateLayout, s[:10]); err == nil {
			return s[:10]
		}
	}
	return s
}

func stageDates(s Stage) (time.Time, time.Time, error) {
	start, err := ParseDate(s.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(s.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", err)
	}
	return start, end, nil
}

// daysBetween counts whole days from a to b; both are UTC midnights.
// time.Duration saturates near 292 years, so the count uses Unix seconds.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func shortDate(t time.Time) string {
	return t.Format("Jan 2")
}
