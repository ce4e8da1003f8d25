package utils

import (
	"fmt"
	"time"
)

const brDateLayout = "02/01/2006"

// FormatDate renders a date as dd/MM/yyyy, the format used throughout the
// legacy API and the PDF export.
func FormatDate(t time.Time) string {
	return t.Format(brDateLayout)
}

// FormatDatePtr renders a nullable date, with "N/A" for unset values.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return FormatDate(*t)
}

// ParseDate accepts an ISO date ("2006-01-02") or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-MM-dd or RFC3339", s)
}

// CalculateAge returns the number of whole years between birth and now.
func CalculateAge(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}
