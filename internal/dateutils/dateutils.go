// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	// DateLayoutDisplay is the locale-fixed display format (DD/MM/YYYY)
	// carried on every transaction.
	DateLayoutDisplay = "02/01/2006"
	// DateLayoutISO is the HTML date-input format (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
	// PeriodLayout is the year-month key used to partition storage.
	PeriodLayout = "2006-01"
)

// ParseDisplayDate parses a DD/MM/YYYY display date into a time.Time.
func ParseDisplayDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayoutDisplay, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// SortKey converts a display date into a comparable calendar value.
// Dates that fail to parse return the zero time so they sort as the
// earliest possible value instead of disappearing from listings.
func SortKey(dateStr string) time.Time {
	t, err := ParseDisplayDate(dateStr)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PeriodOf derives the owning YYYY-MM period key from a display date.
// The date must split into day/month/year components.
func PeriodOf(dateStr string) (string, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("date %q is not in DD/MM/YYYY form", dateStr)
	}
	return fmt.Sprintf("%s-%s", parts[2], parts[1]), nil
}

// ISOToDisplay converts a YYYY-MM-DD date to the DD/MM/YYYY display form.
func ISOToDisplay(isoDate string) (string, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(isoDate))
	if err != nil {
		return "", fmt.Errorf("unable to parse ISO date %q: %w", isoDate, err)
	}
	return t.Format(DateLayoutDisplay), nil
}

// CurrentPeriod returns the period key for the current month.
func CurrentPeriod() string {
	return time.Now().Format(PeriodLayout)
}

// ValidPeriod reports whether s is a well-formed YYYY-MM period key.
func ValidPeriod(s string) bool {
	_, err := time.Parse(PeriodLayout, s)
	return err == nil
}
