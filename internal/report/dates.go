package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date at midnight UTC. All
// comparisons in this package are date-only, so the zone never matters.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}
	parsed, err := time.Parse(isoLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date format: %s", value)
	}
	return parsed, nil
}

// parseOptional returns ok=false for empty or unparsable dates.
func parseOptional(value string) (time.Time, bool) {
	parsed, err := ParseDate(value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// shortDate renders M/D without zero padding.
func shortDate(value time.Time) string {
	return fmt.Sprintf("%d/%d", int(value.Month()), value.Day())
}

func within(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
