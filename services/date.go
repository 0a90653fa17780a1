package services

import (
	"fmt"
	"time"
)

// dateLayout is the YYYY-MM-DD layout used by every date-only field
const dateLayout = "2006-01-02"

// ParseDate parses a date string in typical formats (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// FormatDate renders t as YYYY-MM-DD in its own location
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
