package parser

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses the date formats accepted by report and list flags:
// "today", "yesterday", or an explicit YYYY-MM-DD. Keywords resolve to
// local midnight of that day.
func ParseDate(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return midnight, nil
	case "yesterday":
		return midnight.AddDate(0, 0, -1), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format. Use YYYY-MM-DD, 'today', or 'yesterday'")
	}
	return parsed, nil
}
