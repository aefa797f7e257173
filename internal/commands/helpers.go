package commands

import (
	"fmt"
	"time"
)

// formatMinutes formats a minute count in a human-readable way ("45m",
// "2h", "2h 30m")
func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60

	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

// formatElapsed formats a live elapsed duration the same way as stored
// minutes, rounding down
func formatElapsed(d time.Duration) string {
	return formatMinutes(int(d.Minutes()))
}

// timeAgo renders a past timestamp as a relative phrase
func timeAgo(t time.Time) string {
	delta := time.Since(t)
	days := int(delta.Hours() / 24)

	switch {
	case days == 1:
		return "yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days >= 7 && days < 30:
		return plural(days/7, "week")
	case days >= 30:
		return plural(days/30, "month")
	}

	if hours := int(delta.Hours()); hours > 0 {
		return plural(hours, "hour")
	}
	if minutes := int(delta.Minutes()); minutes > 0 {
		return plural(minutes, "minute")
	}
	return "just now"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// truncate shortens a string to the given display width
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
