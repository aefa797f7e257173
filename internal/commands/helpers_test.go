package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{150, "2h 30m"},
		{120, "2h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMinutes(tt.minutes))
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "42m", formatElapsed(42*time.Minute+30*time.Second))
	assert.Equal(t, "0m", formatElapsed(59*time.Second))
}

func TestTimeAgo(t *testing.T) {
	now := time.Now()

	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-1 * time.Minute), "1 minute ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.AddDate(0, 0, -1).Add(-time.Hour), "yesterday"},
		{now.AddDate(0, 0, -3), "3 days ago"},
		{now.AddDate(0, 0, -14), "2 weeks ago"},
		{now.AddDate(0, 0, -70), "2 months ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, timeAgo(tt.at))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "aaaaaaa...", truncate("aaaaaaaaaaaa", 10))
}
