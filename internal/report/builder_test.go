package report

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/devlog/internal/db"
	"github.com/balkashynov/devlog/internal/models"
)

// newTestBuilder opens a builder on a temp database plus a raw gorm handle
// on the same file for seeding sessions with fixed times and durations
func newTestBuilder(t *testing.T) (*Builder, *gorm.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := db.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewBuilder(store), gdb
}

// seedCompleted inserts a finished session with a fixed start and duration
func seedCompleted(t *testing.T, gdb *gorm.DB, desc string, start time.Time, minutes int, tags ...string) {
	t.Helper()

	end := start.Add(time.Duration(minutes) * time.Minute)
	duration := minutes
	sess := models.Session{
		Description: desc,
		StartTime:   start,
		EndTime:     &end,
		Duration:    &duration,
		CreatedAt:   start,
	}
	for _, tag := range tags {
		sess.Tags = append(sess.Tags, models.Tag{Tag: tag})
	}

	require.NoError(t, gdb.Create(&sess).Error)
}

// seedActive inserts a still-running session
func seedActive(t *testing.T, gdb *gorm.DB, desc string, start time.Time) {
	t.Helper()
	sess := models.Session{Description: desc, StartTime: start, CreatedAt: start}
	require.NoError(t, gdb.Create(&sess).Error)
}

func TestSummary_AllTime(t *testing.T) {
	b, gdb := newTestBuilder(t)

	now := time.Now()
	seedCompleted(t, gdb, "older", now.Add(-3*time.Hour), 30)
	seedCompleted(t, gdb, "newer", now.Add(-1*time.Hour), 60)
	seedActive(t, gdb, "running", now)

	summary, err := b.Summary(Options{})
	require.NoError(t, err)

	assert.Equal(t, "All Time", summary.Period)
	assert.Equal(t, 2, summary.SessionCount)
	assert.Equal(t, 90, summary.TotalMinutes)
	assert.Equal(t, 45, summary.AvgMinutes)

	// Most recent completed sessions first, active one excluded
	require.Len(t, summary.Recent, 2)
	assert.Equal(t, "newer", summary.Recent[0].Description)
	assert.Equal(t, "older", summary.Recent[1].Description)
}

func TestSummary_Empty(t *testing.T) {
	b, _ := newTestBuilder(t)

	summary, err := b.Summary(Options{})
	require.NoError(t, err)

	assert.Zero(t, summary.SessionCount)
	assert.Zero(t, summary.TotalMinutes)
	assert.Zero(t, summary.AvgMinutes, "average must not divide by zero")
	assert.Empty(t, summary.Recent)
}

func TestSummary_Days(t *testing.T) {
	b, gdb := newTestBuilder(t)

	now := time.Now()
	seedCompleted(t, gdb, "this week", now.Add(-2*time.Hour), 25)
	seedCompleted(t, gdb, "long ago", now.AddDate(0, 0, -10), 90)

	summary, err := b.Summary(Options{Days: 7})
	require.NoError(t, err)

	assert.Equal(t, "Last 7 Days", summary.Period)
	assert.Equal(t, 1, summary.SessionCount)
	assert.Equal(t, 25, summary.TotalMinutes)
}

func TestSummary_ByTag(t *testing.T) {
	b, gdb := newTestBuilder(t)

	now := time.Now()
	seedCompleted(t, gdb, "docs work", now.Add(-4*time.Hour), 60, "docs")
	seedCompleted(t, gdb, "review work", now.Add(-2*time.Hour), 40, "review")

	summary, err := b.Summary(Options{ByTag: true})
	require.NoError(t, err)

	assert.Equal(t, 100, summary.TotalMinutes)
	require.Len(t, summary.ByTag, 2)
	assert.Empty(t, summary.Recent)

	// Ordered by total minutes descending
	assert.Equal(t, "docs", summary.ByTag[0].Tag)
	assert.Equal(t, 60, summary.ByTag[0].Minutes)
	assert.InDelta(t, 60.0, summary.ByTag[0].Percent, 0.01)

	assert.Equal(t, "review", summary.ByTag[1].Tag)
	assert.InDelta(t, 40.0, summary.ByTag[1].Percent, 0.01)

	// Every session tagged, so the shares sum to 100%
	assert.InDelta(t, 100.0, summary.ByTag[0].Percent+summary.ByTag[1].Percent, 0.01)
}

func TestSummary_ByTagZeroTotal(t *testing.T) {
	b, gdb := newTestBuilder(t)

	seedCompleted(t, gdb, "instant", time.Now().Add(-time.Minute), 0, "quick")

	summary, err := b.Summary(Options{ByTag: true})
	require.NoError(t, err)

	require.Len(t, summary.ByTag, 1)
	assert.Zero(t, summary.ByTag[0].Percent, "zero period total must not divide by zero")
}

func TestSummary_RecentCapAndTruncation(t *testing.T) {
	b, gdb := newTestBuilder(t)

	now := time.Now()
	long := strings.Repeat("x", 80)
	for i := 0; i < 12; i++ {
		seedCompleted(t, gdb, long, now.Add(-time.Duration(i+1)*time.Hour), 10)
	}

	summary, err := b.Summary(Options{})
	require.NoError(t, err)

	assert.Equal(t, 12, summary.SessionCount)
	require.Len(t, summary.Recent, 10)
	assert.Len(t, summary.Recent[0].Description, 40)
}

func TestSummary_ExplicitRange(t *testing.T) {
	b, gdb := newTestBuilder(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)

	seedCompleted(t, gdb, "inside", start.Add(48*time.Hour), 20)
	seedCompleted(t, gdb, "outside", end.Add(48*time.Hour), 20)

	summary, err := b.Summary(Options{StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	assert.Equal(t, "Aug 01 to Aug 15, 2026", summary.Period)
	assert.Equal(t, 1, summary.SessionCount)
}

func TestForDay(t *testing.T) {
	b, gdb := newTestBuilder(t)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	seedCompleted(t, gdb, "morning", midnight.Add(9*time.Hour), 45, "docs")
	seedCompleted(t, gdb, "afternoon", midnight.Add(14*time.Hour), 30)
	seedCompleted(t, gdb, "yesterday", midnight.Add(-2*time.Hour), 60)
	seedActive(t, gdb, "running", midnight.Add(16*time.Hour))

	day, err := b.ForDay(now)
	require.NoError(t, err)

	assert.Equal(t, 2, day.SessionCount)
	assert.Equal(t, 75, day.TotalMinutes)
	require.Len(t, day.Sessions, 2)

	// Full descriptions, time ranges and tags survive into the day report
	assert.Equal(t, "afternoon", day.Sessions[0].Description)
	assert.NotNil(t, day.Sessions[0].EndTime)
	assert.Equal(t, []string{"docs"}, day.Sessions[1].Tags)
}

func TestPeriodDescription(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		days  int
		start *time.Time
		end   *time.Time
		want  string
	}{
		{"today", 1, nil, nil, "Today"},
		{"week", 7, nil, nil, "Last 7 Days"},
		{"month", 30, nil, nil, "Last 30 Days"},
		{"range", 0, &start, &end, "Jan 05 to Feb 10, 2026"},
		{"all time", 0, nil, nil, "All Time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, periodDescription(tt.days, tt.start, tt.end))
		})
	}
}
