package report

import (
	"fmt"
	"time"

	"github.com/balkashynov/devlog/internal/db"
	"github.com/balkashynov/devlog/internal/models"
)

const (
	// recentLimit caps the recent-sessions list in a summary
	recentLimit = 10
	// descriptionWidth is the fixed display width for session descriptions
	descriptionWidth = 40
	// fetchLimit bounds how many sessions a report will ever scan
	fetchLimit = 1000
)

// Builder assembles aggregate summaries from store query results. It
// persists nothing; every report is a pure function of the store state
// and the requested period.
type Builder struct {
	store *db.Store
}

// NewBuilder creates a report builder backed by the given store
func NewBuilder(store *db.Store) *Builder {
	return &Builder{store: store}
}

// Options selects the report period. Exactly one of Days or the
// StartDate/EndDate pair should be set; neither means all time.
type Options struct {
	Days      int
	StartDate *time.Time
	EndDate   *time.Time
	ByTag     bool
}

// TagShare is one tag's slice of a summary period
type TagShare struct {
	Tag      string  `json:"tag"`
	Sessions int     `json:"sessions"`
	Minutes  int     `json:"minutes"`
	Percent  float64 `json:"percent"` // share of the period total, 0 when the total is 0
}

// Entry is one completed session as it appears in a report
type Entry struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Minutes     int        `json:"minutes"`
	Tags        []string   `json:"tags"`
	Notes       string     `json:"notes,omitempty"`
}

// Summary aggregates completed sessions over a period
type Summary struct {
	Period       string     `json:"period"`
	SessionCount int        `json:"session_count"`
	TotalMinutes int        `json:"total_minutes"`
	AvgMinutes   int        `json:"avg_minutes"`
	ByTag        []TagShare `json:"by_tag,omitempty"`
	Recent       []Entry    `json:"recent,omitempty"`
}

// DayReport lists every completed session of one calendar day
type DayReport struct {
	Date         time.Time `json:"date"`
	SessionCount int       `json:"session_count"`
	TotalMinutes int       `json:"total_minutes"`
	Sessions     []Entry   `json:"sessions"`
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width]
}

func toEntry(m *models.Session, descWidth int) Entry {
	e := Entry{
		ID:          m.ID,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Tags:        m.TagNames(),
	}
	if descWidth > 0 {
		e.Description = truncate(e.Description, descWidth)
	}
	if m.Duration != nil {
		e.Minutes = *m.Duration
	}
	if m.Notes != nil {
		e.Notes = *m.Notes
	}
	return e
}

// completedOnly filters out sessions without a recorded duration
func completedOnly(sessions []models.Session) []models.Session {
	completed := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Duration != nil {
			completed = append(completed, s)
		}
	}
	return completed
}

// Summary builds an aggregate summary for the period selected by opts.
// With ByTag set it breaks the total down per tag with percentage shares;
// otherwise it lists the most recent completed sessions.
func (b *Builder) Summary(opts Options) (*Summary, error) {
	start, end := opts.StartDate, opts.EndDate
	if opts.Days > 0 {
		now := time.Now()
		from := now.AddDate(0, 0, -opts.Days)
		start, end = &from, &now
	}

	records, err := b.store.Sessions(db.SessionFilter{
		StartDate: start,
		EndDate:   end,
		Limit:     fetchLimit,
	})
	if err != nil {
		return nil, err
	}

	completed := completedOnly(records)

	summary := &Summary{
		Period:       periodDescription(opts.Days, start, end),
		SessionCount: len(completed),
	}
	for _, s := range completed {
		summary.TotalMinutes += *s.Duration
	}
	if len(completed) > 0 {
		summary.AvgMinutes = summary.TotalMinutes / len(completed)
	}

	if opts.ByTag {
		totals, err := b.store.TagSummary(start, end)
		if err != nil {
			return nil, err
		}
		for _, t := range totals {
			share := TagShare{
				Tag:      t.Tag,
				Sessions: t.SessionCount,
				Minutes:  t.TotalMinutes,
			}
			if summary.TotalMinutes > 0 {
				share.Percent = float64(t.TotalMinutes) / float64(summary.TotalMinutes) * 100
			}
			summary.ByTag = append(summary.ByTag, share)
		}
		return summary, nil
	}

	for i := range completed {
		if i >= recentLimit {
			break
		}
		summary.Recent = append(summary.Recent, toEntry(&completed[i], descriptionWidth))
	}

	return summary, nil
}

// ForDay builds a detailed report for one calendar day, local midnight to
// the next local midnight, listing every completed session with its time
// range and notes
func (b *Builder) ForDay(date time.Time) (*DayReport, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	records, err := b.store.Sessions(db.SessionFilter{
		StartDate: &start,
		EndDate:   &end,
		Limit:     fetchLimit,
	})
	if err != nil {
		return nil, err
	}

	completed := completedOnly(records)

	day := &DayReport{
		Date:         start,
		SessionCount: len(completed),
	}
	for i := range completed {
		day.TotalMinutes += *completed[i].Duration
		day.Sessions = append(day.Sessions, toEntry(&completed[i], 0))
	}

	return day, nil
}

// periodDescription maps the period selection to its fixed human label.
// This is a lookup, not elapsed-time math.
func periodDescription(days int, start, end *time.Time) string {
	switch {
	case days == 1:
		return "Today"
	case days == 7:
		return "Last 7 Days"
	case days == 30:
		return "Last 30 Days"
	case start != nil && end != nil:
		return fmt.Sprintf("%s to %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	default:
		return "All Time"
	}
}
