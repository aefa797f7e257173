package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/balkashynov/devlog/internal/db"
	"github.com/balkashynov/devlog/internal/models"
)

// Expected, recoverable conditions reported directly to the user
var (
	ErrAlreadyActive    = errors.New("session already in progress")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrNoActiveSession  = errors.New("no active session to stop")
)

// Session is the presentation-ready view of a tracked session, with the
// tag relation denormalized into an ordered list of strings
type Session struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Duration    *int       `json:"duration,omitempty"` // minutes
	Notes       string     `json:"notes,omitempty"`
	Tags        []string   `json:"tags"`
}

// Active reports whether the session is still running
func (s *Session) Active() bool {
	return s.EndTime == nil
}

func fromModel(m *models.Session) *Session {
	view := &Session{
		ID:          m.ID,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Duration:    m.Duration,
		Tags:        m.TagNames(),
	}
	if m.Notes != nil {
		view.Notes = *m.Notes
	}
	return view
}

// Manager enforces the session lifecycle rules on top of the store:
// the single-active-session invariant, description validation and tag
// normalization.
//
// The active-session check is check-then-act against the database, so two
// processes racing on Start can both slip through. devlog is a single-user,
// single-process tool; this is a documented limitation, not a bug to fix
// with locking.
type Manager struct {
	store *db.Store
}

// NewManager creates a manager on top of the given store
func NewManager(store *db.Store) *Manager {
	return &Manager{store: store}
}

// normalizeTags trims and lower-cases tags, drops the ones that are empty
// after trimming, and collapses duplicates keeping first-seen order
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	cleaned := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		cleaned = append(cleaned, tag)
	}

	return cleaned
}

// Start begins a new work session. Fails with ErrAlreadyActive when a
// session is running and ErrEmptyDescription when the trimmed description
// is blank.
func (m *Manager) Start(description string, tags []string) (*Session, error) {
	active, err := m.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyActive, active.Description)
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	id, err := m.store.CreateSession(description, normalizeTags(tags))
	if err != nil {
		return nil, err
	}

	created, err := m.store.SessionByID(id)
	if err != nil {
		return nil, err
	}

	return fromModel(created), nil
}

// Stop ends the currently active session, stamping its duration and the
// optional notes. The returned view carries the persisted duration; there
// is no second wall-clock computation that could drift from the stored
// value. Fails with ErrNoActiveSession when nothing is running, which also
// makes a second Stop call fail rather than overwrite.
func (m *Manager) Stop(notes string) (*Session, error) {
	active, err := m.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveSession
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	ok, err := m.store.EndSession(active.ID, notesPtr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoActiveSession
	}

	stopped, err := m.store.SessionByID(active.ID)
	if err != nil {
		return nil, err
	}

	return fromModel(stopped), nil
}

// Current returns the active session, or nil when none exists
func (m *Manager) Current() (*Session, error) {
	active, err := m.store.ActiveSession()
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	return fromModel(active), nil
}

// ListOptions selects the sessions to list. Today takes precedence over
// Days when both are set.
type ListOptions struct {
	Days  int
	Today bool
	Tag   string
	Limit int
}

// dateRange resolves today/days into a concrete start/end pair
func dateRange(days int, today bool) (*time.Time, *time.Time) {
	now := time.Now()

	if today {
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &start, &now
	}
	if days > 0 {
		start := now.AddDate(0, 0, -days)
		return &start, &now
	}
	return nil, nil
}

// List returns past sessions matching the options, most recent first
func (m *Manager) List(opts ListOptions) ([]Session, error) {
	start, end := dateRange(opts.Days, opts.Today)

	records, err := m.store.Sessions(db.SessionFilter{
		StartDate: start,
		EndDate:   end,
		Tag:       opts.Tag,
		Limit:     opts.Limit,
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(records))
	for i := range records {
		sessions = append(sessions, *fromModel(&records[i]))
	}
	return sessions, nil
}

// Search returns sessions whose description or notes contain the term
// (case-insensitive), most recent first
func (m *Manager) Search(term string, limit int) ([]Session, error) {
	records, err := m.store.Sessions(db.SessionFilter{
		SearchTerm: term,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(records))
	for i := range records {
		sessions = append(sessions, *fromModel(&records[i]))
	}
	return sessions, nil
}

// Delete removes a session by ID, cascading tag deletion. Returns whether
// a session was actually removed.
func (m *Manager) Delete(id uint) (bool, error) {
	return m.store.DeleteSession(id)
}

// Stats summarizes completed sessions in the selected period. The count
// of all sessions, including a still-active one, is reported separately.
type Stats struct {
	TotalMinutes         int     `json:"total_minutes"`
	SessionCount         int     `json:"session_count"`
	AvgMinutes           float64 `json:"avg_minutes"`
	TotalIncludingActive int     `json:"total_sessions_including_active"`
}

// GetStats calculates session statistics for the selected period
func (m *Manager) GetStats(days int, today bool) (*Stats, error) {
	sessions, err := m.List(ListOptions{Days: days, Today: today, Limit: 1000})
	if err != nil {
		return nil, err
	}

	stats := &Stats{TotalIncludingActive: len(sessions)}
	for _, s := range sessions {
		if s.Duration == nil {
			continue
		}
		stats.TotalMinutes += *s.Duration
		stats.SessionCount++
	}
	if stats.SessionCount > 0 {
		stats.AvgMinutes = float64(stats.TotalMinutes) / float64(stats.SessionCount)
	}

	return stats, nil
}
