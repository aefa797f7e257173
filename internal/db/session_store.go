package db

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/devlog/internal/models"
)

// SessionFilter holds the optional filters for querying sessions.
// All set fields combine with logical AND.
type SessionFilter struct {
	StartDate  *time.Time // start_time >=
	EndDate    *time.Time // start_time <=
	Tag        string     // exact tag match, case-insensitive
	SearchTerm string     // substring match on description or notes
	Limit      int        // defaults to 100 when <= 0
}

// TagTotal is one row of the per-tag aggregate
type TagTotal struct {
	Tag          string `json:"tag"`
	SessionCount int    `json:"session_count"`
	TotalMinutes int    `json:"total_minutes"`
}

// tagsInOrder preloads tags in insertion order
func tagsInOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("tags.id ASC")
}

// CreateSession inserts a new active session with the current wall-clock
// time as both start and creation time, one tag row per given tag
// (lower-cased and trimmed), and returns the new session's ID.
// Description emptiness is the caller's job to validate.
func (s *Store) CreateSession(description string, tags []string) (uint, error) {
	now := time.Now()

	session := models.Session{
		Description: description,
		StartTime:   now,
		CreatedAt:   now,
	}
	for _, tag := range tags {
		session.Tags = append(session.Tags, models.Tag{
			Tag: strings.ToLower(strings.TrimSpace(tag)),
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&session).Error
	})
	if err != nil {
		return 0, err
	}

	return session.ID, nil
}

// EndSession stamps end time, duration and notes on the session with the
// given ID. Duration is floor((now - start_time) in seconds / 60), computed
// once here and never recomputed. Returns false when no such session exists.
//
// Calling this on an already-ended session overwrites end_time, duration
// and notes; callers that care must check first.
func (s *Store) EndSession(id uint, notes *string) (bool, error) {
	found := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.First(&session, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		now := time.Now()
		minutes := int(now.Sub(session.StartTime).Seconds()) / 60

		if err := tx.Model(&session).Updates(map[string]interface{}{
			"end_time": now,
			"duration": minutes,
			"notes":    notes,
		}).Error; err != nil {
			return err
		}

		found = true
		return nil
	})

	return found, err
}

// ActiveSession returns the session with no end time, or nil when none
// exists. Should more than one somehow exist, the most recently started
// one wins.
func (s *Store) ActiveSession() (*models.Session, error) {
	var session models.Session

	err := s.db.Where("end_time IS NULL").
		Preload("Tags", tagsInOrder).
		Order("start_time DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No active session is not an error
		}
		return nil, err
	}

	return &session, nil
}

// SessionByID returns a single session with its tags, or nil when not found
func (s *Store) SessionByID(id uint) (*models.Session, error) {
	var session models.Session

	err := s.db.Preload("Tags", tagsInOrder).First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// Sessions returns sessions matching the filter, ordered by start time
// descending, capped at the filter's limit
func (s *Store) Sessions(f SessionFilter) ([]models.Session, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	q := s.db.Model(&models.Session{}).Preload("Tags", tagsInOrder)

	if f.StartDate != nil {
		q = q.Where("start_time >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("start_time <= ?", *f.EndDate)
	}
	if f.Tag != "" {
		tag := strings.ToLower(strings.TrimSpace(f.Tag))
		q = q.Where("id IN (SELECT session_id FROM tags WHERE tag = ?)", tag)
	}
	if f.SearchTerm != "" {
		// SQLite LIKE is case-insensitive for ASCII
		pattern := "%" + f.SearchTerm + "%"
		q = q.Where("description LIKE ? OR notes LIKE ?", pattern, pattern)
	}

	var sessions []models.Session
	if err := q.Order("start_time DESC").Limit(limit).Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// TagSummary aggregates completed sessions (those with a recorded duration)
// by tag within the optional date range, ordered by total minutes descending
func (s *Store) TagSummary(startDate, endDate *time.Time) ([]TagTotal, error) {
	q := s.db.Table("tags").
		Select("tags.tag AS tag, COUNT(DISTINCT sessions.id) AS session_count, COALESCE(SUM(sessions.duration), 0) AS total_minutes").
		Joins("JOIN sessions ON sessions.id = tags.session_id").
		Where("sessions.duration IS NOT NULL")

	if startDate != nil {
		q = q.Where("sessions.start_time >= ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("sessions.start_time <= ?", *endDate)
	}

	var totals []TagTotal
	err := q.Group("tags.tag").Order("total_minutes DESC").Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}

// DeleteSession removes a session and its tags. Returns whether a session
// row was actually deleted.
func (s *Store) DeleteSession(id uint) (bool, error) {
	deleted := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.Tag{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Session{}, id)
		if res.Error != nil {
			return res.Error
		}

		deleted = res.RowsAffected > 0
		return nil
	})

	return deleted, err
}
