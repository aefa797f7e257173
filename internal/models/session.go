package models

import (
	"time"
)

// Session represents one contiguous period of tracked work
type Session struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Description string     `gorm:"not null" json:"description"`
	StartTime   time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    *int       `json:"duration"` // minutes, stamped once when the session ends
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`

	// Relationships
	Tags []Tag `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE;" json:"tags"`
}

// Active reports whether the session is still running (no recorded end time)
func (s *Session) Active() bool {
	return s.EndTime == nil
}

// TagNames returns the session's tags as plain strings in insertion order
func (s *Session) TagNames() []string {
	names := make([]string, 0, len(s.Tags))
	for _, t := range s.Tags {
		names = append(names, t.Tag)
	}
	return names
}

// Tag represents a normalized (lower-cased, trimmed) label on a session
type Tag struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	SessionID uint   `gorm:"not null;index" json:"session_id"`
	Tag       string `gorm:"not null" json:"tag"`
}
