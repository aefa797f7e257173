package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/devlog/internal/models"
)

// Store provides durable CRUD and filtered retrieval over sessions and tags.
// It enforces no business rules beyond referential integrity; the single
// active session invariant lives in the session package.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the default SQLite database location
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".devlog", "devlog.db"), nil
}

// Open opens (or creates) the database at the given path and runs migrations
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create devlog directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := gdb.AutoMigrate(&models.Session{}, &models.Tag{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: gdb}, nil
}

// OpenDefault opens the database at its default location
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}
	return Open(path)
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
