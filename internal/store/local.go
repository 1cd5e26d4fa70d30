// Package store provides the local settings persistence for guestgate,
// backed by SQLite. It is the key-value collaborator behind the guest
// session's persisted flag.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"guestgate/internal/logging"

	_ "modernc.org/sqlite"
)

// LocalStore is a durable key-value settings store over SQLite.
type LocalStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewLocalStore initializes the SQLite database at the given path.
// Use ":memory:" for an ephemeral store in tests.
func NewLocalStore(path string) (*LocalStore, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &LocalStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// initialize creates the required tables.
func (s *LocalStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize settings schema: %w", err)
	}
	return nil
}

// SetString writes a string setting, replacing any previous value.
func (s *LocalStore) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logging.StoreDebug("Writing setting %s=%q", key, value)

	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		 value = excluded.value,
		 updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to write setting %s: %v", key, err)
		return err
	}
	return nil
}

// GetString reads a string setting. Absent keys return ("", false, nil).
func (s *LocalStore) GetString(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to read setting %s: %v", key, err)
		return "", false, err
	}
	return value, true, nil
}

// SetBool writes a boolean setting.
func (s *LocalStore) SetBool(key string, value bool) error {
	if value {
		return s.SetString(key, "true")
	}
	return s.SetString(key, "false")
}

// GetBool reads a boolean setting. Absent keys default to false.
func (s *LocalStore) GetBool(key string) (bool, error) {
	value, ok, err := s.GetString(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return value == "true", nil
}

// Delete removes a setting. Deleting an absent key is not an error.
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		logging.Get(logging.CategoryStore).Error("Failed to delete setting %s: %v", key, err)
	}
	return err
}

// Path returns the database path the store was opened with.
func (s *LocalStore) Path() string {
	return s.dbPath
}

// Close closes the underlying database.
func (s *LocalStore) Close() error {
	return s.db.Close()
}
