package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rimeskin/internal/database"
)

// SQLiteStore implements Store backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens the store at the default database path.
func Open() (*SQLiteStore, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a store in the SQLite database at path.
// The parent directory is created if it does not exist.
func OpenAt(path string) (*SQLiteStore, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("path", path).Debug("opened preferences database")
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("prefs: migration failed: %w", err)
	}
	return nil
}

// Get returns the value stored under key.
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("prefs: query %s failed: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("prefs: upsert %s failed: %w", key, err)
	}
	log.WithField("key", key).Debug("stored preference")
	return nil
}

// Close releases database resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
