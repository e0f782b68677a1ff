// Package database opens the SQLite file that backs rimeskin's persisted
// preferences.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	appDir = "rimeskin"
	dbFile = "rimeskin.db"

	// EnvPath names the environment variable that overrides the database
	// location.
	EnvPath = "RIMESKIN_DATABASE"
)

var pathOverride string

// SetPath overrides the default database path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// DefaultPath returns the database path. In order of precedence: the
// SetPath override, $RIMESKIN_DATABASE, then rimeskin.db in the user config
// directory.
func DefaultPath() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("database: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), nil
}

// Sources a database path can come from, as reported by Resolve.
const (
	SourceConfig  = "config"
	SourceEnv     = "$" + EnvPath
	SourceDefault = "default"
)

// Resolve returns the database path for a configured value and where it came
// from: the configured value itself, $RIMESKIN_DATABASE, or the user config
// directory. Any SetPath override is ignored.
func Resolve(configured string) (path, source string, err error) {
	if configured != "" {
		return configured, SourceConfig, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, SourceEnv, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", "", fmt.Errorf("database: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, dbFile), SourceDefault, nil
}

// CheckWritable reports whether a database can be created at path. The
// parent directory is created if missing and a scratch file is written and
// removed there. An existing database file is opened for writing without
// being modified.
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("database: cannot create %s: %w", dir, err)
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("database: %s is a directory", path)
		}
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("database: %s is not writable: %w", path, err)
		}
		return f.Close()
	}

	f, err := os.CreateTemp(dir, ".rimeskin-check-*")
	if err != nil {
		return fmt.Errorf("database: %s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Open opens a SQLite database at the provided path, creating the parent
// directory if needed.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("database: failed to create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("database: failed to open database: %w", err)
	}
	return db, nil
}
