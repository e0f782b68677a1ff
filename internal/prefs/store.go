// Package prefs provides the key-value store that persists user preferences
// between sessions.
//
// The SQLite-backed store keeps one row per key in the preferences table of
// the shared rimeskin database (see internal/database). MemoryStore keeps
// everything in process and is used for --ephemeral runs and in tests.
package prefs

import (
	"errors"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "prefs")

// Preference keys.
const (
	KeyPlatform       = "platform"
	KeyPageBackground = "pageBackground"
	KeyPageLanguage   = "pageLanguage"
	KeySaved          = "saved"

	// KeyScheme holds the working scheme between CLI invocations.
	KeyScheme = "scheme"
)

// ErrClosed is returned when a store is used after Close.
var ErrClosed = errors.New("prefs: store is closed")

// Store persists string values by key.
type Store interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Close releases store resources.
	Close() error
}
