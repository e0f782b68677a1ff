// Package session ties one working scheme to the saved scheme list and the
// persisted preferences.
//
// A Session is single-threaded; callers must not share one across
// goroutines.
package session

import (
	"errors"
	"fmt"

	"rimeskin/internal/scheme"
	"rimeskin/internal/services/preferences"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "session")

// Session is one editing session.
type Session struct {
	prefs  *preferences.Service
	scheme *scheme.Scheme
	saved  []scheme.Saved

	// newID generates ids for saved schemes.
	newID func() string
}

// Open loads the platform, the saved list and the working scheme from prefs.
// A saved list or working scheme that cannot be decoded is logged and
// replaced by an empty one; it is overwritten on the next save or commit.
func Open(prefs *preferences.Service) (*Session, error) {
	platform, err := prefs.Platform()
	if err != nil {
		return nil, fmt.Errorf("session: load platform: %w", err)
	}
	saved, err := prefs.Saved()
	if errors.Is(err, preferences.ErrCorrupt) {
		log.WithError(err).Warn("discarding unreadable saved schemes")
		saved, err = []scheme.Saved{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: load saved schemes: %w", err)
	}
	snap, err := prefs.WorkingScheme()
	if errors.Is(err, preferences.ErrCorrupt) {
		log.WithError(err).Warn("discarding unreadable working scheme")
		snap, err = nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: load working scheme: %w", err)
	}

	s := scheme.New()
	s.Platform = platform
	if snap != nil {
		s.Apply(snap)
	}

	log.WithFields(logrus.Fields{
		"platform": platform,
		"saved":    len(saved),
	}).Debug("session opened")

	return &Session{
		prefs:  prefs,
		scheme: s,
		saved:  saved,
		newID:  func() string { return uuid.NewString() },
	}, nil
}

// Scheme returns the working scheme. Mutations are persisted by Commit.
func (s *Session) Scheme() *scheme.Scheme { return s.scheme }

// Preferences returns the preferences service the session was opened with.
func (s *Session) Preferences() *preferences.Service { return s.prefs }

// SetPlatform switches the working scheme's platform and persists it.
func (s *Session) SetPlatform(p scheme.Platform) error {
	s.scheme.Platform = p
	if err := s.prefs.SetPlatform(p); err != nil {
		return fmt.Errorf("session: save platform: %w", err)
	}
	return nil
}

// Saved returns a copy of the saved scheme list in insertion order.
func (s *Session) Saved() []scheme.Saved {
	out := make([]scheme.Saved, len(s.saved))
	copy(out, s.saved)
	return out
}

// Find returns the saved scheme with id.
func (s *Session) Find(id string) (scheme.Saved, bool) {
	for _, sv := range s.saved {
		if sv.ID == id {
			return sv, true
		}
	}
	return scheme.Saved{}, false
}

// SaveScheme appends a snapshot of the working scheme to the saved list and
// returns its new id.
func (s *Session) SaveScheme() (string, error) {
	entry := scheme.Saved{ID: s.newID(), Values: s.scheme.Snapshot()}
	s.saved = append(s.saved, entry)
	if err := s.prefs.SetSaved(s.saved); err != nil {
		s.saved = s.saved[:len(s.saved)-1]
		return "", fmt.Errorf("session: save scheme: %w", err)
	}
	log.WithField("id", entry.ID).Debug("scheme saved")
	return entry.ID, nil
}

// RemoveSavedScheme drops the first saved scheme with id. An unknown id is
// not an error.
func (s *Session) RemoveSavedScheme(id string) error {
	for i, sv := range s.saved {
		if sv.ID != id {
			continue
		}
		next := make([]scheme.Saved, 0, len(s.saved)-1)
		next = append(next, s.saved[:i]...)
		next = append(next, s.saved[i+1:]...)
		if err := s.prefs.SetSaved(next); err != nil {
			return fmt.Errorf("session: remove saved scheme: %w", err)
		}
		s.saved = next
		log.WithField("id", id).Debug("saved scheme removed")
		return nil
	}
	return nil
}

// ImportSavedScheme restores the working scheme and overlays the saved
// scheme with id. It reports false, leaving the working scheme untouched,
// when no saved scheme has that id.
func (s *Session) ImportSavedScheme(id string) (bool, error) {
	sv, ok := s.Find(id)
	if !ok {
		return false, nil
	}
	s.scheme.Apply(sv.Values)
	if err := s.Commit(); err != nil {
		return true, err
	}
	return true, nil
}

// Commit persists the working scheme.
func (s *Session) Commit() error {
	if err := s.prefs.SetWorkingScheme(s.scheme.Snapshot()); err != nil {
		return fmt.Errorf("session: save working scheme: %w", err)
	}
	return nil
}
