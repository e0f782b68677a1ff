// Package preferences provides typed access to the persisted user
// preferences.
package preferences

import (
	"encoding/json"
	"errors"
	"fmt"

	"rimeskin/internal/locale"
	"rimeskin/internal/prefs"
	"rimeskin/internal/scheme"
)

// Page backgrounds for the preview.
const (
	BackgroundLight = "light"
	BackgroundDark  = "dark"
)

var (
	// ErrInvalidValue is returned when a preference value is out of range.
	ErrInvalidValue = errors.New("invalid preference value")

	// ErrCorrupt is returned when a stored JSON preference cannot be decoded.
	ErrCorrupt = errors.New("corrupt stored preference")
)

// Service wraps a prefs.Store with typed getters that supply defaults.
type Service struct {
	store prefs.Store
}

// NewService creates a new preferences service.
func NewService(store prefs.Store) *Service {
	return &Service{store: store}
}

// Close releases store resources.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *Service) get(key string) (string, bool, error) {
	if s.store == nil {
		return "", false, nil
	}
	return s.store.Get(key)
}

func (s *Service) set(key, value string) error {
	if s.store == nil {
		return nil
	}
	return s.store.Set(key, value)
}

// Platform returns the stored platform, defaulting to weasel. An unreadable
// stored value also yields the default.
func (s *Service) Platform() (scheme.Platform, error) {
	v, ok, err := s.get(prefs.KeyPlatform)
	if err != nil || !ok {
		return scheme.DefaultPlatform, err
	}
	p, perr := scheme.ParsePlatform(v)
	if perr != nil {
		return scheme.DefaultPlatform, nil
	}
	return p, nil
}

// SetPlatform persists the platform.
func (s *Service) SetPlatform(p scheme.Platform) error {
	return s.set(prefs.KeyPlatform, string(p))
}

// PageBackground returns "light" or "dark", defaulting to light.
func (s *Service) PageBackground() (string, error) {
	v, ok, err := s.get(prefs.KeyPageBackground)
	if err != nil || !ok || (v != BackgroundLight && v != BackgroundDark) {
		return BackgroundLight, err
	}
	return v, nil
}

// SetPageBackground persists the page background.
func (s *Service) SetPageBackground(v string) error {
	if v != BackgroundLight && v != BackgroundDark {
		return fmt.Errorf("preferences: pageBackground %q: want light or dark: %w", v, ErrInvalidValue)
	}
	return s.set(prefs.KeyPageBackground, v)
}

// PageLanguage returns the stored interface language, falling back to the
// process locale.
func (s *Service) PageLanguage() (string, error) {
	v, ok, err := s.get(prefs.KeyPageLanguage)
	if err != nil || !ok || (v != locale.Simplified && v != locale.Traditional) {
		return locale.Detect(), err
	}
	return v, nil
}

// SetPageLanguage persists the interface language.
func (s *Service) SetPageLanguage(v string) error {
	if v != locale.Simplified && v != locale.Traditional {
		return fmt.Errorf("preferences: pageLanguage %q: want %s or %s: %w",
			v, locale.Simplified, locale.Traditional, ErrInvalidValue)
	}
	return s.set(prefs.KeyPageLanguage, v)
}

// Saved returns the saved scheme list in insertion order.
func (s *Service) Saved() ([]scheme.Saved, error) {
	v, ok, err := s.get(prefs.KeySaved)
	if err != nil || !ok || v == "" {
		return []scheme.Saved{}, err
	}
	var saved []scheme.Saved
	if err := json.Unmarshal([]byte(v), &saved); err != nil {
		return nil, fmt.Errorf("preferences: decode saved schemes: %v: %w", err, ErrCorrupt)
	}
	if saved == nil {
		saved = []scheme.Saved{}
	}
	return saved, nil
}

// SetSaved persists the saved scheme list.
func (s *Service) SetSaved(saved []scheme.Saved) error {
	if saved == nil {
		saved = []scheme.Saved{}
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("preferences: encode saved schemes: %w", err)
	}
	return s.set(prefs.KeySaved, string(data))
}

// WorkingScheme returns the snapshot of the scheme being edited, or nil if
// none has been stored.
func (s *Service) WorkingScheme() (scheme.Snapshot, error) {
	v, ok, err := s.get(prefs.KeyScheme)
	if err != nil || !ok || v == "" {
		return nil, err
	}
	var snap scheme.Snapshot
	if err := json.Unmarshal([]byte(v), &snap); err != nil {
		return nil, fmt.Errorf("preferences: decode working scheme: %v: %w", err, ErrCorrupt)
	}
	return snap, nil
}

// SetWorkingScheme persists the snapshot of the scheme being edited.
func (s *Service) SetWorkingScheme(snap scheme.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("preferences: encode working scheme: %w", err)
	}
	return s.set(prefs.KeyScheme, string(data))
}

// Keys lists the preference keys that can be read by name, in display order.
func Keys() []string {
	return []string{prefs.KeyPlatform, prefs.KeyPageBackground, prefs.KeyPageLanguage, prefs.KeySaved}
}

// Get returns the effective value of the preference named key in its
// display form. The saved list is rendered as JSON.
func (s *Service) Get(key string) (string, error) {
	switch key {
	case prefs.KeyPlatform:
		p, err := s.Platform()
		return string(p), err
	case prefs.KeyPageBackground:
		return s.PageBackground()
	case prefs.KeyPageLanguage:
		return s.PageLanguage()
	case prefs.KeySaved:
		saved, err := s.Saved()
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(saved)
		if err != nil {
			return "", fmt.Errorf("preferences: encode saved schemes: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("preferences: unknown key %q: %w", key, ErrInvalidValue)
}

// Set validates and stores a scalar preference by name. The saved list is
// managed through the session and cannot be set directly.
func (s *Service) Set(key, value string) error {
	switch key {
	case prefs.KeyPlatform:
		p, err := scheme.ParsePlatform(value)
		if err != nil {
			return err
		}
		return s.SetPlatform(p)
	case prefs.KeyPageBackground:
		return s.SetPageBackground(value)
	case prefs.KeyPageLanguage:
		return s.SetPageLanguage(value)
	}
	return fmt.Errorf("preferences: %q cannot be set: %w", key, ErrInvalidValue)
}
