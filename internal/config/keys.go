package config

import (
	"errors"
	"fmt"
	"strings"

	"rimeskin/internal/util"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "database-path").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate, if non-nil, rejects values Set must not receive.
	Validate func(value string) error
}

// Key names.
const (
	KeyDatabasePath = "database-path"
	KeyPreview      = "preview"
)

// ErrInvalidValue is returned by KeySpec.Validate.
var ErrInvalidValue = errors.New("invalid config value")

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        KeyDatabasePath,
		Description: "Location of the preferences database (overrides $RIMESKIN_DATABASE)",
		Get:         func(cfg *Config) string { return cfg.DatabasePath },
		Set:         func(cfg *Config, v string) { cfg.DatabasePath = v },
	},
	{
		Name:        KeyPreview,
		Description: "When to render color swatches: auto, always or never",
		Get:         func(cfg *Config) string { return cfg.PreviewMode() },
		Set:         func(cfg *Config, v string) { cfg.Preview = strings.ToLower(strings.TrimSpace(v)) },
		Validate: func(v string) error {
			switch strings.ToLower(strings.TrimSpace(v)) {
			case PreviewAuto, PreviewAlways, PreviewNever:
				return nil
			}
			return fmt.Errorf("config: preview %q: want auto, always or never: %w", v, ErrInvalidValue)
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := util.NormalizeKey(name)
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
