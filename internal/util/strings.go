package util

import "strings"

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeFieldKey normalizes a scheme field name typed by a user. Dashes
// are accepted in place of underscores ("text-color" → "text_color").
func NormalizeFieldKey(s string) string {
	return strings.ReplaceAll(NormalizeKey(s), "-", "_")
}
