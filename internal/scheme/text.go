package scheme

import (
	"fmt"
	"strings"

	"rimeskin/internal/color"
)

// Export renders the scheme as "key: value" lines in the order of Fields.
// Only fields of the active platform with a non-empty effective value are
// written. Colors use the scheme's ColorFormat and the document ends with the
// color_format (weasel) or color_space (squirrel) line.
func (s *Scheme) Export() (string, error) {
	format := s.ColorFormat()
	showPages := s.ShowPages()

	var lines []string
	for i := range Fields {
		f := &Fields[i]
		if !f.AppliesTo(s.active()) {
			continue
		}

		switch f.Kind {
		case KindText:
			if v := f.Effective(s); v != "" {
				lines = append(lines, f.Key+": "+QuoteYAML(v))
			}
		case KindFormat, KindColorSpace:
			lines = append(lines, f.Key+": "+f.Effective(s))
		case KindColor:
			if (f.Key == KeyPrevpageColor || f.Key == KeyNextpageColor) && !showPages {
				continue
			}
			v := f.Effective(s)
			if v == "" {
				continue
			}
			wire, err := color.ExportWire(v, format)
			if err != nil {
				return "", fmt.Errorf("scheme: export %s: %w", f.Key, err)
			}
			lines = append(lines, f.Key+": "+wire)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// Import replaces the scheme's overrides with the ones in text.
//
// Everything from the first '#' on a line is a comment, so colors must be in
// wire form ("0x..."). Lines that do not split into exactly one non-empty key
// and value around ':' are ignored, as are unknown keys. Colors are read in
// the document's color_format (abgr when missing or invalid) no matter where
// that line appears.
//
// A color that fails to parse aborts the import and leaves the scheme as it
// was.
func (s *Scheme) Import(text string) error {
	keys, values := parseDocument(text)

	format := color.DefaultFormat
	if v, ok := values[KeyColorFormat]; ok {
		if f := color.Format(v); f.Valid() {
			format = f
		} else {
			log.WithField("value", v).Debug("ignoring invalid color_format")
		}
	}

	next := &Scheme{Platform: s.Platform}
	next.Restore()
	next.Weasel.ColorFormat = format

	for _, key := range keys {
		value := values[key]
		if value == "" {
			continue
		}
		f := lookupExact(key)
		if f == nil {
			log.WithField("key", key).Debug("ignoring unknown key")
			continue
		}

		switch f.Kind {
		case KindText, KindColorSpace:
			f.set(next, value)
		case KindColor:
			hexa, err := color.ImportWire(value, format)
			if err != nil {
				return fmt.Errorf("scheme: import %s: %w", key, err)
			}
			f.set(next, hexa)
		}
	}

	*s = *next
	return nil
}

// parseDocument splits text into key/value pairs. keys preserves first
// appearance order; a repeated key keeps its last value.
func parseDocument(text string) ([]string, map[string]string) {
	var keys []string
	values := make(map[string]string)

	for n, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		var parts []string
		for _, p := range strings.Split(line, ":") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) != 2 {
			if len(parts) > 0 {
				log.WithField("line", n+1).Debug("dropping malformed line")
			}
			continue
		}

		key := parts[0]
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = TrimQuotes(parts[1])
	}
	return keys, values
}

// QuoteYAML renders s as a YAML single-quoted scalar.
func QuoteYAML(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// TrimQuotes trims whitespace and then one leading and one trailing quote
// character (single or double). Doubled quotes inside are left as they are.
func TrimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '\'' || s[n-1] == '"') {
		s = s[:n-1]
	}
	return s
}
