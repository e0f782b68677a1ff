package scheme

import (
	"encoding/json"
	"fmt"

	"rimeskin/internal/color"
)

// Snapshot holds the populated raw fields of a scheme keyed by field key.
// Derived values are never included.
type Snapshot map[string]string

// Snapshot captures every non-empty stored field on both platforms, along
// with name, author, color_format and color_space.
func (s *Scheme) Snapshot() Snapshot {
	snap := make(Snapshot)
	for i := range Fields {
		if v := Fields[i].Raw(s); v != "" {
			snap[Fields[i].Key] = v
		}
	}
	return snap
}

// Overrides counts the colors and text fields in snap. color_format and
// color_space are always populated and are not counted.
func (snap Snapshot) Overrides() int {
	n := 0
	for key := range snap {
		if f := lookupExact(key); f != nil && (f.Kind == KindColor || f.Kind == KindText) {
			n++
		}
	}
	return n
}

// Apply restores the scheme and then overlays snap. Unknown keys are
// ignored and invalid values are skipped.
func (s *Scheme) Apply(snap Snapshot) {
	s.Restore()
	for key, value := range snap {
		f := lookupExact(key)
		if f == nil || value == "" {
			continue
		}
		if err := f.validate(value); err != nil {
			log.WithError(err).WithField("key", key).Warn("skipping invalid stored value")
			continue
		}
		f.set(s, value)
	}
}

// validate checks a stored raw value. Stored colors must already be in
// canonical form.
func (f *Field) validate(v string) error {
	switch f.Kind {
	case KindColor:
		c, err := color.ParseHexa(v)
		if err != nil {
			return err
		}
		if c.Hexa() != v {
			return fmt.Errorf("scheme: %s: %q is not canonical: %w", f.Key, v, color.ErrInvalidColorFormat)
		}
	case KindFormat:
		if !color.Format(v).Valid() {
			return fmt.Errorf("scheme: %s: unknown format %q: %w", f.Key, v, color.ErrInvalidColorFormat)
		}
	}
	return nil
}

// Saved is a snapshot stored for later recall.
//
// It encodes to JSON as one flat object, {"id": "...", "text_color": "..."}.
type Saved struct {
	ID     string
	Values Snapshot
}

// Name returns the saved scheme's name, if any.
func (s Saved) Name() string { return s.Values[KeyName] }

func (s Saved) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(s.Values)+1)
	for k, v := range s.Values {
		m[k] = v
	}
	m["id"] = s.ID
	return json.Marshal(m)
}

func (s *Saved) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	s.ID = m["id"]
	delete(m, "id")
	s.Values = Snapshot(m)
	return nil
}
