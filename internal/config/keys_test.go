package config

import (
	"errors"
	"strings"
	"testing"
)

func TestLookup_Exists(t *testing.T) {
	spec := Lookup("database-path")
	if spec == nil {
		t.Fatal("expected to find key 'database-path', got nil")
	}
	if spec.Name != "database-path" {
		t.Errorf("expected Name %q, got %q", "database-path", spec.Name)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	spec := Lookup("DATABASE-PATH")
	if spec == nil {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if spec.Name != "database-path" {
		t.Errorf("expected Name %q, got %q", "database-path", spec.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	spec := Lookup("nonexistent-key")
	if spec != nil {
		t.Errorf("expected nil for unknown key, got %+v", spec)
	}
}

func TestKeys_AllHaveGetAndSet(t *testing.T) {
	for _, k := range Keys {
		if k.Get == nil {
			t.Errorf("key %q has nil Get function", k.Name)
		}
		if k.Set == nil {
			t.Errorf("key %q has nil Set function", k.Name)
		}
		if k.Description == "" {
			t.Errorf("key %q has empty Description", k.Name)
		}
	}
}

func TestKeys_GetSetRoundtrip(t *testing.T) {
	values := map[string]string{
		"database-path": "/tmp/test.db",
		"preview":       "never",
	}
	for _, k := range Keys {
		value, ok := values[k.Name]
		if !ok {
			t.Fatalf("no test value for key %q", k.Name)
		}
		if k.Validate != nil {
			if err := k.Validate(value); err != nil {
				t.Fatalf("key %q: Validate(%q) = %v", k.Name, value, err)
			}
		}
		cfg := &Config{}
		k.Set(cfg, value)
		got := k.Get(cfg)
		if got != value {
			t.Errorf("key %q: Set then Get = %q, want %q", k.Name, got, value)
		}
	}
}

func TestPreview_Validate(t *testing.T) {
	spec := Lookup("preview")
	if spec == nil || spec.Validate == nil {
		t.Fatal("expected preview key with a validator")
	}
	for _, v := range []string{"auto", "ALWAYS", " never "} {
		if err := spec.Validate(v); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", v, err)
		}
	}
	if err := spec.Validate("sometimes"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Validate(sometimes) = %v, want ErrInvalidValue", err)
	}
}

func TestKeyNames(t *testing.T) {
	names := KeyNames()
	if len(names) != len(Keys) {
		t.Fatalf("expected %d names, got %d", len(Keys), len(names))
	}
	for i, name := range names {
		if name != Keys[i].Name {
			t.Errorf("index %d: expected %q, got %q", i, Keys[i].Name, name)
		}
	}
}

func TestKeysHelp_ContainsAllKeys(t *testing.T) {
	help := KeysHelp()
	if !strings.Contains(help, "Available keys:") {
		t.Error("expected 'Available keys:' header in help output")
	}
	for _, k := range Keys {
		if !strings.Contains(help, k.Name) {
			t.Errorf("expected key %q in help output", k.Name)
		}
		if !strings.Contains(help, k.Description) {
			t.Errorf("expected description %q in help output", k.Description)
		}
	}
}
