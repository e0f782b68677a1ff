package scheme

import (
	"errors"
	"testing"

	"rimeskin/internal/color"

	"github.com/google/go-cmp/cmp"
)

func TestSet_Colors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"short hex", "text_color", "#FFF", "#ffffffff"},
		{"six digits", "back_color", "#102030", "#102030ff"},
		{"eight digits", "border_color", "#10203040", "#10203040"},
		{"no hash", "label_color", "abc", "#aabbccff"},
		{"wire in abgr", "shadow_color", "0x80332211", "#11223380"},
		{"dashed key", "hilited-back-color", "#000", "#000000ff"},
		{"upper key", "CANDIDATE_TEXT_COLOR", "#123", "#112233ff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			if err := s.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if got := Lookup(tt.key).Raw(s); got != tt.want {
				t.Errorf("stored %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSet_WireUsesCurrentFormat(t *testing.T) {
	s := New()
	if err := s.Set(KeyColorFormat, "RGBA"); err != nil {
		t.Fatalf("Set color_format failed: %v", err)
	}
	if s.Weasel.ColorFormat != color.FormatRGBA {
		t.Fatalf("ColorFormat = %q", s.Weasel.ColorFormat)
	}
	if err := s.Set(KeyTextColor, "0x11223344"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if s.Base.TextColor != "#11223344" {
		t.Errorf("TextColor = %q", s.Base.TextColor)
	}
}

func TestSet_Errors(t *testing.T) {
	s := New()

	if err := s.Set("nope", "#fff"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown key: got %v, want ErrUnknownField", err)
	}
	if err := s.Set(KeyTextColor, "#ggg"); !errors.Is(err, color.ErrInvalidColorFormat) {
		t.Errorf("bad color: got %v, want ErrInvalidColorFormat", err)
	}
	if err := s.Set(KeyColorFormat, "bgra"); !errors.Is(err, color.ErrInvalidColorFormat) {
		t.Errorf("bad format: got %v, want ErrInvalidColorFormat", err)
	}
	if err := s.Set(KeyColorSpace, "adobe"); !errors.Is(err, ErrInvalidColorSpace) {
		t.Errorf("bad color space: got %v, want ErrInvalidColorSpace", err)
	}
	if s.Base.TextColor != "" {
		t.Errorf("failed Set modified TextColor to %q", s.Base.TextColor)
	}
}

func TestSet_Text(t *testing.T) {
	s := New()
	if err := s.Set(KeyName, "  Ink & Paper "); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if s.Name != "  Ink & Paper " {
		t.Errorf("Name = %q, want raw value", s.Name)
	}
}

func TestUnset(t *testing.T) {
	s := New()
	s.Base.TextColor = "#112233ff"
	s.Weasel.ColorFormat = color.FormatARGB
	s.Squirrel.ColorSpace = DisplayP3

	for _, key := range []string{KeyTextColor, KeyColorFormat, KeyColorSpace} {
		if err := s.Unset(key); err != nil {
			t.Fatalf("Unset(%s) failed: %v", key, err)
		}
	}

	want := Snapshot{KeyColorFormat: "abgr", KeyColorSpace: "srgb"}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if err := s.Unset("nope"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("got %v, want ErrUnknownField", err)
	}
}

func TestRestore_KeepsPlatform(t *testing.T) {
	s := New()
	s.Platform = Squirrel
	s.Name = "x"
	s.Weasel.PrevpageColor = "#ffffffff"

	s.Restore()

	if s.Platform != Squirrel {
		t.Errorf("Platform = %q", s.Platform)
	}
	if s.Name != "" || s.Weasel.PrevpageColor != "" {
		t.Error("Restore left overrides behind")
	}
	if s.Weasel.ColorFormat != color.FormatABGR || s.Squirrel.ColorSpace != SRGB {
		t.Errorf("defaults not reset: %q %q", s.Weasel.ColorFormat, s.Squirrel.ColorSpace)
	}
}

func TestSwitchingPlatformKeepsVariants(t *testing.T) {
	s := New()
	s.Weasel.ShadowColor = "#010101ff"
	s.Squirrel.PreeditBackColor = "#020202ff"

	s.Platform = Squirrel
	s.Platform = Weasel

	if s.ShadowColor() != "#010101ff" {
		t.Errorf("ShadowColor() = %q after round trip", s.ShadowColor())
	}
	if s.Squirrel.PreeditBackColor != "#020202ff" {
		t.Errorf("squirrel variant lost: %q", s.Squirrel.PreeditBackColor)
	}
}

func TestParsePlatform(t *testing.T) {
	for in, want := range map[string]Platform{"weasel": Weasel, " Squirrel ": Squirrel} {
		got, err := ParsePlatform(in)
		if err != nil || got != want {
			t.Errorf("ParsePlatform(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParsePlatform("ibus"); !errors.Is(err, ErrInvalidPlatform) {
		t.Errorf("got %v, want ErrInvalidPlatform", err)
	}
}

func TestParseColorSpace(t *testing.T) {
	for in, want := range map[string]ColorSpace{"display_p3": DisplayP3, "SRGB": SRGB} {
		got, err := ParseColorSpace(in)
		if err != nil || got != want {
			t.Errorf("ParseColorSpace(%q) = %q, %v", in, got, err)
		}
	}
}

func TestFieldsFor(t *testing.T) {
	weasel := FieldsFor(Weasel)
	squirrel := FieldsFor(Squirrel)

	if len(weasel) != 25 {
		t.Errorf("weasel has %d fields, want 25", len(weasel))
	}
	if len(squirrel) != 17 {
		t.Errorf("squirrel has %d fields, want 17", len(squirrel))
	}
	if len(Keys()) != 28 {
		t.Errorf("Keys() has %d entries, want 28", len(Keys()))
	}
	for _, f := range squirrel {
		if f.Platform == Weasel {
			t.Errorf("squirrel fields include weasel-only %s", f.Key)
		}
	}
}

func TestLookup(t *testing.T) {
	if f := Lookup(" Text-Color "); f == nil || f.Key != KeyTextColor {
		t.Errorf("Lookup did not normalize key, got %+v", f)
	}
	if Lookup("missing") != nil {
		t.Error("expected nil for unknown key")
	}
	if lookupExact("Text_Color") != nil {
		t.Error("lookupExact should be case-sensitive")
	}
}
