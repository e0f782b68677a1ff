package scheme

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshot_OnlyPopulatedFields(t *testing.T) {
	s := New()
	s.Name = "Ink"
	s.Base.TextColor = "#112233ff"
	s.Weasel.ShadowColor = "#00000080"
	s.Squirrel.PreeditBackColor = "#445566ff"

	want := Snapshot{
		KeyName:             "Ink",
		KeyTextColor:        "#112233ff",
		KeyShadowColor:      "#00000080",
		KeyPreeditBackColor: "#445566ff",
		KeyColorFormat:      "abgr",
		KeyColorSpace:       "srgb",
	}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Overrides(t *testing.T) {
	s := New()
	if got := s.Snapshot().Overrides(); got != 0 {
		t.Errorf("empty scheme has %d overrides, want 0", got)
	}

	s.Name = "Ink"
	s.Base.TextColor = "#112233ff"
	s.Squirrel.PreeditBackColor = "#445566ff"
	s.Weasel.ColorFormat = "rgba"
	if got := s.Snapshot().Overrides(); got != 3 {
		t.Errorf("Overrides() = %d, want 3", got)
	}
}

func TestApply_RoundTripsSnapshot(t *testing.T) {
	src := New()
	src.Platform = Squirrel
	src.Author = "a"
	src.Base.HilitedBackColor = "#abcdef01"
	src.Weasel.ColorFormat = "rgba"
	src.Squirrel.ColorSpace = DisplayP3

	dst := New()
	dst.Base.BackColor = "#000000ff"
	dst.Apply(src.Snapshot())

	if dst.Platform != Weasel {
		t.Errorf("Apply changed platform to %q", dst.Platform)
	}
	if diff := cmp.Diff(src.Snapshot(), dst.Snapshot()); diff != "" {
		t.Errorf("applied snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_SkipsInvalidValues(t *testing.T) {
	s := New()
	s.Apply(Snapshot{
		KeyTextColor:   "#FFF",
		KeyBackColor:   "not a color",
		KeyBorderColor: "#010203ff",
		KeyColorFormat: "bgra",
		"bogus":        "#ffffffff",
	})

	want := Snapshot{
		KeyBorderColor: "#010203ff",
		KeyColorFormat: "abgr",
		KeyColorSpace:  "srgb",
	}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSaved_JSONIsFlat(t *testing.T) {
	saved := Saved{
		ID: "abc",
		Values: Snapshot{
			KeyName:      "Ink",
			KeyTextColor: "#112233ff",
		},
	}

	data, err := json.Marshal(saved)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	want := map[string]string{"id": "abc", "name": "Ink", "text_color": "#112233ff"}
	if diff := cmp.Diff(want, flat); diff != "" {
		t.Errorf("encoded object mismatch (-want +got):\n%s", diff)
	}

	var back Saved
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(saved, back); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
	if back.Name() != "Ink" {
		t.Errorf("Name() = %q", back.Name())
	}
}

func TestSaved_UnmarshalRejectsNonObject(t *testing.T) {
	var s Saved
	if err := json.Unmarshal([]byte(`[1,2]`), &s); err == nil {
		t.Error("expected error for non-object JSON")
	}
}
