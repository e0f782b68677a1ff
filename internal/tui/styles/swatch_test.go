package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		hexa string
		page string
		want lipgloss.Color
	}{
		{"opaque", "#ff0000ff", "light", "#ff0000"},
		{"transparent over light", "#ff000000", "light", "#ffffff"},
		{"transparent over dark", "#00000000", "dark", "#1e1e1e"},
		{"half red over white", "#ff000080", "light", "#ff7f7f"},
		{"empty", "", "dark", "#1e1e1e"},
		{"invalid", "nope", "light", "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.hexa, PageColor(tt.page)); got != tt.want {
				t.Errorf("Flatten(%q) = %q, want %q", tt.hexa, got, tt.want)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	if got := Contrast("#ffffff"); got != "#000000" {
		t.Errorf("Contrast(white) = %q, want black", got)
	}
	if got := Contrast("#101010"); got != "#ffffff" {
		t.Errorf("Contrast(near black) = %q, want white", got)
	}
}

func TestSwatch_ContainsLabel(t *testing.T) {
	out := Swatch("#112233ff", PageColor("light"))
	if !strings.Contains(out, "#112233ff") {
		t.Errorf("Swatch output %q missing label", out)
	}
}
