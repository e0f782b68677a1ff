package color

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHexa_RoundTrip(t *testing.T) {
	inputs := []string{
		"#663399ff",
		"#000000ff",
		"#ffffffff",
		"#ff000080",
		"#0b0a09ff",
		"#aa55cc99",
		"#00000000",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c, err := ParseHexa(in)
			if err != nil {
				t.Fatalf("ParseHexa failed: %v", err)
			}
			if c.Hexa() != in {
				t.Errorf("Hexa() = %q, want %q", c.Hexa(), in)
			}
		})
	}
}

func TestParseHexa_WithoutHashAndUppercase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"663399ff", "#663399ff"},
		{"#AABBCCDD", "#aabbccdd"},
	}
	for _, tt := range tests {
		c, err := ParseHexa(tt.in)
		if err != nil {
			t.Fatalf("ParseHexa(%q) failed: %v", tt.in, err)
		}
		if c.Hexa() != tt.want {
			t.Errorf("ParseHexa(%q) = %q, want %q", tt.in, c.Hexa(), tt.want)
		}
	}
}

func TestParseHexa_Layout(t *testing.T) {
	c, err := ParseHexa("#663399ff")
	if err != nil {
		t.Fatalf("ParseHexa failed: %v", err)
	}
	if c != Packed(0xff<<24|0x99<<16|0x33<<8|0x66) {
		t.Errorf("packed = %#08x", uint32(c))
	}
	got := [4]uint8{c.R(), c.G(), c.B(), c.A()}
	if diff := cmp.Diff([4]uint8{0x66, 0x33, 0x99, 0xff}, got); diff != "" {
		t.Errorf("channels mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHexa_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#123", "#112233", "#1122334", "#112233445", "#gg0000ff", "#+1000000"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHexa(in); !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("got %v, want ErrInvalidColorFormat", err)
			}
		})
	}
}

func TestParseRelaxed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#123", "#112233ff"},
		{"abc", "#aabbccff"},
		{"#112233", "#112233ff"},
		{"#11223344", "#11223344"},
		{"AABBCCDD", "#aabbccdd"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseRelaxed(tt.in)
			if err != nil {
				t.Fatalf("ParseRelaxed failed: %v", err)
			}
			if c.Hexa() != tt.want {
				t.Errorf("got %q, want %q", c.Hexa(), tt.want)
			}
		})
	}
}

func TestParseRelaxed_Invalid(t *testing.T) {
	for _, in := range []string{"", "#1", "#1234", "#12345", "#1234567", "#zzz"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseRelaxed(in); !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("got %v, want ErrInvalidColorFormat", err)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("#FFF")
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	if got != "#ffffffff" {
		t.Errorf("Canonical = %q", got)
	}

	if _, err := Canonical("nope"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("got %v, want ErrInvalidColorFormat", err)
	}
}

func TestPacked_ImageColor(t *testing.T) {
	var c color.Color = RGBA(0xff, 0x80, 0x00, 0xff)
	r, g, b, a := c.RGBA()
	if diff := cmp.Diff([4]uint32{0xffff, 0x8080, 0, 0xffff}, [4]uint32{r, g, b, a}); diff != "" {
		t.Errorf("RGBA() mismatch (-want +got):\n%s", diff)
	}

	nrgba := color.NRGBAModel.Convert(RGBA(0x10, 0x20, 0x30, 0xff)).(color.NRGBA)
	if diff := cmp.Diff(color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, nrgba); diff != "" {
		t.Errorf("NRGBA mismatch (-want +got):\n%s", diff)
	}
}
