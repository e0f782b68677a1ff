package color

import (
	"fmt"
	"strings"
)

// Format is a channel ordering for packed colors in exported configuration.
type Format string

const (
	FormatARGB Format = "argb" // 0xAARRGGBB
	FormatRGBA Format = "rgba" // 0xRRGGBBAA
	FormatABGR Format = "abgr" // 0xAABBGGRR
)

// DefaultFormat is used when a document does not declare one.
const DefaultFormat = FormatABGR

var formats = []Format{FormatARGB, FormatRGBA, FormatABGR}

// Formats returns all supported wire formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Valid reports whether f is a known wire format.
func (f Format) Valid() bool {
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("color: unknown wire format %q: %w", s, ErrInvalidColorFormat)
	}
	return f, nil
}

// ExportWire renders a color accepted by ParseRelaxed as "0x" followed by
// eight lowercase hex digits in the byte order of f.
func ExportWire(hexa string, f Format) (string, error) {
	c, err := ParseRelaxed(hexa)
	if err != nil {
		return "", err
	}

	r, g, b, a := uint32(c.R()), uint32(c.G()), uint32(c.B()), uint32(c.A())
	var v uint32
	switch f {
	case FormatARGB:
		v = a<<24 | r<<16 | g<<8 | b
	case FormatRGBA:
		v = r<<24 | g<<16 | b<<8 | a
	case FormatABGR:
		v = a<<24 | b<<16 | g<<8 | r
	default:
		return "", fmt.Errorf("color: unknown wire format %q: %w", f, ErrInvalidColorFormat)
	}
	return fmt.Sprintf("0x%08x", v), nil
}

// ImportWire parses "0x" followed by six or eight hex digits in the byte
// order of f and returns the canonical "#rrggbbaa" form. Six digits imply an
// opaque alpha, which sits at the front for argb and abgr and at the back for
// rgba.
func ImportWire(text string, f Format) (string, error) {
	if !strings.HasPrefix(text, "0x") {
		return "", fmt.Errorf("color: import %q: missing 0x prefix: %w", text, ErrInvalidColorFormat)
	}
	if !f.Valid() {
		return "", fmt.Errorf("color: unknown wire format %q: %w", f, ErrInvalidColorFormat)
	}

	hex := strings.ToLower(text[2:])
	if len(hex) == 6 {
		if f == FormatRGBA {
			hex += "ff"
		} else {
			hex = "ff" + hex
		}
	}
	if len(hex) != 8 {
		return "", fmt.Errorf("color: import %q: want 6 or 8 hex digits after 0x: %w", text, ErrInvalidColorFormat)
	}

	var ch [4]uint8
	for i := range ch {
		v, err := parseByte(hex[i*2 : i*2+2])
		if err != nil {
			return "", fmt.Errorf("color: import %q: %w", text, ErrInvalidColorFormat)
		}
		ch[i] = v
	}

	var c Packed
	switch f {
	case FormatARGB:
		c = RGBA(ch[1], ch[2], ch[3], ch[0])
	case FormatRGBA:
		c = RGBA(ch[0], ch[1], ch[2], ch[3])
	case FormatABGR:
		c = RGBA(ch[3], ch[2], ch[1], ch[0])
	}
	return c.Hexa(), nil
}
