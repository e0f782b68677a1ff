// Package color converts between the canonical "#rrggbbaa" text form, the
// packed 32-bit representation used internally, and the packed wire formats
// the input method front-ends read from their configuration files.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Packed is a color with alpha in bits 24-31, blue in 16-23, green in 8-15
// and red in 0-7 (the Windows COLORREF layout extended with alpha).
type Packed uint32

// Common colors.
const (
	Transparent = Packed(0x00000000)
	Black       = Packed(0xff000000)
	White       = Packed(0xffffffff)
)

// RGBA constructs a Packed color from its four channels.
func RGBA(r, g, b, a uint8) Packed {
	return Packed(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c Packed) R() uint8 { return uint8(c) }
func (c Packed) G() uint8 { return uint8(c >> 8) }
func (c Packed) B() uint8 { return uint8(c >> 16) }
func (c Packed) A() uint8 { return uint8(c >> 24) }

// RGBA implements image/color.Color. Channels are alpha-premultiplied and
// scaled to 16 bits.
func (c Packed) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A()) * 0xffff / 0xff
	r = uint32(c.R()) * a / 0xff
	g = uint32(c.G()) * a / 0xff
	b = uint32(c.B()) * a / 0xff
	return
}

// Hexa returns the canonical "#rrggbbaa" form.
func (c Packed) Hexa() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

func (c Packed) String() string { return c.Hexa() }

// ParseHexa parses exactly eight hex digits in red, green, blue, alpha order.
// The leading '#' is optional.
func ParseHexa(s string) (Packed, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 8 {
		return 0, fmt.Errorf("color: parse %q: want 8 hex digits: %w", s, ErrInvalidColorFormat)
	}
	return parseChannels(s, hex)
}

// ParseRelaxed accepts the "#rgb", "#rrggbb" and "#rrggbbaa" forms. Shorthand
// digits are doubled and a missing alpha defaults to ff.
func ParseRelaxed(s string) (Packed, error) {
	hex := strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(hex) == 3 {
		var b strings.Builder
		for i := 0; i < 3; i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		hex = b.String()
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return 0, fmt.Errorf("color: parse %q: want 3, 6 or 8 hex digits: %w", s, ErrInvalidColorFormat)
	}
	return parseChannels(s, hex)
}

// Canonical reformats any color ParseRelaxed accepts as "#rrggbbaa".
func Canonical(s string) (string, error) {
	c, err := ParseRelaxed(s)
	if err != nil {
		return "", err
	}
	return c.Hexa(), nil
}

// parseChannels decodes an 8-digit rrggbbaa string. input is only used for
// error messages.
func parseChannels(input, hex string) (Packed, error) {
	var ch [4]uint8
	for i := range ch {
		v, err := parseByte(hex[i*2 : i*2+2])
		if err != nil {
			return 0, fmt.Errorf("color: parse %q: %w", input, ErrInvalidColorFormat)
		}
		ch[i] = v
	}
	return RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

func parseByte(pair string) (uint8, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
