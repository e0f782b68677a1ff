package color

import "math"

// Blend composites fg over bg ("source over"). Channels are rounded half up.
// When both inputs are fully transparent the result is Transparent.
func Blend(fg, bg Packed) Packed {
	fa := float64(fg.A()) / 255
	ba := float64(bg.A()) / 255

	ra := fa + (1-fa)*ba
	if ra == 0 {
		return Transparent
	}

	mix := func(f, b uint8) uint8 {
		return roundByte((float64(f)*fa + float64(b)*ba*(1-fa)) / ra)
	}

	return RGBA(
		mix(fg.R(), bg.R()),
		mix(fg.G(), bg.G()),
		mix(fg.B(), bg.B()),
		roundByte(ra*255),
	)
}

// BlendHexa blends two "#rrggbbaa" strings and returns the result in the same
// form. An empty or malformed operand counts as fully transparent.
func BlendHexa(fg, bg string) string {
	return Blend(parseOrTransparent(fg), parseOrTransparent(bg)).Hexa()
}

func parseOrTransparent(s string) Packed {
	if s == "" {
		return Transparent
	}
	c, err := ParseHexa(s)
	if err != nil {
		return Transparent
	}
	return c
}

// roundByte rounds half up and clamps to a byte.
func roundByte(v float64) uint8 {
	r := math.Floor(v + 0.5)
	if r <= 0 {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return uint8(r)
}
