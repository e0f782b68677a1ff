package styles

import (
	"rimeskin/internal/color"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PageColor returns the page background for the "light" or "dark"
// preference. Anything else is treated as light.
func PageColor(background string) color.Packed {
	if background == "dark" {
		return mustParse(PageDark)
	}
	return mustParse(PageLight)
}

func mustParse(hexa string) color.Packed {
	c, err := color.ParseHexa(hexa)
	if err != nil {
		panic(err)
	}
	return c
}

// Flatten composites hexa over the given page color and returns the opaque
// result as a terminal color. An empty or invalid hexa yields the page color.
func Flatten(hexa string, page color.Packed) lipgloss.Color {
	c, err := color.ParseHexa(hexa)
	if err != nil {
		c = color.Transparent
	}
	return Terminal(color.Blend(c, page))
}

// Terminal converts an opaque packed color to "#rrggbb". Alpha is ignored
// unless it is zero, which yields black.
func Terminal(c color.Packed) lipgloss.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(cf.Hex())
}

// Contrast returns black or white, whichever reads better on bg.
func Contrast(bg lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		return lipgloss.Color("#000000")
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// Swatch renders a small block filled with hexa composited over the page
// background, labeled with the color's text form.
func Swatch(hexa string, page color.Packed) string {
	bg := Flatten(hexa, page)
	label := hexa
	if label == "" {
		label = "         "
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(Contrast(bg)).
		Padding(0, 1).
		Render(label)
}
