package tui

import (
	"strings"

	"rimeskin/internal/color"
	"rimeskin/internal/scheme"
	"rimeskin/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type sampleCandidate struct {
	text    string
	comment string
}

var (
	samplePreedit    = []string{"ni", "hao"}
	sampleCandidates = []sampleCandidate{
		{"你好", "nǐ hǎo"},
		{"拟好", ""},
		{"你", "nǐ"},
	}
)

// layer composites hexa over an opaque base. An empty hexa leaves base as is.
func layer(hexa string, base color.Packed) color.Packed {
	c, err := color.ParseHexa(hexa)
	if err != nil {
		return base
	}
	return color.Blend(c, base)
}

func paint(text, fg string, bg color.Packed) string {
	fgc := styles.Terminal(layer(fg, bg))
	return lipgloss.NewStyle().
		Foreground(fgc).
		Background(styles.Terminal(bg)).
		Render(text)
}

// RenderPreview draws a mock candidate window using the scheme's effective
// colors, composited over the page background.
func RenderPreview(s *scheme.Scheme, page color.Packed) string {
	back := layer(s.BackColor(), page)

	// Preedit: the composed syllable is highlighted.
	hilitedBack := layer(s.HilitedBackColor(), back)
	preedit := paint(samplePreedit[0]+" ", s.TextColor(), back) +
		paint(samplePreedit[1], s.HilitedTextColor(), hilitedBack)

	var cells []string
	for i, cand := range sampleCandidates {
		cells = append(cells, renderCandidate(s, i, cand, back))
	}
	if s.ShowPages() {
		cells = append(cells,
			paint(" ◀", s.PrevpageColor(), back)+paint(" ▶", s.NextpageColor(), back))
	}

	sep := paint(" ", "", back)
	body := lipgloss.JoinVertical(lipgloss.Left,
		preedit,
		strings.Join(cells, sep),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Terminal(layer(s.BorderColor(), back))).
		BorderBackground(styles.Terminal(page)).
		Background(styles.Terminal(back)).
		Padding(0, 1).
		Render(body)
}

func renderCandidate(s *scheme.Scheme, i int, cand sampleCandidate, back color.Packed) string {
	label := string(rune('1'+i)) + "."

	if i == 0 {
		bg := layer(s.HilitedCandidateBackColor(), back)
		labelColor := s.HilitedLabelColor()
		if s.Platform == scheme.Squirrel {
			labelColor = s.HilitedCandidateLabelColor()
		}
		out := paint(" "+label, labelColor, bg) + paint(" "+cand.text, s.HilitedCandidateTextColor(), bg)
		if cand.comment != "" {
			out += paint(" "+cand.comment, s.HilitedCommentTextColor(), bg)
		}
		return out + paint(" ", "", bg)
	}

	bg := layer(s.CandidateBackColor(), back)
	out := paint(" "+label, s.LabelColor(), bg) + paint(" "+cand.text, s.CandidateTextColor(), bg)
	if cand.comment != "" {
		out += paint(" "+cand.comment, s.CommentTextColor(), bg)
	}
	return out + paint(" ", "", bg)
}
