package scheme

import (
	"testing"

	"rimeskin/internal/color"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults_EmptyWeasel(t *testing.T) {
	s := New()

	want := map[string]string{
		KeyBackColor:                 "#ffffffff",
		KeyTextColor:                 "#000000ff",
		KeyBorderColor:               "#000000ff",
		KeyCandidateTextColor:        "#000000ff",
		KeyCandidateBackColor:        "",
		KeyLabelColor:                "#000000ff",
		KeyCommentTextColor:          "#000000ff",
		KeyHilitedTextColor:          "#000000ff",
		KeyHilitedBackColor:          "#ffffffff",
		KeyHilitedCandidateTextColor: "#000000ff",
		KeyHilitedCandidateBackColor: "#ffffffff",
		KeyHilitedLabelColor:         "#000000ff",
		KeyHilitedCommentTextColor:   "#000000ff",
		KeyShadowColor:               "",
		KeyPrevpageColor:             "",
		KeyColorFormat:               "abgr",
	}

	got := make(map[string]string, len(want))
	for key := range want {
		got[key] = s.Effective(key)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effective values mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelColor_BlendsCandidateColors(t *testing.T) {
	s := New()
	s.Base.CandidateTextColor = "#112233ff"
	s.Base.CandidateBackColor = "#ffffffff"

	want := color.BlendHexa("#112233ff", "#ffffffff")
	if got := s.LabelColor(); got != want || got == "" {
		t.Errorf("LabelColor() = %q, want %q", got, want)
	}
	if got := s.CommentTextColor(); got != s.LabelColor() {
		t.Errorf("CommentTextColor() = %q, want label color %q", got, s.LabelColor())
	}
}

func TestLabelColor_TranslucentText(t *testing.T) {
	s := New()
	s.Base.CandidateTextColor = "#ff000080"
	s.Base.CandidateBackColor = "#0000ffff"

	if got, want := s.LabelColor(), "#80007fff"; got != want {
		t.Errorf("LabelColor() = %q, want %q", got, want)
	}
}

func TestLabelColor_ExplicitWins(t *testing.T) {
	s := New()
	s.Base.LabelColor = "#abcdefff"
	s.Base.CandidateTextColor = "#112233ff"

	if got := s.LabelColor(); got != "#abcdefff" {
		t.Errorf("LabelColor() = %q, want explicit value", got)
	}
}

func TestFallbackChain_TextColor(t *testing.T) {
	s := New()
	s.Base.TextColor = "#010203ff"

	for _, key := range []string{
		KeyBorderColor,
		KeyCandidateTextColor,
		KeyHilitedTextColor,
		KeyHilitedCandidateTextColor,
	} {
		if got := s.Effective(key); got != "#010203ff" {
			t.Errorf("%s = %q, want text color", key, got)
		}
	}
}

func TestHilitedBackColor_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		hilited  string
		preedit  string
		back     string
		want     string
	}{
		{"explicit", Squirrel, "#111111ff", "#222222ff", "#333333ff", "#111111ff"},
		{"preedit on squirrel", Squirrel, "", "#222222ff", "#333333ff", "#222222ff"},
		{"preedit ignored on weasel", Weasel, "", "#222222ff", "#333333ff", "#333333ff"},
		{"back color", Squirrel, "", "", "#333333ff", "#333333ff"},
		{"default white", Weasel, "", "", "", "#ffffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Platform = tt.platform
			s.Base.HilitedBackColor = tt.hilited
			s.Squirrel.PreeditBackColor = tt.preedit
			s.Base.BackColor = tt.back

			if got := s.HilitedBackColor(); got != tt.want {
				t.Errorf("HilitedBackColor() = %q, want %q", got, tt.want)
			}
			if got := s.HilitedCandidateBackColor(); got != tt.want {
				t.Errorf("HilitedCandidateBackColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHilitedCommentTextColor_PerPlatform(t *testing.T) {
	s := New()
	s.Base.CommentTextColor = "#aaaaaaff"
	s.Weasel.HilitedLabelColor = "#bbbbbbff"

	s.Platform = Weasel
	if got := s.HilitedCommentTextColor(); got != "#bbbbbbff" {
		t.Errorf("weasel HilitedCommentTextColor() = %q, want hilited label", got)
	}

	s.Platform = Squirrel
	if got := s.HilitedCommentTextColor(); got != "#aaaaaaff" {
		t.Errorf("squirrel HilitedCommentTextColor() = %q, want comment color", got)
	}

	s.Base.HilitedCommentTextColor = "#ccccccff"
	if got := s.HilitedCommentTextColor(); got != "#ccccccff" {
		t.Errorf("HilitedCommentTextColor() = %q, want explicit", got)
	}
}

func TestHilitedLabelColor_BlendsHighlightedCandidate(t *testing.T) {
	s := New()
	s.Base.HilitedCandidateTextColor = "#ffffff80"
	s.Base.HilitedCandidateBackColor = "#000000ff"

	want := color.BlendHexa("#ffffff80", "#000000ff")
	if got := s.HilitedLabelColor(); got != want {
		t.Errorf("HilitedLabelColor() = %q, want %q", got, want)
	}

	s.Platform = Squirrel
	if got := s.HilitedLabelColor(); got != "" {
		t.Errorf("squirrel HilitedLabelColor() = %q, want empty", got)
	}
}

func TestHilitedCandidateLabelColor(t *testing.T) {
	s := New()
	s.Base.HilitedCandidateTextColor = "#123456ff"

	if got := s.HilitedCandidateLabelColor(); got != "" {
		t.Errorf("weasel HilitedCandidateLabelColor() = %q, want empty", got)
	}

	s.Platform = Squirrel
	if got := s.HilitedCandidateLabelColor(); got != "#123456ff" {
		t.Errorf("HilitedCandidateLabelColor() = %q, want hilited candidate text", got)
	}

	s.Squirrel.HilitedCandidateLabelColor = "#654321ff"
	if got := s.HilitedCandidateLabelColor(); got != "#654321ff" {
		t.Errorf("HilitedCandidateLabelColor() = %q, want explicit", got)
	}
}

func TestPlatformOnlyFields_Gated(t *testing.T) {
	s := New()
	s.Weasel.ShadowColor = "#010101ff"
	s.Weasel.HilitedMarkColor = "#020202ff"
	s.Squirrel.PreeditBackColor = "#030303ff"

	s.Platform = Squirrel
	if got := s.ShadowColor(); got != "" {
		t.Errorf("squirrel ShadowColor() = %q, want empty", got)
	}
	if got := s.Effective(KeyHilitedMarkColor); got != "" {
		t.Errorf("squirrel hilited_mark_color = %q, want empty", got)
	}
	if got := s.PreeditBackColor(); got != "#030303ff" {
		t.Errorf("PreeditBackColor() = %q", got)
	}

	s.Platform = Weasel
	if got := s.ShadowColor(); got != "#010101ff" {
		t.Errorf("ShadowColor() = %q", got)
	}
	if got := s.PreeditBackColor(); got != "" {
		t.Errorf("weasel PreeditBackColor() = %q, want empty", got)
	}
}

func TestShowPages(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		prev     string
		next     string
		want     bool
	}{
		{"both set", Weasel, "#111111ff", "#222222ff", true},
		{"only prev", Weasel, "#111111ff", "", false},
		{"only next", Weasel, "", "#222222ff", false},
		{"neither", Weasel, "", "", false},
		{"squirrel ignores arrows", Squirrel, "#111111ff", "#222222ff", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Platform = tt.platform
			s.Weasel.PrevpageColor = tt.prev
			s.Weasel.NextpageColor = tt.next
			if got := s.ShowPages(); got != tt.want {
				t.Errorf("ShowPages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorFormatAndSpace_PerPlatform(t *testing.T) {
	s := New()
	s.Weasel.ColorFormat = color.FormatARGB
	s.Squirrel.ColorSpace = DisplayP3

	if got := s.ColorFormat(); got != color.FormatARGB {
		t.Errorf("weasel ColorFormat() = %q", got)
	}
	if got := s.ColorSpace(); got != SRGB {
		t.Errorf("weasel ColorSpace() = %q, want srgb", got)
	}

	s.Platform = Squirrel
	if got := s.ColorFormat(); got != color.FormatABGR {
		t.Errorf("squirrel ColorFormat() = %q, want abgr", got)
	}
	if got := s.ColorSpace(); got != DisplayP3 {
		t.Errorf("squirrel ColorSpace() = %q", got)
	}
}

func TestZeroScheme_BehavesAsWeasel(t *testing.T) {
	var s Scheme
	if got := s.ColorFormat(); got != color.FormatABGR {
		t.Errorf("ColorFormat() = %q, want abgr", got)
	}
	if got := s.Effective(KeyHilitedLabelColor); got != "#000000ff" {
		t.Errorf("hilited_label_color = %q, want black", got)
	}
}
