package scheme

import "rimeskin/internal/color"

// Fallbacks used when neither the text nor the window background is set.
const (
	defaultBackColor = "#ffffffff"
	defaultTextColor = "#000000ff"
)

// active returns the platform used for derivation. A zero Scheme behaves as
// weasel.
func (s *Scheme) active() Platform {
	if s.isSquirrel() {
		return Squirrel
	}
	return Weasel
}

// ColorFormat is the wire format used for exported colors. Only weasel lets
// the user choose it.
func (s *Scheme) ColorFormat() color.Format {
	if s.isWeasel() && s.Weasel.ColorFormat.Valid() {
		return s.Weasel.ColorFormat
	}
	return color.DefaultFormat
}

// ColorSpace is the color space written to squirrel configuration. Other
// platforms always report srgb.
func (s *Scheme) ColorSpace() ColorSpace {
	if s.isSquirrel() && s.Squirrel.ColorSpace != "" {
		return s.Squirrel.ColorSpace
	}
	return DefaultColorSpace
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func (s *Scheme) weaselOnly(v string) string {
	if s.isWeasel() {
		return v
	}
	return ""
}

func (s *Scheme) squirrelOnly(v string) string {
	if s.isSquirrel() {
		return v
	}
	return ""
}

func (s *Scheme) BackColor() string { return or(s.Base.BackColor, defaultBackColor) }
func (s *Scheme) TextColor() string { return or(s.Base.TextColor, defaultTextColor) }

func (s *Scheme) BorderColor() string { return or(s.Base.BorderColor, s.TextColor()) }

func (s *Scheme) CandidateTextColor() string {
	return or(s.Base.CandidateTextColor, s.TextColor())
}

// CandidateBackColor has no fallback and may be empty.
func (s *Scheme) CandidateBackColor() string { return s.Base.CandidateBackColor }

// LabelColor defaults to the candidate text composited over the candidate
// background.
func (s *Scheme) LabelColor() string {
	if s.Base.LabelColor != "" {
		return s.Base.LabelColor
	}
	return color.BlendHexa(s.CandidateTextColor(), s.CandidateBackColor())
}

func (s *Scheme) CommentTextColor() string {
	return or(s.Base.CommentTextColor, s.LabelColor())
}

func (s *Scheme) HilitedTextColor() string {
	return or(s.Base.HilitedTextColor, s.TextColor())
}

func (s *Scheme) HilitedBackColor() string {
	return or(s.Base.HilitedBackColor, or(s.PreeditBackColor(), s.BackColor()))
}

func (s *Scheme) HilitedCandidateTextColor() string {
	return or(s.Base.HilitedCandidateTextColor, s.HilitedTextColor())
}

func (s *Scheme) HilitedCandidateBackColor() string {
	return or(s.Base.HilitedCandidateBackColor, s.HilitedBackColor())
}

// HilitedCommentTextColor falls back to the highlighted label on weasel and
// to the plain comment color on squirrel.
func (s *Scheme) HilitedCommentTextColor() string {
	if s.isWeasel() {
		return or(s.Base.HilitedCommentTextColor, s.HilitedLabelColor())
	}
	return or(s.Base.HilitedCommentTextColor, s.CommentTextColor())
}

// Weasel only.

func (s *Scheme) ShadowColor() string          { return s.weaselOnly(s.Weasel.ShadowColor) }
func (s *Scheme) CandidateBorderColor() string { return s.weaselOnly(s.Weasel.CandidateBorderColor) }
func (s *Scheme) CandidateShadowColor() string { return s.weaselOnly(s.Weasel.CandidateShadowColor) }
func (s *Scheme) HilitedMarkColor() string     { return s.weaselOnly(s.Weasel.HilitedMarkColor) }
func (s *Scheme) HilitedShadowColor() string   { return s.weaselOnly(s.Weasel.HilitedShadowColor) }
func (s *Scheme) PrevpageColor() string        { return s.weaselOnly(s.Weasel.PrevpageColor) }
func (s *Scheme) NextpageColor() string        { return s.weaselOnly(s.Weasel.NextpageColor) }

func (s *Scheme) HilitedCandidateBorderColor() string {
	return s.weaselOnly(s.Weasel.HilitedCandidateBorderColor)
}

func (s *Scheme) HilitedCandidateShadowColor() string {
	return s.weaselOnly(s.Weasel.HilitedCandidateShadowColor)
}

func (s *Scheme) HilitedLabelColor() string {
	if !s.isWeasel() {
		return ""
	}
	if s.Weasel.HilitedLabelColor != "" {
		return s.Weasel.HilitedLabelColor
	}
	return color.BlendHexa(s.HilitedCandidateTextColor(), s.HilitedCandidateBackColor())
}

// ShowPages reports whether both page arrow colors are set on weasel.
func (s *Scheme) ShowPages() bool {
	return s.isWeasel() && s.PrevpageColor() != "" && s.NextpageColor() != ""
}

// Squirrel only.

func (s *Scheme) PreeditBackColor() string { return s.squirrelOnly(s.Squirrel.PreeditBackColor) }

func (s *Scheme) HilitedCandidateLabelColor() string {
	if !s.isSquirrel() {
		return ""
	}
	return or(s.Squirrel.HilitedCandidateLabelColor, s.HilitedCandidateTextColor())
}
