package scheme

import (
	"rimeskin/internal/color"
	"rimeskin/internal/util"
)

// Kind tells how a field's value is interpreted.
type Kind int

const (
	KindColor Kind = iota
	KindText
	KindFormat
	KindColorSpace
)

// Field keys as they appear in exported configuration.
const (
	KeyName   = "name"
	KeyAuthor = "author"

	KeyTextColor                 = "text_color"
	KeyLabelColor                = "label_color"
	KeyCommentTextColor          = "comment_text_color"
	KeyBackColor                 = "back_color"
	KeyBorderColor               = "border_color"
	KeyCandidateTextColor        = "candidate_text_color"
	KeyCandidateBackColor        = "candidate_back_color"
	KeyHilitedTextColor          = "hilited_text_color"
	KeyHilitedBackColor          = "hilited_back_color"
	KeyHilitedCandidateTextColor = "hilited_candidate_text_color"
	KeyHilitedCommentTextColor   = "hilited_comment_text_color"
	KeyHilitedCandidateBackColor = "hilited_candidate_back_color"

	KeyShadowColor                 = "shadow_color"
	KeyCandidateBorderColor        = "candidate_border_color"
	KeyCandidateShadowColor        = "candidate_shadow_color"
	KeyHilitedLabelColor           = "hilited_label_color"
	KeyHilitedMarkColor            = "hilited_mark_color"
	KeyHilitedShadowColor          = "hilited_shadow_color"
	KeyHilitedCandidateBorderColor = "hilited_candidate_border_color"
	KeyHilitedCandidateShadowColor = "hilited_candidate_shadow_color"
	KeyPrevpageColor               = "prevpage_color"
	KeyNextpageColor               = "nextpage_color"
	KeyColorFormat                 = "color_format"

	KeyPreeditBackColor           = "preedit_back_color"
	KeyHilitedCandidateLabelColor = "hilited_candidate_label_color"
	KeyColorSpace                 = "color_space"
)

// Field describes a single scheme field.
type Field struct {
	// Key is the configuration key (e.g. "text_color").
	Key string

	// Platform restricts the field to one platform. Empty means the field
	// exists on every platform.
	Platform Platform

	Kind Kind

	// Description is a short human-readable explanation shown in help text
	// and in the editor.
	Description string

	// Raw returns the stored override, or "" when unset.
	Raw func(s *Scheme) string

	// Effective returns the value after the fallback chain. It is "" when
	// the field does not exist on the scheme's active platform.
	Effective func(s *Scheme) string

	set func(s *Scheme, v string)
}

// AppliesTo reports whether the field exists on platform p.
func (f *Field) AppliesTo(p Platform) bool {
	return f.Platform == "" || f.Platform == p
}

func colorField(key string, platform Platform, desc string, ref func(*Scheme) *string, eff func(*Scheme) string) Field {
	return Field{
		Key:         key,
		Platform:    platform,
		Kind:        KindColor,
		Description: desc,
		Raw:         func(s *Scheme) string { return *ref(s) },
		Effective:   eff,
		set:         func(s *Scheme, v string) { *ref(s) = v },
	}
}

// Fields lists every scheme field in export order.
var Fields = []Field{
	{
		Key:         KeyName,
		Kind:        KindText,
		Description: "Scheme display name",
		Raw:         func(s *Scheme) string { return s.Name },
		Effective:   func(s *Scheme) string { return s.Name },
		set:         func(s *Scheme, v string) { s.Name = v },
	},
	{
		Key:         KeyAuthor,
		Kind:        KindText,
		Description: "Scheme author",
		Raw:         func(s *Scheme) string { return s.Author },
		Effective:   func(s *Scheme) string { return s.Author },
		set:         func(s *Scheme, v string) { s.Author = v },
	},

	colorField(KeyTextColor, "", "Preedit text",
		func(s *Scheme) *string { return &s.Base.TextColor }, (*Scheme).TextColor),
	colorField(KeyLabelColor, "", "Candidate label (index)",
		func(s *Scheme) *string { return &s.Base.LabelColor }, (*Scheme).LabelColor),
	colorField(KeyCommentTextColor, "", "Candidate comment",
		func(s *Scheme) *string { return &s.Base.CommentTextColor }, (*Scheme).CommentTextColor),
	colorField(KeyBackColor, "", "Window background",
		func(s *Scheme) *string { return &s.Base.BackColor }, (*Scheme).BackColor),
	colorField(KeyBorderColor, "", "Window border",
		func(s *Scheme) *string { return &s.Base.BorderColor }, (*Scheme).BorderColor),
	colorField(KeyCandidateTextColor, "", "Candidate text",
		func(s *Scheme) *string { return &s.Base.CandidateTextColor }, (*Scheme).CandidateTextColor),
	colorField(KeyCandidateBackColor, "", "Candidate background",
		func(s *Scheme) *string { return &s.Base.CandidateBackColor }, (*Scheme).CandidateBackColor),
	colorField(KeyHilitedTextColor, "", "Highlighted preedit text",
		func(s *Scheme) *string { return &s.Base.HilitedTextColor }, (*Scheme).HilitedTextColor),
	colorField(KeyHilitedBackColor, "", "Highlighted preedit background",
		func(s *Scheme) *string { return &s.Base.HilitedBackColor }, (*Scheme).HilitedBackColor),
	colorField(KeyHilitedCandidateTextColor, "", "Highlighted candidate text",
		func(s *Scheme) *string { return &s.Base.HilitedCandidateTextColor }, (*Scheme).HilitedCandidateTextColor),
	colorField(KeyHilitedCommentTextColor, "", "Highlighted candidate comment",
		func(s *Scheme) *string { return &s.Base.HilitedCommentTextColor }, (*Scheme).HilitedCommentTextColor),
	colorField(KeyHilitedCandidateBackColor, "", "Highlighted candidate background",
		func(s *Scheme) *string { return &s.Base.HilitedCandidateBackColor }, (*Scheme).HilitedCandidateBackColor),

	colorField(KeyShadowColor, Weasel, "Window shadow",
		func(s *Scheme) *string { return &s.Weasel.ShadowColor }, (*Scheme).ShadowColor),
	colorField(KeyCandidateBorderColor, Weasel, "Candidate border",
		func(s *Scheme) *string { return &s.Weasel.CandidateBorderColor }, (*Scheme).CandidateBorderColor),
	colorField(KeyCandidateShadowColor, Weasel, "Candidate shadow",
		func(s *Scheme) *string { return &s.Weasel.CandidateShadowColor }, (*Scheme).CandidateShadowColor),
	colorField(KeyHilitedLabelColor, Weasel, "Highlighted candidate label",
		func(s *Scheme) *string { return &s.Weasel.HilitedLabelColor }, (*Scheme).HilitedLabelColor),
	colorField(KeyHilitedMarkColor, Weasel, "Highlighted candidate mark",
		func(s *Scheme) *string { return &s.Weasel.HilitedMarkColor }, (*Scheme).HilitedMarkColor),
	colorField(KeyHilitedShadowColor, Weasel, "Highlighted preedit shadow",
		func(s *Scheme) *string { return &s.Weasel.HilitedShadowColor }, (*Scheme).HilitedShadowColor),
	colorField(KeyHilitedCandidateBorderColor, Weasel, "Highlighted candidate border",
		func(s *Scheme) *string { return &s.Weasel.HilitedCandidateBorderColor }, (*Scheme).HilitedCandidateBorderColor),
	colorField(KeyHilitedCandidateShadowColor, Weasel, "Highlighted candidate shadow",
		func(s *Scheme) *string { return &s.Weasel.HilitedCandidateShadowColor }, (*Scheme).HilitedCandidateShadowColor),
	colorField(KeyPrevpageColor, Weasel, "Previous page arrow",
		func(s *Scheme) *string { return &s.Weasel.PrevpageColor }, (*Scheme).PrevpageColor),
	colorField(KeyNextpageColor, Weasel, "Next page arrow",
		func(s *Scheme) *string { return &s.Weasel.NextpageColor }, (*Scheme).NextpageColor),
	{
		Key:         KeyColorFormat,
		Platform:    Weasel,
		Kind:        KindFormat,
		Description: "Channel order of exported colors (argb, rgba, abgr)",
		Raw:         func(s *Scheme) string { return string(s.Weasel.ColorFormat) },
		Effective:   func(s *Scheme) string { return string(s.ColorFormat()) },
		set:         func(s *Scheme, v string) { s.Weasel.ColorFormat = color.Format(v) },
	},

	colorField(KeyPreeditBackColor, Squirrel, "Preedit background",
		func(s *Scheme) *string { return &s.Squirrel.PreeditBackColor }, (*Scheme).PreeditBackColor),
	colorField(KeyHilitedCandidateLabelColor, Squirrel, "Highlighted candidate label",
		func(s *Scheme) *string { return &s.Squirrel.HilitedCandidateLabelColor }, (*Scheme).HilitedCandidateLabelColor),
	{
		Key:         KeyColorSpace,
		Platform:    Squirrel,
		Kind:        KindColorSpace,
		Description: "Color space hint for squirrel (display_p3, srgb)",
		Raw:         func(s *Scheme) string { return string(s.Squirrel.ColorSpace) },
		Effective:   func(s *Scheme) string { return string(s.ColorSpace()) },
		set:         func(s *Scheme, v string) { s.Squirrel.ColorSpace = ColorSpace(v) },
	},
}

// index maps exact keys to positions in Fields.
var index = func() map[string]int {
	m := make(map[string]int, len(Fields))
	for i, f := range Fields {
		m[f.Key] = i
	}
	return m
}()

// Lookup returns the Field for key, or nil if not found. The key is matched
// case-insensitively after trimming whitespace; dashes are accepted in place
// of underscores.
func Lookup(key string) *Field {
	normalized := util.NormalizeFieldKey(key)
	if i, ok := index[normalized]; ok {
		return &Fields[i]
	}
	return nil
}

// lookupExact matches key verbatim, the way configuration files are read.
func lookupExact(key string) *Field {
	if i, ok := index[key]; ok {
		return &Fields[i]
	}
	return nil
}

// FieldsFor returns the fields that exist on platform p, in export order.
func FieldsFor(p Platform) []Field {
	var out []Field
	for _, f := range Fields {
		if f.AppliesTo(p) {
			out = append(out, f)
		}
	}
	return out
}

// Keys returns the keys of all fields in export order.
func Keys() []string {
	keys := make([]string, len(Fields))
	for i, f := range Fields {
		keys[i] = f.Key
	}
	return keys
}

// Effective returns the effective value of the field named key on s, or ""
// if the field is unknown or hidden on the active platform.
func (s *Scheme) Effective(key string) string {
	f := Lookup(key)
	if f == nil || !f.AppliesTo(s.active()) {
		return ""
	}
	return f.Effective(s)
}
