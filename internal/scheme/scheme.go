// Package scheme models a RIME front-end color scheme.
//
// A Scheme stores only what the user supplied. Every color the front-end
// actually draws with is derived on read through a fixed fallback chain (see
// derive.go), so nothing derived is ever stored. The record has a common
// base shared by both platforms and one variant record per platform; the
// active Platform decides which variant is visible.
package scheme

import (
	"errors"
	"fmt"
	"strings"

	"rimeskin/internal/color"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "scheme")

var (
	// ErrUnknownField is returned for a field key that is not in Fields.
	ErrUnknownField = errors.New("unknown scheme field")

	// ErrInvalidPlatform is returned for a platform name other than
	// weasel or squirrel.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidColorSpace is returned for a color space other than
	// display_p3 or srgb.
	ErrInvalidColorSpace = errors.New("invalid color space")
)

// Platform selects the RIME front-end a scheme targets.
type Platform string

const (
	Weasel   Platform = "weasel"   // Windows
	Squirrel Platform = "squirrel" // macOS
)

// DefaultPlatform is used when no platform has been chosen yet.
const DefaultPlatform = Weasel

// Platforms returns every supported platform.
func Platforms() []Platform { return []Platform{Weasel, Squirrel} }

// ParsePlatform returns the Platform named s.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Weasel, Squirrel:
		return p, nil
	}
	return "", fmt.Errorf("scheme: %q: %w", s, ErrInvalidPlatform)
}

// ColorSpace is carried through to squirrel configuration untouched; it
// never takes part in color math.
type ColorSpace string

const (
	DisplayP3 ColorSpace = "display_p3"
	SRGB      ColorSpace = "srgb"
)

// DefaultColorSpace is used when a scheme does not declare one.
const DefaultColorSpace = SRGB

// ColorSpaces returns every supported color space.
func ColorSpaces() []ColorSpace { return []ColorSpace{DisplayP3, SRGB} }

// ParseColorSpace returns the ColorSpace named s.
func ParseColorSpace(s string) (ColorSpace, error) {
	cs := ColorSpace(strings.ToLower(strings.TrimSpace(s)))
	switch cs {
	case DisplayP3, SRGB:
		return cs, nil
	}
	return "", fmt.Errorf("scheme: %q: %w", s, ErrInvalidColorSpace)
}

// Colors holds the color overrides every platform understands. An empty
// string means "not set". Set values are always canonical "#rrggbbaa".
type Colors struct {
	TextColor                 string
	LabelColor                string
	CommentTextColor          string
	BackColor                 string
	BorderColor               string
	CandidateTextColor        string
	CandidateBackColor        string
	HilitedTextColor          string
	HilitedBackColor          string
	HilitedCandidateTextColor string
	HilitedCommentTextColor   string
	HilitedCandidateBackColor string
}

// WeaselColors holds the fields only weasel understands.
type WeaselColors struct {
	ColorFormat color.Format

	ShadowColor                 string
	CandidateBorderColor        string
	CandidateShadowColor        string
	HilitedLabelColor           string
	HilitedMarkColor            string
	HilitedShadowColor          string
	HilitedCandidateBorderColor string
	HilitedCandidateShadowColor string
	PrevpageColor               string
	NextpageColor               string
}

// SquirrelColors holds the fields only squirrel understands.
type SquirrelColors struct {
	ColorSpace ColorSpace

	PreeditBackColor           string
	HilitedCandidateLabelColor string
}

// Scheme is a sparse set of user overrides for one color scheme.
//
// Both variant records are kept regardless of Platform so switching
// platforms back and forth never loses input.
type Scheme struct {
	Platform Platform

	Name   string
	Author string

	Base     Colors
	Weasel   WeaselColors
	Squirrel SquirrelColors
}

// New returns an empty weasel scheme.
func New() *Scheme {
	s := &Scheme{Platform: DefaultPlatform}
	s.Restore()
	return s
}

// Restore clears every override and resets color_format and color_space to
// their defaults. Platform is left alone.
func (s *Scheme) Restore() {
	platform := s.Platform
	*s = Scheme{
		Platform: platform,
		Weasel:   WeaselColors{ColorFormat: color.DefaultFormat},
		Squirrel: SquirrelColors{ColorSpace: DefaultColorSpace},
	}
}

func (s *Scheme) isWeasel() bool   { return s.Platform != Squirrel }
func (s *Scheme) isSquirrel() bool { return s.Platform == Squirrel }

// Set assigns a user-supplied value to the field named key.
//
// Colors may be given as "#rgb", "#rrggbb", "#rrggbbaa" or as a wire color
// ("0x...") in the scheme's current color format; they are stored in
// canonical "#rrggbbaa" form.
func (s *Scheme) Set(key, value string) error {
	f := Lookup(key)
	if f == nil {
		return fmt.Errorf("scheme: %q: %w", key, ErrUnknownField)
	}

	switch f.Kind {
	case KindText:
		f.set(s, value)
	case KindFormat:
		format, err := color.ParseFormat(value)
		if err != nil {
			return err
		}
		f.set(s, string(format))
	case KindColorSpace:
		cs, err := ParseColorSpace(value)
		if err != nil {
			return err
		}
		f.set(s, string(cs))
	case KindColor:
		value = strings.TrimSpace(value)
		var (
			hexa string
			err  error
		)
		if strings.HasPrefix(value, "0x") {
			hexa, err = color.ImportWire(value, s.ColorFormat())
		} else {
			hexa, err = color.Canonical(value)
		}
		if err != nil {
			return fmt.Errorf("scheme: set %s: %w", f.Key, err)
		}
		f.set(s, hexa)
	}
	return nil
}

// Unset clears the field named key. color_format and color_space fall back
// to their defaults.
func (s *Scheme) Unset(key string) error {
	f := Lookup(key)
	if f == nil {
		return fmt.Errorf("scheme: %q: %w", key, ErrUnknownField)
	}

	switch f.Kind {
	case KindFormat:
		f.set(s, string(color.DefaultFormat))
	case KindColorSpace:
		f.set(s, string(DefaultColorSpace))
	default:
		f.set(s, "")
	}
	return nil
}
