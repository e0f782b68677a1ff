package color

import "errors"

// ErrInvalidColorFormat is wrapped by every codec error: a color string with
// the wrong digit count or non-hex digits, a wire color without the 0x
// prefix, or an unknown wire format name.
//
//	if errors.Is(err, color.ErrInvalidColorFormat) { ... }
var ErrInvalidColorFormat = errors.New("invalid color format")
