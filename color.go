package paint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned by ParseColor for strings that are not
// hex colors.
var ErrInvalidColor = errors.New("paint: invalid color")

// ParseColor parses a CSS-style hex color as produced by color pickers.
// Supports formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"; the leading
// '#' is optional.
//
// Unlike gg.Hex, which falls back to black, ParseColor rejects malformed
// input so that a bad widget value fails the edit instead of painting black.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func FormatColor(c gg.RGBA) string {
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	if a == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
