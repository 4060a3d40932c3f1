package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// Hex formats rgb as "#RRGGBB".
func Hex[C rgbh.Channel[C]](rgb rgbh.RGB[C]) string {
	b := rgbh.Convert[rgbh.Bits8](rgb)
	return fmt.Sprintf("#%02X%02X%02X", b[0], b[1], b[2])
}

// Hex16 formats rgb as "#RRRRGGGGBBBB".
func Hex16[C rgbh.Channel[C]](rgb rgbh.RGB[C]) string {
	w := rgbh.Convert[rgbh.Bits16](rgb)
	return fmt.Sprintf("#%04X%04X%04X", w[0], w[1], w[2])
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRRRGGGGBBBB" into a proportion
// triple.
func ParseHex(s string) (rgbh.RGB[rgbh.Proportion], error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("invalid hex color %q: missing '#'", s)
	}
	switch len(s) {
	case 4, 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return FromColorful(c), nil
	case 13:
		var w rgbh.RGB[rgbh.Bits16]
		for i := range w {
			v, err := strconv.ParseUint(s[1+4*i:5+4*i], 16, 16)
			if err != nil {
				return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			w[i] = rgbh.Bits16(v)
		}
		return rgbh.Convert[rgbh.Proportion](w), nil
	default:
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("invalid hex color %q: want 3, 6 or 12 hex digits", s)
	}
}

// HexField formats one channel value as "0x" followed by upper case hex
// digits, zero padded to the width of max.
func HexField(value, max int64) string {
	width := len(strconv.FormatInt(max, 16))
	return fmt.Sprintf("0x%0*X", width, value)
}

// ParseHexField reads a channel value written by HexField, with or without
// its prefix. Values outside [0, max] are rejected.
func ParseHexField(text string, max int64) (int64, error) {
	digits := strings.TrimSpace(text)
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	value, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse hex field %q: %w", text, err)
	}
	if value < 0 || value > max {
		return 0, fmt.Errorf("%#X: NOT in range 0X0 to %#X", value, max)
	}
	return value, nil
}
