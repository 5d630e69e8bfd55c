package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// HSL, CMYK and every display string are derived from them.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#FF6F61" or "ff6f61" into a Color.
// Exactly 6 hex digits are required; the 3-digit shorthand is not accepted.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as an uppercase hex string with leading #, e.g. "#FF6F61".
func (c Color) Hex() string {
	return "#" + c.HexBare()
}

// HexBare returns the color as an uppercase hex string without leading #, e.g. "FF6F61".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(255, 111, 97)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL returns the HSL projection as an hsl() string, e.g. "hsl(5, 100%, 69%)".
func (c Color) HSL() string {
	h := RGBToHSL(c)
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// CMYK returns the CMYK projection as a cmyk() string, e.g. "cmyk(0%, 56%, 62%, 0%)".
func (c Color) CMYK() string {
	k := RGBToCMYK(c)
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", k.C, k.M, k.Y, k.K)
}

// Format returns the display string for the given format. An unknown format
// yields its String form, e.g. "Format(9)".
func (c Color) Format(f Format) string {
	switch f {
	case Hex:
		return c.Hex()
	case RGB:
		return c.RGB()
	case HSL:
		return c.HSL()
	case CMYK:
		return c.CMYK()
	}
	return f.String()
}

// Float returns the channels scaled to [0, 1].
func (c Color) Float() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// Near reports whether every channel of a and b differs by at most threshold.
func Near(a, b Color, threshold int) bool {
	return absDiff(a.R, b.R) <= threshold &&
		absDiff(a.G, b.G) <= threshold &&
		absDiff(a.B, b.B) <= threshold
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Text returns the selected display strings for c joined by newlines.
func Text(c Color, set FormatSet) string {
	formats := set.Formats()
	lines := make([]string, 0, len(formats))
	for _, f := range formats {
		lines = append(lines, c.Format(f))
	}
	return strings.Join(lines, "\n")
}
