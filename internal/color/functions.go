package color

import "math"

// Brighten returns the color with its HSL lightness raised by percentage (0.0 to 1.0).
func Brighten(color Color, percentage float64) Color {
	return shiftLightness(color, percentage)
}

// Darken returns the color with its HSL lightness lowered by percentage (0.0 to 1.0).
func Darken(color Color, percentage float64) Color {
	return shiftLightness(color, -percentage)
}

// shiftLightness works on the unrounded HSL values so repeated shifts do not
// accumulate integer rounding.
func shiftLightness(c Color, delta float64) Color {
	h, s, l := rgbToHSLFloat(c)
	l = math.Max(0, math.Min(1, l+delta))
	r, g, b := hslToRGBFloat(h, s, l)
	return Color{R: toByte(r), G: toByte(g), B: toByte(b)}
}
