package color

import "math"

// HSLValue is the hue/saturation/lightness projection of a Color.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSLValue struct {
	H, S, L int
}

// CMYKValue is the naive subtractive print projection of a Color.
// All channels are percentages [0, 100]. No color management is applied.
type CMYKValue struct {
	C, M, Y, K int
}

// RGBToHSL converts a Color to its rounded HSL projection.
func RGBToHSL(c Color) HSLValue {
	h, s, l := rgbToHSLFloat(c)
	hue := int(math.Round(h * 360))
	if hue == 360 {
		hue = 0
	}
	return HSLValue{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts an HSL value back to a Color. Out-of-range inputs are clamped.
func HSLToRGB(v HSLValue) Color {
	h := float64(v.H) / 360.0
	s := clamp01(float64(v.S) / 100.0)
	l := clamp01(float64(v.L) / 100.0)
	r, g, b := hslToRGBFloat(h, s, l)
	return Color{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// RGBToCMYK converts a Color to its rounded CMYK projection.
// Pure black yields cmyk(0, 0, 0, 100).
func RGBToCMYK(c Color) CMYKValue {
	r, g, b := c.Float()
	k := 1 - math.Max(math.Max(r, g), b)
	if k == 1 {
		return CMYKValue{K: 100}
	}
	channel := func(v float64) int {
		return int(math.Round((1 - v - k) / (1 - k) * 100))
	}
	return CMYKValue{
		C: channel(r),
		M: channel(g),
		Y: channel(b),
		K: int(math.Round(k * 100)),
	}
}

// CMYKToRGB converts a CMYK value back to a Color. Out-of-range inputs are clamped.
func CMYKToRGB(v CMYKValue) Color {
	k := 1 - clamp01(float64(v.K)/100.0)
	channel := func(p int) uint8 {
		return toByte((1 - clamp01(float64(p)/100.0)) * k)
	}
	return Color{R: channel(v.C), G: channel(v.M), B: channel(v.Y)}
}

// rgbToHSLFloat returns hue, saturation and lightness, all in [0, 1].
func rgbToHSLFloat(c Color) (h, s, l float64) {
	r, g, b := c.Float()

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l = (max + min) / 2.0

	if max == min {
		// Achromatic
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6.0
		}
	case g:
		h = (b-r)/d + 2.0
	default:
		h = (r-g)/d + 4.0
	}
	return h / 6.0, s, l
}

func hslToRGBFloat(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	return hueToRGB(p, q, h+1.0/3.0), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3.0)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
