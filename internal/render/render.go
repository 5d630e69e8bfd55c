// Package render draws palette sheets as PDF documents and PNG images.
package render

import (
	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTitle is used when a sheet has no title.
const DefaultTitle = "Color Palette"

// Sheet is a printable palette: a title and one block per swatch listing
// the selected formats.
type Sheet struct {
	Title    string
	Swatches []ase.Swatch
	Formats  color.FormatSet
}

func (s Sheet) title() string {
	if s.Title == "" {
		return DefaultTitle
	}
	return s.Title
}

func (s Sheet) formats() color.FormatSet {
	if s.Formats.Len() == 0 {
		return color.AllFormats
	}
	return s.Formats
}

// lines returns the "LABEL: value" lines printed for c.
func (s Sheet) lines(c color.Color) []string {
	formats := s.formats().Formats()
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.Label() + ": " + c.Format(f)
	}
	return out
}

var (
	black = color.Color{}
	white = color.Color{R: 255, G: 255, B: 255}
)

// Contrast returns black or white, whichever reads better on top of c.
// The split is on CIE L*, not on the RGB average, so saturated yellows get
// dark text and saturated blues get light text.
func Contrast(c color.Color) color.Color {
	r, g, b := c.Float()
	l, _, _ := colorful.Color{R: r, G: g, B: b}.Lab()
	if l > 0.6 {
		return black
	}
	return white
}
