// Package swatchkit converts colors between HEX, RGB, HSL and CMYK notations
// and loads palette files for export.
package swatchkit

import (
	"fmt"

	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/config"
	"github.com/jsvensson/swatchkit/internal/parser"
)

type (
	Color     = color.Color
	Format    = color.Format
	FormatSet = color.FormatSet
	Swatch    = ase.Swatch
)

const (
	Hex  = color.Hex
	RGB  = color.RGB
	HSL  = color.HSL
	CMYK = color.CMYK
)

// Palette is a fully-resolved palette file.
type Palette struct {
	Meta     Meta
	Title    string
	Swatches []Swatch // source order
	Formats  FormatSet
}

// Meta holds palette metadata.
type Meta struct {
	Name   string
	Author string
	URL    string
}

// Load parses an HCL palette file and returns a fully-resolved Palette.
func Load(path string) (*Palette, error) {
	doc, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}

	return &Palette{
		Meta: Meta{
			Name:   doc.Meta.Name,
			Author: doc.Meta.Author,
			URL:    doc.Meta.URL,
		},
		Title:    doc.Title(),
		Swatches: doc.Palette().Swatches(),
		Formats:  doc.Formats,
	}, nil
}

// Parse reads a color in HEX, RGB, HSL or CMYK notation.
func Parse(input string) (Color, error) {
	return parser.Parse(input)
}

// Convert parses input and returns it in the given notation.
func Convert(input string, f Format) (string, error) {
	c, err := parser.Parse(input)
	if err != nil {
		return "", err
	}
	return c.Format(f), nil
}

// EncodeASE returns the swatches as an Adobe Swatch Exchange file.
func EncodeASE(swatches []Swatch) []byte {
	return ase.Encode(swatches)
}
