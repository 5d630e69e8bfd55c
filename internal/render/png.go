package render

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"

	"github.com/jsvensson/swatchkit/internal/color"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("sheet has no swatches")

// Image geometry in pixels.
const (
	cellWidth    = 200
	swatchHeight = 140
	lineHeight   = 16
	cellPadding  = 8
	titleHeight  = 28
	maxColumns   = 5
)

// Image draws sheet as a grid of swatches, at most five per row. Each cell
// is the color with its HEX value printed on it in a contrasting color,
// above the format lines on white.
func Image(sheet Sheet) (*image.RGBA, error) {
	n := len(sheet.Swatches)
	if n == 0 {
		return nil, ErrEmpty
	}

	cols := min(n, maxColumns)
	rows := (n + cols - 1) / cols
	cellHeight := swatchHeight + 2*cellPadding + lineHeight*sheet.formats().Len()

	img := image.NewRGBA(image.Rect(0, 0, cols*cellWidth, titleHeight+rows*cellHeight))
	fill(img, img.Bounds(), white)
	text(img, cellPadding, titleHeight-cellPadding, black, sheet.title())

	for i, s := range sheet.Swatches {
		x := (i % cols) * cellWidth
		y := titleHeight + (i/cols)*cellHeight

		fill(img, image.Rect(x, y, x+cellWidth, y+swatchHeight), s.Color)

		label := s.Color.Hex()
		if s.Name != "" {
			label = s.Name + " " + label
		}
		text(img, x+cellPadding, y+swatchHeight-cellPadding, Contrast(s.Color), label)

		ly := y + swatchHeight + cellPadding
		for _, line := range sheet.lines(s.Color) {
			ly += lineHeight
			text(img, x+cellPadding, ly-4, black, line)
		}
	}

	return img, nil
}

// PNG encodes the Image of sheet to w.
func PNG(w io.Writer, sheet Sheet) error {
	img, err := Image(sheet)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func rgba(c color.Color) stdcolor.RGBA {
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// text draws s with its baseline at (x, y).
func text(img draw.Image, x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rgba(c)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
