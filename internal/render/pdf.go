package render

import (
	"fmt"
	"io"

	"github.com/jsvensson/swatchkit/internal/color"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font/standard"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// Page geometry in PDF points.
const (
	margin     = 50.0
	titleSize  = 18.0
	textSize   = 11.0
	leading    = 14.0
	swatchSize = 60.0
	rowGap     = 16.0
)

// PDF writes sheet as an A4 document: the title on the first page, then one
// row per swatch with a filled square and its format lines. Rows that do not
// fit start a new page.
func PDF(w io.Writer, sheet Sheet) error {
	paper := document.A4
	doc, err := document.WriteMultiPage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating PDF: %w", err)
	}

	F := standard.Helvetica.New()

	page := doc.AddPage()
	y := paper.URy - margin

	page.SetFillColor(pdfColor(black))
	page.TextBegin()
	page.TextSetFont(F, titleSize)
	page.TextFirstLine(margin, y-titleSize)
	page.TextShow(sheet.title())
	page.TextEnd()
	y -= titleSize + 2*rowGap

	for _, s := range sheet.Swatches {
		lines := sheet.lines(s.Color)
		if s.Name != "" {
			lines = append([]string{s.Name}, lines...)
		}
		height := max(swatchSize, leading*float64(len(lines)))

		if y-height < margin {
			if err := page.Close(); err != nil {
				return fmt.Errorf("writing PDF page: %w", err)
			}
			page = doc.AddPage()
			y = paper.URy - margin
		}

		page.SetFillColor(pdfColor(s.Color))
		page.Rectangle(margin, y-swatchSize, swatchSize, swatchSize)
		page.Fill()

		page.SetFillColor(pdfColor(black))
		page.TextBegin()
		page.TextSetFont(F, textSize)
		page.TextSetLeading(leading)
		page.TextFirstLine(margin+swatchSize+rowGap, y-textSize)
		for _, line := range lines {
			page.TextShow(line)
			page.TextNextLine()
		}
		page.TextEnd()

		y -= height + rowGap
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing PDF page: %w", err)
	}
	if err := doc.Close(); err != nil {
		return fmt.Errorf("closing PDF: %w", err)
	}
	return nil
}

func pdfColor(c color.Color) pdfcolor.Color {
	r, g, b := c.Float()
	return pdfcolor.DeviceRGB(r, g, b)
}
