package lsp

import (
	"math"
	"strings"

	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/parser"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP converts a protocol.Color back, rounding to the nearest byte.
// Alpha is ignored.
func colorFromLSP(c protocol.Color) color.Color {
	channel := func(v float32) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, float64(v))) * 255))
	}
	return color.Color{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation offers the picked color in every notation. Only quoted
// string literals are rewritten; references and function calls get no
// presentations so the picker never replaces an expression with a literal.
// The first presentation keeps the notation the literal was written in.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	formats := color.Formats()
	if current, ok := parser.Detect(strings.Trim(text, "\"")); ok {
		ordered := []color.Format{current}
		for _, f := range formats {
			if f != current {
				ordered = append(ordered, f)
			}
		}
		formats = ordered
	}

	presentations := make([]protocol.ColorPresentation, 0, len(formats))
	for _, f := range formats {
		value := c.Format(f)
		presentations = append(presentations, protocol.ColorPresentation{
			Label: value,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + value + "\"",
			},
		})
	}
	return presentations
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
