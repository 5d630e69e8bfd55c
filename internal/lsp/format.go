package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/jsvensson/swatchkit/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits formats content and returns a single edit replacing the whole
// document, or no edits when it is already formatted.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}

	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   documentEnd(content),
		},
		NewText: formatted,
	}}, nil
}

// documentEnd returns the position just past the last character. LSP
// characters count UTF-16 code units.
func documentEnd(content string) protocol.Position {
	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      uint32(len(lines) - 1),
		Character: uint32(len(utf16.Encode([]rune(last)))),
	}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return formatEdits(content)
}
