package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/palette"
)

// Document is a fully-resolved palette file.
type Document struct {
	Meta    Meta
	Entries []Entry // source order
	Export  Export
	Formats color.FormatSet // from export.formats; all formats when unset
}

// Meta holds palette metadata.
type Meta struct {
	Name   string `hcl:"name,optional"`
	Author string `hcl:"author,optional"`
	URL    string `hcl:"url,optional"`
}

// Entry is one named color of the palette block.
type Entry struct {
	Name  string
	Color color.Color
	Range hcl.Range // the attribute's value expression
}

// Export holds the export block. Output names are base names without
// extension; empty means the exporter picks a default.
type Export struct {
	Formats []string `hcl:"formats,optional"`
	Title   string   `hcl:"title,optional"`
	ASE     string   `hcl:"ase,optional"`
	PDF     string   `hcl:"pdf,optional"`
	PNG     string   `hcl:"png,optional"`
	Text    string   `hcl:"text,optional"`
	Studio  string   `hcl:"studio,optional"`
}

// PaletteBlock wraps the palette block for gohcl decoding.
type PaletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

// RawConfig captures the palette block first (no EvalContext needed).
type RawConfig struct {
	Palette *PaletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

// ResolvedConfig decodes the blocks that may use palette references.
type ResolvedConfig struct {
	Meta   *Meta   `hcl:"meta,block"`
	Export *Export `hcl:"export,block"`
}

// Load reads and resolves a palette file.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	return LoadSource(path, src)
}

// LoadSource resolves palette file content. filename is used in error
// messages only.
func LoadSource(filename string, src []byte) (*Document, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	// First pass: pull out the palette block
	var raw RawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}
	if raw.Palette == nil {
		return nil, fmt.Errorf("no palette block found")
	}

	paletteBody, ok := raw.Palette.Entries.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("palette block is not an hclsyntax.Body")
	}

	entries, err := resolvePalette(paletteBody)
	if err != nil {
		return nil, err
	}

	// Second pass: everything else, with palette references available
	var resolved ResolvedConfig
	if diags := gohcl.DecodeBody(raw.Remain, EvalContext(colorMap(entries)), &resolved); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}

	doc := &Document{Entries: entries, Formats: color.AllFormats}
	if resolved.Meta != nil {
		doc.Meta = *resolved.Meta
	}
	if resolved.Export != nil {
		doc.Export = *resolved.Export
		set, err := color.ParseFormatSet(doc.Export.Formats)
		if err != nil {
			return nil, fmt.Errorf("export.formats: %w", err)
		}
		doc.Formats = set
	}

	return doc, nil
}

// resolvePalette evaluates palette attributes in source order, so each entry
// can reference the ones above it.
func resolvePalette(body *hclsyntax.Body) ([]Entry, error) {
	if len(body.Blocks) > 0 {
		return nil, fmt.Errorf("palette.%s: nested blocks are not supported", body.Blocks[0].Type)
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	entries := make([]Entry, 0, len(attrs))
	defined := make(map[string]color.Color, len(attrs))
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(EvalContext(defined))
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating palette.%s: %s", attr.Name, diags.Error())
		}
		c, err := ResolveColor(val)
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", attr.Name, err)
		}
		defined[attr.Name] = c
		entries = append(entries, Entry{Name: attr.Name, Color: c, Range: attr.Expr.Range()})
	}

	return entries, nil
}

func colorMap(entries []Entry) map[string]color.Color {
	m := make(map[string]color.Color, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Color
	}
	return m
}

// Palette returns the document's entries as a palette collection, named
// after their attributes. File entries are taken as written; no
// deduplication is applied.
func (d *Document) Palette() *palette.Palette {
	p := palette.New()
	for _, e := range d.Entries {
		p.AddNamed(e.Name, e.Color)
	}
	return p
}

// Title returns the export title, falling back to the palette name.
func (d *Document) Title() string {
	if d.Export.Title != "" {
		return d.Export.Title
	}
	return d.Meta.Name
}
