package palette

import (
	"errors"

	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/parser"
	"github.com/jsvensson/swatchkit/internal/studiocode"
	"github.com/tliron/commonlog"
)

// DuplicateThreshold is the largest per-channel RGB difference at which two
// imported colors are considered the same. It absorbs the rounding drift of
// colors that went through a CMYK export and back.
const DuplicateThreshold = 2

var log = commonlog.GetLogger("swatchkit.palette")

// Report summarizes a bulk import.
type Report struct {
	Added      []ID
	Duplicates []string // hex of colors skipped as near-duplicates
	Failed     []string // input tokens that did not parse
}

// Import appends colors, skipping any that are near-duplicates of an entry
// already in the palette, including ones added earlier in the same import.
func (p *Palette) Import(colors []color.Color) Report {
	swatches := make([]ase.Swatch, len(colors))
	for i, c := range colors {
		swatches[i] = ase.Swatch{Color: c}
	}
	return p.ImportNamed(swatches)
}

// ImportNamed is Import for named colors.
func (p *Palette) ImportNamed(swatches []ase.Swatch) Report {
	var r Report
	for _, s := range swatches {
		p.importOne(&r, s.Name, s.Color)
	}
	return r
}

// ImportText parses bulk text (see parser.Split) and imports every color
// that parses. Tokens that fail are reported, not fatal.
func (p *Palette) ImportText(text string) Report {
	var r Report
	for _, tok := range parser.Split(text) {
		c, err := parser.Parse(tok)
		if err != nil {
			log.Debugf("skipping %q: %s", tok, err)
			r.Failed = append(r.Failed, tok)
			continue
		}
		p.importOne(&r, "", c)
	}
	return r
}

// ImportStudioCode decodes a studio code and imports its colors with their
// names. Malformed codes return a *studiocode.DecodeError and change nothing.
func (p *Palette) ImportStudioCode(raw string) (Report, error) {
	entries, err := studiocode.Entries(raw)
	if err != nil {
		return Report{}, err
	}

	var r Report
	for _, e := range entries {
		c, err := parser.Parse(e.Hex)
		if err != nil {
			log.Debugf("skipping studio code entry %q: %s", e.Hex, err)
			r.Failed = append(r.Failed, e.Hex)
			continue
		}
		p.importOne(&r, e.Name, c)
	}
	return r, nil
}

// ImportInput imports raw user input. Input that decodes as a studio code is
// imported as one; anything else is treated as plain color text.
func (p *Palette) ImportInput(raw string) Report {
	r, err := p.ImportStudioCode(raw)
	var derr *studiocode.DecodeError
	if errors.As(err, &derr) {
		log.Debugf("not a studio code (%s), importing as text", derr)
		return p.ImportText(raw)
	}
	return r
}

func (p *Palette) importOne(r *Report, name string, c color.Color) {
	if p.hasNear(c) {
		r.Duplicates = append(r.Duplicates, c.Hex())
		return
	}
	r.Added = append(r.Added, p.AddNamed(name, c))
}

func (p *Palette) hasNear(c color.Color) bool {
	for _, e := range p.entries {
		if color.Near(e.Color, c, DuplicateThreshold) {
			return true
		}
	}
	return false
}
