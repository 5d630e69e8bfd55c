// Package palette holds an ordered, mutable collection of colors.
//
// A Palette has a single owner and is not safe for concurrent use; callers
// that share one between goroutines must serialize access themselves.
package palette

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/studiocode"
)

// ErrNotFound is returned by operations that require an existing entry.
var ErrNotFound = errors.New("palette entry not found")

// ID identifies a palette entry. IDs are never reused.
type ID string

// Entry is a color at a position in a palette.
type Entry struct {
	ID    ID
	Name  string // optional; empty means unnamed
	Color color.Color
}

// Direction is the direction of a Move.
type Direction int

const (
	Up Direction = iota
	Down
)

// Palette is an ordered sequence of entries. Order determines display and
// export order.
type Palette struct {
	entries []Entry
	newID   func() ID
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{
		newID: func() ID { return ID(uuid.NewString()) },
	}
}

// Add appends c and returns its new ID. Add never deduplicates.
func (p *Palette) Add(c color.Color) ID {
	return p.AddNamed("", c)
}

// AddNamed appends a named color and returns its new ID.
func (p *Palette) AddNamed(name string, c color.Color) ID {
	id := p.newID()
	p.entries = append(p.entries, Entry{ID: id, Name: name, Color: c})
	return id
}

// Remove deletes the entry with the given ID. Unknown IDs are ignored.
func (p *Palette) Remove(id ID) {
	if i := p.Index(id); i >= 0 {
		p.entries = slices.Delete(p.entries, i, i+1)
	}
}

// Update replaces the color of an entry, keeping its ID, name and position.
func (p *Palette) Update(id ID, c color.Color) error {
	i := p.Index(id)
	if i < 0 {
		return ErrNotFound
	}
	p.entries[i].Color = c
	return nil
}

// Rename sets the name of an entry.
func (p *Palette) Rename(id ID, name string) error {
	i := p.Index(id)
	if i < 0 {
		return ErrNotFound
	}
	p.entries[i].Name = name
	return nil
}

// Move swaps an entry with its neighbor in the given direction. Moving the
// first entry up, the last entry down, or an unknown ID does nothing.
func (p *Palette) Move(id ID, dir Direction) {
	i := p.Index(id)
	if i < 0 {
		return
	}
	j := i - 1
	if dir == Down {
		j = i + 1
	}
	if j < 0 || j >= len(p.entries) {
		return
	}
	p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
}

// Clear removes every entry.
func (p *Palette) Clear() {
	p.entries = nil
}

// Get returns the entry with the given ID.
func (p *Palette) Get(id ID) (Entry, bool) {
	if i := p.Index(id); i >= 0 {
		return p.entries[i], true
	}
	return Entry{}, false
}

// Index returns the position of the entry, or -1.
func (p *Palette) Index(id ID) int {
	return slices.IndexFunc(p.entries, func(e Entry) bool { return e.ID == id })
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the entries in order.
func (p *Palette) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Colors returns the colors in order.
func (p *Palette) Colors() []color.Color {
	out := make([]color.Color, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Color
	}
	return out
}

// Swatches returns the entries as named swatches. Unnamed entries get the
// default "Color N" name for their position.
func (p *Palette) Swatches() []ase.Swatch {
	out := make([]ase.Swatch, len(p.entries))
	for i, e := range p.entries {
		name := e.Name
		if name == "" {
			name = ase.DefaultName(i)
		}
		out[i] = ase.Swatch{Name: name, Color: e.Color}
	}
	return out
}

// StudioCode encodes the palette as a studio code. Only user-supplied
// names are carried.
func (p *Palette) StudioCode() string {
	entries := make([]studiocode.Entry, len(p.entries))
	for i, e := range p.entries {
		entries[i] = studiocode.Entry{Hex: e.Color.Hex(), Name: e.Name}
	}
	return studiocode.Encode(entries)
}

// Text renders the whole palette for the clipboard: one "LABEL: value" line
// per selected format, colors separated by a blank line.
func (p *Palette) Text(set color.FormatSet) string {
	blocks := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		var lines []string
		for _, f := range set.Formats() {
			lines = append(lines, f.Label()+": "+e.Color.Format(f))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
