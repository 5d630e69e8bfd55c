package palette

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/studiocode"
)

var (
	red   = color.Color{R: 255}
	green = color.Color{G: 255}
	blue  = color.Color{B: 255}
)

// newTestPalette returns a palette with sequential IDs "id1", "id2", ...
func newTestPalette() *Palette {
	p := New()
	n := 0
	p.newID = func() ID {
		n++
		return ID(fmt.Sprintf("id%d", n))
	}
	return p
}

func TestAddKeepsOrderAndDuplicates(t *testing.T) {
	p := newTestPalette()
	p.Add(red)
	p.Add(red)
	p.Add(blue)

	want := []color.Color{red, red, blue}
	if diff := cmp.Diff(want, p.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsUnique(t *testing.T) {
	p := New()
	seen := map[ID]bool{}
	for i := 0; i < 50; i++ {
		id := p.Add(color.Color{R: uint8(i)})
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}

	first := p.Entries()[0].ID
	p.Remove(first)
	if id := p.Add(red); id == first {
		t.Errorf("ID %q reused after removal", id)
	}
}

func TestRemove(t *testing.T) {
	p := newTestPalette()
	a := p.Add(red)
	p.Add(green)
	p.Add(blue)

	p.Remove(a)
	if diff := cmp.Diff([]color.Color{green, blue}, p.Colors()); diff != "" {
		t.Errorf("after Remove (-want +got):\n%s", diff)
	}

	p.Remove("missing")
	if p.Len() != 2 {
		t.Errorf("Remove(unknown) changed length to %d", p.Len())
	}
}

func TestUpdate(t *testing.T) {
	p := newTestPalette()
	p.Add(red)
	id := p.AddNamed("Sea", green)
	p.Add(blue)

	if err := p.Update(id, color.Color{R: 1, G: 2, B: 3}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	e, ok := p.Get(id)
	if !ok {
		t.Fatal("entry missing after Update")
	}
	if e.Color != (color.Color{R: 1, G: 2, B: 3}) || e.Name != "Sea" {
		t.Errorf("entry = %+v", e)
	}
	if p.Index(id) != 1 {
		t.Errorf("Index = %d, want 1", p.Index(id))
	}

	if err := p.Update("missing", red); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown) error = %v, want ErrNotFound", err)
	}
	if err := p.Rename("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		dir  Direction
		want []color.Color
	}{
		{"middle up", "id2", Up, []color.Color{green, red, blue}},
		{"middle down", "id2", Down, []color.Color{red, blue, green}},
		{"first up", "id1", Up, []color.Color{red, green, blue}},
		{"last down", "id3", Down, []color.Color{red, green, blue}},
		{"first down", "id1", Down, []color.Color{green, red, blue}},
		{"unknown", "nope", Up, []color.Color{red, green, blue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPalette()
			p.Add(red)
			p.Add(green)
			p.Add(blue)

			p.Move(tt.id, tt.dir)
			if diff := cmp.Diff(tt.want, p.Colors()); diff != "" {
				t.Errorf("Move mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClear(t *testing.T) {
	p := newTestPalette()
	p.Add(red)
	p.Add(blue)
	p.Clear()
	if p.Len() != 0 || len(p.Entries()) != 0 {
		t.Errorf("Len after Clear = %d", p.Len())
	}
}

func TestEntriesIsCopy(t *testing.T) {
	p := newTestPalette()
	p.Add(red)
	entries := p.Entries()
	entries[0].Color = blue
	if p.Colors()[0] != red {
		t.Error("mutating Entries() result changed the palette")
	}
}

func TestSwatches(t *testing.T) {
	p := newTestPalette()
	p.Add(red)
	p.AddNamed("Sky", blue)
	p.Add(green)

	want := []ase.Swatch{
		{Name: "Color 1", Color: red},
		{Name: "Sky", Color: blue},
		{Name: "Color 3", Color: green},
	}
	if diff := cmp.Diff(want, p.Swatches()); diff != "" {
		t.Errorf("Swatches mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	p := newTestPalette()
	p.Add(color.Color{R: 255, G: 111, B: 97})
	p.Add(color.Color{})

	got := p.Text(color.NewFormatSet(color.Hex, color.RGB))
	want := "HEX: #FF6F61\nRGB: rgb(255, 111, 97)\n\nHEX: #000000\nRGB: rgb(0, 0, 0)"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}

	if got := newTestPalette().Text(color.AllFormats); got != "" {
		t.Errorf("Text() of empty palette = %q", got)
	}
}

func TestStudioCodeRoundTrip(t *testing.T) {
	p := newTestPalette()
	p.AddNamed("Coral", color.Color{R: 255, G: 111, B: 97})
	p.Add(color.Color{R: 6, G: 214, B: 160})

	entries, err := studiocode.Entries(p.StudioCode())
	if err != nil {
		t.Fatalf("Entries error: %v", err)
	}
	want := []studiocode.Entry{
		{Hex: "#FF6F61", Name: "Coral"},
		{Hex: "#06D6A0"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("studio code mismatch (-want +got):\n%s", diff)
	}
}
