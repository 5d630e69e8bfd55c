package render

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
)

func sampleSheet(n int) Sheet {
	samples := []color.Color{
		{R: 255, G: 111, B: 97},
		{R: 255, G: 209, B: 102},
		{R: 6, G: 214, B: 160},
		{R: 17, G: 138, B: 178},
		{R: 7, G: 59, B: 76},
	}
	s := Sheet{Title: "Sample"}
	for i := 0; i < n; i++ {
		s.Swatches = append(s.Swatches, ase.Swatch{Color: samples[i%len(samples)]})
	}
	return s
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want color.Color
	}{
		{"white", color.Color{R: 255, G: 255, B: 255}, black},
		{"black", color.Color{}, white},
		{"sun yellow", color.Color{R: 255, G: 209, B: 102}, black},
		{"deep teal", color.Color{R: 7, G: 59, B: 76}, white},
		{"pure blue", color.Color{B: 255}, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrast(tt.in); got != tt.want {
				t.Errorf("Contrast(%s) = %s, want %s", tt.in.Hex(), got.Hex(), tt.want.Hex())
			}
		})
	}
}

func TestSheetLines(t *testing.T) {
	s := Sheet{Formats: color.NewFormatSet(color.Hex, color.CMYK)}
	got := s.lines(color.Color{R: 255, G: 111, B: 97})
	want := []string{"HEX: #FF6F61", "CMYK: cmyk(0%, 56%, 62%, 0%)"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	if n := len(Sheet{}.lines(color.Color{})); n != 4 {
		t.Errorf("unset formats give %d lines, want 4", n)
	}
}

func TestImageLayout(t *testing.T) {
	tests := []struct {
		name          string
		swatches      int
		width, height int
	}{
		{"single", 1, 200, titleHeight + 220},
		{"one row", 3, 600, titleHeight + 220},
		{"wraps", 7, 1000, titleHeight + 2*220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Image(sampleSheet(tt.swatches))
			if err != nil {
				t.Fatalf("Image() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestImageSwatchColors(t *testing.T) {
	sheet := sampleSheet(7)
	img, err := Image(sheet)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}

	cellHeight := 220
	for i, s := range sheet.Swatches {
		x := (i%5)*cellWidth + cellWidth/2
		y := titleHeight + (i/5)*cellHeight + swatchHeight/3
		got := img.RGBAAt(x, y)
		want := rgba(s.Color)
		if got != want {
			t.Errorf("swatch %d pixel = %v, want %v", i, got, want)
		}
	}
}

func TestImageEmpty(t *testing.T) {
	if _, err := Image(Sheet{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("Image(empty) error = %v, want ErrEmpty", err)
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, sampleSheet(2)); err != nil {
		t.Fatalf("PNG() error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 {
		t.Errorf("width = %d, want 400", b.Dx())
	}
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name  string
		sheet Sheet
	}{
		{"empty", Sheet{}},
		{"few", sampleSheet(3)},
		{"several pages", sampleSheet(40)},
		{"named", Sheet{Swatches: []ase.Swatch{{Name: "Coral", Color: color.Color{R: 255, G: 111, B: 97}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := PDF(&buf, tt.sheet); err != nil {
				t.Fatalf("PDF() error: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
				t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 16)])
			}
		})
	}
}
