package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/config"
	"github.com/jsvensson/swatchkit/internal/palette"
	"github.com/jsvensson/swatchkit/internal/studiocode"
)

func testJob() Job {
	p := palette.New()
	p.AddNamed("coral", color.Color{R: 255, G: 111, B: 97})
	p.Add(color.Color{R: 17, G: 138, B: 178})
	return Job{
		Base:    "brand",
		Title:   "Brand",
		Palette: p,
		Formats: color.NewFormatSet(color.Hex, color.RGB),
	}
}

func setupTemplateDir(t *testing.T, templates map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(content)
}

func TestRunAllTargets(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "output")
	e := &Engine{OutputDir: outDir}

	written, err := e.Run(testJob())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var want []string
	for _, name := range []string{"brand.ase", "brand.pdf", "brand.png", "brand.txt", "brand.studio"} {
		want = append(want, filepath.Join(outDir, name))
	}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("written mismatch (-want +got):\n%s", diff)
	}
	for _, path := range written {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty", path)
		}
	}
}

func TestRunASE(t *testing.T) {
	outDir := t.TempDir()
	e := &Engine{OutputDir: outDir, Targets: []Target{TargetASE}}

	if _, err := e.Run(testJob()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data := []byte(readOutput(t, filepath.Join(outDir, "brand.ase")))
	want := ase.Encode([]ase.Swatch{
		{Name: "coral", Color: color.Color{R: 255, G: 111, B: 97}},
		{Name: "Color 2", Color: color.Color{R: 17, G: 138, B: 178}},
	})
	if !bytes.Equal(data, want) {
		t.Error("ASE output differs from ase.Encode of the palette swatches")
	}
}

func TestRunText(t *testing.T) {
	outDir := t.TempDir()
	e := &Engine{OutputDir: outDir, Targets: []Target{TargetText, TargetText}}

	written, err := e.Run(testJob())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(written) != 1 {
		t.Errorf("duplicate targets wrote %d files, want 1", len(written))
	}

	want := "HEX: #FF6F61\nRGB: rgb(255, 111, 97)\n\nHEX: #118AB2\nRGB: rgb(17, 138, 178)\n"
	if got := readOutput(t, filepath.Join(outDir, "brand.txt")); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunStudio(t *testing.T) {
	outDir := t.TempDir()
	e := &Engine{OutputDir: outDir, Targets: []Target{TargetStudio}}

	if _, err := e.Run(testJob()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	got, err := studiocode.Decode(readOutput(t, filepath.Join(outDir, "brand.studio")))
	if err != nil {
		t.Fatalf("decoding studio output: %v", err)
	}
	if diff := cmp.Diff([]string{"#FF6F61", "#118AB2"}, got); diff != "" {
		t.Errorf("studio mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNameOverrides(t *testing.T) {
	outDir := t.TempDir()
	job := testJob()
	job.Names = map[Target]string{TargetASE: "swatches"}
	e := &Engine{OutputDir: outDir, Targets: []Target{TargetASE, TargetText}}

	written, err := e.Run(job)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	want := []string{filepath.Join(outDir, "swatches.ase"), filepath.Join(outDir, "brand.txt")}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("written mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEmptyPalette(t *testing.T) {
	e := &Engine{OutputDir: t.TempDir()}
	if _, err := e.Run(Job{Palette: palette.New()}); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestRunNoTemplates(t *testing.T) {
	e := &Engine{
		TemplatesDir: t.TempDir(), // empty directory
		OutputDir:    filepath.Join(t.TempDir(), "output"),
	}

	if _, err := e.Run(testJob()); err == nil {
		t.Error("expected error for empty templates dir")
	}
}

func TestRunTemplates(t *testing.T) {
	tmplDir := setupTemplateDir(t, map[string]string{
		"colors.css.tmpl": `{{ range .Swatches }}--{{ .Name }}: {{ hex . }};
{{ end }}`,
		"lookup.txt.tmpl": `{{ hex "coral" }} {{ hexBare "Color 2" }} {{ rgb "coral" }} {{ cmyk "#FFFFFF" }}`,
		"formats.txt.tmpl": `{{ $s := index .Swatches 0 }}{{ range .Formats }}{{ .Label }}={{ format . $s }}
{{ end }}{{ format "hsl" "coral" }}`,
		"title.txt.tmpl": `{{ .Title }}`,
	})
	outDir := t.TempDir()
	e := &Engine{OutputDir: outDir, TemplatesDir: tmplDir, Targets: []Target{TargetText}}

	if _, err := e.Run(testJob()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	tests := []struct {
		file string
		want string
	}{
		{"colors.css", "--coral: #FF6F61;\n--Color 2: #118AB2;\n"},
		{"lookup.txt", "#FF6F61 118AB2 rgb(255, 111, 97) cmyk(0%, 0%, 0%, 0%)"},
		{"formats.txt", "HEX=#FF6F61\nRGB=rgb(255, 111, 97)\nhsl(5, 100%, 69%)"},
		{"title.txt", "Brand"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := readOutput(t, filepath.Join(outDir, tt.file)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunTemplateError(t *testing.T) {
	tmplDir := setupTemplateDir(t, map[string]string{
		"bad.txt.tmpl": `{{ hex "no-such-color" }}`,
	})
	e := &Engine{OutputDir: t.TempDir(), TemplatesDir: tmplDir, Targets: []Target{TargetText}}

	_, err := e.Run(testJob())
	if err == nil || !strings.Contains(err.Error(), "bad.txt.tmpl") {
		t.Errorf("Run() error = %v, want template error", err)
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"ase", TargetASE, false},
		{" PDF ", TargetPDF, false},
		{"txt", TargetText, false},
		{"studio", TargetStudio, false},
		{"svg", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTarget(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTarget(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJobFromDocument(t *testing.T) {
	doc, err := config.LoadSource("brand.hcl", []byte(`
meta {
  name = "Brand"
}
palette {
  coral = "#FF6F61"
}
export {
  formats = ["cmyk"]
  pdf     = "print"
}
`))
	if err != nil {
		t.Fatalf("LoadSource() error: %v", err)
	}

	job := JobFromDocument(doc, "brand")
	if job.Title != "Brand" {
		t.Errorf("Title = %q, want %q", job.Title, "Brand")
	}
	if job.filename(TargetPDF) != "print.pdf" || job.filename(TargetASE) != "brand.ase" {
		t.Errorf("filenames = %s, %s", job.filename(TargetPDF), job.filename(TargetASE))
	}
	if job.Formats != color.NewFormatSet(color.CMYK) {
		t.Errorf("Formats = %s, want cmyk", job.Formats)
	}
	if job.Palette.Len() != 1 {
		t.Errorf("Palette.Len() = %d, want 1", job.Palette.Len())
	}
}
