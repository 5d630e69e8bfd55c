package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/config"
	"github.com/jsvensson/swatchkit/internal/palette"
	"github.com/jsvensson/swatchkit/internal/render"
	"github.com/samber/lo"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("swatchkit.engine")

// Target is a built-in export format.
type Target string

const (
	TargetASE    Target = "ase"
	TargetPDF    Target = "pdf"
	TargetPNG    Target = "png"
	TargetText   Target = "txt"
	TargetStudio Target = "studio"
)

// AllTargets lists the built-in targets in the order they are written.
var AllTargets = []Target{TargetASE, TargetPDF, TargetPNG, TargetText, TargetStudio}

// ParseTarget converts a target name such as "ase" to a Target.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(AllTargets, t) {
		names := lo.Map(AllTargets, func(t Target, _ int) string { return string(t) })
		return "", fmt.Errorf("unknown target %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return t, nil
}

// Job is one palette to export.
type Job struct {
	Base    string // output base name, without extension
	Title   string
	Palette *palette.Palette
	Formats color.FormatSet
	Names   map[Target]string // per-target base name overrides
}

// JobFromDocument builds a job from a palette file. base is used for every
// target the file's export block does not name.
func JobFromDocument(doc *config.Document, base string) Job {
	names := map[Target]string{
		TargetASE:    doc.Export.ASE,
		TargetPDF:    doc.Export.PDF,
		TargetPNG:    doc.Export.PNG,
		TargetText:   doc.Export.Text,
		TargetStudio: doc.Export.Studio,
	}
	return Job{
		Base:    base,
		Title:   doc.Title(),
		Palette: doc.Palette(),
		Formats: doc.Formats,
		Names:   lo.OmitByValues(names, []string{""}),
	}
}

func (j Job) filename(t Target) string {
	base := j.Base
	if name, ok := j.Names[t]; ok {
		base = name
	}
	return base + "." + string(t)
}

func (j Job) sheet() render.Sheet {
	return render.Sheet{Title: j.Title, Swatches: j.Palette.Swatches(), Formats: j.Formats}
}

// Engine writes a palette to the selected targets and renders any
// templates against it.
type Engine struct {
	OutputDir    string
	TemplatesDir string   // if set, every *.tmpl in it is rendered
	Targets      []Target // if empty, all built-in targets
}

// Run exports job and returns the paths written, in order.
func (e *Engine) Run(job Job) ([]string, error) {
	if job.Palette == nil || job.Palette.Len() == 0 {
		return nil, fmt.Errorf("nothing to export: palette is empty")
	}
	if job.Base == "" {
		job.Base = "palette"
	}
	if job.Formats.Len() == 0 {
		job.Formats = color.AllFormats
	}

	var templates []string
	if e.TemplatesDir != "" {
		matches, err := filepath.Glob(filepath.Join(e.TemplatesDir, "*.tmpl"))
		if err != nil {
			return nil, fmt.Errorf("globbing templates: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
		}
		templates = matches
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	targets := lo.Uniq(e.Targets)
	if len(targets) == 0 {
		targets = AllTargets
	}

	var written []string
	for _, t := range targets {
		path := filepath.Join(e.OutputDir, job.filename(t))
		if err := writeFile(path, func(w io.Writer) error { return export(w, t, job) }); err != nil {
			return written, fmt.Errorf("writing %s: %w", t, err)
		}
		log.Infof("wrote %s", path)
		written = append(written, path)
	}

	data := newTemplateData(job)
	for _, tmplPath := range templates {
		outPath := filepath.Join(e.OutputDir, strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl"))
		if err := renderTemplate(tmplPath, outPath, data); err != nil {
			return written, err
		}
		log.Infof("wrote %s", outPath)
		written = append(written, outPath)
	}

	return written, nil
}

func export(w io.Writer, t Target, job Job) error {
	switch t {
	case TargetASE:
		_, err := w.Write(ase.Encode(job.Palette.Swatches()))
		return err
	case TargetPDF:
		return render.PDF(w, job.sheet())
	case TargetPNG:
		return render.PNG(w, job.sheet())
	case TargetText:
		_, err := io.WriteString(w, job.Palette.Text(job.Formats)+"\n")
		return err
	case TargetStudio:
		_, err := io.WriteString(w, job.Palette.StudioCode()+"\n")
		return err
	default:
		return fmt.Errorf("unknown target %q", t)
	}
}

// writeFile renders into memory first so a failed export leaves no
// truncated file behind.
func writeFile(path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func renderTemplate(tmplPath, outPath string, data templateData) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(data.FuncMap).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	err = writeFile(outPath, func(w io.Writer) error { return tmpl.Execute(w, data) })
	if err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return nil
}
