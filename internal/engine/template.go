package engine

import (
	"fmt"
	"text/template"

	"github.com/jsvensson/swatchkit/internal/ase"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/palette"
	"github.com/jsvensson/swatchkit/internal/parser"
)

// templateData is the data passed to templates.
type templateData struct {
	Title    string
	Swatches []ase.Swatch // named, in palette order
	Formats  []color.Format
	FuncMap  template.FuncMap
}

func newTemplateData(job Job) templateData {
	swatches := job.Palette.Swatches()
	byName := make(map[string]color.Color, len(swatches))
	for _, s := range swatches {
		byName[s.Name] = s.Color
	}

	// resolve accepts a color, a swatch or entry, the name of a swatch,
	// or a color string in any notation.
	resolve := func(v any) (color.Color, error) {
		switch v := v.(type) {
		case color.Color:
			return v, nil
		case ase.Swatch:
			return v.Color, nil
		case palette.Entry:
			return v.Color, nil
		case string:
			if c, ok := byName[v]; ok {
				return c, nil
			}
			return parser.Parse(v)
		default:
			return color.Color{}, fmt.Errorf("cannot use %T as a color", v)
		}
	}

	project := func(f color.Format) func(any) (string, error) {
		return func(v any) (string, error) {
			c, err := resolve(v)
			if err != nil {
				return "", err
			}
			return c.Format(f), nil
		}
	}

	return templateData{
		Title:    job.Title,
		Swatches: swatches,
		Formats:  job.Formats.Formats(),
		FuncMap: template.FuncMap{
			"color": resolve,
			"hex":   project(color.Hex),
			"hexBare": func(v any) (string, error) {
				c, err := resolve(v)
				if err != nil {
					return "", err
				}
				return c.HexBare(), nil
			},
			"rgb":  project(color.RGB),
			"hsl":  project(color.HSL),
			"cmyk": project(color.CMYK),
			"format": func(f any, v any) (string, error) {
				switch f := f.(type) {
				case color.Format:
					return project(f)(v)
				case string:
					parsed, err := color.ParseFormat(f)
					if err != nil {
						return "", err
					}
					return project(parsed)(v)
				default:
					return "", fmt.Errorf("cannot use %T as a format", f)
				}
			},
		},
	}
}
