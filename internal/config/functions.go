package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/swatchkit/internal/color"
	"github.com/jsvensson/swatchkit/internal/parser"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ResolveColor turns an evaluated attribute value into a color. The value
// must be a string in any notation the color parser accepts.
func ResolveColor(val cty.Value) (color.Color, error) {
	if val.IsNull() || !val.IsKnown() {
		return color.Color{}, fmt.Errorf("expected a color string, got null")
	}
	if val.Type() != cty.String {
		return color.Color{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
	return parser.Parse(val.AsString())
}

// EvalContext builds the evaluation context for palette expressions:
// the named colors defined so far as palette.<name>, plus the color functions.
func EvalContext(colors map[string]color.Color) *hcl.EvalContext {
	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vals := make(map[string]cty.Value, len(colors))
	for _, k := range keys {
		vals[k] = cty.StringVal(colors[k].Hex())
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
		Functions: Functions(),
	}
}

// Functions returns the functions available in palette files. All of them
// return a HEX string.
//
//	brighten(color, 0.1)   darken(color, 0.1)
//	hex(color)             rgb(255, 111, 97)
//	hsl(5, 100, 69)        cmyk(0, 56, 62, 0)
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"brighten": makeShiftFunc("Brightens a color by the given fraction of lightness (0.0 to 1.0)", color.Brighten),
		"darken":   makeShiftFunc("Darkens a color by the given fraction of lightness (0.0 to 1.0)", color.Darken),
		"hex":      makeHexFunc(),
		"rgb": makeComponentFunc("Builds a color from red, green and blue (0-255)",
			[]string{"red", "green", "blue"}, []int{255, 255, 255},
			func(v []int) color.Color { return color.Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])} }),
		"hsl": makeComponentFunc("Builds a color from hue (0-360), saturation and lightness (0-100)",
			[]string{"hue", "saturation", "lightness"}, []int{360, 100, 100},
			func(v []int) color.Color { return color.HSLToRGB(color.HSLValue{H: v[0], S: v[1], L: v[2]}) }),
		"cmyk": makeComponentFunc("Builds a color from cyan, magenta, yellow and key (0-100)",
			[]string{"cyan", "magenta", "yellow", "key"}, []int{100, 100, 100, 100},
			func(v []int) color.Color { return color.CMYKToRGB(color.CMYKValue{C: v[0], M: v[1], Y: v[2], K: v[3]}) }),
	}
}

// makeShiftFunc creates a function that adjusts lightness.
// Usage: brighten("#hex", 0.1) or darken(palette.color, 0.1)
func makeShiftFunc(desc string, shift func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parser.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			var pct float64
			if err := gocty.FromCtyValue(args[1], &pct); err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(shift(c, pct).Hex()), nil
		},
	})
}

// makeHexFunc creates a function normalizing any color notation to HEX.
func makeHexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts a color in any notation to #RRGGBB",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := parser.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

func makeComponentFunc(desc string, names []string, limits []int, build func([]int) color.Color) function.Function {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}

	return function.New(&function.Spec{
		Description: desc,
		Params:      params,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := make([]int, len(args))
			for i, arg := range args {
				if err := gocty.FromCtyValue(arg, &v[i]); err != nil {
					return cty.NilVal, function.NewArgError(i, err)
				}
				if v[i] < 0 || v[i] > limits[i] {
					return cty.NilVal, function.NewArgErrorf(i, "%s must be between 0 and %d, got %d", names[i], limits[i], v[i])
				}
			}
			return cty.StringVal(build(v).Hex()), nil
		},
	})
}
