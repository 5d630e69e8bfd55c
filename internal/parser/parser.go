// Package parser turns free-form color text into canonical colors.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jsvensson/swatchkit/internal/color"
)

var (
	// ErrUnrecognized means the input matched none of the supported notations.
	ErrUnrecognized = errors.New("unrecognized color notation")
	// ErrOutOfRange means a notation matched but a channel exceeded its range.
	ErrOutOfRange = errors.New("color channel out of range")
)

// ParseError describes why an input string could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// grammar is one supported notation. Grammars are tried in the order of
// the grammars slice; the first structural match that passes range
// validation wins.
type grammar struct {
	format  color.Format
	pattern *regexp.Regexp
	limits  []int
	build   func(v []int) color.Color
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-f]{6}$`)

// The separators are deliberately loose: parens and commas are optional and
// whitespace is free-form, because hand-typed input varies.
var grammars = []grammar{
	{
		format:  color.RGB,
		pattern: regexp.MustCompile(`rgba?\(?\s*(\d+)\s*,?\s*(\d+)\s*,?\s*(\d+)`),
		limits:  []int{255, 255, 255},
		build: func(v []int) color.Color {
			return color.Color{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}
		},
	},
	{
		format:  color.HSL,
		pattern: regexp.MustCompile(`hsla?\(?\s*(\d+)\s*,?\s*(\d+)%?\s*,?\s*(\d+)%?`),
		limits:  []int{360, 100, 100},
		build: func(v []int) color.Color {
			return color.HSLToRGB(color.HSLValue{H: v[0], S: v[1], L: v[2]})
		},
	},
	{
		format:  color.CMYK,
		pattern: regexp.MustCompile(`cmyk\(?\s*(\d+)%?\s*,?\s*(\d+)%?\s*,?\s*(\d+)%?\s*,?\s*(\d+)%?`),
		limits:  []int{100, 100, 100, 100},
		build: func(v []int) color.Color {
			return color.CMYKToRGB(color.CMYKValue{C: v[0], M: v[1], Y: v[2], K: v[3]})
		},
	},
}

// Parse converts a color string in HEX, RGB, HSL or CMYK notation into a
// Color. The input is trimmed and lowercased before matching. Failures are
// returned as *ParseError; Parse never panics.
func Parse(input string) (color.Color, error) {
	c, _, err := parse(input)
	return c, err
}

// Detect reports which notation input is written in, if any parses.
func Detect(input string) (color.Format, bool) {
	_, f, err := parse(input)
	return f, err == nil
}

func parse(input string) (color.Color, color.Format, error) {
	cleaned := strings.ToLower(strings.TrimSpace(input))

	if hexPattern.MatchString(cleaned) {
		c, err := color.ParseHex(cleaned)
		if err != nil {
			return color.Color{}, 0, &ParseError{Input: input, Err: err}
		}
		return c, color.Hex, nil
	}

	cause := ErrUnrecognized
	for _, g := range grammars {
		m := g.pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		values, ok := g.values(m[1:])
		if !ok {
			cause = ErrOutOfRange
			continue
		}
		return g.build(values), g.format, nil
	}

	return color.Color{}, 0, &ParseError{Input: input, Err: cause}
}

// values converts the captured digit groups, rejecting anything above the
// grammar's limits. Overflowing integers count as out of range.
func (g grammar) values(groups []string) ([]int, bool) {
	values := make([]int, len(groups))
	for i, s := range groups {
		v, err := strconv.Atoi(s)
		if err != nil || v > g.limits[i] {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
