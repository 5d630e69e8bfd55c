package color

import (
	"fmt"
	"strings"
)

// Format identifies one of the display notations of a Color.
type Format uint8

const (
	Hex Format = iota
	RGB
	HSL
	CMYK
)

var formatNames = [...]string{
	Hex:  "hex",
	RGB:  "rgb",
	HSL:  "hsl",
	CMYK: "cmyk",
}

// Formats returns every format in display order.
func Formats() []Format {
	return []Format{Hex, RGB, HSL, CMYK}
}

// String returns the lowercase name of the format, e.g. "hsl".
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Label returns the uppercase label used in exports, e.g. "HSL".
func (f Format) Label() string {
	return strings.ToUpper(f.String())
}

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (valid: hex, rgb, hsl, cmyk)", s)
}

// FormatSet is a selection of formats. Selected formats are always
// reported in display order, regardless of the order they were added in.
type FormatSet uint8

// AllFormats selects every format.
const AllFormats FormatSet = 1<<Hex | 1<<RGB | 1<<HSL | 1<<CMYK

// NewFormatSet returns a set holding the given formats.
func NewFormatSet(formats ...Format) FormatSet {
	var s FormatSet
	for _, f := range formats {
		s |= 1 << f
	}
	return s
}

// ParseFormatSet parses a list of format names. An empty list selects all formats.
func ParseFormatSet(names []string) (FormatSet, error) {
	if len(names) == 0 {
		return AllFormats, nil
	}
	var s FormatSet
	for _, n := range names {
		f, err := ParseFormat(n)
		if err != nil {
			return 0, err
		}
		s |= 1 << f
	}
	return s, nil
}

// Has reports whether f is selected.
func (s FormatSet) Has(f Format) bool {
	return s&(1<<f) != 0
}

// Len returns the number of selected formats.
func (s FormatSet) Len() int {
	n := 0
	for _, f := range Formats() {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// Toggle flips f. Deselecting the last remaining format is refused;
// the returned bool reports whether the set changed.
func (s FormatSet) Toggle(f Format) (FormatSet, bool) {
	if s.Has(f) {
		if s.Len() == 1 {
			return s, false
		}
		return s &^ (1 << f), true
	}
	return s | 1<<f, true
}

// Formats returns the selected formats in display order.
func (s FormatSet) Formats() []Format {
	var out []Format
	for _, f := range Formats() {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s FormatSet) String() string {
	names := make([]string, 0, 4)
	for _, f := range s.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ",")
}
