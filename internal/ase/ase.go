// Package ase encodes and decodes Adobe Swatch Exchange files.
//
// An ASE file is a big-endian stream:
//
//	"ASEF" | u16 major (1) | u16 minor (0) | u32 block count
//	block: u16 type | u32 length | payload
//
// A color entry (type 0x0001) payload is a u16 name length in UTF-16 code
// units including the terminator, the UTF-16BE name, a NUL code unit, a
// 4-byte color model ("RGB ", "CMYK", "Gray", "LAB "), one float32 per
// channel, and a u16 color type (0 global, 1 spot, 2 normal).
package ase

import (
	"fmt"
	"strings"

	"github.com/jsvensson/swatchkit/internal/color"
	"golang.org/x/text/encoding/unicode"
)

const signature = "ASEF"

const (
	versionMajor = 1
	versionMinor = 0
)

// Block types.
const (
	blockColor      uint16 = 0x0001
	blockGroupStart uint16 = 0xC001
	blockGroupEnd   uint16 = 0xC002
)

// Color types.
const (
	TypeGlobal uint16 = 0
	TypeSpot   uint16 = 1
	TypeNormal uint16 = 2
)

// Swatch is a named color.
type Swatch struct {
	Name  string
	Color color.Color
}

// DefaultName returns the name given to the swatch at index i (0-based)
// when no name was supplied: "Color 1", "Color 2", ...
func DefaultName(i int) string {
	return fmt.Sprintf("Color %d", i+1)
}

// utf16be has no BOM; ASE names are bare code units.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

func encodeName(name string) []byte {
	b, err := utf16be.NewEncoder().Bytes([]byte(strings.ToValidUTF8(name, "�")))
	if err != nil {
		// The input is valid UTF-8, which always has a UTF-16 form.
		panic("ase: encoding name: " + err.Error())
	}
	return b
}

func decodeName(b []byte) (string, error) {
	s, err := utf16be.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
