package ase

import (
	"bytes"
	"encoding/binary"

	"github.com/jsvensson/swatchkit/internal/color"
)

// Encode serializes swatches into an ASE file, in slice order. Every swatch
// is written as a global RGB color entry. Swatches with an empty name get
// DefaultName for their position.
func Encode(swatches []Swatch) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(signature)
	writeU16(buf, versionMajor)
	writeU16(buf, versionMinor)
	writeU32(buf, uint32(len(swatches)))

	for i, s := range swatches {
		name := s.Name
		if name == "" {
			name = DefaultName(i)
		}
		nameBytes := encodeName(name)
		r, g, b := s.Color.Float()

		// name length field + name + terminator + model + 3 floats + color type
		length := 2 + len(nameBytes) + 2 + 4 + 3*4 + 2

		writeU16(buf, blockColor)
		writeU32(buf, uint32(length))
		writeU16(buf, uint16(len(nameBytes)/2+1))
		buf.Write(nameBytes)
		writeU16(buf, 0)
		buf.WriteString("RGB ")
		writeF32(buf, float32(r))
		writeF32(buf, float32(g))
		writeF32(buf, float32(b))
		writeU16(buf, TypeGlobal)
	}

	return buf.Bytes()
}

// EncodeColors encodes unnamed colors, naming them "Color 1", "Color 2", ...
func EncodeColors(colors []color.Color) []byte {
	swatches := make([]Swatch, len(colors))
	for i, c := range colors {
		swatches[i] = Swatch{Color: c}
	}
	return Encode(swatches)
}

// Writes to a bytes.Buffer cannot fail.

func writeU16(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeF32(buf *bytes.Buffer, v float32) {
	_ = binary.Write(buf, binary.BigEndian, v)
}
