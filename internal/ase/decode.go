package ase

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jsvensson/swatchkit/internal/color"
)

var (
	// ErrFormat is returned for data that is not a well-formed ASE file.
	ErrFormat = errors.New("malformed ASE data")
	// ErrUnsupportedModel is returned for color models that have no RGB
	// conversion here (LAB).
	ErrUnsupportedModel = errors.New("unsupported ASE color model")
)

// Decode reads the color entries of an ASE file in file order. Group
// blocks are flattened away; unknown block types are skipped.
func Decode(data []byte) ([]Swatch, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != signature {
		return nil, fmt.Errorf("%w: missing %s signature", ErrFormat, signature)
	}

	var header struct {
		Major, Minor uint16
		Count        uint32
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrFormat, err)
	}
	if header.Major != versionMajor {
		return nil, fmt.Errorf("%w: unsupported version %d.%d", ErrFormat, header.Major, header.Minor)
	}

	var swatches []Swatch
	for i := uint32(0); i < header.Count; i++ {
		var block struct {
			Type   uint16
			Length uint32
		}
		if err := binary.Read(r, binary.BigEndian, &block); err != nil {
			return nil, fmt.Errorf("%w: block %d: reading header: %v", ErrFormat, i, err)
		}
		if int64(block.Length) > int64(r.Len()) {
			return nil, fmt.Errorf("%w: block %d: length %d exceeds remaining %d bytes", ErrFormat, i, block.Length, r.Len())
		}
		payload := make([]byte, block.Length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrFormat, i, err)
		}

		if block.Type != blockColor {
			continue
		}
		s, err := decodeColor(payload)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		swatches = append(swatches, s)
	}

	return swatches, nil
}

func decodeColor(payload []byte) (Swatch, error) {
	r := bytes.NewReader(payload)

	var units uint16
	if err := binary.Read(r, binary.BigEndian, &units); err != nil {
		return Swatch{}, fmt.Errorf("%w: reading name length: %v", ErrFormat, err)
	}
	raw := make([]byte, 2*int(units))
	if _, err := io.ReadFull(r, raw); err != nil {
		return Swatch{}, fmt.Errorf("%w: reading name: %v", ErrFormat, err)
	}
	name, err := decodeName(raw)
	if err != nil {
		return Swatch{}, fmt.Errorf("%w: decoding name: %v", ErrFormat, err)
	}
	name = strings.TrimRight(name, "\x00")

	model := make([]byte, 4)
	if _, err := io.ReadFull(r, model); err != nil {
		return Swatch{}, fmt.Errorf("%w: reading color model: %v", ErrFormat, err)
	}

	var channels int
	switch string(model) {
	case "RGB ":
		channels = 3
	case "CMYK":
		channels = 4
	case "Gray":
		channels = 1
	case "LAB ":
		return Swatch{}, fmt.Errorf("%w: %q", ErrUnsupportedModel, model)
	default:
		return Swatch{}, fmt.Errorf("%w: unknown color model %q", ErrFormat, model)
	}

	v := make([]float32, channels)
	if err := binary.Read(r, binary.BigEndian, v); err != nil {
		return Swatch{}, fmt.Errorf("%w: reading %s channels: %v", ErrFormat, strings.TrimSpace(string(model)), err)
	}

	var c color.Color
	switch channels {
	case 3:
		c = color.Color{R: unit(float64(v[0])), G: unit(float64(v[1])), B: unit(float64(v[2]))}
	case 4:
		k := 1 - float64(v[3])
		c = color.Color{
			R: unit((1 - float64(v[0])) * k),
			G: unit((1 - float64(v[1])) * k),
			B: unit((1 - float64(v[2])) * k),
		}
	case 1:
		g := unit(float64(v[0]))
		c = color.Color{R: g, G: g, B: g}
	}

	return Swatch{Name: name, Color: c}, nil
}

// unit maps a [0, 1] channel to a byte, clamping and rounding.
func unit(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
