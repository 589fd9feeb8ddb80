// Package format renders colors and palettes as text: single color codes,
// export payloads and the descriptive palette summary.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

// CodeFormat controls how a color code is displayed. It never changes the
// underlying color.
type CodeFormat int

const (
	Hex CodeFormat = iota
	RGB
	HSL
)

// DefaultCodeFormat is used when no format has been chosen or persisted.
const DefaultCodeFormat = Hex

var codeFormatNames = map[CodeFormat]string{
	Hex: "hex",
	RGB: "rgb",
	HSL: "hsl",
}

var codeFormatOrder = []CodeFormat{Hex, RGB, HSL}

// CodeFormats returns every format in display order.
func CodeFormats() []CodeFormat {
	out := make([]CodeFormat, len(codeFormatOrder))
	copy(out, codeFormatOrder)
	return out
}

// ParseCodeFormat resolves a format by name.
func ParseCodeFormat(s string) (CodeFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range codeFormatOrder {
		if codeFormatNames[f] == name {
			return f, nil
		}
	}
	return DefaultCodeFormat, fmt.Errorf("unknown code format %q", s)
}

func (f CodeFormat) String() string {
	if name, ok := codeFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Valid reports whether f is a defined format.
func (f CodeFormat) Valid() bool {
	_, ok := codeFormatNames[f]
	return ok
}

// Next returns the following format, wrapping after the last one.
func (f CodeFormat) Next() CodeFormat {
	for i, candidate := range codeFormatOrder {
		if candidate == f {
			return codeFormatOrder[(i+1)%len(codeFormatOrder)]
		}
	}
	return DefaultCodeFormat
}

// MarshalText implements encoding.TextMarshaler.
func (f CodeFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unknown code format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *CodeFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseCodeFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Color renders c in the given format. Unknown formats fall back to hex.
func Color(c color.HSL, f CodeFormat) string {
	switch f {
	case RGB:
		rgb := c.RGB()
		return fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
	case HSL:
		return fmt.Sprintf("hsl(%d,%d%%,%d%%)", round(c.H), round(c.S), round(c.L))
	default:
		return c.Hex()
	}
}

// Colors renders every color of a palette in the given format.
func Colors(colors []color.HSL, f CodeFormat) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = Color(c, f)
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
