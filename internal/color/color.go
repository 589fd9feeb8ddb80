// Package color implements the HSL, RGB and hex conversions palettes are built on.
// HSL is the canonical representation; RGB and hex are always derived from it.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB color.
var ErrInvalidHex = errors.New("invalid hex color")

// HSL is a color in hue/saturation/lightness space. Hue is in degrees [0,360),
// saturation and lightness are percentages [0,100].
type HSL struct {
	H float64 `json:"h" validate:"gte=0,lt=360"`
	S float64 `json:"s" validate:"gte=0,lte=100"`
	L float64 `json:"l" validate:"gte=0,lte=100"`
}

// RGB holds 8-bit channel values.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSLToRGB converts c to 8-bit RGB, rounding each channel to the nearest integer.
func HSLToRGB(c HSL) RGB {
	h := c.H / 360
	s := c.S / 100
	l := c.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// RGBToHex renders c as #RRGGBB with uppercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

func clampChannel(v int) int {
	return max(0, min(255, v))
}

// RGB returns the 8-bit RGB form of c.
func (c HSL) RGB() RGB {
	return HSLToRGB(c)
}

// Hex returns the #RRGGBB form of c.
func (c HSL) Hex() string {
	return RGBToHex(HSLToRGB(c))
}

// HexToHSL parses a #RRGGBB string. The resulting components are rounded to
// whole degrees and percentages; achromatic input yields hue 0 and saturation 0.
func HexToHSL(hex string) (HSL, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return HSL{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	channels := [3]float64{}
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		channels[i] = float64(v) / 255
	}
	r, g, b := channels[0], channels[1], channels[2]

	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}

		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: math.Mod(math.Round(h*360), 360),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}, nil
}

// MustHexToHSL is like HexToHSL but panics on malformed input.
func MustHexToHSL(hex string) HSL {
	c, err := HexToHSL(hex)
	if err != nil {
		panic(err)
	}
	return c
}
