// Package harmony derives five-color palettes from a base color using the
// classic color-wheel relationships.
package harmony

import (
	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

type transform func(color.HSL) color.HSL

func rotate(degrees float64) transform {
	return func(c color.HSL) color.HSL { return color.Rotate(c, degrees) }
}

func lighten(amount float64) transform {
	return func(c color.HSL) color.HSL { return color.Lighten(c, amount) }
}

func darken(amount float64) transform {
	return func(c color.HSL) color.HSL { return color.Darken(c, amount) }
}

func chain(steps ...transform) transform {
	return func(c color.HSL) color.HSL {
		for _, step := range steps {
			c = step(c)
		}
		return c
	}
}

// rules lists, per mode, the colors that follow the base in a palette.
var rules = map[Mode][]transform{
	Complementary: {
		color.Complementary,
		lighten(color.DefaultShift),
		darken(color.DefaultShift),
		chain(lighten(color.DefaultShift), color.Complementary),
	},
	Analogous: {
		rotate(30),
		rotate(-30),
		rotate(60),
		rotate(-60),
	},
	Triadic: {
		rotate(120),
		rotate(240),
		lighten(color.DefaultShift),
		darken(color.DefaultShift),
	},
	Tetradic: {
		rotate(90),
		rotate(180),
		rotate(270),
		color.Complementary,
	},
	Monochromatic: {
		lighten(0.3),
		lighten(0.6),
		darken(0.3),
		darken(0.6),
	},
}

// Derive builds the palette for mode starting from base. The first entry is
// always base itself. An unknown mode yields just the base color.
func Derive(base color.HSL, mode Mode) []color.HSL {
	steps := rules[mode]
	out := make([]color.HSL, 0, len(steps)+1)
	out = append(out, base)
	for _, step := range steps {
		out = append(out, step(base))
	}
	return out
}
