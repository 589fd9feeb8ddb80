package color

import "math"

// DefaultShift is the lightness shift used when a variant amount is not specified.
const DefaultShift = 0.15

const (
	maxDerivedLightness = 95
	minDerivedLightness = 10
)

// Rotate moves the hue by degrees around the color wheel.
func Rotate(c HSL, degrees float64) HSL {
	h := math.Mod(c.H+degrees+360, 360)
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: c.S, L: c.L}
}

// Complementary returns the color on the opposite side of the wheel.
func Complementary(c HSL) HSL {
	return Rotate(c, 180)
}

// Lighten moves lightness toward white by amount, never past 95.
func Lighten(c HSL, amount float64) HSL {
	l := math.Min(c.L+(100-c.L)*amount, maxDerivedLightness)
	return HSL{H: c.H, S: c.S, L: l}
}

// Darken moves lightness toward black by amount, never below 10.
func Darken(c HSL, amount float64) HSL {
	l := math.Max(c.L-c.L*amount, minDerivedLightness)
	return HSL{H: c.H, S: c.S, L: l}
}
