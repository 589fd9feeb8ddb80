package format

import "github.com/alexisbeaulieu97/palettegen/internal/color"

// Contrast buckets the average lightness of a palette.
type Contrast string

const (
	VeryDark Contrast = "veryDark"
	Dark     Contrast = "dark"
	Balanced Contrast = "balanced"
	Light    Contrast = "light"
)

// Temperature buckets the average hue of a palette.
type Temperature string

const (
	Warm Temperature = "warm"
	Cool Temperature = "cool"
)

// Info is the display-only summary of a palette.
type Info struct {
	Contrast    Contrast
	Temperature Temperature
}

// Describe summarises the palette. It reports false for an empty palette.
func Describe(colors []color.HSL) (Info, bool) {
	if len(colors) == 0 {
		return Info{}, false
	}

	var sumL, sumH float64
	for _, c := range colors {
		sumL += c.L
		sumH += c.H
	}
	avgL := sumL / float64(len(colors))
	avgH := sumH / float64(len(colors))

	info := Info{Temperature: Cool}
	switch {
	case avgL < 30:
		info.Contrast = VeryDark
	case avgL < 50:
		info.Contrast = Dark
	case avgL < 70:
		info.Contrast = Balanced
	default:
		info.Contrast = Light
	}
	if avgH < 60 || avgH > 300 {
		info.Temperature = Warm
	}

	return info, true
}
