package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLToRGB(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   HSL
		want RGB
	}{
		{name: "pure red", in: HSL{H: 0, S: 100, L: 50}, want: RGB{R: 255, G: 0, B: 0}},
		{name: "pure green", in: HSL{H: 120, S: 100, L: 50}, want: RGB{R: 0, G: 255, B: 0}},
		{name: "pure blue", in: HSL{H: 240, S: 100, L: 50}, want: RGB{R: 0, G: 0, B: 255}},
		{name: "sky blue", in: HSL{H: 200, S: 80, L: 60}, want: RGB{R: 71, G: 180, B: 235}},
		{name: "orange", in: HSL{H: 20, S: 80, L: 60}, want: RGB{R: 235, G: 126, B: 71}},
		{name: "achromatic mid gray", in: HSL{H: 123, S: 0, L: 50}, want: RGB{R: 128, G: 128, B: 128}},
		{name: "white", in: HSL{H: 0, S: 0, L: 100}, want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", in: HSL{H: 0, S: 100, L: 0}, want: RGB{R: 0, G: 0, B: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, HSLToRGB(tc.in))
		})
	}
}

func TestRGBToHexIsUppercaseAndPadded(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#47B4EB", RGBToHex(RGB{R: 71, G: 180, B: 235}))
	assert.Equal(t, "#000A0F", RGBToHex(RGB{R: 0, G: 10, B: 15}))
	assert.Equal(t, "#FFFFFF", HSL{H: 0, S: 0, L: 100}.Hex())
}

func TestHexToHSL(t *testing.T) {
	t.Parallel()

	got, err := HexToHSL("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 0, S: 100, L: 50}, got)
	assert.Equal(t, "#FF0000", got.Hex())

	gray, err := HexToHSL("#808080")
	require.NoError(t, err)
	assert.Equal(t, 0.0, gray.H)
	assert.Equal(t, 0.0, gray.S)
	assert.Equal(t, 50.0, gray.L)

	lower, err := HexToHSL("#47b4eb")
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 200, S: 80, L: 60}, lower)
}

func TestHexToHSLRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "FF0000", "#FFF", "#GG0000", "#FF00000", "#-10000"} {
		_, err := HexToHSL(in)
		require.ErrorIs(t, err, ErrInvalidHex, "input %q", in)
	}

	require.Panics(t, func() { MustHexToHSL("nope") })
}

func TestHexRoundTripStaysWithinOneUnit(t *testing.T) {
	t.Parallel()

	// Vivid mid-lightness colors, where base colors are sampled.
	for s := 70.0; s <= 100; s += 5 {
		for l := 40.0; l <= 60; l += 5 {
			for h := 0.0; h < 360; h += 7 {
				in := HSL{H: h, S: s, L: l}
				out, err := HexToHSL(in.Hex())
				require.NoError(t, err)

				assert.LessOrEqual(t, hueDistance(in.H, out.H), 1.0, "hue for %+v -> %+v", in, out)
				assert.InDelta(t, in.S, out.S, 1, "saturation for %+v -> %+v", in, out)
				assert.InDelta(t, in.L, out.L, 1, "lightness for %+v -> %+v", in, out)
			}
		}
	}
}

func TestHexRoundTripLightnessWithinOneUnit(t *testing.T) {
	t.Parallel()

	for s := 0.0; s <= 100; s += 10 {
		for l := 0.0; l <= 100; l += 2.5 {
			for h := 0.0; h < 360; h += 11 {
				in := HSL{H: h, S: s, L: l}
				out, err := HexToHSL(in.Hex())
				require.NoError(t, err)
				assert.InDelta(t, in.L, out.L, 1, "lightness for %+v -> %+v", in, out)
			}
		}
	}
}

func TestHexRoundTripWithinQuantizationBound(t *testing.T) {
	t.Parallel()

	// Light and dark derived shades lose precision to 8-bit channels; the
	// drift grows as chroma shrinks.
	for s := 10.0; s <= 100; s += 10 {
		for l := 5.0; l <= 95; l += 5 {
			for h := 0.0; h < 360; h += 13 {
				in := HSL{H: h, S: s, L: l}
				span := 1 - math.Abs(2*l/100-1)
				chroma := s / 100 * span
				if chroma*255 < 4 {
					continue
				}

				out, err := HexToHSL(in.Hex())
				require.NoError(t, err)

				satTolerance := 1 + 200/(255*span-1)
				hueTolerance := 1 + 120/(255*chroma-2)
				assert.LessOrEqual(t, hueDistance(in.H, out.H), hueTolerance, "hue for %+v -> %+v", in, out)
				assert.InDelta(t, in.S, out.S, satTolerance, "saturation for %+v -> %+v", in, out)
				assert.InDelta(t, in.L, out.L, 1, "lightness for %+v -> %+v", in, out)
			}
		}
	}
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}
