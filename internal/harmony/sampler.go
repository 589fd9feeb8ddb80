package harmony

import (
	"math/rand/v2"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
)

// Sampling ranges for base colors. They bias palettes toward vivid, mid-bright colors.
const (
	minSaturation = 70
	maxSaturation = 100
	minLightness  = 50
	maxLightness  = 70
)

// Sampler draws random base colors.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a deterministic sampler for the given seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSampler returns a sampler seeded from the runtime's random source.
func NewRandomSampler() *Sampler {
	return NewSampler(rand.Uint64())
}

// Sample returns a base color with hue in [0,360), saturation in [70,100] and
// lightness in [50,70].
func (s *Sampler) Sample() color.HSL {
	return color.HSL{
		H: s.rng.Float64() * 360,
		S: minSaturation + s.rng.Float64()*(maxSaturation-minSaturation),
		L: minLightness + s.rng.Float64()*(maxLightness-minLightness),
	}
}
