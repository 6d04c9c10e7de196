package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Seed labels for derived sources. Each synthesized field samples its own
// lattice so terrain detail does not correlate with the height field.
const (
	labelHeight      int64 = 17
	labelTemperature int64 = 101
	labelMoisture    int64 = 211
)

// NoiseSource is a seeded deterministic scalar field generator. Every piece
// of generation randomness flows through one of these; there is no
// package-level random state, so equal seeds reproduce equal worlds.
type NoiseSource struct {
	seed  int64
	salt  uint32
	noise *perlin.Perlin
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{
		seed:  seed,
		salt:  hash3(int(int32(seed)), int(int32(seed>>32)), 0x7fed),
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// Derive returns an independently seeded source for a labelled channel.
func (s *NoiseSource) Derive(label int64) *NoiseSource {
	return NewNoiseSource(s.seed + label*0x9e3779b9)
}

func (s *NoiseSource) Seed() int64 {
	return s.seed
}

// Sample returns smooth continuous noise in [0,1] at the given coordinates
// and frequency scale.
func (s *NoiseSource) Sample(x, y, scale float64) float64 {
	return (s.noise.Noise2D(x*scale, y*scale) + 1) / 2
}

// HashNoise returns a deterministic value in [0,1) for a grid cell. scale
// quantizes the lattice: cells inside the same scale-sized block share a
// value. Cheap substitute for smooth noise where continuity is not needed.
func (s *NoiseSource) HashNoise(x, y, z int, scale float64) float64 {
	if scale <= 0 {
		scale = 1
	}
	qx := int(math.Floor(float64(x) / scale))
	qy := int(math.Floor(float64(y) / scale))
	qz := int(math.Floor(float64(z) / scale))
	return float64(s.Cell(qx, qy, qz)&0xFFFFFF) / float64(0x1000000)
}

// Cell returns the raw 32-bit hash for a grid cell, used for permille-style
// draws such as obstacle sparsity and resource rolls.
func (s *NoiseSource) Cell(x, y, z int) uint32 {
	return hash3(x, y, z) ^ s.salt
}

func hash3(x, y, z int) uint32 {
	h := uint32(x*374761393 + y*668265263 + z*2147483647)
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
