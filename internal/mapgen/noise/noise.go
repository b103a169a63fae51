// Package noise provides the seeded coherent-noise source used for
// elevation fields. Values are deterministic for a fixed seed and
// approximately within [-1, 1].
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	// Perlin alpha is the inverse persistence (2 ≙ 0.5), beta the lacunarity.
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 6

	// ElevationScale is the wavelength of the base elevation field in world
	// units. Smaller values make continents choppier.
	ElevationScale = 30.0
)

// Source produces elevation noise for one generation run.
type Source struct {
	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

// New creates a Source from a seed.
func New(seed int64) *Source {
	return &Source{
		perlin:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		simplex: opensimplex.New(seed),
	}
}

// Elevation returns smooth fractal noise at the given world position.
func (s *Source) Elevation(x, y float64) float64 {
	return s.perlin.Noise2D(x/ElevationScale, y/ElevationScale)
}

// Ridged returns ridged fractal noise: each octave folds the underlying
// simplex value so that zero crossings become sharp ridgelines. Used for
// island-chain style elevation.
func (s *Source) Ridged(x, y float64, octaves int, persistence, lacunarity, scale float64) float64 {
	var total, norm float64
	amplitude := 1.0
	frequency := 1.0 / scale
	for i := 0; i < octaves; i++ {
		n := s.simplex.Eval2(x*frequency, y*frequency)
		total += (1 - 2*math.Abs(n)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return total / norm
}
