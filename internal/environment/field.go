package environment

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexforge/internal/game"
	"github.com/talgya/hexforge/internal/hexgrid"
)

// Noise shaping parameters for the affinity field.
const (
	fieldOctaves     = 4
	fieldFrequency   = 0.08
	fieldPersistence = 0.5
)

// ElementField maps every grid cell to an elemental affinity using layered
// simplex noise, so nearby cells tend toward the same element. World
// assembly uses it to tag obstacles and resources with spatially coherent
// elements instead of independent uniform draws. Deterministic per seed.
type ElementField struct {
	noise opensimplex.Noise
}

// NewElementField builds a field for the given seed.
func NewElementField(seed int64) *ElementField {
	return &ElementField{noise: opensimplex.NewNormalized(seed)}
}

// AffinityAt returns the raw field value at the given cell, in [0, 1].
func (f *ElementField) AffinityAt(pos hexgrid.Position) float64 {
	// Project cube coordinates onto the plane for noise sampling:
	// axial q = x, r = z, then px = q + r/2, py = r*sqrt(3)/2.
	q := float64(pos.X())
	r := float64(pos.Z())
	px := q + r*0.5
	py := r * math.Sqrt(3.0) / 2.0

	return octaveNoise(f.noise, px, py, fieldOctaves, fieldFrequency, fieldPersistence)
}

// ElementAt buckets the field value at the given cell into one of the eight
// real elements. ElementUnset is never produced.
func (f *ElementField) ElementAt(pos hexgrid.Position) game.Element {
	v := f.AffinityAt(pos)

	bucket := int(v * float64(game.ElementDark))
	if bucket >= int(game.ElementDark) {
		bucket = int(game.ElementDark) - 1
	}
	return game.Element(bucket + 1)
}

// octaveNoise layers multiple noise frequencies into fractal noise.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
