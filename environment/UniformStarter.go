package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// UniformStarter samples starting state vectors uniformly from a
// hyperrectangle, one interval per feature. Degenerate intervals
// (Min == Max) always return Min for that feature.
type UniformStarter struct {
	features int
	seed     uint64
	bounds   []r1.Interval
	rand     *distmv.Uniform
}

// NewUniformStarter returns a new UniformStarter sampling feature i
// from bounds[i]
func NewUniformStarter(bounds []r1.Interval, seed uint64) *UniformStarter {
	source := rand.NewSource(seed)
	rand := distmv.NewUniform(bounds, source)

	return &UniformStarter{len(bounds), seed, bounds, rand}
}

// Start returns a starting state vector
func (u *UniformStarter) Start() *mat.VecDense {
	start := u.rand.Rand(nil)

	// distmv.Uniform samples Min + (Max-Min)*U, which is exact for
	// degenerate intervals, but guard against rounding anyway
	for i, b := range u.bounds {
		if b.Min == b.Max {
			start[i] = b.Min
		}
	}
	return mat.NewVecDense(u.features, start)
}

// Seed returns the seed used to construct the UniformStarter
func (u *UniformStarter) Seed() uint64 {
	return u.seed
}
