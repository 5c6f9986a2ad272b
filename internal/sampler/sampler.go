// Package sampler provides the seeded random source used for
// parameter initialization and corpus shuffling.
package sampler

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws standard normal values and bounded uniform integers
// from a single deterministic stream.
//
// A Sampler is not safe for concurrent use; each training run or
// initialization pass owns its own instance.
type Sampler struct {
	rng    *rand.Rand
	normal distuv.Normal
}

// New returns a Sampler seeded with seed. Two Samplers built from the
// same seed produce identical streams, so every run that fixes its
// seeds is reproducible.
func New(seed uint64) *Sampler {
	src := rand.NewSource(seed)
	return &Sampler{
		rng: rand.New(src),
		normal: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   src,
		},
	}
}

// Normal returns one draw from the standard normal distribution.
func (s *Sampler) Normal() float64 {
	return s.normal.Rand()
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Sampler) Intn(n int) int {
	return s.rng.Intn(n)
}
