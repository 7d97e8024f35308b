package core

import (
	"math/rand/v2"
	"time"
)

// RNG wraps a math/rand/v2 PCG source. Seeding is fixed as
// rand.NewPCG(uint64(seed), 0), so equal seeds give equal sequences on every
// platform and Go release that ships PCG.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// NewTimeRNG seeds from the wall clock. The chosen seed is kept so a map can
// be reproduced later.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool { return r.r.Float64() < p }

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
