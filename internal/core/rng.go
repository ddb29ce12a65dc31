package core

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 so simulations stay
// deterministic for a given seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
