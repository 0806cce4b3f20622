package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint32 returns a pseudo-random 32-bit value.
func (r *RNG) Uint32() uint32 { return r.r.Uint32() }

// IntN returns a value in [0, n). n must be positive.
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
