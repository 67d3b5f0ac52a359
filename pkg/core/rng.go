package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r      *rand.Rand
	pcg    *rand.PCG
	stream uint64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewRNGStream(seed, 0)
}

// NewRNGStream creates a deterministic RNG on an independent stream of the
// same seed, so two consumers sharing a seed do not share draws.
func NewRNGStream(seed int64, stream uint64) *RNG {
	pcg := rand.NewPCG(uint64(seed), stream)
	return &RNG{r: rand.New(pcg), pcg: pcg, stream: stream}
}

// Seed rewinds the generator to the start of the sequence for seed.
func (r *RNG) Seed(seed int64) {
	r.pcg.Seed(uint64(seed), r.stream)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
