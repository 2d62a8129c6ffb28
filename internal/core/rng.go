package core

import "math/rand/v2"

// Random is the single source of randomness a game draws from.
// *rand.Rand satisfies it; tests inject scripted implementations.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom creates a deterministic PCG-backed generator from seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance reports true with probability p.
func Chance(r Random, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Pick returns a uniformly chosen element of items.
// Panics on an empty slice.
func Pick[T any](r Random, items []T) T {
	if len(items) == 0 {
		panic("core: pick from empty slice")
	}
	return items[r.IntN(len(items))]
}
