package domain

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source threaded through synthesizers so tests can
// fix the seed. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// NewRand creates the production random source.
func NewRand() Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
}

// IntBetween returns a uniform int in [min, max] inclusive.
func IntBetween(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min+1)
}

// FloatBetween returns a uniform float64 in [min, max).
func FloatBetween(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}
