package teams

import (
	"math/rand/v2"
)

// Random is the source of randomness used by the builder.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a uniform random int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// globalRandom draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRandom returns a deterministic Random for the given seed.
func NewSeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes s in place with the Fisher-Yates algorithm.
// Every ordering is equally likely given a uniform r.
func Shuffle[T any](r Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
