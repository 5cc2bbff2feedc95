/*
Package random provides a small seedable random number source for tests and
benchmarks. Sequences are reproducible for a given seed.
*/
package random

import "math/rand/v2"

// Random produces pseudo-random integers from a PCG source.
type Random struct {
	rng *rand.Rand
}

// New creates a generator. Equal seeds yield equal sequences.
func New(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Get returns a non-negative pseudo-random int in [0, 2^31).
func (r *Random) Get() int {
	return int(r.rng.Int32())
}

// Between returns a pseudo-random int in [lo, hi]. The bounds may be given
// in either order.
func (r *Random) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rng.IntN(hi-lo+1)
}

// Perm returns a pseudo-random permutation of 0..n-1, i.e. n non-repeating
// values.
func (r *Random) Perm(n int) []int {
	return r.rng.Perm(n)
}
