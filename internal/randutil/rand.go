// Package randutil builds deterministic random sources from int64 seeds.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. rand/v2's PCG wants two well-mixed 64-bit seeds; deriving both
// here keeps every call site reproducible from a single number, which is
// what simulation replay relies on.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finalizer. Sequential seeds produce unrelated
// streams, so seed, seed+1, seed+2... are safe per-game seeds.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
