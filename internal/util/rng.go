package util

import "math/rand"

// New returns a generator seeded with seed. A zero seed is replaced with 1 so
// that an unset seed still gives a reproducible run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// RunSeed derives the seed for run i of a batch. It depends only on i, so a
// batch gives the same runs whichever worker picks each one up.
func RunSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}
