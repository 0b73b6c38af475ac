package geometry

import "math/rand"

// newDeterministicRand returns a seeded RNG shared by this package's tests
// that sample random directions.
func newDeterministicRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
