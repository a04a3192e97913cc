// Package randutil centralises how random sources are seeded so that every
// round can be replayed from a single int64.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG needs two 64-bit seeds; both are derived from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// SeedFromClock derives a seed from the clock's current time.
func SeedFromClock(clock quartz.Clock) int64 {
	return clock.Now().UnixNano()
}

// FromClock returns a source seeded from the clock. With a mock clock the
// sequence is reproducible.
func FromClock(clock quartz.Clock) *rand.Rand {
	return New(SeedFromClock(clock))
}

// Derive returns an independent source for worker i of a parallel run seeded with seed.
func Derive(seed int64, i int) *rand.Rand {
	return New(int64(mix(uint64(seed) + uint64(i+1)*goldenRatio64)))
}

// splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
