package randutil

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestFromClock(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)

	seed := SeedFromClock(clock)
	assert.Equal(t, clock.Now().UnixNano(), seed)
	assert.Equal(t, New(seed).Uint64(), FromClock(clock).Uint64())

	clock.Advance(time.Millisecond)
	assert.NotEqual(t, seed, SeedFromClock(clock))
}

func TestDeriveIndependent(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]int)
	for i := 0; i < 16; i++ {
		v := Derive(7, i).Uint64()
		if prev, ok := seen[v]; ok {
			t.Fatalf("workers %d and %d share a first value", prev, i)
		}
		seen[v] = i
	}
	assert.Equal(t, Derive(7, 3).Uint64(), Derive(7, 3).Uint64())
}
