package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reproducible(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Perm(32), b.Perm(32))
	assert.Equal(t, a.Uint32n(1000), b.Uint32n(1000))
	assert.Equal(t, int64(4711), a.Seed())
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)

	first := rng.Intn(1 << 20)
	rng.Reset()
	assert.Equal(t, first, rng.Intn(1<<20))
}

func TestRNG_Perm(t *testing.T) {
	rng := NewRNG(4711)

	ids := rng.Perm(100)
	assert.Len(t, ids, 100)
	assert.ElementsMatch(t, seq(100), ids)

	rng.Shuffle(ids)
	assert.ElementsMatch(t, seq(100), ids)
}

func TestRNG_Uint32n(t *testing.T) {
	rng := NewRNG(4711)

	for range 1000 {
		assert.Less(t, rng.Uint32n(10), uint32(10))
	}
}

func TestReferenceSet(t *testing.T) {
	ref := NewReferenceSet()

	assert.True(t, ref.Insert(3))
	assert.True(t, ref.Insert(1))
	assert.False(t, ref.Insert(3))
	assert.Equal(t, 2, ref.Len())
	assert.Equal(t, []uint32{1, 3}, ref.Sorted())

	assert.True(t, ref.Contains(1))
	assert.True(t, ref.Remove(1))
	assert.False(t, ref.Remove(1))
	assert.False(t, ref.Contains(1))

	assert.Equal(t, uint32(3), ref.Pick(NewRNG(1)))
}

func seq(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
