package rng_test

import (
	"testing"

	"github.com/katalvlaran/evoclust/rng"
	"github.com/stretchr/testify/assert"
)

func TestForIsland_DerivesDistinctSeedsPerRank(t *testing.T) {
	a := rng.ForIsland(42, 4, 0)
	b := rng.ForIsland(42, 4, 1)
	assert.NotEqual(t, a.Intn(1_000_000), b.Intn(1_000_000))
}

func TestNew_Deterministic(t *testing.T) {
	a := rng.New(7)
	b := rng.New(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestIntRange_Inclusive(t *testing.T) {
	s := rng.New(1)
	for i := 0; i < 100; i++ {
		v := s.IntRange(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
	}
}

func TestIntRange_DegenerateReturnsLow(t *testing.T) {
	s := rng.New(1)
	assert.Equal(t, 3, s.IntRange(3, 3))
}

func TestShuffle_IsPermutation(t *testing.T) {
	s := rng.New(9)
	perm := []int32{0, 1, 2, 3, 4, 5}
	s.Shuffle(perm)
	seen := map[int32]bool{}
	for _, v := range perm {
		seen[v] = true
	}
	assert.Len(t, seen, 6)
}
