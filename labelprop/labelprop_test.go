package labelprop_test

import (
	"testing"

	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/labelprop"
	"github.com/katalvlaran/evoclust/modularity"
	"github.com/katalvlaran/evoclust/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoCliquesBridge builds two 4-cliques joined by a single light bridge
// edge — a graph where label propagation should quickly discover the two
// natural clusters.
func twoCliquesBridge(t *testing.T) *core.Graph {
	t.Helper()
	clique := func(base int32) map[int32][]int32 {
		m := map[int32][]int32{}
		for i := int32(0); i < 4; i++ {
			for j := int32(0); j < 4; j++ {
				if i == j {
					continue
				}
				m[base+i] = append(m[base+i], base+j)
			}
		}
		return m
	}
	adj := clique(0)
	for k, v := range clique(4) {
		adj[k] = v
	}
	adj[0] = append(adj[0], 4)
	adj[4] = append(adj[4], 0)

	var xadj, adjncy []int32
	xadj = append(xadj, 0)
	for v := int32(0); v < 8; v++ {
		adjncy = append(adjncy, adj[v]...)
		xadj = append(xadj, int32(len(adjncy)))
	}
	ew := make([]int64, len(adjncy))
	for i := range ew {
		ew[i] = 1
	}
	g, err := core.NewFromCSR(8, xadj, adjncy, ew)
	require.NoError(t, err)
	return g
}

func TestResetSingletons(t *testing.T) {
	g := twoCliquesBridge(t)
	labelprop.ResetSingletons(g)
	for v := int32(0); v < g.N; v++ {
		assert.Equal(t, v, g.PartitionIndex[v])
	}
	assert.Equal(t, g.N, g.PartitionCount)
}

func TestRunIterations_FindsTwoClusters(t *testing.T) {
	g := twoCliquesBridge(t)
	labelprop.ResetSingletons(g)
	r := rng.New(1)
	labelprop.RunIterations(g, r, 20)

	// All of 0-3 should share a cluster, all of 4-7 should share a
	// (possibly different) cluster.
	c0 := g.PartitionIndex[0]
	for v := int32(1); v < 4; v++ {
		assert.Equal(t, c0, g.PartitionIndex[v])
	}
	c4 := g.PartitionIndex[4]
	for v := int32(5); v < 8; v++ {
		assert.Equal(t, c4, g.PartitionIndex[v])
	}
}

func TestMultiLevel_ImprovesOrMatchesModularity(t *testing.T) {
	g := twoCliquesBridge(t)
	r := rng.New(2)
	result, numClusters, err := labelprop.MultiLevel(g, 4, 10, r)
	require.NoError(t, err)
	assert.Greater(t, numClusters, int32(0))
	q := modularity.ComputeModularity(result)
	assert.Greater(t, q, 0.0)
}

func TestConstrained_RejectsOverweightMoves(t *testing.T) {
	g := twoCliquesBridge(t)
	labelprop.ResetSingletons(g)
	r := rng.New(3)
	// upperBound of 1 forces every cluster to stay a singleton since any
	// node weight is 1 and merging two nodes already exceeds it.
	moves := labelprop.Constrained(g, r, 10, 1)
	assert.Equal(t, 0, moves)
	for v := int32(0); v < g.N; v++ {
		assert.Equal(t, v, g.PartitionIndex[v])
	}
}

func TestConstrained_AllowsMovesWithinBudget(t *testing.T) {
	g := twoCliquesBridge(t)
	labelprop.ResetSingletons(g)
	r := rng.New(4)
	moves := labelprop.Constrained(g, r, 20, 4)
	assert.Greater(t, moves, 0)
	seen := map[int32]int64{}
	for _, c := range g.PartitionIndex {
		seen[c]++
	}
	for _, weight := range seen {
		assert.LessOrEqual(t, weight, int64(4))
	}
}
