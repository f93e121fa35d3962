package labelprop

import (
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/rng"
)

// Constrained runs unconstrained-shaped label propagation but rejects any
// move that would push the destination cluster's accumulated node weight
// above upperBound. It operates directly on g (no coarsening, no
// singleton reset — callers that want a fresh start call
// ResetSingletons first), producing the size-bounded "rhs" clustering
// combine_improved_flat_with_sclp seeds its overlap construction with.
//
// The original engine's size-constrained variant (referenced only by
// name, size_constraint_label_propagation, in louvainmethod.cpp) was not
// available in the retrieved source; this approximates its documented
// behavior — reject moves that would exceed the size bound — by tracking
// per-cluster accumulated NodeWeight and checking it before committing a
// move, the same bookkeeping contractClustering performs when computing
// coarse node weights.
func Constrained(g *core.Graph, r *rng.Source, iterations int, upperBound int64) int {
	if g.N == 0 {
		return 0
	}
	perm := make([]int32, g.N)
	for i := range perm {
		perm[i] = int32(i)
	}
	r.Shuffle(perm)

	clusterWeight := make([]int64, g.PartitionCount)
	for v := int32(0); v < g.N; v++ {
		clusterWeight[g.PartitionIndex[v]] += g.NodeWeight[v]
	}

	accum := make([]int64, g.PartitionCount)
	moves := 0
	for it := 0; it < iterations; it++ {
		before := moves
		for _, node := range perm {
			if moveConstrained(g, r, node, accum, clusterWeight, upperBound) {
				moves++
			}
		}
		if moves == before {
			break
		}
	}
	return moves
}

func moveConstrained(g *core.Graph, r *rng.Source, node int32, accum, clusterWeight []int64, upperBound int64) bool {
	oldCluster := g.PartitionIndex[node]
	bestCluster := oldCluster
	var bestWeight int64
	nw := g.NodeWeight[node]

	neighbors := g.Neighbors(node)
	weights := g.EdgeWeights(node)
	for i, nb := range neighbors {
		c := g.PartitionIndex[nb]
		accum[c] += weights[i]
	}
	for _, nb := range neighbors {
		c := g.PartitionIndex[nb]
		w := accum[c]
		fits := c == oldCluster || clusterWeight[c]+nw <= upperBound
		if fits && (w > bestWeight || (w == bestWeight && r.Bool())) {
			bestWeight = w
			bestCluster = c
		}
		accum[c] = 0
	}

	if bestCluster != oldCluster {
		clusterWeight[oldCluster] -= nw
		clusterWeight[bestCluster] += nw
		g.PartitionIndex[node] = bestCluster
		return true
	}
	return false
}
