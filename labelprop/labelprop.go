package labelprop

import (
	"github.com/katalvlaran/evoclust/coarsen"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/rng"
)

// ResetSingletons sets g's PartitionIndex to the identity clustering
// (node v in cluster v), matching initializeSingletonClusters.
func ResetSingletons(g *core.Graph) {
	for v := int32(0); v < g.N; v++ {
		g.PartitionIndex[v] = v
	}
	g.PartitionCount = g.N
}

// RunIterations performs up to `iterations` passes of unconstrained label
// propagation over g's current PartitionIndex (not reset by this
// function — call ResetSingletons first if a fresh start is wanted) and
// returns the total number of node moves made over all passes. A pass that
// moves zero nodes stops the loop early, matching performLabelPropagation.
func RunIterations(g *core.Graph, r *rng.Source, iterations int) int {
	if g.N == 0 {
		return 0
	}
	perm := make([]int32, g.N)
	for i := range perm {
		perm[i] = int32(i)
	}
	r.Shuffle(perm)

	accum := make([]int64, g.PartitionCount)
	moves := 0
	for it := 0; it < iterations; it++ {
		before := moves
		for _, node := range perm {
			moves += moveToBestCluster(g, r, node, accum)
		}
		if moves == before {
			break
		}
	}
	return moves
}

// moveToBestCluster accumulates edge weight to each neighboring cluster
// into accum (indexed by cluster id, so every id in g.PartitionIndex must
// be below len(accum)), picks the best (tie-broken by coin flip), resets the
// touched accum slots back to zero, and performs the move. Returns 1 if
// the node moved, 0 otherwise.
func moveToBestCluster(g *core.Graph, r *rng.Source, node int32, accum []int64) int {
	oldCluster := g.PartitionIndex[node]
	bestCluster := oldCluster
	var bestWeight int64

	neighbors := g.Neighbors(node)
	weights := g.EdgeWeights(node)

	for i, nb := range neighbors {
		c := g.PartitionIndex[nb]
		accum[c] += weights[i]
	}
	for _, nb := range neighbors {
		c := g.PartitionIndex[nb]
		w := accum[c]
		if w > bestWeight || (w == bestWeight && r.Bool()) {
			bestWeight = w
			bestCluster = c
		}
		accum[c] = 0
	}

	if bestCluster != oldCluster {
		g.PartitionIndex[node] = bestCluster
		return 1
	}
	return 0
}

// MultiLevel runs up to `levels` rounds of reset-propagate-contract
// (grounded on performMultiLevelLabelPropagation), then uncoarsens with
// one refinement pass per level. The coarser levels are new graphs, but
// the projected clustering ends up in g's own PartitionIndex: the returned
// graph is g itself, together with its PartitionCount (1 + the largest
// cluster id; ids are not canonicalized).
func MultiLevel(g *core.Graph, levels, iterationsPerLevel int, r *rng.Source) (result *core.Graph, numClusters int32, err error) {
	h := coarsen.NewHierarchy()
	current := g

	for i := 0; i < levels; i++ {
		ResetSingletons(current)
		moves := RunIterations(current, r, iterationsPerLevel)
		if moves == 0 {
			break
		}
		coarse, mapping, cErr := coarsen.Contract(current)
		if cErr != nil {
			return nil, 0, cErr
		}
		h.Push(current, mapping)
		current = coarse
	}

	// Append the final level with an identity mapping, matching
	// graphHierarchy.push_back(m_G, 0): necessary so the uncoarsening
	// loop below visits the coarsest graph too.
	identity := make([]int32, current.N)
	for i := range identity {
		identity[i] = int32(i)
	}
	h.Push(current, identity)

	for !h.Empty() {
		current = h.PopFinerAndProject(current.PartitionIndex)
		RunIterations(current, r, iterationsPerLevel)
	}

	return current, current.PartitionCount, nil
}
