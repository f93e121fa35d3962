package louvain

import (
	"github.com/katalvlaran/evoclust/coarsen"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/labelprop"
	"github.com/katalvlaran/evoclust/modularity"
	"github.com/katalvlaran/evoclust/rng"
)

// Run executes the full multilevel Louvain procedure over g, mutating g's
// PartitionIndex in place to the final, canonicalized clustering, and
// returns the resulting number of clusters.
//
// startWithSingletons controls whether each phase resets to singleton
// clusters before running (the original's start_w_singletons flag): pass
// true for a fresh run, false to refine an existing seed clustering
// already present in g.PartitionIndex — the behavior combine_improved_flat
// relies on (see DESIGN.md's resolved Open Question on this exact point).
func Run(g *core.Graph, cfg Config, startWithSingletons bool, r *rng.Source) (numClusters int32, err error) {
	if g.N == 0 {
		return 0, core.ErrEmptyGraph
	}

	h := coarsen.NewHierarchy()
	current := g
	coarsenings := 0

	// Label-propagation pre-coarsening levels.
	for i := 0; i < cfg.LPLevels; i++ {
		if startWithSingletons {
			labelprop.ResetSingletons(current)
		}

		var moves int
		if cfg.ClusterUpperBound > 0 {
			moves = labelprop.Constrained(current, r, cfg.LPIterations, cfg.ClusterUpperBound)
			if moves == 0 {
				// Mirrors the original forcing numberOfMoves=1 after a
				// size-constrained pass: the partition index was already
				// rewritten by the constrained pass regardless of move
				// count, so we still coarsen once.
				moves = 1
			}
		} else {
			moves = labelprop.RunIterations(current, r, cfg.LPIterations)
		}

		if moves == 0 {
			break
		}
		coarse, mapping, cErr := coarsen.Contract(current)
		if cErr != nil {
			return 0, cErr
		}
		h.Push(current, mapping)
		current = coarse
		coarsenings++
	}

	// Standard Louvain node-move loop.
	for {
		if startWithSingletons {
			labelprop.ResetSingletons(current)
		}
		moves := performNodeMoves(current, cfg, r)
		if moves == 0 {
			break
		}
		coarse, mapping, cErr := coarsen.Contract(current)
		if cErr != nil {
			return 0, cErr
		}
		h.Push(current, mapping)
		current = coarse
		coarsenings++
	}

	// Append the coarsest level as its own frame so the uncoarsening loop
	// below visits it too, matching graphHierarchy.push_back(m_G, 0).
	identity := make([]int32, current.N)
	for i := range identity {
		identity[i] = int32(i)
	}
	h.Push(current, identity)

	if coarsenings > 0 {
		for !h.Empty() {
			current = h.PopFinerAndProject(current.PartitionIndex)
			performNodeMoves(current, cfg, r)
		}
	}

	canonicalizeInPlace(current)

	// The bottom frame of the hierarchy holds g itself, so after
	// uncoarsening current is g; the copy below only guards the case where
	// it is not.
	if current != g {
		g.PartitionIndex = current.PartitionIndex
		g.PartitionCount = current.PartitionCount
	}
	return g.PartitionCount, nil
}

// performNodeMoves runs the modularity-gain node-move loop to convergence
// (currentQuality - oldQuality <= cfg.MinQualityImprovement) and returns
// the total number of moves made over all passes.
func performNodeMoves(g *core.Graph, cfg Config, r *rng.Source) int {
	if g.N == 0 {
		return 0
	}
	perm := make([]int32, g.N)
	for i := range perm {
		perm[i] = int32(i)
	}
	r.Shuffle(perm)

	nb := newNeighborhood(g)
	metric := modularity.NewMetric(g)

	currentQuality := -2.0
	oldQuality := -2.0
	numberOfMoves := 0

	for {
		oldQuality = currentQuality

		for _, node := range perm {
			nb.update(node)
			if nb.numberOfNeighboringClusters() <= 1 {
				continue
			}
			oldCluster := g.PartitionIndex[node]
			bestCluster := oldCluster
			bestGain := 0.0

			metric.RemoveNode(node, oldCluster, nb.edgeWeightToClusterID(oldCluster))

			for i := 0; i < nb.numberOfNeighboringClusters(); i++ {
				candidate := nb.clusterIDOfNeighbor(i)
				gain := metric.Gain(node, candidate, nb.edgeWeightToClusterID(candidate))
				if bestGain < gain {
					bestGain = gain
					bestCluster = candidate
				}
			}

			metric.InsertNode(node, bestCluster, nb.edgeWeightToClusterID(bestCluster))
			if oldCluster != bestCluster {
				numberOfMoves++
			}
		}

		currentQuality = metric.Quality()
		if currentQuality-oldQuality <= cfg.MinQualityImprovement {
			break
		}
	}

	return numberOfMoves
}

// canonicalizeInPlace remaps g.PartitionIndex to a dense, first-seen-order
// range and updates PartitionCount, matching performClusteringWithLPP's
// final new_mapping pass.
func canonicalizeInPlace(g *core.Graph) {
	lookup := make(map[int32]int32, g.PartitionCount)
	var next int32
	for v, c := range g.PartitionIndex {
		id, ok := lookup[c]
		if !ok {
			id = next
			lookup[c] = id
			next++
		}
		g.PartitionIndex[v] = id
	}
	g.PartitionCount = next
}
