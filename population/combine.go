package population

import (
	"github.com/katalvlaran/evoclust/coarsen"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/labelprop"
	"github.com/katalvlaran/evoclust/partition"
	"github.com/katalvlaran/evoclust/rng"
)

// CombineBasicFlat overlaps the two parents, contracts the graph by the
// overlap, runs a fresh Louvain pass over the contracted graph, and
// projects the result back down — matching combine_basic_flat.
func CombineBasicFlat(g *core.Graph, first, second Individual, r *rng.Source) (Individual, error) {
	overlap := MaximumOverlap(first.PartitionMap, second.PartitionMap)

	contracted, err := contractByClustering(g, overlap)
	if err != nil {
		return Individual{}, err
	}

	newCoarse, _, err := doLouvain(contracted, nil, r)
	if err != nil {
		return Individual{}, err
	}
	UpdateClustering(overlap, newCoarse)

	return buildIndividual(g, overlap), nil
}

// CombineImprovedFlat is CombineBasicFlat with the contracted graph's
// Louvain pass seeded from the fitter parent's clustering (projected
// through the overlap) instead of starting from singletons, matching
// combine_improved_flat.
func CombineImprovedFlat(g *core.Graph, first, second Individual, r *rng.Source) (Individual, error) {
	overlap := MaximumOverlap(first.PartitionMap, second.PartitionMap)

	contracted, err := contractByClustering(g, overlap)
	if err != nil {
		return Individual{}, err
	}

	better := first.PartitionMap
	if second.Objective > first.Objective {
		better = second.PartitionMap
	}
	seed := ApplyFineClusteringToCoarseGraph(better, overlap, contracted.N)

	newCoarse, _, err := doLouvain(contracted, seed, r)
	if err != nil {
		return Individual{}, err
	}
	UpdateClustering(overlap, newCoarse)

	return buildIndividual(g, overlap), nil
}

// CombineImprovedFlatWithSCLP replaces the second parent with a fresh
// size-constrained label-propagation clustering of g, then proceeds as
// CombineImprovedFlat, matching combine_improved_flat_with_sclp.
func CombineImprovedFlatWithSCLP(g *core.Graph, first Individual, r *rng.Source) (Individual, error) {
	work := g.CloneEmpty()
	upperBound := int64(10)
	if work.N > 10 {
		upperBound = int64(r.IntRange(10, int(work.N)))
	}
	labelprop.Constrained(work, r, 1, upperBound)
	Canonicalize(work.PartitionIndex)

	overlap := MaximumOverlap(first.PartitionMap, work.PartitionIndex)
	contracted, err := contractByClustering(g, overlap)
	if err != nil {
		return Individual{}, err
	}

	seed := ApplyFineClusteringToCoarseGraph(first.PartitionMap, overlap, contracted.N)
	newCoarse, _, err := doLouvain(contracted, seed, r)
	if err != nil {
		return Individual{}, err
	}
	UpdateClustering(overlap, newCoarse)

	return buildIndividual(g, overlap), nil
}

// CombineImprovedFlatWithPartitioning replaces the second parent with a
// fresh k-way graph partitioning (k and its imbalance drawn at random),
// then proceeds as CombineImprovedFlat, matching
// combine_improved_flat_with_partitioning (with the KWayPartitioner
// abstraction standing in for KaHIP's own graph_partitioner — see
// partition/doc.go).
func CombineImprovedFlatWithPartitioning(g *core.Graph, first Individual, r *rng.Source, partitioner partition.KWayPartitioner) (Individual, error) {
	k := r.IntRange(2, 64)
	imbalancePercent := r.IntRange(3, 50)
	epsilon := float64(imbalancePercent) / 100.0

	rhs, err := partitioner.Partition(g, k, epsilon, r)
	if err != nil {
		return Individual{}, err
	}

	overlap := MaximumOverlap(first.PartitionMap, rhs)
	contracted, err := contractByClustering(g, overlap)
	if err != nil {
		return Individual{}, err
	}

	seed := ApplyFineClusteringToCoarseGraph(first.PartitionMap, overlap, contracted.N)
	newCoarse, _, err := doLouvain(contracted, seed, r)
	if err != nil {
		return Individual{}, err
	}
	UpdateClustering(overlap, newCoarse)

	return buildIndividual(g, overlap), nil
}

// combineImprovedMultilevelEps is the do-while loop's stopping threshold
// in combine_improved_multilevel (distinct from, and looser than,
// mutate_random's local_search default of 0.0001).
const combineImprovedMultilevelEps = 0.001

// CombineImprovedMultilevel repeatedly runs a SecondaryPartitionIndex-
// constrained local search over the overlap graph and its successive
// contractions until the search stops improving, then seeds the coarsest
// level from whichever parent scored higher (projected through the
// overlap and its contractions) and refines back down the hierarchy with
// unconstrained local search, matching combine_improved_multilevel.
func CombineImprovedMultilevel(g *core.Graph, first, second Individual, r *rng.Source) (Individual, error) {
	overlap := MaximumOverlap(first.PartitionMap, second.PartitionMap)

	h := coarsen.NewHierarchy()
	current := g.Clone()
	contractedOverlap := append([]int32(nil), overlap...)

	q := -1.0
	for {
		identity := make([]int32, current.N)
		for i := range identity {
			identity[i] = int32(i)
		}
		current.SecondaryPartitionIndex = append([]int32(nil), contractedOverlap...)

		qPrev := q
		clustering, newQ := localSearch(current, identity, r, true, mutateRandomLocalSearchEps)
		q = newQ
		current.PartitionIndex = clustering
		current.SetPartitionCountFromCompute()

		if !(q-qPrev > combineImprovedMultilevelEps) {
			break
		}

		coarse, mapping, err := coarsen.Contract(current)
		if err != nil {
			return Individual{}, err
		}
		h.Push(current, mapping)
		contractedOverlap = ApplyFineClusteringToCoarseGraph(contractedOverlap, clustering, coarse.N)
		current = coarse
	}

	better := first.PartitionMap
	if second.Objective > first.Objective {
		better = second.PartitionMap
	}
	contractedBetter := ContractBetterClusteringByContractedOverlap(overlap, contractedOverlap, better)
	current.PartitionIndex = contractedBetter
	current.SetPartitionCountFromCompute()

	identity := make([]int32, current.N)
	for i := range identity {
		identity[i] = int32(i)
	}
	h.Push(current, identity)

	var finalClustering []int32
	for !h.Empty() {
		current = h.PopFinerAndProject(current.PartitionIndex)
		finalClustering, _ = localSearch(current, current.PartitionIndex, r, false, mutateRandomLocalSearchEps)
		current.PartitionIndex = finalClustering
		current.SetPartitionCountFromCompute()
	}

	return buildIndividual(g, finalClustering), nil
}
