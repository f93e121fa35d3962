package population

import (
	"math"
	"sort"

	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/partition"
	"github.com/katalvlaran/evoclust/rng"
)

// mutateRandomLocalSearchEps is local_search's default eps argument, used
// by mutate_random's final unconstrained refinement pass.
const mutateRandomLocalSearchEps = 0.0001

// MutateRandom perturbs a single parent by selecting a random fraction of
// its clusters and bisecting each one in two with partitioner, then
// refines the result with an unconstrained local search, matching
// mutate_random. mutateFraction is the upper bound of the random
// selection fraction l (drawn uniformly from [0.01, mutateFraction]).
func MutateRandom(g *core.Graph, first Individual, r *rng.Source, mutateFraction float64, partitioner partition.KWayPartitioner) (Individual, error) {
	clustering := append([]int32(nil), first.PartitionMap...)

	l := r.DoubleRange(0.01, mutateFraction)
	var c int32
	for _, x := range clustering {
		if x > c {
			c = x
		}
	}
	c++
	clustersToSelect := int(math.Ceil(l * float64(c)))

	selected := map[int32]bool{}
	for len(selected) < clustersToSelect {
		selected[int32(r.IntRange(0, int(c)-1))] = true
	}
	selectedClusters := make([]int32, 0, len(selected))
	for cluster := range selected {
		selectedClusters = append(selectedClusters, cluster)
	}
	sort.Slice(selectedClusters, func(i, j int) bool { return selectedClusters[i] < selectedClusters[j] })

	for _, cluster := range selectedClusters {
		sub, mapping := extractBlock(g, clustering, cluster)

		eps := r.DoubleRange(0.1, 0.5)
		split, err := partitioner.Partition(sub, 2, eps, r)
		if err != nil {
			return Individual{}, err
		}
		for i, localPart := range split {
			if localPart == 1 {
				clustering[mapping[i]] = c
			}
		}
		c++
	}

	finalClustering, _ := localSearch(g, clustering, r, false, mutateRandomLocalSearchEps)
	return buildIndividual(g, finalClustering), nil
}

// Mutate perturbs both parents independently via MutateRandom, then
// recombines the two mutants with CombineImprovedMultilevel, matching
// mutate.
func Mutate(g *core.Graph, first, second Individual, r *rng.Source, mutateFraction float64, partitioner partition.KWayPartitioner) (Individual, error) {
	a, err := MutateRandom(g, first, r, mutateFraction, partitioner)
	if err != nil {
		return Individual{}, err
	}
	b, err := MutateRandom(g, second, r, mutateFraction, partitioner)
	if err != nil {
		return Individual{}, err
	}
	return CombineImprovedMultilevel(g, a, b, r)
}
