package population

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/modularity"
)

// Individual is one candidate clustering in a population, grounded on the
// original's Individuum struct: a partition map, its scored objective
// (modularity), and the sorted list of cut edges insert's similarity
// measure compares.
type Individual struct {
	// PartitionMap assigns every node of the graph an individual was built
	// over to a cluster id.
	PartitionMap []int32
	// Objective is the modularity of PartitionMap.
	Objective float64
	// CutEdges holds the flat CSR arc indices whose endpoints fall in
	// different clusters, in ascending order — the same shape as the
	// original's sorted EdgeID vector, needed for insert's
	// set_symmetric_difference similarity measure.
	CutEdges []int32
	// ID gives an Individual stable identity across copies, replacing the
	// original's pointer-identity comparison in replace().
	ID uuid.UUID
}

// cutEdges returns the sorted arc indices of g whose endpoints disagree
// under partitionMap. Arc indices are assigned by flat position in the
// CSR adjacency arrays, which is already ascending when visited in node
// order — the same ordering property the original's forall_nodes/
// forall_out_edges double loop produces over its EdgeID arcs.
func cutEdges(g *core.Graph, partitionMap []int32) []int32 {
	var cuts []int32
	for v := int32(0); v < g.N; v++ {
		base := g.Xadj[v]
		for i, u := range g.Neighbors(v) {
			if partitionMap[v] != partitionMap[u] {
				cuts = append(cuts, base+int32(i))
			}
		}
	}
	return cuts
}

// symmetricDifferenceCount returns the size of the symmetric difference
// between two ascending-sorted arc-index slices, matching insert's use of
// std::set_symmetric_difference as a similarity measure between two
// individuals' cut edges.
func symmetricDifferenceCount(a, b []int32) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			count++
			i++
		default:
			count++
			j++
		}
	}
	count += (len(a) - i) + (len(b) - j)
	return count
}

// buildIndividual scores partitionMap against g and packages it as a
// fresh Individual, matching the tail of createIndividuum/combine_*/
// mutate_random: set_partition_count, computeModularity, then the
// forall_nodes/forall_out_edges cut-edge scan.
func buildIndividual(g *core.Graph, partitionMap []int32) Individual {
	scored := g.WithPartition(partitionMap)
	return Individual{
		PartitionMap: append([]int32(nil), partitionMap...),
		Objective:    modularity.ComputeModularity(scored),
		CutEdges:     cutEdges(g, partitionMap),
		ID:           uuid.New(),
	}
}
