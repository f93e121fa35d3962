package coarsen

import (
	"github.com/katalvlaran/evoclust/core"
)

// clusterLookupEntry is the "freshness tag" scratch slot from the
// original contractClustering: it remembers, per target cluster, which
// source cluster last wrote an edge to it and at what edge index — so a
// second edge to the same target from the same source cluster updates in
// place instead of creating a duplicate.
type clusterLookupEntry struct {
	owner int32 // source cluster that owns the current entry, or -1
	index int32 // index into the coarse edge being built, or -1
}

// Contract builds the quotient graph of g under its current
// PartitionIndex. g's PartitionIndex is canonicalized in place, first-seen (cluster ids
// become dense, ordered by first appearance), matching
// buildClusterIDLookUpTable + buildCoarseMapping. fineToCoarse[v] gives
// the coarse node each fine node v was mapped to, which Hierarchy needs
// to project a coarse clustering back down.
func Contract(g *core.Graph) (coarse *core.Graph, fineToCoarse []int32, err error) {
	if g.N == 0 {
		return nil, nil, core.ErrEmptyGraph
	}

	canon, clusterCount := canonicalize(g.PartitionIndex)
	fineToCoarse = canon
	copy(g.PartitionIndex, canon)
	g.PartitionCount = clusterCount

	members := make([][]int32, clusterCount)
	for v := int32(0); v < g.N; v++ {
		c := fineToCoarse[v]
		members[c] = append(members[c], v)
	}

	// Rolling per-coarse-node edge accumulation. We do not know the final
	// edge count per coarse node up front, so we build it as a slice of
	// (target, weight) pairs per cluster and flatten into CSR afterward.
	type targetWeight struct {
		target int32
		weight int64
	}
	coarseAdj := make([][]targetWeight, clusterCount)
	selfLoop := make([]int64, clusterCount)
	nodeWeight := make([]int64, clusterCount)

	lookup := make([]clusterLookupEntry, clusterCount)
	for i := range lookup {
		lookup[i] = clusterLookupEntry{owner: -1, index: -1}
	}

	for cluster := int32(0); cluster < clusterCount; cluster++ {
		for _, finerNode := range members[cluster] {
			nodeWeight[cluster] += g.NodeWeight[finerNode]
			selfLoop[cluster] += g.SelfLoop[finerNode]

			neighbors := g.Neighbors(finerNode)
			weights := g.EdgeWeights(finerNode)
			for i, target := range neighbors {
				w := weights[i]
				targetCluster := fineToCoarse[target]
				if targetCluster == cluster {
					selfLoop[cluster] += w
					continue
				}
				entry := lookup[targetCluster]
				if entry.owner == cluster {
					coarseAdj[cluster][entry.index].weight += w
				} else {
					coarseAdj[cluster] = append(coarseAdj[cluster], targetWeight{target: targetCluster, weight: w})
					lookup[targetCluster] = clusterLookupEntry{owner: cluster, index: int32(len(coarseAdj[cluster]) - 1)}
				}
			}
		}
	}

	xadj := make([]int32, clusterCount+1)
	var adjncy []int32
	var edgeWeight []int64
	for c := int32(0); c < clusterCount; c++ {
		for _, tw := range coarseAdj[c] {
			adjncy = append(adjncy, tw.target)
			edgeWeight = append(edgeWeight, tw.weight)
		}
		xadj[c+1] = int32(len(adjncy))
	}

	coarse, err = core.NewFromCSR(clusterCount, xadj, adjncy, edgeWeight,
		core.WithNodeWeights(nodeWeight),
		core.WithSelfLoops(selfLoop),
	)
	if err != nil {
		return nil, nil, err
	}
	coarse.SetPartitionCountFromCompute()
	return coarse, fineToCoarse, nil
}

// canonicalize remaps arbitrary cluster ids to a dense, first-seen-order
// range [0, count), matching buildClusterIDLookUpTable's single linear
// scan.
func canonicalize(partitionIndex []int32) (remapped []int32, count int32) {
	lookup := make(map[int32]int32, len(partitionIndex))
	remapped = make([]int32, len(partitionIndex))
	var next int32
	for v, c := range partitionIndex {
		id, ok := lookup[c]
		if !ok {
			id = next
			lookup[c] = id
			next++
		}
		remapped[v] = id
	}
	return remapped, next
}
