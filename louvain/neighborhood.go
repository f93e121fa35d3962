package louvain

import "github.com/katalvlaran/evoclust/core"

// neighborhood is the scratch structure performNodeMoves uses to find the
// best destination cluster for a node in O(deg(v)) instead of O(K) per
// node, grounded on neighborhood.cpp/.h: a flat sentinel-valued array
// (edgeWeightToCluster[c] == -1 means "not yet seen this update()") plus a
// compact list of the cluster ids actually touched, so resetting between
// nodes costs O(number of distinct neighboring clusters) rather than O(K).
type neighborhood struct {
	g *core.Graph

	edgeWeightToCluster []int64 // sentinel -1
	clusterIDs          []int32 // compact list of touched cluster ids
	count               int
}

func newNeighborhood(g *core.Graph) *neighborhood {
	n := &neighborhood{g: g}
	n.reset()
	return n
}

func (n *neighborhood) reset() {
	size := n.g.PartitionCount
	n.edgeWeightToCluster = make([]int64, size)
	for i := range n.edgeWeightToCluster {
		n.edgeWeightToCluster[i] = -1
	}
	n.clusterIDs = make([]int32, size)
	n.count = 0
}

// update recomputes the neighborhood of node: its own cluster is recorded
// first (with weight 0, even if no edge stays inside it), followed by
// every other cluster it has an edge into, accumulated.
func (n *neighborhood) update(node int32) {
	for i := 0; i < n.count; i++ {
		n.edgeWeightToCluster[n.clusterIDs[i]] = -1
	}
	n.count = 0

	own := n.g.PartitionIndex[node]
	n.clusterIDs[0] = own
	n.edgeWeightToCluster[own] = 0
	n.count = 1

	neighbors := n.g.Neighbors(node)
	weights := n.g.EdgeWeights(node)
	for i, nb := range neighbors {
		c := n.g.PartitionIndex[nb]
		if n.edgeWeightToCluster[c] == -1 {
			n.edgeWeightToCluster[c] = 0
			n.clusterIDs[n.count] = c
			n.count++
		}
		n.edgeWeightToCluster[c] += weights[i]
	}
}

func (n *neighborhood) edgeWeightToClusterID(cluster int32) int64 {
	return n.edgeWeightToCluster[cluster]
}

func (n *neighborhood) clusterIDOfNeighbor(i int) int32 { return n.clusterIDs[i] }

func (n *neighborhood) numberOfNeighboringClusters() int { return n.count }
