package modularity

import (
	"github.com/katalvlaran/evoclust/core"
)

// Metric scores a Graph's current PartitionIndex and supports incremental
// node moves. It is grounded on ModularityMetric from the original engine:
// per-cluster internal weight (edgeWeightsPerCluster) and per-cluster
// total incident weight (weightedEdgeEndsPerCluster), both indexed by
// PartitionCount-many slots, plus a cached per-node weighted degree.
type Metric struct {
	g *core.Graph

	edgeWeightsPerCluster      []int64 // Σ_in,c
	weightedEdgeEndsPerCluster []int64 // Σ_tot,c
	weightedNodeDegree         []int64 // deg(v) + selfLoop(v), cached once

	sumOfAllEdgeWeights float64 // W
}

// NewMetric builds a Metric over g's current PartitionIndex in O(n+m).
func NewMetric(g *core.Graph) *Metric {
	m := &Metric{g: g}
	m.weightedNodeDegree = make([]int64, g.N)
	for v := int32(0); v < g.N; v++ {
		m.weightedNodeDegree[v] = g.WeightedDegree(v)
	}
	m.sumOfAllEdgeWeights = float64(sumOfAllEdgeWeights(g))

	clusterCount := g.PartitionCount
	m.edgeWeightsPerCluster = make([]int64, clusterCount)
	m.weightedEdgeEndsPerCluster = make([]int64, clusterCount)
	for v := int32(0); v < g.N; v++ {
		srcCluster := g.PartitionIndex[v]
		neighbors := g.Neighbors(v)
		weights := g.EdgeWeights(v)
		for i, w := range neighbors {
			ew := weights[i]
			if srcCluster == g.PartitionIndex[w] {
				m.edgeWeightsPerCluster[srcCluster] += ew
			}
			m.weightedEdgeEndsPerCluster[srcCluster] += ew
		}
		if sl := g.SelfLoop[v]; sl != 0 {
			m.edgeWeightsPerCluster[srcCluster] += sl
			m.weightedEdgeEndsPerCluster[srcCluster] += sl
		}
	}
	return m
}

func sumOfAllEdgeWeights(g *core.Graph) int64 {
	var sum int64
	for _, w := range g.EdgeWeight {
		sum += w
	}
	for _, sl := range g.SelfLoop {
		sum += sl
	}
	return sum
}

// Quality returns the current modularity Q. Empty-weight clusters
// contribute 0, matching the original's "we do not take care for empty
// clusters" skip.
func (m *Metric) Quality() float64 {
	if m.sumOfAllEdgeWeights == 0 {
		return 0
	}
	var q float64
	for c, tot := range m.weightedEdgeEndsPerCluster {
		if tot <= 0 {
			continue
		}
		edgeFraction := float64(m.edgeWeightsPerCluster[c]) / m.sumOfAllEdgeWeights
		endFraction := float64(tot) / m.sumOfAllEdgeWeights
		q += edgeFraction - endFraction*endFraction
	}
	return q
}

// Gain returns the unnormalized score of inserting node into cluster,
// edgeWeightToCluster - tot(cluster)*deg(node)/W, which is W/2 times the
// modularity change when node is currently detached (see RemoveNode).
// It does not mutate state; callers combine RemoveNode/Gain/InsertNode to
// evaluate and commit a move.
func (m *Metric) Gain(node, cluster int32, edgeWeightToCluster int64) float64 {
	totInCluster := float64(m.weightedEdgeEndsPerCluster[cluster])
	degree := float64(m.weightedNodeDegree[node])
	return float64(edgeWeightToCluster) - totInCluster*degree/m.sumOfAllEdgeWeights
}

// InsertNode assigns node to cluster, updating per-cluster accumulators,
// and writes cluster into g.PartitionIndex[node]. edgeWeightToCluster is
// the weighted edge weight from node to its new cluster (excluding self-
// loop, which is folded in automatically from g.SelfLoop[node]).
func (m *Metric) InsertNode(node, cluster int32, edgeWeightToCluster int64) {
	selfLoop := m.g.SelfLoop[node]
	m.edgeWeightsPerCluster[cluster] += 2*edgeWeightToCluster + selfLoop
	m.weightedEdgeEndsPerCluster[cluster] += m.weightedNodeDegree[node]
	m.g.PartitionIndex[node] = cluster
}

// RemoveNode undoes InsertNode's accumulator update for node's current
// cluster membership and leaves g.PartitionIndex[node] at -1 ("no
// cluster"), the original's removeNode contract. edgeWeightToCluster must
// be the same value used to insert node into cluster.
func (m *Metric) RemoveNode(node, cluster int32, edgeWeightToCluster int64) {
	selfLoop := m.g.SelfLoop[node]
	m.edgeWeightsPerCluster[cluster] -= 2*edgeWeightToCluster + selfLoop
	m.weightedEdgeEndsPerCluster[cluster] -= m.weightedNodeDegree[node]
	m.g.PartitionIndex[node] = -1
}

// WeightedNodeDegree exposes the cached deg(v)+selfLoop(v) used by Gain.
func (m *Metric) WeightedNodeDegree(node int32) int64 { return m.weightedNodeDegree[node] }

// SumOfAllEdgeWeights exposes W, needed by callers (e.g. coarsening) that
// must reason about modularity across graph levels.
func (m *Metric) SumOfAllEdgeWeights() float64 { return m.sumOfAllEdgeWeights }

// ComputeModularity is the static, stateless equivalent of Quality,
// useful for one-off scoring of a candidate clustering without building a
// Metric (e.g. scoring an Individual's PartitionMap against a graph it
// was not built incrementally over).
func ComputeModularity(g *core.Graph) float64 {
	return NewMetric(g).Quality()
}
