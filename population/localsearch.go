package population

import (
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/modularity"
	"github.com/katalvlaran/evoclust/rng"
)

// localSearch runs a single flat (non-multilevel) pass of modularity-gain
// node moves to convergence, matching the local_search template method:
// a shuffled sweep order, a do-while loop on quality improvement > eps,
// and (when combine is true) a constraint that a node may only move into
// a neighboring cluster if the two share the same
// SecondaryPartitionIndex value. Returns the final clustering
// (canonicalized) and its modularity.
func localSearch(g *core.Graph, seed []int32, r *rng.Source, combine bool, eps float64) ([]int32, float64) {
	work := g.WithPartition(seed)
	metric := modularity.NewMetric(work)

	perm := make([]int32, work.N)
	for i := range perm {
		perm[i] = int32(i)
	}
	r.Shuffle(perm)

	q := metric.Quality()
	for {
		qPrev := q
		for _, node := range perm {
			curCluster := work.PartitionIndex[node]
			hoodEdges := map[int32]int64{curCluster: 0}

			neighbors := work.Neighbors(node)
			weights := work.EdgeWeights(node)
			for i, nb := range neighbors {
				if combine && work.SecondaryPartitionIndex != nil &&
					work.SecondaryPartitionIndex[node] != work.SecondaryPartitionIndex[nb] {
					continue
				}
				hoodEdges[work.PartitionIndex[nb]] += weights[i]
			}

			metric.RemoveNode(node, curCluster, hoodEdges[curCluster])

			bestCluster := curCluster
			bestIncrease := 0.0
			for cluster, w := range hoodEdges {
				if gain := metric.Gain(node, cluster, w); gain > bestIncrease {
					bestIncrease = gain
					bestCluster = cluster
				}
			}

			metric.InsertNode(node, bestCluster, hoodEdges[bestCluster])
		}
		q = metric.Quality()
		if q-qPrev <= eps {
			break
		}
	}

	result := append([]int32(nil), work.PartitionIndex...)
	Canonicalize(result)
	return result, q
}
