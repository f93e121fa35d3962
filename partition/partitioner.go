package partition

import (
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/rng"
)

// KWayPartitioner splits a graph's nodes into k parts, targeting an
// imbalance no worse than epsilon (fraction above perfectly-even node
// weight per part). Returns a partition index parallel to the graph's
// node ids, with values in [0,k).
type KWayPartitioner interface {
	Partition(g *core.Graph, k int, epsilon float64, r *rng.Source) ([]int32, error)
}
