package population

import (
	"github.com/katalvlaran/evoclust/coarsen"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/louvain"
	"github.com/katalvlaran/evoclust/modularity"
	"github.com/katalvlaran/evoclust/rng"
)

// doLouvain runs the full multilevel Louvain procedure over g and returns
// the resulting clustering (canonicalized) and its modularity, matching
// do_louvain. When seed is non-nil, g's nodes start from that clustering
// and Louvain only refines it (startWithSingletons=false); when seed is
// nil, every phase resets to singletons first, matching do_louvain's
// `c.empty()` dispatch into performClustering's third argument.
//
// lm_number_of_label_propagation_levels is redrawn per call from
// nextInt(0,5), matching do_louvain's own random LP-level choice
// (independent of createIndividuum's skewed distribution, which only
// governs fresh individuals).
func doLouvain(g *core.Graph, seed []int32, r *rng.Source) ([]int32, float64, error) {
	work := g.Clone()
	startSingletons := seed == nil
	if seed != nil {
		work.PartitionIndex = append([]int32(nil), seed...)
		work.SetPartitionCountFromCompute()
	}

	cfg := louvain.NewConfig(louvain.WithLPLevels(r.IntRange(0, 5)))
	if _, err := louvain.Run(work, cfg, startSingletons, r); err != nil {
		return nil, 0, err
	}

	clustering := append([]int32(nil), work.PartitionIndex...)
	return clustering, modularity.ComputeModularity(work), nil
}

// contractByClustering tags g with clustering and contracts it to the
// quotient graph, matching contract_by_clustering (copy + apply_clustering
// + a single level of Coarsening::performCoarsening).
func contractByClustering(g *core.Graph, clustering []int32) (*core.Graph, error) {
	tagged := g.WithPartition(clustering)
	coarse, _, err := coarsen.Contract(tagged)
	return coarse, err
}
