package population

import (
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/louvain"
	"github.com/katalvlaran/evoclust/rng"
)

// CreateIndividual runs a single fresh multilevel Louvain clustering of g
// from singletons, with a randomized size bound and a skewed
// label-propagation-level choice, matching createIndividuum:
// lp_levels is drawn from nextInt(0,10) and collapsed to
// {0..7}->0, 8->1, 9->2, 10->3 (so most individuals run no LP
// pre-coarsening at all, and a shrinking few run progressively more),
// and cluster_upperbound is drawn from nextInt(n/10, n).
func CreateIndividual(g *core.Graph, r *rng.Source) (Individual, error) {
	work := g.CloneEmpty()

	lpRoll := r.IntRange(0, 10)
	lpLevels := 0
	switch {
	case lpRoll == 8:
		lpLevels = 1
	case lpRoll == 9:
		lpLevels = 2
	case lpRoll == 10:
		lpLevels = 3
	}

	var upperBound int64
	if work.N > 0 {
		lo, hi := int(work.N)/10, int(work.N)
		if lo < 1 {
			lo = 1
		}
		upperBound = int64(r.IntRange(lo, hi))
	}

	cfg := louvain.NewConfig(
		louvain.WithLPLevels(lpLevels),
		louvain.WithClusterUpperBound(upperBound),
	)
	if _, err := louvain.Run(work, cfg, true, r); err != nil {
		return Individual{}, err
	}

	return buildIndividual(g, work.PartitionIndex), nil
}
