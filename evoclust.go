package evoclust

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/evoclust/budget"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/exchange"
	"github.com/katalvlaran/evoclust/island"
	"github.com/katalvlaran/evoclust/population"
	"github.com/katalvlaran/evoclust/rng"
)

// CSRGraph is the external, dependency-free graph representation Cluster
// accepts: a compressed-sparse-row adjacency structure over N nodes,
// mirroring the external interface the original engine exposes to METIS-
// format callers. VWgt and AdjCWgt are optional (nil means unit weight).
type CSRGraph struct {
	N       int32
	Xadj    []int32
	Adjncy  []int32
	VWgt    []int64
	AdjCWgt []int64
}

// Result is Cluster's output: the best clustering found across every
// island, and its scoring summary.
type Result struct {
	Modularity  float64
	NumClusters int32
	Clustering  []int32
}

// Cluster runs the full parallel evolutionary clustering pipeline over
// csr and returns the best clustering found before cfg.TimeLimit elapses.
// If ctx is canceled first, it returns the context's error instead of a
// result.
func Cluster(ctx context.Context, csr CSRGraph, cfg Config) (Result, error) {
	var opts []core.Option
	if csr.VWgt != nil {
		opts = append(opts, core.WithNodeWeights(csr.VWgt))
	}
	g, err := core.NewFromCSR(csr.N, csr.Xadj, csr.Adjncy, csr.AdjCWgt, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadGraph, err)
	}
	if g.N == 0 {
		// A zero-node graph is not a CSR-invalidity: it is a trivial
		// success with no clusters to find.
		return Result{Modularity: 0, NumClusters: 0, Clustering: nil}, nil
	}

	best, err := RunIslands(ctx, g, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Modularity:  best.Objective,
		NumClusters: partitionCount(best.PartitionMap),
		Clustering:  best.PartitionMap,
	}, nil
}

// RunIslands launches one island.Controller per cfg.IslandCount, each on
// its own rng.Source seeded via rng.ForIsland, joins them with
// golang.org/x/sync/errgroup, and returns the single best Individual
// across every island via island.CollectBest. With cfg.IslandCount == 1
// the island runs with no exchange.Bus (an exchange.NewSingleTransport is
// created but not used); otherwise the islands share an
// exchange.NewLocalTransport mesh.
func RunIslands(ctx context.Context, g *core.Graph, cfg Config) (population.Individual, error) {
	islandCount := cfg.IslandCount
	if islandCount < 1 {
		islandCount = 1
	}

	islandCfg := island.Config{
		MaxPoolSize:               cfg.PoolSize,
		InitialPopulationFraction: cfg.InitialPopulationFraction,
		LocalRepetitions:          cfg.LocalRepetitions,
		MutateFraction:            cfg.MutateFraction,
		MaxPushesPerRound:         cfg.MaxPushesPerRound,
		Partitioner:               cfg.Partitioner,
		Logger:                    cfg.Logger,
	}

	var transports []exchange.Transport
	if islandCount == 1 {
		transports = []exchange.Transport{exchange.NewSingleTransport()}
	} else {
		locals := exchange.NewLocalTransport(islandCount, cfg.ExchangeBufferPerPeer)
		transports = make([]exchange.Transport, islandCount)
		for i, lt := range locals {
			transports[i] = lt
		}
	}

	clock := budget.NewRealClock()
	deadline := budget.NewDeadline(clock, cfg.TimeLimit)

	// Each goroutine writes only to its own rank's slot, so no mutex is
	// needed to guard results.
	results := make([]population.Individual, islandCount)
	grp, grpCtx := errgroup.WithContext(ctx)
	for rank := 0; rank < islandCount; rank++ {
		rank := rank
		grp.Go(func() error {
			r := rng.ForIsland(cfg.Seed, islandCount, rank)
			var bus *exchange.Bus
			if islandCount > 1 {
				bus = exchange.NewBus(transports[rank], cfg.MaxPushesPerRound)
			}

			ctrl, err := island.NewController(g, islandCfg, bus, r, deadline)
			if err != nil {
				return fmt.Errorf("evoclust: island %d: %w", rank, err)
			}
			if err := ctrl.Run(grpCtx); err != nil {
				return fmt.Errorf("evoclust: island %d: %w", rank, err)
			}

			results[rank] = ctrl.Best()
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return population.Individual{}, err
	}

	return island.CollectBest(results), nil
}

func partitionCount(partitionMap []int32) int32 {
	var max int32 = -1
	for _, c := range partitionMap {
		if c > max {
			max = c
		}
	}
	return max + 1
}
