package island

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/evoclust/budget"
	"github.com/katalvlaran/evoclust/core"
	"github.com/katalvlaran/evoclust/exchange"
	"github.com/katalvlaran/evoclust/population"
	"github.com/katalvlaran/evoclust/rng"
)

// minPoolSize is initialize()'s lower clamp bound — a population smaller
// than this has too little diversity for the combine operators to do
// anything useful.
const minPoolSize = 10

// Controller runs one island's evolutionary loop over a fixed graph,
// grounded on parallel_mh_async_clustering's perform_partitioning/
// initialize/perform_local_partitioning.
type Controller struct {
	graph    *core.Graph
	pop      *population.Population
	bus      *exchange.Bus
	r        *rng.Source
	cfg      Config
	deadline budget.Deadline
	rounds   int
}

// NewController seeds an island's population with a single fresh
// Individual and returns a ready-to-run Controller, matching initialize's
// createIndividuum-then-estimate-then-insert opening move: the population
// capacity is derived from the same timed-first-individual formula the
// original uses, minus its MPI broadcast (every island here already runs
// against the same process clock, so each derives the identical capacity
// independently rather than having rank 0 compute it once and Bcast it).
func NewController(g *core.Graph, cfg Config, bus *exchange.Bus, r *rng.Source, deadline budget.Deadline) (*Controller, error) {
	start := time.Now()
	first, err := population.CreateIndividual(g, r)
	if err != nil {
		return nil, err
	}
	t1 := time.Since(start)

	poolSize := autoSizePoolSize(deadline.Limit(), t1, cfg.InitialPopulationFraction, cfg.MaxPoolSize)
	cfg.Logger.Debug().Dur("t1", t1).Int("pool_size", poolSize).Msg("island: auto-sized population")

	pop := population.New(poolSize)
	pop.Insert(first)
	cfg.Logger.Debug().Float64("objective", first.Objective).Msg("island: created initial individual")

	return &Controller{graph: g, pop: pop, bus: bus, r: r, cfg: cfg, deadline: deadline}, nil
}

// autoSizePoolSize implements initialize()'s population_size formula:
// clamp(⌈(timeLimit/fraction)/t1⌉, [minPoolSize, maxPool]). A non-positive
// fraction or t1 (possible when the first individual is fast enough to
// round to zero) falls back to spending the whole budget on one
// individual's worth of time rather than dividing by zero.
func autoSizePoolSize(timeLimit, t1 time.Duration, fraction float64, maxPool int) int {
	if fraction <= 0 {
		fraction = 1
	}
	if t1 <= 0 {
		t1 = time.Nanosecond
	}
	raw := math.Ceil((timeLimit.Seconds() / fraction) / t1.Seconds())
	size := int(raw)
	if size < minPoolSize {
		size = minPoolSize
	}
	if maxPool > 0 && size > maxPool {
		size = maxPool
	}
	return size
}

// Run executes rounds of local evolution interleaved with exchange
// cycles until ctx is canceled or the deadline is exhausted, matching
// perform_partitioning's do-while loop.
func (c *Controller) Run(ctx context.Context) error {
	for !c.deadline.Exhausted() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.localRound(); err != nil {
			return err
		}

		if c.bus != nil && !c.deadline.Exhausted() && c.bus.PeerCount() > 1 {
			messages := int(math.Ceil(math.Log(float64(c.bus.PeerCount()))))
			for i := 0; i < messages; i++ {
				if err := c.bus.PushBest(ctx, c.pop); err != nil {
					return err
				}
				c.bus.Drain(c.pop)
			}
		}

		c.rounds++
		c.cfg.Logger.Debug().Int("round", c.rounds).Float64("best", c.pop.BestObjective()).Msg("island: round complete")
	}
	return nil
}

// localRound performs one pass of local_partitioning_repetitions
// create-or-combine steps, matching perform_local_partitioning.
func (c *Controller) localRound() error {
	for i := 0; i < c.cfg.LocalRepetitions; i++ {
		if !c.pop.IsFull() {
			ind, err := population.CreateIndividual(c.graph, c.r)
			if err != nil {
				return err
			}
			c.pop.Insert(ind)
		} else {
			first, second := c.pop.TournamentPair(c.r)
			out, err := c.dispatchOperator(first, second)
			if err != nil {
				// A failed operator rejects its child; the round goes on.
				c.cfg.Logger.Debug().Err(err).Msg("island: operator failed, child rejected")
			} else {
				c.pop.Insert(out)
			}
		}

		if c.deadline.Exhausted() {
			break
		}
	}
	return nil
}

// dispatchOperator picks and runs a combine/mutate operator, matching
// perform_local_partitioning's nextInt(0,86) operator-selection ranges:
// 21 basic_flat, 20 improved_flat, 20 improved_flat_with_sclp, 20
// improved_multilevel, 3 improved_flat_with_partitioning, 3 mutate.
func (c *Controller) dispatchOperator(first, second population.Individual) (population.Individual, error) {
	decision := c.r.IntRange(0, 86)
	switch {
	case decision <= 20:
		return population.CombineBasicFlat(c.graph, first, second, c.r)
	case decision <= 40:
		return population.CombineImprovedFlat(c.graph, first, second, c.r)
	case decision <= 60:
		return population.CombineImprovedFlatWithSCLP(c.graph, first, c.r)
	case decision <= 80:
		return population.CombineImprovedMultilevel(c.graph, first, second, c.r)
	case decision <= 83:
		return population.CombineImprovedFlatWithPartitioning(c.graph, first, c.r, c.cfg.Partitioner)
	default:
		return population.Mutate(c.graph, first, second, c.r, c.cfg.MutateFraction, c.cfg.Partitioner)
	}
}

// Best returns the island's current best Individual, matching
// apply_fittest.
func (c *Controller) Best() population.Individual { return c.pop.GetBest() }

// Rounds reports how many rounds Run has completed so far.
func (c *Controller) Rounds() int { return c.rounds }

// CollectBest picks the best Individual across every island's final
// result, matching collect_best_partitioning's MPI_Allreduce(MAX)
// followed by a MIN-rank tie-break to choose a single broadcaster: since
// perIslandBest is already ordered by rank and the comparison below uses
// strict >, the first (lowest-rank) Individual achieving the maximum
// objective wins ties, the same outcome the original's MIN-rank
// Allreduce produces.
func CollectBest(perIslandBest []population.Individual) population.Individual {
	best := perIslandBest[0]
	for _, cand := range perIslandBest[1:] {
		if cand.Objective > best.Objective {
			best = cand
		}
	}
	return best
}
