package island

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/evoclust/partition"
)

// Config holds one island's tunable knobs, mirroring
// parallel_mh_async_clustering's PartitionConfig fields
// (mh_pool_size, local_partitioning_repetitions, mh_mutate_fraction,
// mh_initial_population_fraction).
type Config struct {
	// MaxPoolSize upper-bounds the island's population capacity
	// (mh_pool_size, 250 typical). NewController derives the actual
	// capacity from initialize()'s auto-sizing formula and clamps it to
	// this value; it never exceeds it.
	//
	// The original estimates population_size at runtime from a single
	// timed createIndividuum call, then Bcasts it from rank 0
	// (initialize's fraction_to_spend_for_IP arithmetic) because MPI
	// ranks otherwise have no shared view of wall-clock cost. Since every
	// island here runs as a goroutine against the same process clock,
	// the broadcast step has no reason to exist — each island times its
	// own first individual and derives the same formula independently —
	// but the auto-sizing formula itself is still applied by
	// NewController; MaxPoolSize is only the upper clamp, not the final
	// size.
	MaxPoolSize int
	// InitialPopulationFraction is the fraction of the run's time_limit
	// budgeted for initial seeding (mh_initial_population_fraction).
	// NewController times one population.CreateIndividual call (t₁) and
	// sets the population capacity to
	// clamp(⌈(time_limit/InitialPopulationFraction)/t₁⌉, [10, MaxPoolSize]).
	InitialPopulationFraction float64
	// LocalRepetitions is how many create/combine/mutate steps a single
	// round runs before the next exchange cycle
	// (local_partitioning_repetitions).
	LocalRepetitions int
	// MutateFraction upper-bounds the random cluster-selection fraction
	// MutateRandom draws from (mh_mutate_fraction).
	MutateFraction float64
	// MaxPushesPerRound caps exchange.Bus's outgoing pushes per exchange
	// cycle (m_max_num_pushes).
	MaxPushesPerRound int
	// Partitioner supplies the KWayPartitioner the partitioning-flavored
	// combine/mutate operators need.
	Partitioner partition.KWayPartitioner
	// Logger receives debug events: population sizing, the first created
	// individual, each completed round and each rejected operator child.
	// The zero value is zerolog's no-op logger.
	Logger zerolog.Logger
}
