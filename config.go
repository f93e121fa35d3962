package evoclust

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/evoclust/partition"
)

// Option customizes a Config before Cluster runs, following the builder
// package's functional-option convention (WithX mutating a public struct
// instead of a private one, since Config's fields are meant to be
// inspectable and settable directly too).
type Option func(cfg *Config)

// Config carries every tunable knob of the clustering run. The zero value
// is not directly usable — call NewConfig to get sane defaults, then
// layer Options or assign fields directly.
type Config struct {
	// IslandCount is how many islands evolve concurrently. 1 disables
	// exchange entirely (exchange.NewSingleTransport is used instead of a
	// LocalTransport mesh).
	IslandCount int
	// TimeLimit bounds the whole run; each island's budget.Deadline is
	// built from this same duration.
	TimeLimit time.Duration
	// PoolSize upper-bounds each island's population capacity
	// (mh_pool_size, 250 typical). The actual capacity is derived per
	// island from InitialPopulationFraction and a timed first individual
	// (island.Config.MaxPoolSize's clamp), so PoolSize is a ceiling, not
	// the literal size.
	PoolSize int
	// InitialPopulationFraction is the fraction of TimeLimit each island
	// budgets for initial seeding (mh_initial_population_fraction): a
	// smaller fraction yields a larger auto-sized population, since more
	// individuals are expected to fit before that slice of the budget
	// elapses.
	InitialPopulationFraction float64
	// LocalRepetitions is how many create/combine/mutate steps an island
	// runs per round before its next exchange cycle.
	LocalRepetitions int
	// MutateFraction upper-bounds MutateRandom's per-call random
	// cluster-selection fraction.
	MutateFraction float64
	// MaxPushesPerRound caps each exchange cycle's outgoing pushes per
	// island.
	MaxPushesPerRound int
	// ExchangeBufferPerPeer sizes each LocalTransport inbox channel.
	ExchangeBufferPerPeer int
	// Seed derives every island's rng.Source via rng.ForIsland(Seed,
	// IslandCount, rank).
	Seed int64
	// Partitioner supplies the KWayPartitioner the partitioning-flavored
	// combine/mutate operators need. Defaults to
	// partition.NewBisectionPartitioner().
	Partitioner partition.KWayPartitioner
	// Logger is handed to every island, which logs its debug events
	// (population sizing, seeding, round completion, rejected operator
	// children) through it. The zero value is zerolog's no-op logger, and
	// NewConfig sets zerolog.Nop(), so Cluster stays silent
	// unless a caller opts in.
	Logger zerolog.Logger
}

// NewConfig returns a Config with defaults matching a single-island,
// five-second run, then applies opts in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		IslandCount:               1,
		TimeLimit:                 5 * time.Second,
		PoolSize:                  250,
		InitialPopulationFraction: 0.1,
		LocalRepetitions:          10,
		MutateFraction:            0.1,
		MaxPushesPerRound:         3,
		ExchangeBufferPerPeer:     4,
		Seed:                      1,
		Partitioner:               partition.NewBisectionPartitioner(),
		Logger:                    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIslandCount sets how many islands evolve concurrently. Values < 1
// are ignored.
func WithIslandCount(n int) Option {
	return func(cfg *Config) {
		if n >= 1 {
			cfg.IslandCount = n
		}
	}
}

// WithTimeLimit sets the run's overall time budget.
func WithTimeLimit(d time.Duration) Option {
	return func(cfg *Config) { cfg.TimeLimit = d }
}

// WithPoolSize sets the upper bound on each island's population capacity.
func WithPoolSize(n int) Option {
	return func(cfg *Config) {
		if n >= 1 {
			cfg.PoolSize = n
		}
	}
}

// WithInitialPopulationFraction sets the fraction of TimeLimit budgeted
// for initial population seeding. Non-positive values are ignored.
func WithInitialPopulationFraction(f float64) Option {
	return func(cfg *Config) {
		if f > 0 {
			cfg.InitialPopulationFraction = f
		}
	}
}

// WithLocalRepetitions sets how many create/combine/mutate steps an
// island runs per round.
func WithLocalRepetitions(n int) Option {
	return func(cfg *Config) {
		if n >= 1 {
			cfg.LocalRepetitions = n
		}
	}
}

// WithMutateFraction sets the upper bound MutateRandom draws its random
// cluster-selection fraction from. Values outside (0,1] are ignored: above
// 1, MutateRandom's ceil(l*clusterCount) selection target can exceed the
// number of distinct clusters available to draw, spinning forever.
func WithMutateFraction(f float64) Option {
	return func(cfg *Config) {
		if f > 0 && f <= 1 {
			cfg.MutateFraction = f
		}
	}
}

// WithSeed sets the user seed every island's rng.Source is derived from.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithPartitioner overrides the default BisectionPartitioner. A nil
// partitioner is ignored.
func WithPartitioner(p partition.KWayPartitioner) Option {
	return func(cfg *Config) {
		if p != nil {
			cfg.Partitioner = p
		}
	}
}

// WithLogger sets the zerolog.Logger every island logs its debug events
// through; the root Cluster call itself logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) { cfg.Logger = logger }
}
