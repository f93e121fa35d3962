package louvain

// Config holds the tunable knobs of a Louvain run, mirroring the
// functional-options config shape of the teacher's builder package
// (builder/config.go: a private struct populated by defaults, then
// overridden in order by Option values).
type Config struct {
	// LPLevels is the number of label-propagation pre-coarsening levels
	// to run before the standard Louvain node-move loop
	// (lm_number_of_label_propagation_levels).
	LPLevels int
	// LPIterations is the max passes per label-propagation level
	// (lm_number_of_label_propagation_iterations).
	LPIterations int
	// MinQualityImprovement is the do-while threshold performNodeMoves
	// loops against: it stops once currentQuality-oldQuality falls to or
	// below this value (lm_minimum_quality_improvement).
	MinQualityImprovement float64
	// ClusterUpperBound, when > 0, switches label-propagation levels to
	// the size-constrained variant (lm_cluster_coarsening_factor > 0).
	ClusterUpperBound int64
}

// Option configures a Config.
type Option func(*Config)

// defaultConfig mirrors VieClus's shipped defaults (spec.md §6).
func defaultConfig() Config {
	return Config{
		LPLevels:              0,
		LPIterations:          3,
		MinQualityImprovement: 0.000001,
		ClusterUpperBound:     0,
	}
}

// NewConfig builds a Config from defaults plus opts, applied in order.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLPLevels sets the number of label-propagation pre-coarsening levels.
func WithLPLevels(levels int) Option {
	return func(c *Config) { c.LPLevels = levels }
}

// WithLPIterations sets the max passes per label-propagation level.
func WithLPIterations(iterations int) Option {
	return func(c *Config) { c.LPIterations = iterations }
}

// WithMinQualityImprovement sets the node-move loop's stopping threshold.
func WithMinQualityImprovement(eps float64) Option {
	return func(c *Config) { c.MinQualityImprovement = eps }
}

// WithClusterUpperBound enables size-constrained label propagation at the
// given per-cluster node-weight bound.
func WithClusterUpperBound(upperBound int64) Option {
	return func(c *Config) { c.ClusterUpperBound = upperBound }
}
