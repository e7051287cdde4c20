package hgbuilder

import "math/rand"

// WithRand sets an explicit *rand.Rand source for randomness. A nil rng
// is a no-op and leaves the current RNG untouched.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and
// assigns it as the RNG source. Use this for reproducible generation.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNodeWeightFn injects a custom per-node weight generator. A nil fn
// is a no-op.
func WithNodeWeightFn(fn func(idx int) int64) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.nodeWeightFn = fn
		}
	}
}

// WithEdgeWeightFn injects a custom per-hyperedge weight generator. A
// nil fn is a no-op.
func WithEdgeWeightFn(fn func(idx int) int64) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.edgeWeightFn = fn
		}
	}
}
