// Package hgbuilder provides deterministic synthetic directed-hypergraph
// generators for tests, benchmarks, and examples across this module.
//
// The key type is Option, a function that mutates a builderConfig.
// builderConfig holds the knobs every generator in this package reads:
//   - rng:          *rand.Rand source for randomness (nil -> DefaultSeed).
//   - nodeWeightFn:  function mapping node index -> weight.
//   - edgeWeightFn:  function mapping hyperedge index -> weight.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of Option in order. Later options override earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package hgbuilder

import "math/rand"

// DefaultSeed is the RNG seed used when no Option supplies one, keeping
// every generator call deterministic by default.
const DefaultSeed int64 = 1

// Option customizes a generator by mutating a builderConfig before the
// hypergraph is assembled. As a rule, Option constructors never panic at
// runtime and ignore nil inputs.
type Option func(cfg *builderConfig)

// builderConfig holds the configurable parameters shared by every
// generator in this package. Not safe for concurrent mutation; each
// generator call builds its own config via newBuilderConfig.
type builderConfig struct {
	rng          *rand.Rand
	nodeWeightFn func(idx int) int64
	edgeWeightFn func(idx int) int64
}

// newBuilderConfig returns a builderConfig initialized with defaults —
// a seeded RNG and unit weights for both nodes and edges — then applies
// each supplied Option in order.
func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		rng:          rand.New(rand.NewSource(DefaultSeed)),
		nodeWeightFn: func(int) int64 { return 1 },
		edgeWeightFn: func(int) int64 { return 1 },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
