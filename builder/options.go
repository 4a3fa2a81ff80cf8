// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphalgo/rng"
)

// builderConfig is the resolved, immutable configuration shared by all
// constructors of one BuildGraph call.
type builderConfig struct {
	// idFn maps a vertex index to its external id.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand is given.
	rng *rand.Rand
}

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the vertex id generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefix is WithIDScheme(PrefixIDFn(prefix)).
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh HighQuality generator, freezing stochastic output.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rng.Rand(seed) }
}
