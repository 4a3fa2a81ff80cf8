package randomprojection

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphalgo/parallel"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("randomprojection: invalid configuration")

	// ErrComputationFailed wraps any failure that aborted Compute.
	ErrComputationFailed = errors.New("randomprojection: computation failed")

	// ErrNotComputed is returned by Embeddings before a successful Compute.
	ErrNotComputed = errors.New("randomprojection: embeddings not computed")

	// ErrReleased is returned by Compute after Release.
	ErrReleased = errors.New("randomprojection: working buffers released")
)

// Defaults applied by DefaultConfig.
const (
	DefaultEmbeddingDimension = 128
	DefaultSparsity           = 3
	DefaultIterations         = 10
)

// Config is the immutable input of one run.
type Config struct {
	// EmbeddingDimension is the length of one iteration's vector.
	EmbeddingDimension int `yaml:"embeddingDimension"`

	// Sparsity sets the nonzero probability of a seed entry to 1/sparsity.
	Sparsity int `yaml:"sparsity"`

	// Iterations is the number of propagation rounds.
	Iterations int `yaml:"iterations"`

	// IterationWeights, when non-empty, holds one weight per iteration and
	// switches the combiner from concatenation to weighted accumulation.
	IterationWeights []float64 `yaml:"iterationWeights,omitempty"`

	// NormalizationStrength is the exponent applied to node degree when
	// scaling seed vectors.
	NormalizationStrength float64 `yaml:"normalizationStrength"`

	// NormalizeL2 rescales every iteration's vector to unit length.
	NormalizeL2 bool `yaml:"normalizeL2"`

	// Concurrency is the worker count.
	Concurrency int `yaml:"concurrency"`

	// RandomSeed fixes the seed vectors. Nil seeds from the clock.
	RandomSeed *int64 `yaml:"randomSeed,omitempty"`

	// BatchSize is the number of consecutive nodes handled by one task.
	BatchSize int `yaml:"batchSize"`

	// internal error recorded while applying options
	err error
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		EmbeddingDimension: DefaultEmbeddingDimension,
		Sparsity:           DefaultSparsity,
		Iterations:         DefaultIterations,
		Concurrency:        parallel.DefaultConcurrency(),
		BatchSize:          parallel.DefaultBatchSize,
	}
}

// Validate reports the first rule the configuration breaks.
func (c Config) Validate() error {
	if c.err != nil {
		return c.err
	}
	switch {
	case c.EmbeddingDimension < 1:
		return fmt.Errorf("%w: embeddingDimension must be ≥ 1 (got %d)", ErrInvalidConfig, c.EmbeddingDimension)
	case c.Sparsity < 1:
		return fmt.Errorf("%w: sparsity must be ≥ 1 (got %d)", ErrInvalidConfig, c.Sparsity)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be ≥ 1 (got %d)", ErrInvalidConfig, c.Iterations)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be ≥ 1 (got %d)", ErrInvalidConfig, c.Concurrency)
	case c.BatchSize < 1:
		return fmt.Errorf("%w: batchSize must be ≥ 1 (got %d)", ErrInvalidConfig, c.BatchSize)
	case len(c.IterationWeights) != 0 && len(c.IterationWeights) != c.Iterations:
		return fmt.Errorf("%w: %d iterationWeights for %d iterations", ErrInvalidConfig, len(c.IterationWeights), c.Iterations)
	}
	return nil
}

// RowLength returns the output row length: EmbeddingDimension with weights,
// EmbeddingDimension·Iterations without.
func (c Config) RowLength() int {
	if len(c.IterationWeights) > 0 {
		return c.EmbeddingDimension
	}
	return c.EmbeddingDimension * c.Iterations
}

// Weighted reports whether iterations are accumulated instead of concatenated.
func (c Config) Weighted() bool {
	return len(c.IterationWeights) > 0
}

// Option mutates a Config. An invalid value is recorded and surfaced by Validate.
type Option func(*Config)

// NewConfig applies opts on top of DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithEmbeddingDimension sets EmbeddingDimension.
func WithEmbeddingDimension(d int) Option {
	return func(c *Config) { c.EmbeddingDimension = d }
}

// WithSparsity sets Sparsity.
func WithSparsity(s int) Option {
	return func(c *Config) { c.Sparsity = s }
}

// WithIterations sets Iterations.
func WithIterations(k int) Option {
	return func(c *Config) { c.Iterations = k }
}

// WithIterationWeights sets one weight per iteration. The slice is copied.
func WithIterationWeights(w ...float64) Option {
	return func(c *Config) {
		c.IterationWeights = append([]float64(nil), w...)
	}
}

// WithNormalizationStrength sets the degree exponent of the seed scaling.
func WithNormalizationStrength(s float64) Option {
	return func(c *Config) { c.NormalizationStrength = s }
}

// WithNormalizeL2 enables per-iteration L2 normalization.
func WithNormalizeL2(on bool) Option {
	return func(c *Config) { c.NormalizeL2 = on }
}

// WithConcurrency sets the worker count.
//
//	n > 0:  use n workers
//	n == 0: use parallel.DefaultConcurrency()
//	n < 0:  invalid → ErrInvalidConfig
func WithConcurrency(n int) Option {
	return func(c *Config) {
		switch {
		case n < 0:
			c.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrInvalidConfig, n)
		case n == 0:
			c.Concurrency = parallel.DefaultConcurrency()
		default:
			c.Concurrency = n
		}
	}
}

// WithRandomSeed fixes the seed. Every value, 0 included, selects a distinct
// family of per-batch streams.
func WithRandomSeed(seed int64) Option {
	return func(c *Config) { c.RandomSeed = &seed }
}

// WithBatchSize sets the task granularity.
func WithBatchSize(n int) Option {
	return func(c *Config) { c.BatchSize = n }
}
