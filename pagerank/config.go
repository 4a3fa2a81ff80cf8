package pagerank

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/graphalgo/parallel"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("pagerank: invalid configuration")

	// ErrComputationFailed wraps any failure that aborted a run.
	ErrComputationFailed = errors.New("pagerank: computation failed")
)

// Defaults applied by DefaultConfig.
const (
	DefaultDampingFactor = 0.85
	DefaultMaxIterations = 20
	DefaultTolerance     = 1e-7
)

// Config is the immutable input of one run.
type Config struct {
	// DampingFactor d in (0,1): probability of following a relationship.
	DampingFactor float64 `yaml:"dampingFactor"`

	// MaxIterations bounds the number of rounds.
	MaxIterations int `yaml:"maxIterations"`

	// Tolerance stops the run once no score moves by this much or more.
	// Zero runs all MaxIterations.
	Tolerance float64 `yaml:"tolerance"`

	// Concurrency is the worker count.
	Concurrency int `yaml:"concurrency"`

	// BatchSize is the number of consecutive nodes handled by one task.
	BatchSize int `yaml:"batchSize"`

	// SourceNodes restricts the teleport term to these dense node ids.
	// Empty or nil means every node.
	SourceNodes *roaring.Bitmap `yaml:"-"`

	err error
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		DampingFactor: DefaultDampingFactor,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Concurrency:   parallel.DefaultConcurrency(),
		BatchSize:     parallel.DefaultBatchSize,
	}
}

// Validate reports the first rule the configuration breaks.
func (c Config) Validate() error {
	if c.err != nil {
		return c.err
	}
	switch {
	case !(c.DampingFactor > 0 && c.DampingFactor < 1):
		return fmt.Errorf("%w: dampingFactor must be in (0,1) (got %v)", ErrInvalidConfig, c.DampingFactor)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: maxIterations must be ≥ 1 (got %d)", ErrInvalidConfig, c.MaxIterations)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance cannot be negative (got %v)", ErrInvalidConfig, c.Tolerance)
	case c.Concurrency < 1:
		return fmt.Errorf("%w: concurrency must be ≥ 1 (got %d)", ErrInvalidConfig, c.Concurrency)
	case c.BatchSize < 1:
		return fmt.Errorf("%w: batchSize must be ≥ 1 (got %d)", ErrInvalidConfig, c.BatchSize)
	}
	return nil
}

// Option mutates a Config.
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

// WithDampingFactor sets d.
func WithDampingFactor(d float64) Option {
	return func(c *Config) { c.DampingFactor = d }
}

// WithMaxIterations sets MaxIterations.
func WithMaxIterations(k int) Option {
	return func(c *Config) { c.MaxIterations = k }
}

// WithTolerance sets the convergence threshold.
func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithConcurrency sets the worker count; 0 selects parallel.DefaultConcurrency().
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

// WithBatchSize sets the task granularity.
func WithBatchSize(n int) Option {
	return func(c *Config) { c.BatchSize = n }
}

// WithSourceNodes personalises the ranking towards the given dense node ids.
func WithSourceNodes(nodes ...uint32) Option {
	return func(c *Config) {
		c.SourceNodes = roaring.BitmapOf(nodes...)
	}
}
