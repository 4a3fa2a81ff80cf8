// Package config loads the YAML run file of the graphalgo command.
//
// Every field is optional; Load starts from Default() and overrides what the
// file sets. Unknown keys are rejected.
//
//	algorithm: fastrp            # fastrp | pagerank | closeness
//	input: graph.tsv.zst
//	output: scores.tsv           # stdout when empty
//	orientation: undirected      # natural | reverse | undirected
//	memoryBudget: 2 GiB
//	log: {level: info, format: text}
//	metrics: {listen: ":9090"}
//	fastrp: {embeddingDimension: 64, iterations: 4, randomSeed: 42}
//	pagerank: {dampingFactor: 0.85, maxIterations: 20, sourceNodes: [a, b]}
//	closeness: {wassermanFaust: true}
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/graphalgo/closeness"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/pagerank"
	"github.com/katalvlaran/graphalgo/randomprojection"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration is inconsistent.
var ErrInvalid = errors.New("config: invalid run configuration")

// Algorithm names.
const (
	AlgorithmFastRP    = "fastrp"
	AlgorithmPageRank  = "pagerank"
	AlgorithmCloseness = "closeness"
)

// Config is one run of the graphalgo command.
type Config struct {
	Algorithm    string `yaml:"algorithm"`
	Input        string `yaml:"input"`
	Output       string `yaml:"output"`
	Orientation  string `yaml:"orientation"`
	MemoryBudget string `yaml:"memoryBudget"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`

	FastRP    randomprojection.Config `yaml:"fastrp"`
	PageRank  PageRankConfig          `yaml:"pagerank"`
	Closeness closeness.Config        `yaml:"closeness"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Listen is set.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// PageRankConfig adds external source ids to pagerank.Config.
type PageRankConfig struct {
	pagerank.Config `yaml:",inline"`
	SourceNodes     []string `yaml:"sourceNodes,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Algorithm:   AlgorithmFastRP,
		Orientation: core.Natural.String(),
		Log:         LogConfig{Level: "info", Format: "text"},
		FastRP:      randomprojection.DefaultConfig(),
		PageRank:    PageRankConfig{Config: pagerank.DefaultConfig()},
	}
}

// Load reads path on top of Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	// an empty file keeps the defaults
	if err = decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the fields Load cannot check structurally. Algorithm
// configurations are validated by their packages when the run starts.
func (c Config) Validate() error {
	switch c.Algorithm {
	case AlgorithmFastRP, AlgorithmPageRank, AlgorithmCloseness:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Algorithm)
	}
	if _, err := core.ParseOrientation(c.Orientation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Budget(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Budget parses MemoryBudget ("512 MiB", "2GB"). Empty means no budget (0).
func (c Config) Budget() (int64, error) {
	if c.MemoryBudget == "" {
		return 0, nil
	}
	b, err := humanize.ParseBytes(c.MemoryBudget)
	if err != nil {
		return 0, fmt.Errorf("%w: memoryBudget: %w", ErrInvalid, err)
	}
	return int64(b), nil
}

// GraphOrientation returns the parsed Orientation.
func (c Config) GraphOrientation() core.Orientation {
	o, _ := core.ParseOrientation(c.Orientation)
	return o
}

// SlogLevel parses Level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}
	return lvl, nil
}
