package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphalgo/config"
)

// runFlags are the flags shared by the algorithm and estimate commands. Only
// flags present on the command line override the loaded configuration.
type runFlags struct {
	fs *flag.FlagSet

	configPath    string
	input         string
	output        string
	orientation   string
	memoryBudget  string
	logLevel      string
	logFormat     string
	metricsListen string
	concurrency   int
	batchSize     int

	// fastrp
	dimension     int
	iterations    int
	sparsity      int
	weights       string
	normStrength  float64
	normalizeL2   bool
	seed          int64

	// pagerank
	damping       float64
	maxIterations int
	tolerance     float64
	sources       string

	// closeness
	wassermanFaust bool
}

func newRunFlags(name string, stderr io.Writer) *runFlags {
	f := &runFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	fs := f.fs
	fs.SetOutput(stderr)

	fs.StringVar(&f.configPath, "config", "", "YAML run configuration")
	fs.StringVar(&f.input, "input", "", "edge list to read (.zst and .lz4 are decompressed)")
	fs.StringVar(&f.output, "output", "", "result file (stdout when empty; .zst and .lz4 are compressed)")
	fs.StringVar(&f.orientation, "orientation", "natural", "natural, reverse or undirected")
	fs.StringVar(&f.memoryBudget, "memory-budget", "", "refuse runs estimated above this size, e.g. 2GiB")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "text or json")
	fs.StringVar(&f.metricsListen, "metrics-listen", "", "serve Prometheus metrics on this address")
	fs.IntVar(&f.concurrency, "concurrency", 0, "worker count (0 = all CPUs)")
	fs.IntVar(&f.batchSize, "batch-size", 0, "nodes per task (0 = default)")

	fs.IntVar(&f.dimension, "dimension", 0, "fastrp: embedding dimension")
	fs.IntVar(&f.iterations, "iterations", 0, "fastrp: propagation iterations")
	fs.IntVar(&f.sparsity, "sparsity", 0, "fastrp: seed sparsity")
	fs.StringVar(&f.weights, "weights", "", "fastrp: comma-separated iteration weights")
	fs.Float64Var(&f.normStrength, "normalization-strength", 0, "fastrp: degree scaling exponent")
	fs.BoolVar(&f.normalizeL2, "normalize-l2", false, "fastrp: L2-normalise each iteration")
	fs.Int64Var(&f.seed, "seed", 0, "fastrp: random seed")

	fs.Float64Var(&f.damping, "damping", 0, "pagerank: damping factor")
	fs.IntVar(&f.maxIterations, "max-iterations", 0, "pagerank: iteration cap")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "pagerank: convergence tolerance")
	fs.StringVar(&f.sources, "sources", "", "pagerank: comma-separated source node ids")

	fs.BoolVar(&f.wassermanFaust, "wasserman-faust", false, "closeness: scale for unreachable nodes")

	return f
}

// load reads -config and applies every flag that was set explicitly.
func (f *runFlags) load() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	var ferr error
	f.fs.Visit(func(fl *flag.Flag) {
		if ferr == nil {
			ferr = f.apply(&cfg, fl.Name)
		}
	})
	if ferr != nil {
		return cfg, fmt.Errorf("%w: -%w", errUsage, ferr)
	}

	return cfg, cfg.Validate()
}

func (f *runFlags) apply(cfg *config.Config, name string) error {
	switch name {
	case "input":
		cfg.Input = f.input
	case "output":
		cfg.Output = f.output
	case "orientation":
		cfg.Orientation = f.orientation
	case "memory-budget":
		cfg.MemoryBudget = f.memoryBudget
	case "log-level":
		cfg.Log.Level = f.logLevel
	case "log-format":
		cfg.Log.Format = f.logFormat
	case "metrics-listen":
		cfg.Metrics.Listen = f.metricsListen
	case "concurrency":
		// 0 keeps the configured worker count
		if f.concurrency != 0 {
			cfg.FastRP.Concurrency = f.concurrency
			cfg.PageRank.Concurrency = f.concurrency
			cfg.Closeness.Concurrency = f.concurrency
		}
	case "batch-size":
		if f.batchSize != 0 {
			cfg.FastRP.BatchSize = f.batchSize
			cfg.PageRank.BatchSize = f.batchSize
			cfg.Closeness.BatchSize = f.batchSize
		}
	case "dimension":
		cfg.FastRP.EmbeddingDimension = f.dimension
	case "iterations":
		cfg.FastRP.Iterations = f.iterations
	case "sparsity":
		cfg.FastRP.Sparsity = f.sparsity
	case "weights":
		w, err := parseFloats(f.weights)
		if err != nil {
			return fmt.Errorf("weights: %w", err)
		}
		cfg.FastRP.IterationWeights = w
	case "normalization-strength":
		cfg.FastRP.NormalizationStrength = f.normStrength
	case "normalize-l2":
		cfg.FastRP.NormalizeL2 = f.normalizeL2
	case "seed":
		seed := f.seed
		cfg.FastRP.RandomSeed = &seed
	case "damping":
		cfg.PageRank.DampingFactor = f.damping
	case "max-iterations":
		cfg.PageRank.MaxIterations = f.maxIterations
	case "tolerance":
		cfg.PageRank.Tolerance = f.tolerance
	case "sources":
		cfg.PageRank.SourceNodes = splitList(f.sources)
	case "wasserman-faust":
		cfg.Closeness.WassermanFaust = f.wassermanFaust
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
