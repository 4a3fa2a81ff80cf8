package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/katalvlaran/graphalgo/closeness"
	"github.com/katalvlaran/graphalgo/config"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/edgelist"
	"github.com/katalvlaran/graphalgo/memest"
	"github.com/katalvlaran/graphalgo/pagerank"
	"github.com/katalvlaran/graphalgo/parallel"
	"github.com/katalvlaran/graphalgo/progress"
	"github.com/katalvlaran/graphalgo/randomprojection"
	"github.com/prometheus/client_golang/prometheus"
)

var errNoInput = errors.New("no input graph")

// task names prefix the progress messages of each algorithm
var taskNames = map[string]string{
	config.AlgorithmFastRP:    "RandomProjection",
	config.AlgorithmPageRank:  "PageRank",
	config.AlgorithmCloseness: "Closeness",
}

func parse(f *flag.FlagSet, args []string) (help bool, err error) {
	if err = f.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %w", errUsage, err)
	}
	if f.NArg() > 0 {
		return false, fmt.Errorf("%w: unexpected argument %q", errUsage, f.Arg(0))
	}
	return false, nil
}

func runAlgorithm(ctx context.Context, algorithm string, stdout, stderr io.Writer, args []string) (err error) {
	f := newRunFlags(algorithm, stderr)
	if help, err := parse(f.fs, args); help || err != nil {
		return err
	}
	cfg, err := f.load()
	if err != nil {
		return err
	}
	cfg.Algorithm = algorithm

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		return err
	}
	logger = logger.WithRunID(uuid.NewString()).WithAlgorithm(algorithm)

	reg := prometheus.NewRegistry()
	metrics := progress.NewMetrics(reg)
	stopMetrics := serveMetrics(logger, reg, cfg.Metrics.Listen)
	defer stopMetrics()

	g, err := loadGraph(cfg)
	if err != nil {
		return err
	}
	logger = logger.WithGraph(g.NodeCount(), g.RelationshipCount())

	est := estimate(cfg, g.NodeCount(), g.RelationshipCount())
	budget, _ := cfg.Budget()
	logger.Info("memory estimate", "estimate", est.String(), "budget", budgetString(budget))
	if err = est.Check(budget); err != nil {
		return err
	}

	tracker := progress.Multi(
		progress.NewLogTracker(logger, taskNames[algorithm]),
		metrics.Tracker(algorithm),
	)
	start := time.Now()
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.ObserveRun(algorithm, status, time.Since(start).Seconds())
	}()

	var write func(io.Writer) error
	switch algorithm {
	case config.AlgorithmFastRP:
		emb, err := randomprojection.Run(ctx, g, cfg.FastRP, tracker)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return writeEmbeddings(w, g, emb) }
	case config.AlgorithmPageRank:
		prCfg := cfg.PageRank.Config
		if prCfg.SourceNodes, err = resolveSources(g, cfg.PageRank.SourceNodes); err != nil {
			return err
		}
		res, err := pagerank.Run(ctx, g, prCfg, tracker)
		if err != nil {
			return err
		}
		logger.Info("pagerank finished", "iterations", res.Iterations, "converged", res.DidConverge)
		write = func(w io.Writer) error { return writeScores(w, g, res.Scores) }
	case config.AlgorithmCloseness:
		res, err := closeness.RunConfig(ctx, g, cfg.Closeness, tracker)
		if err != nil {
			return err
		}
		write = func(w io.Writer) error { return writeScores(w, g, res.Centrality) }
	}

	return writeOutput(stdout, cfg.Output, write)
}

func runEstimate(stdout, stderr io.Writer, args []string) error {
	f := newRunFlags("estimate", stderr)
	var algorithm string
	var nodes, rels int
	f.fs.StringVar(&algorithm, "algorithm", config.AlgorithmFastRP, "fastrp, pagerank or closeness")
	f.fs.IntVar(&nodes, "nodes", 0, "node count (ignored with -input)")
	f.fs.IntVar(&rels, "relationships", 0, "relationship count (ignored with -input)")
	if help, err := parse(f.fs, args); help || err != nil {
		return err
	}
	cfg, err := f.load()
	if err != nil {
		return err
	}
	cfg.Algorithm = algorithm
	if err = cfg.Validate(); err != nil {
		return err
	}

	if cfg.Input != "" {
		g, err := loadGraph(cfg)
		if err != nil {
			return err
		}
		nodes, rels = g.NodeCount(), g.RelationshipCount()
	}

	est := estimate(cfg, nodes, rels)
	budget, _ := cfg.Budget()
	fmt.Fprintf(stdout, "algorithm\t%s\n", algorithm)
	fmt.Fprintf(stdout, "nodes\t%s\n", humanize.Comma(int64(nodes)))
	fmt.Fprintf(stdout, "relationships\t%s\n", humanize.Comma(int64(rels)))
	fmt.Fprintf(stdout, "estimate\t%s\n", est)
	fmt.Fprintf(stdout, "budget\t%s\n", budgetString(budget))

	return est.Check(budget)
}

func loadGraph(cfg config.Config) (*core.CSR, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("%w: %w (set -input or input:)", errUsage, errNoInput)
	}
	return edgelist.Open(cfg.Input, edgelist.WithGraphOptions(core.WithOrientation(cfg.GraphOrientation())))
}

// estimate returns the memory estimate of cfg.Algorithm over a graph of the given size.
func estimate(cfg config.Config, nodes, rels int) memest.Estimate {
	switch cfg.Algorithm {
	case config.AlgorithmPageRank:
		return pagerank.MemoryEstimation(nodes, rels, cfg.PageRank.BatchSize)
	case config.AlgorithmCloseness:
		return closeness.MemoryEstimation(nodes, workers(cfg.Closeness.Concurrency))
	default:
		return randomprojection.MemoryEstimation(cfg.FastRP, nodes, workers(cfg.FastRP.Concurrency))
	}
}

func workers(concurrency int) int {
	if concurrency > 0 {
		return concurrency
	}
	return parallel.DefaultConcurrency()
}

func budgetString(budget int64) string {
	if budget <= 0 {
		return "unlimited"
	}
	return humanize.IBytes(uint64(budget))
}

// resolveSources maps external ids to the dense nodes of g.
func resolveSources(g *core.CSR, ids []string) (*roaring.Bitmap, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	bm := roaring.New()
	var missing []string
	for _, id := range ids {
		node, ok := g.ToMapped(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		bm.Add(uint32(node))
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: unknown source nodes %s", pagerank.ErrInvalidConfig, strings.Join(missing, ","))
	}
	return bm, nil
}
