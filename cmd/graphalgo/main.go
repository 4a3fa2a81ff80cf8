// Command graphalgo runs graph algorithms over edge-list files.
//
//	graphalgo fastrp    -input g.tsv -dimension 64 -seed 42 > embeddings.tsv
//	graphalgo pagerank  -input g.tsv.zst -sources a,b
//	graphalgo closeness -input g.tsv -orientation undirected -wasserman-faust
//	graphalgo estimate  -algorithm fastrp -nodes 1000000 -memory-budget 4GiB
//	graphalgo generate  -topology random -n 1000 -p 0.01 -seed 1 -output g.tsv.lz4
//
// Every run command also accepts -config run.yaml; flags set on the command line
// override the file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/graphalgo/config"
	"github.com/katalvlaran/graphalgo/memest"
)

var errUsage = errors.New("usage")

const usageText = `usage: graphalgo <command> [flags]

commands:
  fastrp      compute FastRP node embeddings
  pagerank    compute (personalised) PageRank scores
  closeness   compute closeness centrality
  estimate    print the memory estimate of a run
  generate    write a synthetic graph as an edge list

run "graphalgo <command> -h" for the flags of a command.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "graphalgo:", err)
		os.Exit(exitCode(err))
	}
}

// run dispatches one command; main only maps its error to an exit code.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case config.AlgorithmFastRP, config.AlgorithmPageRank, config.AlgorithmCloseness:
		return runAlgorithm(ctx, cmd, stdout, stderr, rest)
	case "estimate":
		return runEstimate(stdout, stderr, rest)
	case "generate":
		return runGenerate(stdout, stderr, rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return nil
	default:
		fmt.Fprint(stderr, usageText)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, memest.ErrBudgetExceeded):
		return 3
	default:
		return 1
	}
}
