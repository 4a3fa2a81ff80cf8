package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/graphalgo/config"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmFastRP, cfg.Algorithm)
	assert.Equal(t, 128, cfg.FastRP.EmbeddingDimension)
	assert.Equal(t, 0.85, cfg.PageRank.DampingFactor)
	assert.Equal(t, core.Natural, cfg.GraphOrientation())
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, `
algorithm: pagerank
input: edges.tsv.zst
orientation: undirected
memoryBudget: 512 MiB
log:
  level: debug
  format: json
fastrp:
  embeddingDimension: 16
  iterationWeights: [0.0, 1.0]
  iterations: 2
  randomSeed: 42
pagerank:
  maxIterations: 40
  sourceNodes: [a, b]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.AlgorithmPageRank, cfg.Algorithm)
	assert.Equal(t, core.Undirected, cfg.GraphOrientation())

	budget, err := cfg.Budget()
	require.NoError(t, err)
	assert.EqualValues(t, 512<<20, budget)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	// unset keys keep their defaults
	assert.Equal(t, 16, cfg.FastRP.EmbeddingDimension)
	assert.Equal(t, 3, cfg.FastRP.Sparsity)
	require.NotNil(t, cfg.FastRP.RandomSeed)
	assert.EqualValues(t, 42, *cfg.FastRP.RandomSeed)
	require.NoError(t, cfg.FastRP.Validate())

	assert.Equal(t, 40, cfg.PageRank.MaxIterations)
	assert.Equal(t, 0.85, cfg.PageRank.DampingFactor)
	assert.Equal(t, []string{"a", "b"}, cfg.PageRank.SourceNodes)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "algorithm: fastrp\nbogus: 1\n",
		"unknown algorithm": "algorithm: louvain\n",
		"bad orientation":   "orientation: sideways\n",
		"bad budget":        "memoryBudget: lots\n",
		"bad level":         "log: {level: loud}\n",
		"bad format":        "log: {format: xml}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "# nothing yet\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Algorithm, cfg.Algorithm)
}
