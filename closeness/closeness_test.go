package closeness_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/graphalgo/closeness"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRings builds two 5-rings joined by a center: every node of ring A points
// to the center and the center points to every node of ring B.
func twoRings(t *testing.T, o core.Orientation) *core.CSR {
	t.Helper()
	b := core.NewBuilder(core.WithOrientation(o))
	for _, ring := range []string{"a", "b"} {
		for i := 0; i < 5; i++ {
			require.NoError(t, b.AddRelationship(fmt.Sprintf("%s%d", ring, i), fmt.Sprintf("%s%d", ring, (i+1)%5)))
			if ring == "a" {
				require.NoError(t, b.AddRelationship(fmt.Sprintf("a%d", i), "center"))
			} else {
				require.NoError(t, b.AddRelationship("center", fmt.Sprintf("b%d", i)))
			}
		}
	}
	return b.Build()
}

func TestRun_TwoRings(t *testing.T) {
	g := twoRings(t, core.Undirected)
	res, err := closeness.Run(context.Background(), g, nil, closeness.WithBatchSize(2))
	require.NoError(t, err)

	center, _ := g.ToMapped("center")
	for node, c := range res.Centrality {
		if node == center {
			assert.InDelta(t, 1.0, c, 1e-9)
			continue
		}
		assert.InDelta(t, 10.0/17.0, c, 1e-9, "node %d", node)
	}
}

func TestRun_DirectedAndWassermanFaust(t *testing.T) {
	g := twoRings(t, core.Natural)
	score := func(res *closeness.Result, id string) float64 {
		n, _ := g.ToMapped(id)
		return res.Centrality[n]
	}

	plain, err := closeness.Run(context.Background(), g, nil)
	require.NoError(t, err)
	// center reaches b0..b4 at distance 1
	assert.InDelta(t, 1.0, score(plain, "center"), 1e-9)
	// b0 reaches b1..b4 at distances 1..4
	assert.InDelta(t, 4.0/10.0, score(plain, "b0"), 1e-9)

	wf, err := closeness.Run(context.Background(), g, nil, closeness.WithWassermanFaust())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score(wf, "center"), 1e-9)
	assert.InDelta(t, 0.4*0.4, score(wf, "b0"), 1e-9)
}

func TestRun_IsolatedAndEmpty(t *testing.T) {
	b := core.NewBuilder()
	_, err := b.AddNode("alone")
	require.NoError(t, err)

	res, err := closeness.Run(context.Background(), b.Build(), nil, closeness.WithWassermanFaust())
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Centrality)

	res, err = closeness.Run(context.Background(), core.NewBuilder().Build(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Centrality)
}

func TestRun_Progress(t *testing.T) {
	g := twoRings(t, core.Undirected)
	rec := progress.NewRecorder()
	_, err := closeness.Run(context.Background(), g, rec, closeness.WithConcurrency(3), closeness.WithBatchSize(1))
	require.NoError(t, err)

	assert.Equal(t, []string{":: Start", ":: Finished"}, rec.Messages())
	assert.Equal(t, []int64{11}, rec.Progresses())
}

var errBroken = errors.New("adjacency unavailable")

type brokenGraph struct{ *core.CSR }

func (b brokenGraph) ConcurrentCopy() core.Graph { return b }

func (brokenGraph) ForEachRelationship(int, core.RelationshipConsumer) error { return errBroken }

func TestRun_Failures(t *testing.T) {
	_, err := closeness.Run(context.Background(), brokenGraph{twoRings(t, core.Natural)}, nil)
	require.ErrorIs(t, err, closeness.ErrComputationFailed)
	require.ErrorIs(t, err, errBroken)

	_, err = closeness.Run(context.Background(), twoRings(t, core.Natural), nil, closeness.WithConcurrency(-1))
	require.ErrorIs(t, err, closeness.ErrInvalidConfig)

	_, err = closeness.Run(context.Background(), nil, nil)
	require.ErrorIs(t, err, closeness.ErrInvalidConfig)
	_, err = closeness.RunConfig(context.Background(), nil, closeness.Config{}, nil)
	require.ErrorIs(t, err, closeness.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = closeness.Run(ctx, twoRings(t, core.Natural), nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryEstimation(t *testing.T) {
	// result 24+128·8, walker (24+2·8) + 2·(24+128·8) + 96
	est := closeness.MemoryEstimation(128, 4)
	assert.EqualValues(t, 1048+2232, est.Min)
	assert.EqualValues(t, 1048+4*2232, est.Max)

	single := closeness.MemoryEstimation(128, 0)
	assert.Equal(t, single.Min, single.Max)
}
