package randomprojection

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func build(t *testing.T, nodes []string, rels [][2]string) *core.CSR {
	t.Helper()
	b := core.NewBuilder()
	for _, n := range nodes {
		_, err := b.AddNode(n)
		require.NoError(t, err)
	}
	for _, r := range rels {
		require.NoError(t, b.AddRelationship(r[0], r[1]))
	}
	return b.Build()
}

func isolated(t *testing.T, n int) *core.CSR {
	t.Helper()
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("n%d", i)
	}
	return build(t, nodes, nil)
}

func mustNew(t *testing.T, g core.Graph, opts ...Option) *RandomProjection {
	t.Helper()
	cfg, err := NewConfig(opts...)
	require.NoError(t, err)
	rp, err := New(g, cfg, nil)
	require.NoError(t, err)
	return rp
}

func TestBufferPair_Roles(t *testing.T) {
	p := newBufferPair(2, 3)

	assert.Same(t, &p.a[0][0], &p.current(0)[0][0])
	assert.Same(t, &p.b[0][0], &p.previous(0)[0][0])
	assert.Same(t, &p.b[1][0], &p.current(1)[1][0])
	assert.Same(t, &p.a[1][0], &p.previous(1)[1][0])
	assert.Same(t, &p.b[0][0], &p.seeds()[0][0])

	// rows must not alias each other
	p.a[0] = append(p.a[0], 1)
	assert.Equal(t, 0.0, p.a[1][0])
}

// TestInitRandomVectors_Distribution checks the three-valued law of seed entries.
func TestInitRandomVectors_Distribution(t *testing.T) {
	const (
		nodes    = 2000
		dim      = 64
		sparsity = 3
	)
	rp := mustNew(t, isolated(t, nodes),
		WithEmbeddingDimension(dim), WithSparsity(sparsity), WithIterations(1), WithBatchSize(100))
	require.NoError(t, rp.initRandomVectors(context.Background(), 7))

	value := math.Sqrt(sparsity) / math.Sqrt(dim)
	pos := make([]float64, 0, nodes*dim)
	neg := make([]float64, 0, nodes*dim)
	for _, row := range rp.buffers.seeds() {
		for _, x := range row {
			switch x {
			case value:
				pos, neg = append(pos, 1), append(neg, 0)
			case -value:
				pos, neg = append(pos, 0), append(neg, 1)
			case 0:
				pos, neg = append(pos, 0), append(neg, 0)
			default:
				t.Fatalf("unexpected seed entry %v", x)
			}
		}
	}

	p := 1.0 / (2 * sparsity)
	assert.InDelta(t, p, stat.Mean(pos, nil), 0.01)
	assert.InDelta(t, p, stat.Mean(neg, nil), 0.01)
}

// TestInitRandomVectors_DegreeScaling checks entry magnitudes with sparsity 1,
// where every entry is nonzero.
func TestInitRandomVectors_DegreeScaling(t *testing.T) {
	const dim = 16
	g := build(t, []string{"hub", "a", "b", "c", "d", "lonely"}, [][2]string{
		{"hub", "a"}, {"hub", "b"}, {"hub", "c"}, {"hub", "d"},
	})

	cases := []struct {
		name     string
		strength float64
		node     string
		want     float64
	}{
		{"hub sqrt degree", 0.5, "hub", 2 / math.Sqrt(dim)},
		{"hub zero strength", 0, "hub", 1 / math.Sqrt(dim)},
		{"isolated negative strength", -1, "lonely", 1 / math.Sqrt(dim)},
		{"leaf has degree zero", 2, "a", 1 / math.Sqrt(dim)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rp := mustNew(t, g, WithEmbeddingDimension(dim), WithSparsity(1), WithIterations(1),
				WithNormalizationStrength(tc.strength))
			require.NoError(t, rp.initRandomVectors(context.Background(), 11))

			node, ok := g.ToMapped(tc.node)
			require.True(t, ok)
			for _, x := range rp.buffers.seeds()[node] {
				assert.InDelta(t, tc.want, math.Abs(x), 1e-12)
			}
		})
	}
}

// TestPropagate_Path runs one iteration on a→b→c.
func TestPropagate_Path(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	rp := mustNew(t, g, WithEmbeddingDimension(4), WithIterations(1), WithSparsity(1))

	ctx := context.Background()
	require.NoError(t, rp.initRandomVectors(ctx, 42))
	require.NoError(t, rp.propagate(ctx, 0))

	a, _ := g.ToMapped("a")
	b, _ := g.ToMapped("b")
	c, _ := g.ToMapped("c")
	cur, prev := rp.buffers.current(0), rp.buffers.previous(0)

	assert.Equal(t, prev[b], cur[a])
	assert.Equal(t, prev[c], cur[b])
	assert.Equal(t, []float64{0, 0, 0, 0}, cur[c])
}

// TestPropagate_Mean checks the degree-normalized sum for a node with three targets.
func TestPropagate_Mean(t *testing.T) {
	g := build(t, []string{"s", "x", "y", "z"}, [][2]string{{"s", "x"}, {"s", "y"}, {"s", "z"}})
	rp := mustNew(t, g, WithEmbeddingDimension(8), WithIterations(2))

	ctx := context.Background()
	require.NoError(t, rp.initRandomVectors(ctx, 3))
	require.NoError(t, rp.propagate(ctx, 0))

	prev := rp.buffers.previous(0)
	want := make([]float64, 8)
	for _, id := range []string{"x", "y", "z"} {
		n, _ := g.ToMapped(id)
		floats.Add(want, prev[n])
	}
	floats.Scale(1.0/3, want)

	s, _ := g.ToMapped("s")
	assert.InDeltaSlice(t, want, rp.buffers.current(0)[s], 1e-12)

	// iteration 1 reads what iteration 0 wrote; every target is a sink
	require.NoError(t, rp.propagate(ctx, 1))
	assert.Equal(t, make([]float64, 8), rp.buffers.current(1)[s])
}

func TestL2Normalize(t *testing.T) {
	v := []float64{3, 4}
	l2Normalize(v)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, v, 1e-12)

	z := []float64{0, 0, 0}
	l2Normalize(z)
	assert.Equal(t, []float64{0, 0, 0}, z)
}
