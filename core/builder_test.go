// SPDX-License-Identifier: MIT
// Package core_test verifies Builder policy enforcement and CSR compilation.

package core_test

import (
	"testing"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/stretchr/testify/require"
)

// Common node ids used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
)

// collect returns the targets of node in traversal order.
func collect(t *testing.T, g core.Graph, node int) []int {
	t.Helper()
	var out []int
	require.NoError(t, g.ForEachRelationship(node, func(source, target int) bool {
		require.Equal(t, node, source)
		out = append(out, target)
		return true
	}))
	return out
}

// TestBuilder_AddNode verifies id assignment order and idempotency.
func TestBuilder_AddNode(t *testing.T) {
	b := core.NewBuilder()

	a, err := b.AddNode(NodeA)
	require.NoError(t, err)
	require.Equal(t, 0, a)

	c, err := b.AddNode(NodeC)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	again, err := b.AddNode(NodeA)
	require.NoError(t, err)
	require.Equal(t, a, again, "duplicate AddNode must return the existing id")
	require.Equal(t, 2, b.NodeCount())

	_, err = b.AddNode("")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
}

// TestBuilder_Policies verifies loop and multi-edge rejection.
func TestBuilder_Policies(t *testing.T) {
	b := core.NewBuilder()
	require.ErrorIs(t, b.AddRelationship(NodeA, NodeA), core.ErrLoopNotAllowed)
	require.Equal(t, 0, b.NodeCount(), "rejected loop must not register nodes")

	require.NoError(t, b.AddRelationship(NodeA, NodeB))
	require.ErrorIs(t, b.AddRelationship(NodeA, NodeB), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, b.AddRelationship("", NodeB), core.ErrEmptyNodeID)
	require.ErrorIs(t, b.AddRelationshipIDs(0, 7), core.ErrNodeOutOfRange)

	permissive := core.NewBuilder(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, permissive.AddRelationship(NodeA, NodeA))
	require.NoError(t, permissive.AddRelationship(NodeA, NodeB))
	require.NoError(t, permissive.AddRelationship(NodeA, NodeB))
	require.Equal(t, 3, permissive.RelationshipCount())
}

// TestBuilder_UndirectedDuplicate verifies that b→a duplicates a→b in undirected mode.
func TestBuilder_UndirectedDuplicate(t *testing.T) {
	b := core.NewBuilder(core.WithOrientation(core.Undirected))
	require.NoError(t, b.AddRelationship(NodeA, NodeB))
	require.ErrorIs(t, b.AddRelationship(NodeB, NodeA), core.ErrMultiEdgeNotAllowed)
}

// TestBuilder_Orientation verifies Natural, Reverse and Undirected storage of a→b→c.
func TestBuilder_Orientation(t *testing.T) {
	build := func(o core.Orientation) *core.CSR {
		b := core.NewBuilder(core.WithOrientation(o))
		require.NoError(t, b.AddRelationship(NodeA, NodeB))
		require.NoError(t, b.AddRelationship(NodeB, NodeC))
		return b.Build()
	}

	natural := build(core.Natural)
	require.Equal(t, 3, natural.NodeCount())
	require.Equal(t, 2, natural.RelationshipCount())
	require.Equal(t, []int{1}, collect(t, natural, 0))
	require.Equal(t, []int{2}, collect(t, natural, 1))
	require.Empty(t, collect(t, natural, 2))
	require.Equal(t, []int{1, 1, 0}, []int{natural.Degree(0), natural.Degree(1), natural.Degree(2)})

	reverse := build(core.Reverse)
	require.Equal(t, core.Reverse, reverse.Orientation())
	require.Empty(t, collect(t, reverse, 0))
	require.Equal(t, []int{0}, collect(t, reverse, 1))
	require.Equal(t, []int{1}, collect(t, reverse, 2))

	undirected := build(core.Undirected)
	require.Equal(t, 4, undirected.RelationshipCount())
	require.Equal(t, []int{1}, collect(t, undirected, 0))
	require.Equal(t, []int{0, 2}, collect(t, undirected, 1))
	require.Equal(t, []int{1}, collect(t, undirected, 2))
}

// TestBuilder_UndirectedLoopStoredOnce verifies a self-loop is not mirrored.
func TestBuilder_UndirectedLoopStoredOnce(t *testing.T) {
	b := core.NewBuilder(core.WithOrientation(core.Undirected), core.WithLoops())
	require.NoError(t, b.AddRelationship(NodeA, NodeA))
	g := b.Build()
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, []int{0}, collect(t, g, 0))
}

// TestParseOrientation round-trips every orientation name.
func TestParseOrientation(t *testing.T) {
	for _, o := range []core.Orientation{core.Natural, core.Reverse, core.Undirected} {
		got, err := core.ParseOrientation(o.String())
		require.NoError(t, err)
		require.Equal(t, o, got)
	}
	_, err := core.ParseOrientation("sideways")
	require.ErrorIs(t, err, core.ErrUnknownOrientation)
}
