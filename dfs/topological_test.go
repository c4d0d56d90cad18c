package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/dfs"
)

// TestTopologicalSort_Errors covers the three rejection paths.
func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	u := undirected(2, [][2]int{{0, 1}})
	_, err = dfs.TopologicalSort(u)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)

	cyc := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	_, err = dfs.TopologicalSort(cyc)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopologicalSort_Chain: 0→1→2→3 sorts to [0,1,2,3].
func TestTopologicalSort_Chain(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

// TestTopologicalSort_RespectsEdges checks the ordering constraint on a
// diamond plus tail; the exact sequence is pinned by the ascending sweep.
func TestTopologicalSort_RespectsEdges(t *testing.T) {
	g := directed(5, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	pos := make(map[int]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d→%d out of order", e.From, e.To)
	}
}

// TestTopologicalSort_TrivialGraphs: empty index space and edgeless vertices.
func TestTopologicalSort_TrivialGraphs(t *testing.T) {
	empty := core.NewGraph(core.WithDirected(true))
	order, err := dfs.TopologicalSort(empty)
	require.NoError(t, err)
	assert.Empty(t, order)

	isolated := directed(3, nil)
	order, err = dfs.TopologicalSort(isolated)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestTopologicalSort_Disconnected includes every live vertex exactly once.
func TestTopologicalSort_Disconnected(t *testing.T) {
	g := directed(5, [][2]int{{0, 1}, {3, 4}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, order)
}

// TestTopologicalSort_SkipsRetired excludes retired slots from the ordering.
func TestTopologicalSort_SkipsRetired(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {1, 3}})
	require.NoError(t, g.RemoveVertex(2))
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, order)
}

// TestTopologicalSort_Cancellation: a pre-cancelled context aborts the sort.
func TestTopologicalSort_Cancellation(t *testing.T) {
	g := directed(10, [][2]int{{0, 1}, {1, 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestTopologicalSort_MatrixRepresentation: same chain, matrix backing.
func TestTopologicalSort_MatrixRepresentation(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, core.WithMatrix())
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}
