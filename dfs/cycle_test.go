package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/dfs"
)

// TestHasCycle_NilGraph: conservative false.
func TestHasCycle_NilGraph(t *testing.T) {
	assert.False(t, dfs.HasCycle(nil))
}

// TestHasCycle_DirectedCycle covers the 4-vertex scenario 0→1, 1→2, 2→0,
// 2→3: cyclic with the back-edge, acyclic once it is removed.
func TestHasCycle_DirectedCycle(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	assert.True(t, dfs.HasCycle(g))

	require.NoError(t, g.RemoveEdge(2, 0))
	assert.False(t, dfs.HasCycle(g))
}

// TestHasCycle_DirectedCrossEdge: a diamond DAG has converging paths but no
// cycle; cross/forward edges must not be misread as back-edges.
func TestHasCycle_DirectedCrossEdge(t *testing.T) {
	g := directed(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	assert.False(t, dfs.HasCycle(g))
}

// TestHasCycle_DirectedSelfLoop: a loop edge is the smallest cycle.
func TestHasCycle_DirectedSelfLoop(t *testing.T) {
	g := directed(2, [][2]int{{1, 1}})
	assert.True(t, dfs.HasCycle(g))
}

// TestHasCycle_UndirectedTriangle vs. path: a 3-cycle closes, a simple path
// does not (the mirror of the tree edge is excluded via the parent).
func TestHasCycle_UndirectedTriangle(t *testing.T) {
	tri := undirected(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	assert.True(t, dfs.HasCycle(tri))

	path := undirected(3, [][2]int{{0, 1}, {1, 2}})
	assert.False(t, dfs.HasCycle(path))
}

// TestHasCycle_UndirectedSelfLoop: loops count even without the mirror.
func TestHasCycle_UndirectedSelfLoop(t *testing.T) {
	g := undirected(1, [][2]int{{0, 0}})
	assert.True(t, dfs.HasCycle(g))
}

// TestHasCycle_SweepsAllComponents: the cycle lives in the second component.
func TestHasCycle_SweepsAllComponents(t *testing.T) {
	g := directed(5, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}})
	assert.True(t, dfs.HasCycle(g))

	u := undirected(6, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}})
	assert.True(t, dfs.HasCycle(u))
}

// TestHasCycle_RetiredVertexBreaksCycle: retiring a cycle member removes its
// incident edges and with them the cycle.
func TestHasCycle_RetiredVertexBreaksCycle(t *testing.T) {
	g := directed(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.True(t, dfs.HasCycle(g))
	require.NoError(t, g.RemoveVertex(1))
	assert.False(t, dfs.HasCycle(g))
}

// TestHasCycle_MatrixRepresentation: outcome is representation-independent.
func TestHasCycle_MatrixRepresentation(t *testing.T) {
	g := directed(3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, core.WithMatrix())
	assert.True(t, dfs.HasCycle(g))

	u := undirected(3, [][2]int{{0, 1}, {1, 2}}, core.WithMatrix())
	assert.False(t, dfs.HasCycle(u))
}
