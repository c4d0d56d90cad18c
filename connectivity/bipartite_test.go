package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/connectivity"
	"github.com/katalvlaran/dualgraph/core"
)

// TestIsBipartite_WeightedPath: 0-1 (w2), 1-2 (w3) two-colors as {0,1,0}.
func TestIsBipartite_WeightedPath(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithVertices(3))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 3))

	ok, colors := connectivity.IsBipartite(g)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 0}, colors)
}

// TestIsBipartite_OddCycle: triangles fail, 4-cycles pass.
func TestIsBipartite_OddCycle(t *testing.T) {
	tri := undirected(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	ok, colors := connectivity.IsBipartite(tri)
	assert.False(t, ok)
	assert.Nil(t, colors)

	square := undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	ok, colors = connectivity.IsBipartite(square)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 0, 1}, colors)
}

// TestIsBipartite_Degenerate: nil is false, an empty graph is vacuously true.
func TestIsBipartite_Degenerate(t *testing.T) {
	ok, colors := connectivity.IsBipartite(nil)
	assert.False(t, ok)
	assert.Nil(t, colors)

	ok, colors = connectivity.IsBipartite(core.NewGraph())
	assert.True(t, ok)
	assert.Empty(t, colors)
}

// TestIsBipartite_SelfLoop: a loop is an odd cycle of length one.
func TestIsBipartite_SelfLoop(t *testing.T) {
	g := undirected(2, [][2]int{{0, 0}})
	ok, _ := connectivity.IsBipartite(g)
	assert.False(t, ok)
}

// TestIsBipartite_DirectedIgnoresOrientation: a directed odd cycle is just
// as odd when flattened.
func TestIsBipartite_DirectedIgnoresOrientation(t *testing.T) {
	g := directed(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	ok, _ := connectivity.IsBipartite(g)
	assert.False(t, ok)

	even := directed(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	ok, colors := connectivity.IsBipartite(even)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 0, 1}, colors)
}

// TestIsBipartite_RetiredSlots: retired indices stay -1 in the coloring.
func TestIsBipartite_RetiredSlots(t *testing.T) {
	g := undirected(4, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, g.RemoveVertex(3))
	ok, colors := connectivity.IsBipartite(g)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 0, -1}, colors)
}

// TestIsBipartite_MatrixRepresentation mirrors the path scenario on a dense
// backing.
func TestIsBipartite_MatrixRepresentation(t *testing.T) {
	g := undirected(3, [][2]int{{0, 1}, {1, 2}}, core.WithMatrix())
	ok, colors := connectivity.IsBipartite(g)
	assert.True(t, ok)
	assert.Equal(t, []int{0, 1, 0}, colors)
}
