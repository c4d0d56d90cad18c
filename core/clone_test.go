package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
)

// TestClone_Independent verifies deep-copy semantics: mutating the clone
// never shows through to the source and vice versa.
func TestClone_Independent(t *testing.T) {
	for _, rep := range reps {
		t.Run(rep.name, func(t *testing.T) {
			g := build(rep.opt, core.WithDirected(true), core.WithWeighted(), core.WithVertices(3))
			require.NoError(t, g.AddEdge(0, 1, 2))
			require.NoError(t, g.AddEdge(1, 2, 3))
			require.NoError(t, g.RemoveVertex(2))

			cp := g.Clone()
			assert.Equal(t, g.Order(), cp.Order())
			assert.Equal(t, g.VertexCount(), cp.VertexCount())
			assert.Equal(t, g.EdgeCount(), cp.EdgeCount())
			assert.Equal(t, g.Edges(), cp.Edges())
			assert.False(t, cp.HasVertex(2))

			require.NoError(t, cp.AddEdge(1, 0, 9))
			assert.False(t, g.HasEdge(1, 0))
			require.NoError(t, g.RemoveEdge(0, 1))
			assert.True(t, cp.HasEdge(0, 1))
		})
	}
}

// TestTranspose_Directed checks edge reversal and the double-transpose
// round trip.
func TestTranspose_Directed(t *testing.T) {
	for _, rep := range reps {
		t.Run(rep.name, func(t *testing.T) {
			g := build(rep.opt, core.WithDirected(true), core.WithWeighted(), core.WithVertices(4))
			require.NoError(t, g.AddEdge(0, 1, 2))
			require.NoError(t, g.AddEdge(1, 2, 3))
			require.NoError(t, g.AddEdge(2, 0, 5))

			tr := g.Transpose()
			assert.Equal(t, g.EdgeCount(), tr.EdgeCount())
			assert.True(t, tr.HasEdge(1, 0))
			assert.True(t, tr.HasEdge(2, 1))
			assert.True(t, tr.HasEdge(0, 2))
			assert.False(t, tr.HasEdge(0, 1))
			w, err := tr.EdgeWeight(1, 0)
			require.NoError(t, err)
			assert.Equal(t, 2.0, w)

			// Transpose twice: structurally the original.
			assert.Equal(t, g.Edges(), tr.Transpose().Edges())
		})
	}
}

// TestTranspose_UndirectedIsClone asserts transpose degenerates to identity
// for undirected graphs.
func TestTranspose_UndirectedIsClone(t *testing.T) {
	for _, rep := range reps {
		t.Run(rep.name, func(t *testing.T) {
			g := build(rep.opt, core.WithWeighted(), core.WithVertices(3))
			require.NoError(t, g.AddEdge(0, 1, 2))
			require.NoError(t, g.AddEdge(1, 2, 3))

			tr := g.Transpose()
			assert.Equal(t, g.Edges(), tr.Edges())
			assert.Equal(t, g.EdgeCount(), tr.EdgeCount())
		})
	}
}
