package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualgraph/core"
)

// TestDense_Export checks the gonum export mirrors the stored weight table
// for both representations and both orientations.
func TestDense_Export(t *testing.T) {
	for _, rep := range reps {
		t.Run(rep.name, func(t *testing.T) {
			g := build(rep.opt, core.WithDirected(true), core.WithWeighted(), core.WithVertices(3))
			require.NoError(t, g.AddEdge(0, 1, 2))
			require.NoError(t, g.AddEdge(2, 0, 5))

			d := g.Dense()
			require.NotNil(t, d)
			r, c := d.Dims()
			assert.Equal(t, 3, r)
			assert.Equal(t, 3, c)
			assert.Equal(t, 2.0, d.At(0, 1))
			assert.Equal(t, 5.0, d.At(2, 0))
			assert.Equal(t, 0.0, d.At(1, 0)) // absent
		})
	}
}

// TestDense_UndirectedSymmetric verifies mirrored cells in the export.
func TestDense_UndirectedSymmetric(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithVertices(2))
	require.NoError(t, g.AddEdge(0, 1, 4))
	d := g.Dense()
	assert.Equal(t, 4.0, d.At(0, 1))
	assert.Equal(t, 4.0, d.At(1, 0))
}

// TestDense_Empty pins the nil convention for an empty index space.
func TestDense_Empty(t *testing.T) {
	assert.Nil(t, core.NewGraph().Dense())
}
