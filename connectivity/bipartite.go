package connectivity

import (
	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/queue"
)

// IsBipartite reports whether the live vertices of g admit a proper
// two-coloring, ignoring edge orientation. On success colors holds 0 or 1 per
// live vertex and -1 for retired slots; on failure (including a nil graph)
// colors is nil. A graph with no live vertices is vacuously bipartite.
// Self-loops make a graph non-bipartite.
func IsBipartite(g *core.Graph) (bool, []int) {
	if g == nil {
		return false, nil
	}
	colors := make([]int, g.Order())
	for i := range colors {
		colors[i] = -1
	}

	adj := undirectedAdjacency(g)
	q := queue.New[int](g.VertexCount())

	for _, root := range g.Vertices() {
		if colors[root] != -1 {
			continue
		}
		colors[root] = 0
		q.Enqueue(root)
		for q.Len() > 0 {
			v, _ := q.Dequeue()
			for _, nb := range adj[v] {
				if colors[nb] == -1 {
					colors[nb] = 1 - colors[v]
					q.Enqueue(nb)
					continue
				}
				if colors[nb] == colors[v] {
					// Odd cycle (a self-loop is the degenerate case).
					return false, nil
				}
			}
		}
	}

	return true, colors
}
