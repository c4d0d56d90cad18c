package connectivity

import (
	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/queue"
)

// IsConnected reports whether every live vertex is reachable from every other
// when edge orientation is ignored. Directed graphs are therefore tested for
// weak connectivity. A nil graph or a graph without live vertices is not
// connected.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}
	adj := undirectedAdjacency(g)
	visited := make([]bool, g.Order())

	return sweep(adj, g.Vertices()[0], visited) == g.VertexCount()
}

// IsStronglyConnected reports whether every live vertex can reach every other
// along directed edges. It runs one sweep on g and one on its transpose from
// the lowest live vertex; both must cover all live vertices. Undirected
// graphs degenerate to IsConnected. Conservative false on nil or empty
// graphs.
func IsStronglyConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}
	if !g.Directed() {
		return IsConnected(g)
	}

	root := g.Vertices()[0]
	if reach(g, root) != g.VertexCount() {
		return false
	}

	return reach(g.Transpose(), root) == g.VertexCount()
}

// Components decomposes g into weak components. ids maps every vertex index
// to a dense component id assigned from 0 in ascending sweep order; retired
// slots map to -1. A nil graph yields (nil, 0).
func Components(g *core.Graph) (ids []int, count int) {
	if g == nil {
		return nil, 0
	}
	ids = make([]int, g.Order())
	for i := range ids {
		ids[i] = -1
	}

	adj := undirectedAdjacency(g)
	visited := make([]bool, g.Order())
	q := queue.New[int](g.VertexCount())

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		visited[root] = true
		ids[root] = count
		q.Enqueue(root)
		for q.Len() > 0 {
			v, _ := q.Dequeue()
			for _, nb := range adj[v] {
				if !visited[nb] {
					visited[nb] = true
					ids[nb] = count
					q.Enqueue(nb)
				}
			}
		}
		count++
	}

	return ids, count
}

// ComponentCount returns the number of weak components in g.
func ComponentCount(g *core.Graph) int {
	_, count := Components(g)

	return count
}

// IsTree reports whether g is an undirected, connected graph with exactly
// V−1 edges. Directed graphs are never trees here.
func IsTree(g *core.Graph) bool {
	if g == nil || g.Directed() {
		return false
	}
	if g.EdgeCount() != g.VertexCount()-1 {
		return false
	}

	return IsConnected(g)
}

// undirectedAdjacency builds a bidirectional neighbor snapshot from the edge
// set, erasing orientation. Indexed by vertex; retired slots stay empty.
func undirectedAdjacency(g *core.Graph) [][]int {
	adj := make([][]int, g.Order())
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		if e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// sweep runs a FIFO flood over adj from root, marking visited, and returns
// the number of vertices it covered.
func sweep(adj [][]int, root int, visited []bool) int {
	q := queue.New[int](len(adj))
	visited[root] = true
	q.Enqueue(root)
	covered := 1
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		for _, nb := range adj[v] {
			if !visited[nb] {
				visited[nb] = true
				covered++
				q.Enqueue(nb)
			}
		}
	}

	return covered
}

// reach floods g from root following edge orientation and returns the number
// of vertices covered.
func reach(g *core.Graph, root int) int {
	visited := make([]bool, g.Order())
	q := queue.New[int](g.VertexCount())
	visited[root] = true
	q.Enqueue(root)
	covered := 1
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		nbs, _ := g.Neighbors(v)
		for _, nb := range nbs {
			if !visited[nb] {
				visited[nb] = true
				covered++
				q.Enqueue(nb)
			}
		}
	}

	return covered
}
