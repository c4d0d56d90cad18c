// Package core: snapshot queries. Every slice returned here is owned by the
// caller; nil stands for "no results" and is not an error.

package core

// Vertices returns the live vertex indices in ascending order.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	var out []int
	for v := 0; v < g.order; v++ {
		if !g.removed[v] {
			out = append(out, v)
		}
	}

	return out
}

// Neighbors returns the targets of all edges originating at v, ascending.
// For undirected graphs mirror entries make this every adjacent vertex.
// Returns ErrIndexOutOfRange or ErrVertexNotFound; nil slice when v has no
// neighbors. Complexity: O(deg log deg) list, O(V) matrix.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.st.neighbors(v), nil
}

// Edges returns an owned snapshot of the edge catalog, ordered by (From, To).
// Directed graphs report every ordered pair; undirected graphs report each
// unordered pair once with From <= To. Complexity: O(V + E) list,
// O(V²) matrix.
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.order; u++ {
		if g.removed[u] {
			continue
		}
		for _, v := range g.st.neighbors(u) {
			if !g.directed && v < u {
				continue // mirror entry, already reported as (v, u)
			}
			w, _ := g.st.weight(u, v)
			out = append(out, Edge{From: u, To: v, Weight: w})
		}
	}

	return out
}
