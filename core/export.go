// Package core: dense export for numeric consumers.

package core

import "gonum.org/v1/gonum/mat"

// Dense exports the weight table as a gonum *mat.Dense of size
// Order()×Order(). Absent edges and retired slots hold 0 — the same sentinel
// the matrix representation uses internally, so the export is lossless for
// matrix-backed graphs and loses only explicit zero-weight edges of weighted
// list-backed ones (see the package limitation note).
// Returns nil for a graph with an empty index space.
// Complexity: O(V + E) list, O(V²) matrix.
func (g *Graph) Dense() *mat.Dense {
	if g.order == 0 {
		return nil
	}
	d := mat.NewDense(g.order, g.order, nil)
	for u := 0; u < g.order; u++ {
		if g.removed[u] {
			continue
		}
		for _, v := range g.st.neighbors(u) {
			w, _ := g.st.weight(u, v)
			d.Set(u, v, w)
		}
	}

	return d
}
