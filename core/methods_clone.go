// Package core: derived graphs. Clone and Transpose produce independent
// aggregates sharing no storage with their source.

package core

// cloneShell copies flags, index space and the retired set, with an empty
// store of the same representation grown to the same order.
func (g *Graph) cloneShell() *Graph {
	shell := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		rep:      g.rep,
		order:    g.order,
		live:     g.live,
		removed:  append([]bool(nil), g.removed...),
	}
	if g.rep == RepMatrix {
		shell.st = newMatrixStore(g.order)
	} else {
		shell.st = newListStore(g.order)
	}

	return shell
}

// Clone returns a deep copy: same representation, flags, retired slots,
// edges and weights. Complexity: O(V + E) list, O(V²) matrix.
func (g *Graph) Clone() *Graph {
	cp := g.cloneShell()
	cp.st = g.st.clone()
	cp.edgeCount = g.edgeCount

	return cp
}

// Transpose returns an independent copy with every directed edge reversed.
// For undirected graphs the transpose is the identity, so the result equals
// Clone. Complexity: O(V + E) list, O(V²) matrix.
func (g *Graph) Transpose() *Graph {
	if !g.directed {
		return g.Clone()
	}

	tr := g.cloneShell()
	for u := 0; u < g.order; u++ {
		if g.removed[u] {
			continue
		}
		for _, v := range g.st.neighbors(u) {
			w, _ := g.st.weight(u, v)
			tr.st.setEdge(v, u, w)
		}
	}
	tr.edgeCount = g.edgeCount

	return tr
}
