// Package core: mutation layer.
//
// Every operation validates first and mutates second, so a failed call leaves
// the Graph untouched. For undirected graphs the mirrored entry is written or
// erased inside the same call — callers never observe a half-updated pair.

package core

// AddVertex appends one vertex, growing storage as needed, and returns the
// new index. Complexity: amortized O(1) for the list form, amortized O(N) for
// the matrix form (O(N²) on a capacity doubling).
func (g *Graph) AddVertex() int {
	v := g.order
	g.order++
	g.live++
	g.removed = append(g.removed, false)
	g.st.grow(g.order)

	return v
}

// HasVertex reports whether v is a live vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.order && !g.removed[v]
}

// checkVertex validates a caller-supplied index against the index space and
// the retired set.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.order {
		return ErrIndexOutOfRange
	}
	if g.removed[v] {
		return ErrVertexNotFound
	}

	return nil
}

// RemoveVertex deletes every edge incident to v (out-edges, in-edges, and
// mirrors) and retires the slot. The index space is not compacted: remaining
// vertices keep their indices and v is never handed out again.
// Returns ErrIndexOutOfRange or ErrVertexNotFound.
// Complexity: O(deg(v)·deg) for the undirected list form, O(V·deg) for
// directed list (in-edges require a full chain scan), O(V) for matrix.
func (g *Graph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}

	// Out-edges; for undirected graphs the mirror makes this every incident edge.
	for _, nb := range g.st.neighbors(v) {
		g.deleteEdge(v, nb)
	}
	// In-edges remain only on directed graphs.
	if g.directed {
		for u := 0; u < g.order; u++ {
			if u == v || g.removed[u] {
				continue
			}
			if _, ok := g.st.weight(u, v); ok {
				g.deleteEdge(u, v)
			}
		}
	}

	g.removed[v] = true
	g.live--

	return nil
}

// AddEdge inserts or overwrites the edge (src, dst) with weight w.
// Unweighted graphs force w to 1.0. Undirected graphs write the mirrored
// entry in the same call. A repeated AddEdge on the same ordered pair
// overwrites — no parallel edges in either representation. Self-loops are
// stored once, unmirrored.
// Returns ErrIndexOutOfRange or ErrVertexNotFound on a bad endpoint.
func (g *Graph) AddEdge(src, dst int, w float64) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dst); err != nil {
		return err
	}
	if !g.weighted {
		w = defaultWeight
	}

	existed, present := g.st.setEdge(src, dst, w)
	if !g.directed && src != dst {
		g.st.setEdge(dst, src, w)
	}
	switch {
	case present && !existed:
		g.edgeCount++
	case existed && !present:
		// Matrix form only: the 0 sentinel erased the edge.
		g.edgeCount--
	}

	return nil
}

// RemoveEdge deletes (src, dst) and its mirror on undirected graphs.
// Returns ErrEdgeNotFound if the edge is absent, ErrIndexOutOfRange or
// ErrVertexNotFound on a bad endpoint.
func (g *Graph) RemoveEdge(src, dst int) error {
	if err := g.checkVertex(src); err != nil {
		return err
	}
	if err := g.checkVertex(dst); err != nil {
		return err
	}
	if _, ok := g.st.weight(src, dst); !ok {
		return ErrEdgeNotFound
	}
	g.deleteEdge(src, dst)

	return nil
}

// deleteEdge removes (u,v) plus its undirected mirror and maintains
// edgeCount. Endpoints are assumed valid.
func (g *Graph) deleteEdge(u, v int) {
	if g.st.removeEdge(u, v) {
		g.edgeCount--
	}
	if !g.directed && u != v {
		g.st.removeEdge(v, u)
	}
}

// HasEdge reports whether the edge (u,v) exists. Conservative: answers false
// on out-of-range or retired indices rather than reporting an error.
func (g *Graph) HasEdge(u, v int) bool {
	if g.checkVertex(u) != nil || g.checkVertex(v) != nil {
		return false
	}
	_, ok := g.st.weight(u, v)

	return ok
}

// EdgeWeight returns the stored weight of (u,v).
// Returns ErrEdgeNotFound when the edge is absent.
func (g *Graph) EdgeWeight(u, v int) (float64, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	w, ok := g.st.weight(u, v)
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// OutDegree counts stored pairs originating at v. For undirected graphs this
// is the plain degree (self-loops count once).
// Complexity: O(1) list, O(V) matrix.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.st.outDegree(v), nil
}

// InDegree counts stored pairs terminating at v. The list form keeps no
// reverse index, so a directed list-backed graph pays a full scan of all
// adjacency chains here. Undirected graphs answer OutDegree (mirror entries
// make the two identical).
func (g *Graph) InDegree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}
	if !g.directed {
		return g.st.outDegree(v), nil
	}
	deg := 0
	for u := 0; u < g.order; u++ {
		if g.removed[u] {
			continue
		}
		if _, ok := g.st.weight(u, v); ok {
			deg++
		}
	}

	return deg, nil
}

// Degree returns the total degree of v: OutDegree for undirected graphs,
// in-degree plus out-degree for directed ones.
func (g *Graph) Degree(v int) (int, error) {
	out, err := g.OutDegree(v)
	if err != nil {
		return 0, err
	}
	if !g.directed {
		return out, nil
	}
	in, err := g.InDegree(v)
	if err != nil {
		return 0, err
	}

	return in + out, nil
}
