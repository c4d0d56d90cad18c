// Package core: adjacency-list representation.
// One record per stored direction; an undirected edge therefore occupies two
// records (one in each endpoint's chain), mirrored by the Graph layer.

package core

import "sort"

// listRecord is one stored half-edge in a vertex's chain.
type listRecord struct {
	to     int
	weight float64
}

// listStore keeps a record slice per vertex. Lookups are O(deg), growth
// resizes only the outer index array (amortized doubling), and absence of an
// edge is absence of a record — a genuine zero-weight edge is representable.
type listStore struct {
	adj [][]listRecord
}

// newListStore allocates chains for n vertices.
func newListStore(n int) *listStore {
	return &listStore{adj: make([][]listRecord, n)}
}

// grow extends the index array to n entries, doubling capacity when exhausted.
// Complexity: amortized O(1) per added vertex; existing chains are reused.
func (s *listStore) grow(n int) {
	if n <= len(s.adj) {
		return
	}
	if n <= cap(s.adj) {
		s.adj = s.adj[:n]
		return
	}
	next := 2 * cap(s.adj)
	if next < n {
		next = n
	}
	grown := make([][]listRecord, n, next)
	copy(grown, s.adj)
	s.adj = grown
}

// weight scans u's chain for v. Complexity: O(deg(u)).
func (s *listStore) weight(u, v int) (float64, bool) {
	for _, rec := range s.adj[u] {
		if rec.to == v {
			return rec.weight, true
		}
	}

	return 0, false
}

// setEdge overwrites an existing record or appends a new one — the scan is
// what keeps parallel edges out of the list form.
func (s *listStore) setEdge(u, v int, w float64) (existed, present bool) {
	for i := range s.adj[u] {
		if s.adj[u][i].to == v {
			s.adj[u][i].weight = w
			return true, true
		}
	}
	s.adj[u] = append(s.adj[u], listRecord{to: v, weight: w})

	return false, true
}

// removeEdge splices v out of u's chain, preserving record order.
func (s *listStore) removeEdge(u, v int) bool {
	chain := s.adj[u]
	for i := range chain {
		if chain[i].to == v {
			s.adj[u] = append(chain[:i], chain[i+1:]...)
			return true
		}
	}

	return false
}

// neighbors snapshots u's targets in ascending order.
// Complexity: O(deg log deg) for the deterministic sort.
func (s *listStore) neighbors(u int) []int {
	if len(s.adj[u]) == 0 {
		return nil
	}
	out := make([]int, len(s.adj[u]))
	for i, rec := range s.adj[u] {
		out[i] = rec.to
	}
	sort.Ints(out)

	return out
}

// outDegree is the chain length. Complexity: O(1).
func (s *listStore) outDegree(u int) int {
	return len(s.adj[u])
}

// clone deep-copies every chain.
func (s *listStore) clone() store {
	cp := &listStore{adj: make([][]listRecord, len(s.adj))}
	for u, chain := range s.adj {
		if len(chain) == 0 {
			continue
		}
		cp.adj[u] = append([]listRecord(nil), chain...)
	}

	return cp
}
