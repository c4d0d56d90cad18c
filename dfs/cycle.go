// Package dfs: cycle detection for directed and undirected graphs.
//
// Directed graphs use three-color marking on an explicit stack: an edge into
// a Gray vertex (one still on the stack) is a back-edge, hence a cycle.
// Undirected graphs track the immediate parent instead: an edge to a visited
// vertex other than the parent closes a cycle. A mirrored edge back to the
// parent is skipped exactly once per frame — overwrite semantics guarantee
// there is at most one such record. Self-loops are cycles in both
// orientations. Every component is swept.

package dfs

import "github.com/katalvlaran/dualgraph/core"

// HasCycle reports whether g contains at least one cycle.
// A nil graph is treated as cycle-free.
func HasCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}
	if g.Directed() {
		return hasDirectedCycle(g)
	}

	return hasUndirectedCycle(g)
}

// cycleFrame is one work-stack entry for a cycle sweep.
type cycleFrame struct {
	v      int
	parent int // undirected sweeps only; -1 at roots
	next   int
	nbrs   []int
}

// hasDirectedCycle runs a three-color DFS from every White live vertex.
func hasDirectedCycle(g *core.Graph) bool {
	state := make([]int8, g.Order())
	var stack []cycleFrame

	for _, root := range g.Vertices() {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], cycleFrame{v: root})

		for len(stack) > 0 {
			top := len(stack) - 1
			f := &stack[top]
			if f.nbrs == nil {
				f.nbrs = fetchNeighbors(g, f.v)
			}

			descended := false
			for f.next < len(f.nbrs) {
				nb := f.nbrs[f.next]
				f.next++
				switch state[nb] {
				case Gray:
					// Back-edge into the active path.
					return true
				case White:
					state[nb] = Gray
					stack = append(stack, cycleFrame{v: nb})
					descended = true
				}
				if descended {
					break
				}
			}
			if !descended && f.next >= len(f.nbrs) {
				state[f.v] = Black
				stack = stack[:top]
			}
		}
	}

	return false
}

// hasUndirectedCycle runs a parent-exclusion DFS from every unvisited live
// vertex.
func hasUndirectedCycle(g *core.Graph) bool {
	visited := make([]bool, g.Order())
	var stack []cycleFrame

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack = append(stack[:0], cycleFrame{v: root, parent: -1})

		for len(stack) > 0 {
			top := len(stack) - 1
			f := &stack[top]
			if f.nbrs == nil {
				f.nbrs = fetchNeighbors(g, f.v)
			}

			descended := false
			for f.next < len(f.nbrs) {
				nb := f.nbrs[f.next]
				f.next++
				if nb == f.parent {
					// The mirror of the tree edge; at most one exists.
					f.parent = -1
					continue
				}
				if visited[nb] {
					// Visited non-parent neighbor (self-loops included).
					return true
				}
				visited[nb] = true
				stack = append(stack, cycleFrame{v: nb, parent: f.v})
				descended = true
				break
			}
			if !descended && f.next >= len(f.nbrs) {
				stack = stack[:top]
			}
		}
	}

	return false
}

// fetchNeighbors returns a non-nil ascending neighbor snapshot of a live
// vertex.
func fetchNeighbors(g *core.Graph, v int) []int {
	nbs, _ := g.Neighbors(v)
	if nbs == nil {
		nbs = []int{}
	}

	return nbs
}
