package scc

import (
	"errors"

	"github.com/katalvlaran/dualgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Components.
var ErrGraphNil = errors.New("scc: graph is nil")

// Components computes the strongly connected components of g via Kosaraju's
// algorithm. ids maps every vertex index to a dense component id from 0;
// retired slots map to -1. count is the number of components.
func Components(g *core.Graph) (ids []int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	n := g.Order()
	ids = make([]int, n)
	for i := range ids {
		ids[i] = -1
	}

	// Pass one: finish order on g, ascending live sweep.
	finish := make([]int, 0, g.VertexCount())
	visited := make([]bool, n)
	var stack []frame
	for _, root := range g.Vertices() {
		if !visited[root] {
			stack = walk(g, root, visited, stack, &finish)
		}
	}

	// Pass two: sweep the transpose in reverse finish order; each unvisited
	// start seeds one component.
	tr := g.Transpose()
	seen := make([]bool, n)
	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if seen[root] {
			continue
		}
		comp := members(tr, root, seen, stack[:0])
		for _, v := range comp {
			ids[v] = count
		}
		count++
	}

	return ids, count, nil
}

// frame is one explicit-stack entry: a vertex and the cursor into its
// lazily fetched neighbor snapshot.
type frame struct {
	v    int
	next int
	nbrs []int
}

// walk runs one iterative DFS tree rooted at root, appending vertices to
// finish as they are fully explored. The stack slice is returned for reuse.
func walk(g *core.Graph, root int, visited []bool, stack []frame, finish *[]int) []frame {
	visited[root] = true
	stack = append(stack[:0], frame{v: root})

	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]
		if f.nbrs == nil {
			f.nbrs = neighborsOf(g, f.v)
		}

		descended := false
		for f.next < len(f.nbrs) {
			nb := f.nbrs[f.next]
			f.next++
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, frame{v: nb})
				descended = true
				break
			}
		}
		if descended {
			continue
		}

		*finish = append(*finish, f.v)
		stack = stack[:top]
	}

	return stack
}

// members collects the vertices reachable from root in tr that are not yet
// assigned, using the same explicit-stack walk.
func members(tr *core.Graph, root int, seen []bool, stack []frame) []int {
	out := []int{root}
	seen[root] = true
	stack = append(stack, frame{v: root})

	for len(stack) > 0 {
		top := len(stack) - 1
		f := &stack[top]
		if f.nbrs == nil {
			f.nbrs = neighborsOf(tr, f.v)
		}

		descended := false
		for f.next < len(f.nbrs) {
			nb := f.nbrs[f.next]
			f.next++
			if !seen[nb] {
				seen[nb] = true
				out = append(out, nb)
				stack = append(stack, frame{v: nb})
				descended = true
				break
			}
		}
		if !descended && f.next >= len(f.nbrs) {
			stack = stack[:top]
		}
	}

	return out
}

// neighborsOf returns a non-nil ascending neighbor snapshot.
func neighborsOf(g *core.Graph, v int) []int {
	nbs, _ := g.Neighbors(v)
	if nbs == nil {
		nbs = []int{}
	}

	return nbs
}
