package dfs

import (
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
)

// frame is one entry of the explicit work stack: a vertex plus the cursor
// into its (lazily fetched) neighbor snapshot.
type frame struct {
	v    int
	next int
	nbrs []int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers all disconnected components in ascending vertex order; otherwise it
// starts only from start.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input, the context
// error on cancellation, or any error returned by a hook.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	n := g.Order()
	res := &Result{
		PreOrder:  make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Visited:   make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &walker{graph: g, opts: o, res: res}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if !res.Visited[v] {
				if err := w.run(v); err != nil {
					return res, err
				}
			}
		}
	} else {
		if err := w.run(start); err != nil {
			return res, err
		}
	}

	return res, nil
}

// run drives one DFS tree rooted at root on the explicit frame stack.
func (w *walker) run(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}
	w.stack = append(w.stack[:0], frame{v: root})

	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		f := &w.stack[top]
		if f.nbrs == nil {
			f.nbrs = w.neighbors(f.v)
		}

		descended := false
		for f.next < len(f.nbrs) {
			nb := f.nbrs[f.next]
			f.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				continue
			}
			if w.res.Visited[nb] {
				continue
			}
			depth := w.res.Depth[f.v] + 1
			if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
				continue
			}

			if err := w.discover(nb, f.v, depth); err != nil {
				return err
			}
			w.stack = append(w.stack, frame{v: nb})
			descended = true
			break
		}
		if descended {
			continue
		}

		// Frame exhausted: post-order.
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(f.v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", f.v, err)
			}
		}
		w.res.PostOrder = append(w.res.PostOrder, f.v)
		w.stack = w.stack[:top]
	}

	return nil
}

// discover marks v visited, records tree metadata, and fires the pre-order
// hook.
func (w *walker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.PreOrder = append(w.res.PreOrder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return nil
}

// neighbors fetches the ascending neighbor snapshot of v. The vertex is live
// by construction, so the lookup cannot fail.
func (w *walker) neighbors(v int) []int {
	nbs, _ := w.graph.Neighbors(v)
	if nbs == nil {
		nbs = []int{} // non-nil marks the fetch as done
	}

	return nbs
}
