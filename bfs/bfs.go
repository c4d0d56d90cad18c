package bfs

import (
	"fmt"

	"github.com/katalvlaran/dualgraph/core"
	"github.com/katalvlaran/dualgraph/queue"
)

// item pairs a vertex with its BFS depth.
type item struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	q     *queue.Queue[item]
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation, or
// any error returned by the OnVisit hook.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// Validate start vertex.
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		q:     queue.New[item](n),
		res:   newResult(n),
	}

	// Seed the queue with the start vertex.
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// newResult allocates a Result sized to the index space with sentinel fills.
func newResult(n int) *Result {
	res := &Result{
		Order:   make([]int, 0, n),
		Dist:    make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := range res.Dist {
		res.Dist[i] = -1
		res.Parent[i] = -1
	}

	return res
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the work queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Visited[v] = true
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.q.Enqueue(item{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.q.Len() > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		it, _ := w.q.Dequeue()
		w.opts.OnDequeue(it.v, it.depth)
		if err := w.visit(it); err != nil {
			return err
		}
		w.enqueueNeighbors(it)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(it item) error {
	w.res.Order = append(w.res.Order, it.v)
	if err := w.opts.OnVisit(it.v, it.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", it.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor of it.v.
func (w *walker) enqueueNeighbors(it item) {
	// Endpoint is live by construction, so the lookup cannot fail.
	nbs, _ := w.graph.Neighbors(it.v)
	next := it.depth + 1
	for _, nb := range nbs {
		if !w.opts.FilterNeighbor(it.v, nb) {
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if !w.res.Visited[nb] {
			w.enqueue(nb, next, it.v)
		}
	}
}
