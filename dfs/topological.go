// Package dfs: topological sorting of directed acyclic graphs.
//
// TopologicalSort computes a linear ordering of the live vertices such that
// for every edge u→v, u appears before v. The DFS finish order is pushed
// onto a stack and read back reversed. Undirected graphs are rejected with
// ErrNotDirected; a cycle surfaces as ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (work stack, state array, output)

package dfs

import (
	"context"

	"github.com/katalvlaran/dualgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes a topological ordering of all live vertices in g.
// Returns ErrGraphNil for a nil graph, ErrNotDirected for an undirected one,
// ErrCycleDetected when a back-edge is found, or the context error on
// cancellation.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	state := make([]int8, g.Order())
	order := make([]int, 0, g.VertexCount())
	var stack []cycleFrame

	for _, root := range g.Vertices() {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], cycleFrame{v: root})

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

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
					return nil, ErrCycleDetected
				case White:
					state[nb] = Gray
					stack = append(stack, cycleFrame{v: nb})
					descended = true
				}
				if descended {
					break
				}
			}
			if descended {
				continue
			}

			// Finished: record and pop.
			state[f.v] = Black
			order = append(order, f.v)
			stack = stack[:top]
		}
	}

	// Reverse the finish order to produce the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
