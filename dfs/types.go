// Package dfs: visitation states, sentinel errors, options and the Result
// snapshot.

package dfs

import (
	"context"
	"errors"
)

// Visitation state of a vertex during a three-color pass.
const (
	White = iota // not visited yet
	Gray         // on the current work stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates the start index is out of range or refers
	// to a retired vertex slot.
	ErrVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected indicates TopologicalSort was invoked on an undirected
	// graph.
	ErrNotDirected = errors.New("dfs: directed graph required")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex are
	// finished (post-order), before it is appended to PostOrder.
	// Returning an error aborts traversal.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted per neighbor before descent.
	// Return false to skip that neighbor.
	FilterNeighbor func(v int) bool

	// FullTraversal, if true, restarts DFS from every unvisited live vertex
	// in ascending order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a Background context, no hooks, no
// depth limit, no filtering, and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// A nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(v int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all live vertices.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal. The per-vertex
// slices are sized to the graph's index space; -1 marks "unreached" in Depth
// and "no parent" in Parent.
type Result struct {
	// PreOrder records vertices in discovery sequence.
	PreOrder []int

	// PostOrder records vertices in finish sequence.
	PostOrder []int

	// Depth maps each vertex to its distance in edges from its tree root,
	// -1 if unreached.
	Depth []int

	// Parent maps each vertex to the vertex it was discovered from,
	// -1 for roots and unreached vertices.
	Parent []int

	// Visited flags the vertices reached during the traversal.
	Visited []bool
}
