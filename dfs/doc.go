// Package dfs implements depth-first search and the DFS-based analyses on a
// core.Graph: cycle detection (directed and undirected) and topological
// sorting.
//
// Every routine here runs on an explicit work stack of (vertex,
// neighbor-cursor) frames instead of native recursion, so memory stays O(V)
// on the heap no matter how deep the graph is — the longest simple path
// never touches the goroutine stack. Pre-order and post-order hook semantics
// are preserved: OnVisit fires when a vertex is first marked visited, OnExit
// after all of its descendants are finished.
//
// Cycle detection uses the classical three-color marking for directed graphs
// (a back-edge into a Gray vertex is a cycle) and parent-exclusion for
// undirected graphs (an edge to a visited non-parent is a cycle). Both sweep
// all components. Topological sort records DFS finish order onto a stack and
// reads it back reversed; it rejects undirected inputs with ErrNotDirected
// and cyclic inputs with ErrCycleDetected.
package dfs
