// Package core defines the central Graph and Edge types and the dual
// representation store behind them.
//
// A Graph is created with a fixed orientation (directed or undirected),
// a fixed representation (adjacency list by default, dense adjacency matrix
// via WithMatrix), and a fixed weighted flag. None of these change after
// construction. Vertices are zero-based indices handed out by AddVertex;
// removing a vertex retires its index permanently — the index space is never
// compacted or renumbered.
//
// Both representations satisfy one internal capability contract
// (existence, weight, neighbor enumeration, degree), so every algorithm in
// the sibling packages is written once and never branches on layout:
//
//   - list: one record per stored direction, O(deg) lookups, O(1) out-degree,
//     growth touches only the per-vertex index array.
//   - matrix: one weight cell per ordered pair, O(1) lookups, growth
//     reallocates and copies the full N×N block.
//
// Known limitation, preserved deliberately: the matrix form uses weight 0 as
// the "no edge" sentinel, so a weighted edge stored with weight exactly 0 is
// indistinguishable from absence there — AddEdge(u, v, 0) on a weighted
// matrix-backed graph behaves as edge removal. The list form stores the
// record explicitly and can hold a genuine zero-weight edge.
//
// Errors:
//
//	ErrIndexOutOfRange - vertex index is negative or beyond the index space.
//	ErrVertexNotFound  - vertex index refers to a retired (removed) slot.
//	ErrEdgeNotFound    - requested edge does not exist.
//
// All failures are returned, never thrown, and a failed call leaves the
// Graph exactly as it was. Boolean queries answer false on malformed input
// instead of reporting an error.
//
// The engine has no internal concurrency; concurrent mutation of one Graph
// is undefined behavior and must be serialized by the caller.
package core
