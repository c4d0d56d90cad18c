// Package dualgraph is an in-memory graph engine with two interchangeable
// storage layouts — adjacency list and dense adjacency matrix — behind one
// contract.
//
// 🚀 What is dualgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: index-addressed vertices, weighted edges, safe mutation
//		• Dual representation: list or matrix backing, chosen at construction
//		• Traversals: BFS (FIFO-driven) and DFS (explicit stack, no recursion)
//		• Structure: connectivity, components, trees, bipartiteness
//		• Order: cycle detection and topological sorting
//		• Decomposition: Kosaraju strongly connected components
//
// ✨ Why choose dualgraph?
//
//   - One contract, two layouts – algorithms never branch on representation
//   - Explicit errors – sentinel values matched with errors.Is, never panics
//   - Extensible – hooks (OnVisit, OnEnqueue…) on every traversal
//   - Bounded – iterative DFS keeps memory O(V) on any input
//
// Everything is organized under focused subpackages:
//
//	core/         — Graph, Edge, the dual store, mutation and snapshots
//	queue/        — the FIFO work-queue collaborator behind BFS
//	bfs/          — breadth-first traversal
//	dfs/          — depth-first traversal, cycles, topological sort
//	connectivity/ — reachability, components, trees, bipartiteness
//	scc/          — Kosaraju decomposition
//
// Quick ASCII example:
//
//	    0──▶1
//	    ▲   │
//	    └──2◀┘   2──▶3
//
//	a directed 4-vertex graph with one cycle (0→1→2→0) and a tail edge 2→3.
//
//	go get github.com/katalvlaran/dualgraph
package dualgraph
