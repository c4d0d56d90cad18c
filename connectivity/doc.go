// Package connectivity answers structural reachability questions about a
// core.Graph: whole-graph connectivity, weak component decomposition, the
// tree predicate, and bipartiteness.
//
// All queries here treat edges as traversable in both directions. For a
// directed graph that means WEAK connectivity: orientation is ignored and the
// question becomes "is the underlying undirected graph connected?". The one
// exception is IsStronglyConnected, which honors orientation by running a
// reachability sweep on the graph and on its transpose.
//
// Queries are conservative: a nil graph or an empty index space yields false
// (IsBipartite is the vacuous exception). Retired vertex slots are invisible
// to every sweep and receive -1 in id and color slices.
//
// Complexity: every predicate is O(V+E) time and O(V+E) memory (the shared
// bidirectional adjacency snapshot dominates).
package connectivity
