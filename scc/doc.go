// Package scc decomposes a directed core.Graph into strongly connected
// components with Kosaraju's two-pass algorithm.
//
// Pass one runs an iterative depth-first sweep over all live vertices in
// ascending order, recording the finish sequence. Pass two sweeps the
// transposed graph in reverse finish order; every fresh start opens a new
// component. Both passes run on explicit work stacks, so recursion depth is
// never a concern.
//
// Component ids are dense, assigned from 0 in discovery order of the second
// pass. Retired vertex slots receive id -1. An undirected graph is accepted:
// its mirrored edges make every weak component strongly connected, so the
// result coincides with connectivity.Components.
//
// Complexity: O(V+E) time, O(V+E) memory (the transpose dominates).
package scc
