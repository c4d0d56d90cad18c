// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex, driven by
// the FIFO work-queue collaborator from package queue. Visited status is
// monotonic within one call — each reachable vertex is marked once, and the
// OnVisit hook fires exactly once per vertex, in dequeue order.
//
// Optional hooks, depth limiting, neighbor filtering, and context
// cancellation are configured through functional Options.
package bfs
