// Package core: the capability contract shared by both representations.
// Every algorithmic layer above (mutation, snapshots, traversal consumers)
// talks to this interface and never branches on the concrete layout.

package core

// store is the internal representation contract. Implementations own all
// edge records; indices handed in are already validated by the Graph layer.
//
// setEdge reports the before/after existence pair so the Graph layer can
// maintain edgeCount uniformly — the matrix form may "store" an absent edge
// when the weight equals its 0 sentinel, and only the store knows that.
type store interface {
	// grow extends the index space to hold n vertices.
	grow(n int)

	// weight reports the stored weight of (u,v) and whether the edge exists.
	weight(u, v int) (float64, bool)

	// setEdge inserts or overwrites (u,v) with weight w.
	// Returns existence before and after the write.
	setEdge(u, v int, w float64) (existed, present bool)

	// removeEdge deletes (u,v), reporting whether it existed.
	removeEdge(u, v int) bool

	// neighbors returns the targets of all stored pairs (u, *) in ascending
	// order, or nil when there are none. The slice is owned by the caller.
	neighbors(u int) []int

	// outDegree counts stored pairs (u, *).
	outDegree(u int) int

	// clone returns an independent deep copy.
	clone() store
}
