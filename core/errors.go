// Package core: sentinel error set.
// All mutation and lookup paths return these sentinels; callers match them
// via errors.Is. Context may be added with fmt.Errorf("...: %w", ErrX) at
// outer boundaries without breaking the match.

package core

import "errors"

var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, Order()).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates an operation referenced a retired vertex slot.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
