// Package core: dense adjacency-matrix representation.
// One weight cell per ordered vertex pair; weight 0 is the "no edge"
// sentinel, so a weighted zero edge cannot be represented here (see doc.go).

package core

// matrixStore keeps a flat row-major weight block. Rows are laid out with a
// stride of the allocated capacity so that growth within capacity is free;
// growth past capacity doubles the stride and copies the full N×N block.
type matrixStore struct {
	n      int // logical index space
	stride int // allocated row width
	cells  []float64
}

// newMatrixStore allocates an n×n block.
func newMatrixStore(n int) *matrixStore {
	return &matrixStore{n: n, stride: n, cells: make([]float64, n*n)}
}

// at maps (u,v) onto the flat block.
func (s *matrixStore) at(u, v int) int {
	return u*s.stride + v
}

// grow extends the index space to n vertices. Within the allocated stride it
// only bumps the logical size; past it, the stride doubles and the old block
// is copied row by row. Complexity: O(N²) on reallocation.
func (s *matrixStore) grow(n int) {
	if n <= s.n {
		return
	}
	if n <= s.stride {
		s.n = n
		return
	}
	next := 2 * s.stride
	if next < n {
		next = n
	}
	cells := make([]float64, next*next)
	for u := 0; u < s.n; u++ {
		copy(cells[u*next:u*next+s.n], s.cells[u*s.stride:u*s.stride+s.n])
	}
	s.cells = cells
	s.stride = next
	s.n = n
}

// weight reads one cell; the 0 sentinel means absence. Complexity: O(1).
func (s *matrixStore) weight(u, v int) (float64, bool) {
	w := s.cells[s.at(u, v)]

	return w, w != 0
}

// setEdge writes one cell. Writing the 0 sentinel erases the edge, which is
// exactly the documented matrix-form limitation.
func (s *matrixStore) setEdge(u, v int, w float64) (existed, present bool) {
	idx := s.at(u, v)
	existed = s.cells[idx] != 0
	s.cells[idx] = w

	return existed, w != 0
}

// removeEdge zeroes one cell.
func (s *matrixStore) removeEdge(u, v int) bool {
	idx := s.at(u, v)
	if s.cells[idx] == 0 {
		return false
	}
	s.cells[idx] = 0

	return true
}

// neighbors scans u's row; ascending order falls out of the layout.
// Complexity: O(N).
func (s *matrixStore) neighbors(u int) []int {
	var out []int
	row := s.cells[u*s.stride : u*s.stride+s.n]
	for v, w := range row {
		if w != 0 {
			out = append(out, v)
		}
	}

	return out
}

// outDegree counts non-sentinel cells in u's row. Complexity: O(N).
func (s *matrixStore) outDegree(u int) int {
	deg := 0
	row := s.cells[u*s.stride : u*s.stride+s.n]
	for _, w := range row {
		if w != 0 {
			deg++
		}
	}

	return deg
}

// clone deep-copies the block, compacting to the logical size.
func (s *matrixStore) clone() store {
	cp := newMatrixStore(s.n)
	for u := 0; u < s.n; u++ {
		copy(cp.cells[u*cp.stride:u*cp.stride+s.n], s.cells[u*s.stride:u*s.stride+s.n])
	}

	return cp
}
