// Package core: Graph, Edge, Rep, Option and the NewGraph constructor.

package core

// defaultWeight is stored for every edge of an unweighted graph.
const defaultWeight = 1.0

// Rep selects the backing representation of a Graph.
type Rep int

const (
	// RepList backs the graph with per-vertex adjacency record slices.
	RepList Rep = iota

	// RepMatrix backs the graph with a dense |V|×|V| weight table.
	RepMatrix
)

// String returns the canonical name of the representation.
func (r Rep) String() string {
	if r == RepMatrix {
		return "adjacency-matrix"
	}

	return "adjacency-list"
}

// Edge is an owned snapshot of one stored connection.
// For undirected graphs Edges() reports each connection once with From <= To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge weight; 1.0 on unweighted graphs.
	Weight float64
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected sets the orientation of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows caller-supplied edge weights.
// Without it every edge is stored with weight 1.0.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithMatrix selects the dense adjacency-matrix representation.
func WithMatrix() Option {
	return func(g *Graph) { g.rep = RepMatrix }
}

// WithVertices pre-creates n vertices (indices 0..n-1).
// Non-positive n is ignored.
func WithVertices(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.initial = n
		}
	}
}

// Graph is the aggregate root: orientation, representation and weighted flag
// fixed at construction, a logical index space that only grows, and an edge
// catalog maintained by the mutation layer.
//
// Invariants:
//   - edgeCount equals the number of distinct stored pairs with non-absent
//     weight (ordered pairs for directed, unordered for undirected);
//   - every undirected pair (u,v) has a mirrored (v,u) entry of equal weight;
//   - removed[v] implies no stored pair touches v.
type Graph struct {
	directed bool
	weighted bool
	rep      Rep
	initial  int // construction-time vertex count, consumed by NewGraph

	st        store  // representation-specific backing
	order     int    // allocated index space, retired slots included
	live      int    // number of non-retired vertices
	removed   []bool // removed[v]: slot v is retired
	edgeCount int
}

// NewGraph creates a Graph with the given options.
// Defaults: undirected, unweighted, adjacency-list backed, zero vertices.
// Complexity: O(n) for n pre-created vertices (O(n²) cells for RepMatrix).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	if g.rep == RepMatrix {
		g.st = newMatrixStore(g.initial)
	} else {
		g.st = newListStore(g.initial)
	}
	g.order = g.initial
	g.live = g.initial
	g.removed = make([]bool, g.initial)

	return g
}

// Directed reports the orientation fixed at construction.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether caller-supplied weights are kept.
// If false, AddEdge stores weight 1.0 regardless of the requested value.
func (g *Graph) Weighted() bool { return g.weighted }

// Rep reports the representation kind fixed at construction.
func (g *Graph) Rep() Rep { return g.rep }

// Order returns the size of the allocated index space, retired slots included.
func (g *Graph) Order() int { return g.order }

// VertexCount returns the number of live (non-retired) vertices.
func (g *Graph) VertexCount() int { return g.live }

// EdgeCount returns the number of stored edges: ordered pairs for directed
// graphs, unordered pairs for undirected graphs.
func (g *Graph) EdgeCount() int { return g.edgeCount }
