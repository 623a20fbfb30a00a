package pairwise

import "gonum.org/v1/gonum/mat"

// edgeKey is the normalized (min, max) endpoint pair indexing an edge.
type edgeKey struct{ a, b int }

func keyOf(u, v int) edgeKey {
	if u < v {
		return edgeKey{u, v}
	}

	return edgeKey{v, u}
}

// denseEdge is the flat per-edge record of the Dense backing.
// u and v keep the AddEdge orientation; pot rows index u, columns v.
type denseEdge struct {
	u, v  int
	group byte
	pot   *mat.Dense
}

// Dense is a flat-slice pairwise graph: nodes and edges live in
// contiguous slices, and an edge index map resolves (u, v) lookups in
// O(1). Best suited for grid topologies whose edge set is enumerated
// once and then only rewritten.
//
// Memory: O(V + E) records plus the stored potentials.
type Dense struct {
	nodes []node
	edges []denseEdge
	index map[edgeKey]int
}

// interface compliance check
var _ Graph = (*Dense)(nil)

// NewDense returns an empty Dense pairwise graph.
func NewDense() *Dense {
	return &Dense{index: make(map[edgeKey]int)}
}

// Reset removes all nodes, edges and potentials.
// Complexity: O(1) — backing storage is released to the GC.
func (g *Dense) Reset() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[edgeKey]int)
}

// Grow preallocates capacity for the given node and edge counts.
// Useful before bulk topology construction; never required.
func (g *Dense) Grow(nNodes, nEdges int) {
	if cap(g.nodes) < nNodes {
		nodes := make([]node, len(g.nodes), nNodes)
		copy(nodes, g.nodes)
		g.nodes = nodes
	}
	if cap(g.edges) < nEdges {
		edges := make([]denseEdge, len(g.edges), nEdges)
		copy(edges, g.edges)
		g.edges = edges
	}
}

// AddNode appends a node with nStates labels and returns its id.
// Complexity: O(1) amortized.
func (g *Dense) AddNode(nStates int) (int, error) {
	if nStates < 0 {
		return 0, ErrBadStates
	}
	g.nodes = append(g.nodes, node{states: nStates})

	return len(g.nodes) - 1, nil
}

// AddEdge connects u and v with the given group id.
// Complexity: O(1) amortized.
func (g *Dense) AddEdge(u, v int, group byte) error {
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return ErrNodeRange
	}
	if u == v {
		return ErrSelfLoop
	}
	k := keyOf(u, v)
	if _, ok := g.index[k]; ok {
		return ErrDuplicateEdge
	}
	g.index[k] = len(g.edges)
	g.edges = append(g.edges, denseEdge{u: u, v: v, group: group})

	return nil
}

// SetNode writes a copy of pot as the node's potential vector.
func (g *Dense) SetNode(id int, pot []float64) error {
	if id < 0 || id >= len(g.nodes) {
		return ErrNodeRange
	}

	return g.nodes[id].setNodePot(pot)
}

// Node returns a copy of the node's potential vector (nil if unset).
func (g *Dense) Node(id int) ([]float64, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, ErrNodeRange
	}
	if g.nodes[id].pot == nil {
		return nil, nil
	}

	return append([]float64(nil), g.nodes[id].pot...), nil
}

// NodeStates returns the node's label count, 0 while deferred.
func (g *Dense) NodeStates(id int) (int, error) {
	if id < 0 || id >= len(g.nodes) {
		return 0, ErrNodeRange
	}

	return g.nodes[id].states, nil
}

// edgeAt resolves the stored edge record for the (u, v) pair.
func (g *Dense) edgeAt(u, v int) (*denseEdge, error) {
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return nil, ErrNodeRange
	}
	i, ok := g.index[keyOf(u, v)]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return &g.edges[i], nil
}

// SetEdge writes a copy of pot on the edge between u and v, storing
// the transpose when the endpoints arrive in reverse AddEdge order.
func (g *Dense) SetEdge(u, v int, pot *mat.Dense) error {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return err
	}
	if e.u == v { // caller addressed the edge back to front
		if pot == nil {
			return ErrNilPotential
		}
		pot = transposed(pot)
	}
	if err = checkEdgePot(&g.nodes[e.u], &g.nodes[e.v], pot); err != nil {
		return err
	}
	e.pot = mat.DenseCopyOf(pot)

	return nil
}

// Edge returns a copy of the edge potential oriented for (u, v).
func (g *Dense) Edge(u, v int) (*mat.Dense, error) {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return nil, err
	}
	if e.pot == nil {
		return nil, nil
	}
	if e.u == v {
		return transposed(e.pot), nil
	}

	return mat.DenseCopyOf(e.pot), nil
}

// SetEdgeGroup reassigns the edge between u and v to group.
func (g *Dense) SetEdgeGroup(u, v int, group byte) error {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return err
	}
	e.group = group

	return nil
}

// EdgeGroup returns the group id of the edge between u and v.
func (g *Dense) EdgeGroup(u, v int) (byte, error) {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return 0, err
	}

	return e.group, nil
}

// SetEdges writes a copy of the square potential pot on every edge
// matched by filter. All matched edges are validated first, so a
// failing call leaves the graph untouched.
// Complexity: O(E) plus one potential copy per matched edge.
func (g *Dense) SetEdges(filter GroupFilter, pot *mat.Dense) error {
	if pot == nil {
		return ErrNilPotential
	}
	r, c := pot.Dims()
	if r != c {
		return ErrPotentialShape
	}
	for i := range g.edges {
		e := &g.edges[i]
		if !filter.Matches(e.group) {
			continue
		}
		if err := checkEdgePot(&g.nodes[e.u], &g.nodes[e.v], pot); err != nil {
			return err
		}
	}
	for i := range g.edges {
		e := &g.edges[i]
		if filter.Matches(e.group) {
			e.pot = mat.DenseCopyOf(pot)
		}
	}

	return nil
}

// NumNodes returns the number of nodes.
func (g *Dense) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *Dense) NumEdges() int { return len(g.edges) }
