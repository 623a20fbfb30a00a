package pairwise

import "gonum.org/v1/gonum/mat"

// listEdge is the shared per-edge record of the List backing; both
// endpoints' adjacency maps point at the same record.
type listEdge struct {
	u, v  int
	group byte
	pot   *mat.Dense
}

// List is an adjacency-list pairwise graph: each node keeps a map from
// neighbor id to the shared edge record. The sparse counterpart to
// Dense, suited to irregular or incrementally grown topologies.
//
// Memory: O(V + E) records plus the stored potentials.
type List struct {
	nodes  []node
	adj    []map[int]*listEdge
	nEdges int
}

// interface compliance check
var _ Graph = (*List)(nil)

// NewList returns an empty List pairwise graph.
func NewList() *List {
	return &List{}
}

// Reset removes all nodes, edges and potentials.
func (g *List) Reset() {
	g.nodes = nil
	g.adj = nil
	g.nEdges = 0
}

// AddNode appends a node with nStates labels and returns its id.
// Complexity: O(1) amortized.
func (g *List) AddNode(nStates int) (int, error) {
	if nStates < 0 {
		return 0, ErrBadStates
	}
	g.nodes = append(g.nodes, node{states: nStates})
	g.adj = append(g.adj, nil)

	return len(g.nodes) - 1, nil
}

// AddEdge connects u and v with the given group id.
// Complexity: O(1) expected.
func (g *List) AddEdge(u, v int, group byte) error {
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return ErrNodeRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adj[u][v]; ok {
		return ErrDuplicateEdge
	}
	e := &listEdge{u: u, v: v, group: group}
	if g.adj[u] == nil {
		g.adj[u] = make(map[int]*listEdge)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]*listEdge)
	}
	g.adj[u][v] = e
	g.adj[v][u] = e
	g.nEdges++

	return nil
}

// SetNode writes a copy of pot as the node's potential vector.
func (g *List) SetNode(id int, pot []float64) error {
	if id < 0 || id >= len(g.nodes) {
		return ErrNodeRange
	}

	return g.nodes[id].setNodePot(pot)
}

// Node returns a copy of the node's potential vector (nil if unset).
func (g *List) Node(id int) ([]float64, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, ErrNodeRange
	}
	if g.nodes[id].pot == nil {
		return nil, nil
	}

	return append([]float64(nil), g.nodes[id].pot...), nil
}

// NodeStates returns the node's label count, 0 while deferred.
func (g *List) NodeStates(id int) (int, error) {
	if id < 0 || id >= len(g.nodes) {
		return 0, ErrNodeRange
	}

	return g.nodes[id].states, nil
}

// edgeAt resolves the shared edge record for the (u, v) pair.
func (g *List) edgeAt(u, v int) (*listEdge, error) {
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return nil, ErrNodeRange
	}
	e, ok := g.adj[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// SetEdge writes a copy of pot on the edge between u and v, storing
// the transpose when the endpoints arrive in reverse AddEdge order.
func (g *List) SetEdge(u, v int, pot *mat.Dense) error {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return err
	}
	if e.u == v {
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
func (g *List) Edge(u, v int) (*mat.Dense, error) {
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
func (g *List) SetEdgeGroup(u, v int, group byte) error {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return err
	}
	e.group = group

	return nil
}

// EdgeGroup returns the group id of the edge between u and v.
func (g *List) EdgeGroup(u, v int) (byte, error) {
	e, err := g.edgeAt(u, v)
	if err != nil {
		return 0, err
	}

	return e.group, nil
}

// forEachEdge visits every edge record exactly once.
func (g *List) forEachEdge(fn func(e *listEdge) error) error {
	for u := range g.adj {
		for v, e := range g.adj[u] {
			if e.u != u || e.v != v {
				continue // visit each shared record from its u side only
			}
			if err := fn(e); err != nil {
				return err
			}
		}
	}

	return nil
}

// SetEdges writes a copy of the square potential pot on every edge
// matched by filter. All matched edges are validated first, so a
// failing call leaves the graph untouched.
// Complexity: O(V + E).
func (g *List) SetEdges(filter GroupFilter, pot *mat.Dense) error {
	if pot == nil {
		return ErrNilPotential
	}
	r, c := pot.Dims()
	if r != c {
		return ErrPotentialShape
	}
	err := g.forEachEdge(func(e *listEdge) error {
		if !filter.Matches(e.group) {
			return nil
		}

		return checkEdgePot(&g.nodes[e.u], &g.nodes[e.v], pot)
	})
	if err != nil {
		return err
	}

	return g.forEachEdge(func(e *listEdge) error {
		if filter.Matches(e.group) {
			e.pot = mat.DenseCopyOf(pot)
		}

		return nil
	})
}

// NumNodes returns the number of nodes.
func (g *List) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges.
func (g *List) NumEdges() int { return g.nEdges }
