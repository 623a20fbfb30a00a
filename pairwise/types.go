// Package pairwise defines the Graph capability set and shared types
// for the pairwise-graph backings of github.com/katalvlaran/crfgrid.
package pairwise

import "gonum.org/v1/gonum/mat"

// Graph is the pairwise-graph engine consumed by the layered builder.
// Implementations are not safe for concurrent mutation; writes to
// distinct nodes or edges may run in parallel once the topology is
// fixed (no structural calls in flight).
type Graph interface {
	// Reset removes all nodes, edges and potentials.
	Reset()

	// AddNode appends a node with nStates labels and returns its id.
	// Ids are dense and increase by one per call, starting at 0.
	// nStates == 0 defers the label count to the first SetNode.
	AddNode(nStates int) (int, error)

	// AddEdge connects nodes u and v with the given group id.
	// The (u, v) order fixes the edge's potential orientation:
	// rows of the potential matrix index u's labels, columns v's.
	AddEdge(u, v int, group byte) error

	// SetNode writes a copy of pot as the node's potential vector.
	// The vector length fixes the node's label count if it was deferred.
	SetNode(id int, pot []float64) error

	// Node returns a copy of the node's potential vector (nil if unset).
	Node(id int) ([]float64, error)

	// NodeStates returns the node's label count, 0 while deferred.
	NodeStates(id int) (int, error)

	// SetEdge writes a copy of pot on the edge between u and v.
	// Passing the endpoints in reverse of the AddEdge order stores the
	// transpose, so both orders address the same logical potential.
	SetEdge(u, v int, pot *mat.Dense) error

	// Edge returns a copy of the edge potential oriented for (u, v),
	// or nil if the potential has not been assigned yet.
	Edge(u, v int) (*mat.Dense, error)

	// SetEdgeGroup reassigns the edge between u and v to group.
	SetEdgeGroup(u, v int, group byte) error

	// EdgeGroup returns the group id of the edge between u and v.
	EdgeGroup(u, v int) (byte, error)

	// SetEdges writes a copy of the square potential pot on every edge
	// matched by filter. Validation runs over all matched edges before
	// the first write, so a failing call mutates nothing.
	SetEdges(filter GroupFilter, pot *mat.Dense) error

	// NumNodes returns the number of nodes.
	NumNodes() int

	// NumEdges returns the number of edges.
	NumEdges() int
}

// GroupFilter selects which edge groups a bulk assignment touches.
// The zero value matches every group; use Group to narrow it.
type GroupFilter struct {
	specific bool
	group    byte
}

// AllGroups returns a filter matching every edge regardless of group.
func AllGroups() GroupFilter { return GroupFilter{} }

// Group returns a filter matching only edges with group id g.
func Group(g byte) GroupFilter { return GroupFilter{specific: true, group: g} }

// Matches reports whether an edge with group id g passes the filter.
func (f GroupFilter) Matches(g byte) bool { return !f.specific || f.group == g }

// node is the shared per-node record of both backings.
type node struct {
	states int       // label count; 0 while deferred
	pot    []float64 // potential vector, nil until SetNode
}

// setNodePot validates and applies a potential vector to a node record.
func (n *node) setNodePot(pot []float64) error {
	if len(pot) == 0 {
		return ErrNilPotential
	}
	if n.states != 0 && n.states != len(pot) {
		return ErrPotentialShape
	}
	n.states = len(pot)
	n.pot = append([]float64(nil), pot...)

	return nil
}

// checkEdgePot validates pot against the (possibly deferred) label
// counts of the two endpoint records, rows indexing u, columns v.
func checkEdgePot(u, v *node, pot *mat.Dense) error {
	if pot == nil {
		return ErrNilPotential
	}
	r, c := pot.Dims()
	if (u.states != 0 && u.states != r) || (v.states != 0 && v.states != c) {
		return ErrPotentialShape
	}

	return nil
}

// transposed returns a dense copy of potᵀ.
func transposed(pot *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(pot.T())
}
