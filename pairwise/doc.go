// Package pairwise provides the generic pairwise-graph engine consumed
// by the layered CRF builder: nodes carrying potential vectors, edges
// carrying potential matrices and a small integer group id.
//
// What:
//
//   - Graph is the capability set {AddNode, AddEdge, SetNode, SetEdge,
//     SetEdgeGroup, SetEdges, Reset, ...} higher layers depend on.
//   - Dense stores nodes and edges in flat slices with a map index —
//     the right choice for grid topologies where the edge set is known
//     up front.
//   - List stores per-node adjacency maps — the sparse counterpart for
//     irregular or incrementally grown graphs.
//
// Why:
//
//   - Builders and potential-filling passes depend only on the Graph
//     interface, never on a concrete backing.
//   - Inference/decoding engines read the same structure back through
//     Node/Edge accessors.
//
// Label counts:
//
//   - AddNode(n) with n > 0 fixes the node's label count immediately;
//     AddNode(0) defers it to the first SetNode call. Deferred counts
//     let a topology be built before the label spaces of its layers
//     are known.
//
// Potentials:
//
//   - Node potentials are []float64 of the node's label count.
//   - Edge potentials are gonum mat.Dense matrices; rows correspond to
//     the edge's first endpoint, columns to its second. Setting a
//     potential through the reversed endpoint order transposes it.
//   - All potentials are deep-copied on write and on read.
//
// Complexity (both backings):
//
//   - AddNode / AddEdge / SetNode / SetEdge: O(1) amortized (plus the
//     potential copy).
//   - SetEdges: O(E) over matched edges, validated before any write.
//
// Errors:
//
//   - ErrBadStates, ErrNodeRange, ErrSelfLoop, ErrDuplicateEdge,
//     ErrEdgeNotFound, ErrNilPotential, ErrPotentialShape.
package pairwise
