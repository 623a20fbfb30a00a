package pairwise

import "errors"

var (
	// ErrBadStates indicates a negative label count passed to AddNode.
	ErrBadStates = errors.New("pairwise: label count must not be negative")
	// ErrNodeRange indicates a node id outside [0, NumNodes).
	ErrNodeRange = errors.New("pairwise: node id out of range")
	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("pairwise: self-loop edges are not supported")
	// ErrDuplicateEdge indicates an edge between already connected nodes.
	ErrDuplicateEdge = errors.New("pairwise: edge already exists")
	// ErrEdgeNotFound indicates no edge exists between the given nodes.
	ErrEdgeNotFound = errors.New("pairwise: no edge between the given nodes")
	// ErrNilPotential indicates a nil or empty potential argument.
	ErrNilPotential = errors.New("pairwise: potential must not be nil or empty")
	// ErrPotentialShape indicates potential dimensions that do not match
	// the label counts of the target node or edge endpoints.
	ErrPotentialShape = errors.New("pairwise: potential dimensions do not match label counts")
)
