// Package trainer defines capability interfaces and shared errors for
// the edge/link potential models of github.com/katalvlaran/crfgrid.
package trainer

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadStates indicates a non-positive label count.
	ErrBadStates = errors.New("trainer: label count must be > 0")
	// ErrBadParams indicates missing or non-positive control parameters.
	ErrBadParams = errors.New("trainer: invalid control parameters")
	// ErrBadLabel indicates a ground-truth state outside [0, states).
	ErrBadLabel = errors.New("trainer: ground-truth state out of range")
	// ErrFeatureLen indicates paired feature vectors of differing lengths.
	ErrFeatureLen = errors.New("trainer: feature vectors must have equal length")
)

// Edge is the within-layer trainer capability: a statistical model
// that accumulates paired samples at training time and predicts a
// pairwise potential matrix at inference time. Implementations own
// all training state; the graph engine only routes samples through.
type Edge interface {
	// AddFeatureVecs accumulates one training sample: the feature
	// vectors at an edge's two endpoint sites and their ground-truth
	// states. Data-independent models may ignore it.
	AddFeatureVecs(f1, f2 []float64, gt1, gt2 byte) error

	// CalculateEdgePotentials predicts the pairwise potential matrix
	// for an edge from its endpoint feature vectors. params carries
	// model-specific control parameters; see the concrete model.
	CalculateEdgePotentials(f1, f2, params []float64) (*mat.Dense, error)
}

// Link is the inter-layer trainer capability: predicts the
// base-states × occlusion-states compatibility matrix for the link
// edge at one site from that site's feature vector.
type Link interface {
	CalculateLinkPotentials(f, params []float64) (*mat.Dense, error)
}
