package layered

import (
	"github.com/katalvlaran/crfgrid/block"
	"github.com/katalvlaran/crfgrid/trainer"
)

// AddFeatureVecs walks the built topology and hands the edge trainer
// one training sample per edge: the feature vectors at the edge's two
// endpoint sites paired with the ground-truth states at those sites.
// The engine keeps no training state of its own — the trainer
// accumulates.
//
// Only single-layer topologies can be sampled: across layers (and so
// across link edges) the ground-truth pairing is undefined, so layered
// engines are rejected before any sample is taken. The pass may run
// repeatedly to stream batches of training data over the same
// topology.
//
// Complexity: O(E) trainer accumulations.
func (m *Graph) AddFeatureVecs(edge trainer.Edge, fv *block.Dense, gt *block.Labels) error {
	if edge == nil {
		return ErrNilTrainer
	}
	if gt == nil {
		return ErrNilBlock
	}
	if m.layers != 1 {
		return ErrLayeredSampling
	}
	if err := m.checkFeatures(fv); err != nil {
		return err
	}
	if gt.Width() != m.size.Width || gt.Height() != m.size.Height {
		return ErrBlockShape
	}

	return m.forEachSitePair(func(x1, y1, x2, y2 int) error {
		return edge.AddFeatureVecs(fv.At(x1, y1), fv.At(x2, y2), gt.At(x1, y1), gt.At(x2, y2))
	})
}
