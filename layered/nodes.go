package layered

import "github.com/katalvlaran/crfgrid/block"

// SetGraph writes per-site node potentials on a single-layer engine:
// the vector of site (x, y) is pots.At(x, y), so the block's channel
// count is the label count. If no topology exists yet, BuildGraph is
// invoked first with the block's spatial size.
//
// Writes are per-node and non-overlapping; the caller may shard this
// pass over disjoint sites.
//
// Complexity: O(W×H) SetNode calls.
func (m *Graph) SetGraph(pots *block.Dense) error {
	if pots == nil {
		return ErrNilBlock
	}
	if m.layers != 1 {
		return ErrLayerCount
	}
	if err := m.ensureBuilt(pots.Width(), pots.Height()); err != nil {
		return err
	}

	return m.forEachSite(func(x, y int) error {
		return m.g.SetNode(m.NodeIndex(x, y, 0), pots.At(x, y))
	})
}

// SetGraphLayered writes per-site node potentials on a two-layer
// engine: potBase fills the base layer (layer 0), potOccl the
// occlusion layer (layer 1). The two blocks must share one spatial
// size but may carry different label counts. If no topology exists
// yet, BuildGraph is invoked first with that size.
//
// Complexity: O(W×H) per layer.
func (m *Graph) SetGraphLayered(potBase, potOccl *block.Dense) error {
	if potBase == nil || potOccl == nil {
		return ErrNilBlock
	}
	if m.layers != 2 {
		return ErrLayerCount
	}
	if potBase.Width() != potOccl.Width() || potBase.Height() != potOccl.Height() {
		return ErrBlockShape
	}
	if err := m.ensureBuilt(potBase.Width(), potBase.Height()); err != nil {
		return err
	}

	return m.forEachSite(func(x, y int) error {
		if err := m.g.SetNode(m.NodeIndex(x, y, 0), potBase.At(x, y)); err != nil {
			return err
		}

		return m.g.SetNode(m.NodeIndex(x, y, 1), potOccl.At(x, y))
	})
}

// ensureBuilt builds the topology from (w, h) when none exists, or
// verifies the existing size matches.
func (m *Graph) ensureBuilt(w, h int) error {
	if m.size.IsZero() {
		return m.BuildGraph(Size{Width: w, Height: h})
	}
	if m.size.Width != w || m.size.Height != h {
		return ErrBlockShape
	}

	return nil
}
