package layered

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crfgrid/block"
	"github.com/katalvlaran/crfgrid/trainer"
)

// FillEdges computes the potential of every intra-layer edge by
// invoking the edge trainer on the feature vectors at the edge's two
// endpoint sites (the same site features serve every layer), raises it
// to the power edgeWeight and writes it. Every inter-layer link gets
// the link trainer's prediction for its site, weighted by linkWeight.
// A nil link trainer leaves link potentials exactly as they were.
//
// The pass always overwrites — never accumulates — so it may run again
// after re-training. Writes are per-edge and non-overlapping; the
// caller may shard the pass over disjoint edges. An aborted pass
// leaves a partially updated potential set.
//
// params is forwarded to the trainers untouched; see the concrete
// model for its meaning.
//
// Complexity: O(E) trainer predictions.
func (m *Graph) FillEdges(edge trainer.Edge, link trainer.Link, fv *block.Dense, params []float64, edgeWeight, linkWeight float64) error {
	if edge == nil {
		return ErrNilTrainer
	}
	if err := m.checkFeatures(fv); err != nil {
		return err
	}

	err := m.fillIntra(func(_, x1, y1, x2, y2 int) (*mat.Dense, error) {
		return edge.CalculateEdgePotentials(fv.At(x1, y1), fv.At(x2, y2), params)
	}, edgeWeight)
	if err != nil {
		return err
	}
	if link == nil || !m.linked() {
		return nil
	}

	return m.forEachSite(func(x, y int) error {
		pot, err := link.CalculateLinkPotentials(fv.At(x, y), params)
		if err != nil {
			return err
		}
		pot = trainer.WeightedPotentials(pot, linkWeight)
		for l := 0; l < m.layers-1; l++ {
			if err = m.g.SetEdge(m.NodeIndex(x, y, l), m.NodeIndex(x, y, l+1), pot); err != nil {
				return err
			}
		}

		return nil
	})
}

// AddDefaultEdgesModel writes the data-independent Potts model on
// every intra-layer edge: diagonal val, off-diagonal 1, raised to the
// power weight. Links are untouched. val controls how strongly label
// changes across an edge are suppressed; node label counts must have
// been fixed (SetGraph / SetGraphLayered) beforehand.
//
// Complexity: O(E).
func (m *Graph) AddDefaultEdgesModel(val, weight float64) error {
	if val <= 0 {
		return ErrBadValue
	}
	if m.g.NumEdges() == 0 {
		return ErrNotBuilt
	}
	pots, err := m.layerDefaults(val)
	if err != nil {
		return err
	}

	return m.fillIntra(func(l, _, _, _, _ int) (*mat.Dense, error) {
		return pots[l], nil
	}, weight)
}

// AddDefaultEdgesModelContrast writes the contrast-sensitive Potts
// model on every intra-layer edge: the diagonal strength val is
// attenuated by the Gaussian penalizer at the Euclidean distance
// between the edge's endpoint feature vectors, clamped to stay at or
// above the off-diagonal 1. The distance scale is set from the data —
// the root-mean-square endpoint distance over all site pairs — so the
// attenuation adapts to the feature magnitude. With identical features
// at both endpoints of every edge the result equals
// AddDefaultEdgesModel(val, weight) for val ≥ 1.
//
// Feature blocks assembled with block.FromPlanes (one single-channel
// plane per feature) and blocks filled site by site produce identical
// results for equivalent data.
//
// Complexity: O(E), two passes (scale estimation, fill).
func (m *Graph) AddDefaultEdgesModelContrast(fv *block.Dense, val, weight float64) error {
	if val <= 0 {
		return ErrBadValue
	}
	if err := m.checkFeatures(fv); err != nil {
		return err
	}
	scale := m.contrastScale(fv)

	trainers := make([]*trainer.PottsCS, m.layers)
	for l := range trainers {
		n, err := m.layerStates(l)
		if err != nil {
			return err
		}
		if trainers[l], err = trainer.NewPottsCS(n, trainer.DefaultCSOptions()); err != nil {
			return err
		}
	}

	return m.fillIntra(func(l, x1, y1, x2, y2 int) (*mat.Dense, error) {
		return trainers[l].CalculateEdgePotentials(fv.At(x1, y1), fv.At(x2, y2), []float64{val, scale})
	}, weight)
}

// fillIntra applies calc to every intra-layer edge in build order and
// writes the weighted result. calc receives the layer and the two
// endpoint sites.
func (m *Graph) fillIntra(calc func(l, x1, y1, x2, y2 int) (*mat.Dense, error), weight float64) error {
	return m.forEachSitePair(func(x1, y1, x2, y2 int) error {
		for l := 0; l < m.layers; l++ {
			pot, err := calc(l, x1, y1, x2, y2)
			if err != nil {
				return err
			}
			pot = trainer.WeightedPotentials(pot, weight)
			if err = m.g.SetEdge(m.NodeIndex(x1, y1, l), m.NodeIndex(x2, y2, l), pot); err != nil {
				return err
			}
		}

		return nil
	})
}

// checkFeatures validates a feature block against the built topology.
func (m *Graph) checkFeatures(fv *block.Dense) error {
	if fv == nil {
		return ErrNilBlock
	}
	if m.g.NumEdges() == 0 {
		return ErrNotBuilt
	}
	if fv.Width() != m.size.Width || fv.Height() != m.size.Height {
		return ErrBlockShape
	}

	return nil
}

// layerStates returns the label count shared by layer l's nodes,
// or ErrStatesUnknown while it is still deferred.
func (m *Graph) layerStates(l int) (int, error) {
	n, err := m.g.NodeStates(m.NodeIndex(0, 0, l))
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrStatesUnknown
	}

	return n, nil
}

// layerDefaults precomputes the per-layer Potts matrix; layers may
// carry different label counts.
func (m *Graph) layerDefaults(val float64) ([]*mat.Dense, error) {
	pots := make([]*mat.Dense, m.layers)
	for l := range pots {
		n, err := m.layerStates(l)
		if err != nil {
			return nil, err
		}
		pots[l] = trainer.DefaultEdgePotentials(val, n)
	}

	return pots, nil
}

// contrastScale estimates the penalizer's distance scale as the
// root-mean-square endpoint feature distance over all site pairs.
// A uniform block (all distances zero) yields scale 1, under which the
// penalizer is exactly 1 everywhere.
func (m *Graph) contrastScale(fv *block.Dense) float64 {
	var sum float64
	var n int
	_ = m.forEachSitePair(func(x1, y1, x2, y2 int) error {
		d := floats.Distance(fv.At(x1, y1), fv.At(x2, y2), 2)
		sum += d * d
		n++

		return nil
	})
	if n == 0 || sum == 0 {
		return 1
	}

	return math.Sqrt(sum / float64(n))
}
