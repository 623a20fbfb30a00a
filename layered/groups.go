package layered

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crfgrid/pairwise"
)

// DefineEdgeGroup reassigns every edge whose endpoint sites lie on
// strictly opposite sides of the line a·x + b·y + c = 0 to the given
// group id — the layer coordinate is ignored, so the regrouping carves
// the same spatial boundary out of every layer. Inter-layer links join
// a site to itself and can never straddle a line, so they keep their
// group.
//
// Sites exactly on the line (sign zero) do not straddle it. a and b
// must not both be zero. Once regrouped, the build-time defaults are
// never silently restored; only the next BuildGraph resets groups.
//
// Complexity: O(E).
func (m *Graph) DefineEdgeGroup(a, b, c float64, group byte) error {
	if a == 0 && b == 0 {
		return ErrBadLine
	}

	return m.forEachSitePair(func(x1, y1, x2, y2 int) error {
		s1 := a*float64(x1) + b*float64(y1) + c
		s2 := a*float64(x2) + b*float64(y2) + c
		if s1*s2 >= 0 {
			return nil
		}
		for l := 0; l < m.layers; l++ {
			if err := m.g.SetEdgeGroup(m.NodeIndex(x1, y1, l), m.NodeIndex(x2, y2, l), group); err != nil {
				return err
			}
		}

		return nil
	})
}

// SetEdges writes the square potential matrix pot on every edge
// matched by filter — pairwise.AllGroups() for all edges,
// pairwise.Group(id) for one group. The matched set is validated
// against node label counts before anything is written, and the call
// is idempotent.
//
// Complexity: O(E).
func (m *Graph) SetEdges(filter pairwise.GroupFilter, pot *mat.Dense) error {
	if m.g.NumEdges() == 0 {
		return ErrNotBuilt
	}

	return m.g.SetEdges(filter, pot)
}
