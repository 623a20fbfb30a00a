package layered

// BuildGraph discards the backing's current structure and enumerates
// width×height×layers nodes plus the edge set implied by the engine's
// edge kinds. Intra-layer edges get group GroupIntra, inter-layer
// links GroupLink. Node label counts are left deferred until the first
// SetGraph / SetGraphLayered call.
//
// A (0, 0) size resets the engine to the empty state; sizes with
// exactly one zero or any negative dimension are rejected. Calling
// again — with any size — always replaces the previous structure.
//
// Complexity: O(W×H×L + E) time, O(W×H×L + E) backing memory.
func (m *Graph) BuildGraph(size Size) error {
	if size.Width < 0 || size.Height < 0 ||
		(size.Width == 0) != (size.Height == 0) {
		return ErrBadSize
	}
	m.g.Reset()
	m.size = size
	if size.IsZero() {
		return nil
	}

	w, h := size.Width, size.Height
	nSites := w * h
	if d, ok := m.g.(interface{ Grow(nNodes, nEdges int) }); ok {
		d.Grow(nSites*m.layers, m.edgeBudget())
	}

	// Nodes, in linear-index order: layer-major, then row-major.
	for l := 0; l < m.layers; l++ {
		for i := 0; i < nSites; i++ {
			if _, err := m.g.AddNode(0); err != nil {
				return err
			}
		}
	}

	// Intra-layer edges, replicated across layers.
	err := m.forEachSitePair(func(x1, y1, x2, y2 int) error {
		for l := 0; l < m.layers; l++ {
			if err := m.g.AddEdge(m.NodeIndex(x1, y1, l), m.NodeIndex(x2, y2, l), GroupIntra); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	// Inter-layer links: one per site between each consecutive layer pair.
	if !m.linked() {
		return nil
	}

	return m.forEachSite(func(x, y int) error {
		for l := 0; l < m.layers-1; l++ {
			if err := m.g.AddEdge(m.NodeIndex(x, y, l), m.NodeIndex(x, y, l+1), GroupLink); err != nil {
				return err
			}
		}

		return nil
	})
}

// edgeBudget returns the exact edge count the current size and kinds
// will produce, used as a preallocation hint.
func (m *Graph) edgeBudget() int {
	w, h := m.size.Width, m.size.Height
	n := 0
	if m.kinds.Has(KindGrid) {
		n += (w*(h-1) + h*(w-1)) * m.layers
	}
	if m.kinds.Has(KindDiag) {
		n += 2 * (w - 1) * (h - 1) * m.layers
	}
	if m.linked() {
		n += w * h * (m.layers - 1)
	}

	return n
}
