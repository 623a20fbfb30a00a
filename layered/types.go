// Package layered defines the core types of the layered CRF engine of
// github.com/katalvlaran/crfgrid.
package layered

import "github.com/katalvlaran/crfgrid/pairwise"

// EdgeKind is a bitset selecting which edge classes BuildGraph
// generates. Combine with bitwise OR: KindGrid | KindLink.
type EdgeKind byte

const (
	// KindNone generates no edges — isolated nodes only.
	KindNone EdgeKind = 0
	// KindGrid generates horizontal and vertical 4-neighbor edges.
	KindGrid EdgeKind = 1
	// KindDiag generates the two diagonal neighbor edges per site.
	KindDiag EdgeKind = 2
	// KindLink generates inter-layer edges between consecutive layers.
	KindLink EdgeKind = 4
)

// Has reports whether the bitset contains kind.
func (k EdgeKind) Has(kind EdgeKind) bool { return k&kind != 0 }

// Default edge group ids assigned by BuildGraph.
const (
	// GroupIntra is the group of every intra-layer edge after a build.
	GroupIntra byte = 0
	// GroupLink is the group of every inter-layer link after a build.
	GroupLink byte = 1
)

// Size is the grid extent in sites.
type Size struct {
	Width, Height int
}

// IsZero reports whether the size is the empty (0, 0) extent.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Graph is the layered CRF construction engine. It borrows the backing
// pairwise graph — the caller owns the backing's lifetime and must
// keep it alive for as long as the engine is used.
//
// Layer count and edge kinds are fixed at construction; the grid size
// is set by each BuildGraph call.
type Graph struct {
	g      pairwise.Graph // borrowed backing
	layers int
	kinds  EdgeKind
	size   Size
}

// New returns a layered engine over the borrowed backing g with the
// given layer count and edge-kind bitset. The backing is used as-is;
// its current contents are discarded by the first BuildGraph call.
func New(g pairwise.Graph, layers int, kinds EdgeKind) (*Graph, error) {
	if g == nil {
		return nil, ErrNilBacking
	}
	if layers < 1 {
		return nil, ErrNoLayers
	}

	return &Graph{g: g, layers: layers, kinds: kinds}, nil
}

// Size returns the grid extent of the last build, (0, 0) before one.
func (m *Graph) Size() Size { return m.size }

// Layers returns the layer count fixed at construction.
func (m *Graph) Layers() int { return m.layers }

// Kinds returns the edge-kind bitset fixed at construction.
func (m *Graph) Kinds() EdgeKind { return m.kinds }

// Backing returns the borrowed pairwise graph for read access
// (decoding, inspection). Mutating it directly bypasses the engine's
// invariants.
func (m *Graph) Backing() pairwise.Graph { return m.g }

// NodeIndex returns the linear node id of site (x, y) on layer l:
// ((l·height)+y)·width + x. Valid only between a build and the next.
// Complexity: O(1).
func (m *Graph) NodeIndex(x, y, l int) int {
	return ((l*m.size.Height)+y)*m.size.Width + x
}

// forEachSitePair visits every intra-layer neighboring site pair the
// edge-kind bitset implies, in build order: per site its right and
// down neighbors (KindGrid), then down-right and down-left (KindDiag).
// Every geometric pass — building, regrouping, sampling, filling —
// walks edges through this single enumeration.
func (m *Graph) forEachSitePair(fn func(x1, y1, x2, y2 int) error) error {
	w, h := m.size.Width, m.size.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.kinds.Has(KindGrid) {
				if x+1 < w {
					if err := fn(x, y, x+1, y); err != nil {
						return err
					}
				}
				if y+1 < h {
					if err := fn(x, y, x, y+1); err != nil {
						return err
					}
				}
			}
			if m.kinds.Has(KindDiag) && y+1 < h {
				if x+1 < w {
					if err := fn(x, y, x+1, y+1); err != nil {
						return err
					}
				}
				if x > 0 {
					if err := fn(x, y, x-1, y+1); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// forEachSite visits every grid site in row-major order.
func (m *Graph) forEachSite(fn func(x, y int) error) error {
	for y := 0; y < m.size.Height; y++ {
		for x := 0; x < m.size.Width; x++ {
			if err := fn(x, y); err != nil {
				return err
			}
		}
	}

	return nil
}

// linked reports whether the topology carries inter-layer links.
func (m *Graph) linked() bool {
	return m.kinds.Has(KindLink) && m.layers > 1
}
