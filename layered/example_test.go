package layered_test

import (
	"fmt"

	"github.com/katalvlaran/crfgrid/block"
	"github.com/katalvlaran/crfgrid/layered"
	"github.com/katalvlaran/crfgrid/pairwise"
)

// ExampleGraph builds a two-layer 3×3 model with grid and link edges,
// fills the node potentials of both layers and applies the default
// Potts edge model.
func ExampleGraph() {
	backing := pairwise.NewDense()
	m, err := layered.New(backing, 2, layered.KindGrid|layered.KindLink)
	if err != nil {
		panic(err)
	}

	base, _ := block.New(3, 3, 2) // 2 labels on the base layer
	occl, _ := block.New(3, 3, 3) // 3 labels on the occlusion layer
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			_ = base.SetAt(x, y, []float64{0.8, 0.2})
			_ = occl.SetAt(x, y, []float64{0.5, 0.3, 0.2})
		}
	}
	if err = m.SetGraphLayered(base, occl); err != nil {
		panic(err)
	}
	if err = m.AddDefaultEdgesModel(4, 1); err != nil {
		panic(err)
	}

	pot, _ := backing.Edge(m.NodeIndex(0, 0, 0), m.NodeIndex(1, 0, 0))
	fmt.Println("nodes:", backing.NumNodes())
	fmt.Println("edges:", backing.NumEdges())
	fmt.Println("same-label compatibility:", pot.At(0, 0))
	fmt.Println("cross-label compatibility:", pot.At(0, 1))
	// Output:
	// nodes: 18
	// edges: 33
	// same-label compatibility: 4
	// cross-label compatibility: 1
}

// ExampleGraph_DefineEdgeGroup carves the edges crossing a vertical
// segmentation boundary into their own group and weakens only them.
func ExampleGraph_DefineEdgeGroup() {
	m, _ := layered.New(pairwise.NewDense(), 1, layered.KindGrid)
	pots, _ := block.New(3, 3, 2)
	_ = m.SetGraph(pots)

	// edges straddling the line x = 1.5 become group 7
	_ = m.DefineEdgeGroup(1, 0, -1.5, 7)

	boundary := 0
	g := m.Backing()
	for y := 0; y < 3; y++ {
		if grp, _ := g.EdgeGroup(m.NodeIndex(1, y, 0), m.NodeIndex(2, y, 0)); grp == 7 {
			boundary++
		}
	}
	fmt.Println("boundary edges:", boundary)
	// Output:
	// boundary edges: 3
}
