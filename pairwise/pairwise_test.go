package pairwise_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crfgrid/pairwise"
)

// backings enumerates the Graph implementations under test; every
// behavioral test runs against both.
var backings = map[string]func() pairwise.Graph{
	"Dense": func() pairwise.Graph { return pairwise.NewDense() },
	"List":  func() pairwise.Graph { return pairwise.NewList() },
}

func forEachBacking(t *testing.T, fn func(t *testing.T, g pairwise.Graph)) {
	t.Helper()
	for name, mk := range backings {
		t.Run(name, func(t *testing.T) { fn(t, mk()) })
	}
}

//----------------------------------------------------------------------------//
// Node Tests
//----------------------------------------------------------------------------//

func TestAddNode_IdsAndStates(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		_, err := g.AddNode(-1)
		require.ErrorIs(t, err, pairwise.ErrBadStates)

		id0, err := g.AddNode(0)
		require.NoError(t, err)
		require.Equal(t, 0, id0)
		id1, err := g.AddNode(3)
		require.NoError(t, err)
		require.Equal(t, 1, id1)
		require.Equal(t, 2, g.NumNodes())

		n, err := g.NodeStates(id0)
		require.NoError(t, err)
		require.Equal(t, 0, n) // deferred
		n, err = g.NodeStates(id1)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		_, err = g.NodeStates(5)
		require.ErrorIs(t, err, pairwise.ErrNodeRange)
	})
}

func TestSetNode_FixesDeferredStates(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		id, _ := g.AddNode(0)
		require.ErrorIs(t, g.SetNode(id, nil), pairwise.ErrNilPotential)

		require.NoError(t, g.SetNode(id, []float64{0.25, 0.75}))
		n, _ := g.NodeStates(id)
		require.Equal(t, 2, n)

		// the fixed count now binds later writes
		require.ErrorIs(t, g.SetNode(id, []float64{1, 2, 3}), pairwise.ErrPotentialShape)
		require.NoError(t, g.SetNode(id, []float64{0.5, 0.5}))

		pot, err := g.Node(id)
		require.NoError(t, err)
		require.Equal(t, []float64{0.5, 0.5}, pot)

		// read-back is a copy
		pot[0] = 99
		again, _ := g.Node(id)
		require.Equal(t, []float64{0.5, 0.5}, again)
	})
}

//----------------------------------------------------------------------------//
// Edge Tests
//----------------------------------------------------------------------------//

func TestAddEdge_Errors(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		u, _ := g.AddNode(2)
		v, _ := g.AddNode(2)

		require.ErrorIs(t, g.AddEdge(u, 7, 0), pairwise.ErrNodeRange)
		require.ErrorIs(t, g.AddEdge(u, u, 0), pairwise.ErrSelfLoop)

		require.NoError(t, g.AddEdge(u, v, 0))
		require.ErrorIs(t, g.AddEdge(u, v, 0), pairwise.ErrDuplicateEdge)
		require.ErrorIs(t, g.AddEdge(v, u, 0), pairwise.ErrDuplicateEdge)
		require.Equal(t, 1, g.NumEdges())
	})
}

func TestSetEdge_OrientationTransposes(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		u, _ := g.AddNode(2)
		v, _ := g.AddNode(3)
		require.NoError(t, g.AddEdge(u, v, 0))

		unset, err := g.Edge(u, v)
		require.NoError(t, err)
		require.Nil(t, unset)

		pot := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		require.NoError(t, g.SetEdge(u, v, pot))

		got, err := g.Edge(u, v)
		require.NoError(t, err)
		require.True(t, mat.Equal(pot, got))

		// reversed endpoints read the transpose
		rev, err := g.Edge(v, u)
		require.NoError(t, err)
		require.True(t, mat.Equal(pot.T(), rev))

		// reversed write lands as the same logical potential
		require.NoError(t, g.SetEdge(v, u, mat.NewDense(3, 2, []float64{9, 8, 7, 6, 5, 4})))
		got, _ = g.Edge(u, v)
		require.True(t, mat.Equal(mat.NewDense(2, 3, []float64{9, 7, 5, 8, 6, 4}), got))

		// shape mismatch against fixed label counts
		require.ErrorIs(t, g.SetEdge(u, v, mat.NewDense(3, 3, nil)), pairwise.ErrPotentialShape)
		_, err = g.Edge(u, 9)
		require.ErrorIs(t, err, pairwise.ErrNodeRange)
		_, err = g.EdgeGroup(v, v)
		require.ErrorIs(t, err, pairwise.ErrEdgeNotFound)
	})
}

func TestEdgeGroup_Reassign(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		u, _ := g.AddNode(2)
		v, _ := g.AddNode(2)
		require.NoError(t, g.AddEdge(u, v, 0))

		grp, err := g.EdgeGroup(u, v)
		require.NoError(t, err)
		require.EqualValues(t, 0, grp)

		require.NoError(t, g.SetEdgeGroup(v, u, 5))
		grp, _ = g.EdgeGroup(u, v)
		require.EqualValues(t, 5, grp)
	})
}

//----------------------------------------------------------------------------//
// Bulk Assignment Tests
//----------------------------------------------------------------------------//

// chain builds 0-1-2-3 with edge groups 0, 1, 0 and 2-state nodes.
func chain(t *testing.T, g pairwise.Graph) {
	t.Helper()
	for i := 0; i < 4; i++ {
		id, err := g.AddNode(2)
		require.NoError(t, err)
		require.Equal(t, i, id)
	}
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 0))
}

func TestSetEdges_FilterAndIdempotence(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		chain(t, g)
		potA := mat.NewDense(2, 2, []float64{4, 1, 1, 4})
		potB := mat.NewDense(2, 2, []float64{2, 1, 1, 2})

		require.NoError(t, g.SetEdges(pairwise.Group(1), potA))
		got, _ := g.Edge(1, 2)
		require.True(t, mat.Equal(potA, got))
		for _, e := range [][2]int{{0, 1}, {2, 3}} {
			got, _ = g.Edge(e[0], e[1])
			require.Nil(t, got, "edge %v must stay unset", e)
		}

		require.NoError(t, g.SetEdges(pairwise.AllGroups(), potB))
		require.NoError(t, g.SetEdges(pairwise.AllGroups(), potB)) // idempotent
		for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
			got, _ = g.Edge(e[0], e[1])
			require.True(t, mat.Equal(potB, got))
		}
	})
}

func TestSetEdges_ValidatesBeforeWriting(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		u, _ := g.AddNode(2)
		v, _ := g.AddNode(2)
		w, _ := g.AddNode(3)
		require.NoError(t, g.AddEdge(u, v, 0))
		require.NoError(t, g.AddEdge(v, w, 0))

		require.ErrorIs(t, g.SetEdges(pairwise.AllGroups(), mat.NewDense(2, 3, nil)), pairwise.ErrPotentialShape)

		// one edge fits 2×2, the other does not: nothing may be written
		err := g.SetEdges(pairwise.AllGroups(), mat.NewDense(2, 2, nil))
		require.ErrorIs(t, err, pairwise.ErrPotentialShape)
		got, _ := g.Edge(u, v)
		require.Nil(t, got)

		require.ErrorIs(t, g.SetEdges(pairwise.AllGroups(), nil), pairwise.ErrNilPotential)
	})
}

func TestReset_Empties(t *testing.T) {
	forEachBacking(t, func(t *testing.T, g pairwise.Graph) {
		chain(t, g)
		g.Reset()
		require.Zero(t, g.NumNodes())
		require.Zero(t, g.NumEdges())
		_, err := g.Node(0)
		require.True(t, errors.Is(err, pairwise.ErrNodeRange))
	})
}

func TestGroupFilter_Matches(t *testing.T) {
	require.True(t, pairwise.AllGroups().Matches(0))
	require.True(t, pairwise.AllGroups().Matches(200))
	require.True(t, pairwise.Group(3).Matches(3))
	require.False(t, pairwise.Group(3).Matches(4))
}
