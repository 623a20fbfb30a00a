package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crfgrid/block"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, c int
	}{
		{"ZeroWidth", 0, 2, 1},
		{"ZeroHeight", 2, 0, 1},
		{"ZeroChannels", 2, 2, 0},
		{"Negative", -1, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := block.New(tc.w, tc.h, tc.c)
			require.ErrorIs(t, err, block.ErrBadShape)
		})
	}
}

func TestAtSetAt_RoundTrip(t *testing.T) {
	b, err := block.New(3, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 3, b.Width())
	require.Equal(t, 2, b.Height())
	require.Equal(t, 2, b.Channels())

	require.NoError(t, b.SetAt(2, 1, []float64{1.5, -2}))
	require.Equal(t, []float64{1.5, -2}, b.At(2, 1))
	require.Equal(t, []float64{0, 0}, b.At(0, 0))

	require.ErrorIs(t, b.SetAt(3, 0, []float64{1, 2}), block.ErrCoordRange)
	require.ErrorIs(t, b.SetAt(0, 0, []float64{1}), block.ErrSampleLen)

	// At returns a live view
	b.At(0, 0)[1] = 7
	require.Equal(t, []float64{0, 7}, b.At(0, 0))

	require.Panics(t, func() { b.At(-1, 0) })
}

// TestFromPlanes_EquivalentToPerSiteFill pins the invariant that the
// per-feature-plane input form and the per-site multi-channel form
// produce identical blocks for equivalent data.
func TestFromPlanes_EquivalentToPerSiteFill(t *testing.T) {
	p0 := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})       // channel 0, 3×2 grid
	p1 := mat.NewDense(2, 3, []float64{10, 20, 30, 40, 50, 60}) // channel 1

	fromPlanes, err := block.FromPlanes([]*mat.Dense{p0, p1})
	require.NoError(t, err)

	perSite, err := block.New(3, 2, 2)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.NoError(t, perSite.SetAt(x, y, []float64{p0.At(y, x), p1.At(y, x)}))
		}
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, perSite.At(x, y), fromPlanes.At(x, y), "site (%d,%d)", x, y)
		}
	}

	// input planes were copied
	p0.Set(0, 0, 999)
	require.Equal(t, []float64{1, 10}, fromPlanes.At(0, 0))
}

func TestFromPlanes_Errors(t *testing.T) {
	_, err := block.FromPlanes(nil)
	require.ErrorIs(t, err, block.ErrNoPlanes)
	_, err = block.FromPlanes([]*mat.Dense{nil})
	require.ErrorIs(t, err, block.ErrPlaneShape)
	_, err = block.FromPlanes([]*mat.Dense{mat.NewDense(2, 2, nil), mat.NewDense(2, 3, nil)})
	require.ErrorIs(t, err, block.ErrPlaneShape)
}

func TestPlane_RoundTrip(t *testing.T) {
	p0 := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b, err := block.FromPlanes([]*mat.Dense{p0})
	require.NoError(t, err)

	got, err := b.Plane(0)
	require.NoError(t, err)
	require.True(t, mat.Equal(p0, got))

	_, err = b.Plane(1)
	require.ErrorIs(t, err, block.ErrChannelRange)
}

func TestLabels(t *testing.T) {
	_, err := block.LabelsFrom(nil)
	require.ErrorIs(t, err, block.ErrBadShape)
	_, err = block.LabelsFrom([][]byte{{0, 1}, {2}})
	require.ErrorIs(t, err, block.ErrRagged)

	l, err := block.LabelsFrom([][]byte{
		{0, 1, 2},
		{1, 1, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, l.Width())
	require.Equal(t, 2, l.Height())
	require.EqualValues(t, 2, l.At(2, 0))
	require.EqualValues(t, 0, l.At(2, 1))

	require.NoError(t, l.SetAt(2, 1, 9))
	require.EqualValues(t, 9, l.At(2, 1))
	require.ErrorIs(t, l.SetAt(3, 0, 1), block.ErrCoordRange)
	require.Panics(t, func() { l.At(0, 5) })
}
