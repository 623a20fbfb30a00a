package trainer

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Potts is the data-independent smoothness model: every edge gets the
// same matrix with params[0] on the diagonal and 1 off it. It needs no
// training; AddFeatureVecs is a no-op.
type Potts struct {
	states int
}

// interface compliance check
var _ Edge = (*Potts)(nil)

// NewPotts returns a Potts model over nStates labels.
func NewPotts(nStates int) (*Potts, error) {
	if nStates <= 0 {
		return nil, ErrBadStates
	}

	return &Potts{states: nStates}, nil
}

// AddFeatureVecs is a no-op: the Potts model carries no data statistics.
func (t *Potts) AddFeatureVecs(_, _ []float64, _, _ byte) error { return nil }

// CalculateEdgePotentials returns the Potts matrix for params[0].
// Features are ignored. params[0] must be > 0.
func (t *Potts) CalculateEdgePotentials(_, _, params []float64) (*mat.Dense, error) {
	if len(params) < 1 || params[0] <= 0 {
		return nil, ErrBadParams
	}

	return DefaultEdgePotentials(params[0], t.states), nil
}

// CSOptions configures the contrast-sensitive Potts model.
type CSOptions struct {
	// Penalizer chooses the decay applied to the smoothness strength
	// as endpoint feature distance grows.
	Penalizer Penalizer
}

// DefaultCSOptions returns CSOptions with the Gaussian penalizer.
func DefaultCSOptions() CSOptions {
	return CSOptions{Penalizer: PenalizerExp}
}

// PottsCS is the contrast-sensitive Potts model: the diagonal strength
// params[0] is attenuated by the penalizer evaluated at the Euclidean
// distance between the two endpoint feature vectors, with distance
// scale params[1]. The diagonal never drops below the off-diagonal 1,
// so the matrix stays a (possibly neutral) smoothness prior. At zero
// distance the output equals the plain Potts matrix for params[0] ≥ 1.
type PottsCS struct {
	states int
	pen    Penalizer
}

// interface compliance check
var _ Edge = (*PottsCS)(nil)

// NewPottsCS returns a contrast-sensitive Potts model over nStates labels.
func NewPottsCS(nStates int, opts CSOptions) (*PottsCS, error) {
	if nStates <= 0 {
		return nil, ErrBadStates
	}

	return &PottsCS{states: nStates, pen: opts.Penalizer}, nil
}

// AddFeatureVecs is a no-op: the model has no trainable statistics.
func (t *PottsCS) AddFeatureVecs(_, _ []float64, _, _ byte) error { return nil }

// CalculateEdgePotentials returns the attenuated Potts matrix for the
// feature pair. params[0] is the smoothness strength val > 0,
// params[1] the distance scale λ > 0.
// Complexity: O(len(f1) + nStates²).
func (t *PottsCS) CalculateEdgePotentials(f1, f2, params []float64) (*mat.Dense, error) {
	if len(params) < 2 || params[0] <= 0 || params[1] <= 0 {
		return nil, ErrBadParams
	}
	if len(f1) != len(f2) {
		return nil, ErrFeatureLen
	}
	d := floats.Distance(f1, f2, 2)
	val := math.Max(1, params[0]*t.pen.Attenuate(d, params[1]))

	return DefaultEdgePotentials(val, t.states), nil
}
