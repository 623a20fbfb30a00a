package trainer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultEdgePotentials returns the Potts smoothness matrix for
// nStates labels: val on the diagonal, 1 everywhere else. val > 1
// favors keeping the same label across an edge; val = 1 is neutral.
// Complexity: O(nStates²).
func DefaultEdgePotentials(val float64, nStates int) *mat.Dense {
	pot := mat.NewDense(nStates, nStates, nil)
	for i := 0; i < nStates; i++ {
		for j := 0; j < nStates; j++ {
			if i == j {
				pot.Set(i, j, val)
			} else {
				pot.Set(i, j, 1)
			}
		}
	}

	return pot
}

// WeightedPotentials raises every entry of pot to the power weight,
// returning a new matrix; weight 1 returns pot unchanged. Elementwise
// power keeps entries non-negative and scales the log-potential
// linearly, which is how edge strength is weighted throughout.
func WeightedPotentials(pot *mat.Dense, weight float64) *mat.Dense {
	if weight == 1 {
		return pot
	}
	out := mat.NewDense(pot.RawMatrix().Rows, pot.RawMatrix().Cols, nil)
	out.Apply(func(_, _ int, v float64) float64 { return math.Pow(v, weight) }, pot)

	return out
}
