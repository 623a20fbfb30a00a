package trainer

import "gonum.org/v1/gonum/mat"

// Prior is a co-occurrence edge trainer: AddFeatureVecs counts joint
// ground-truth states across edges (symmetrically, since edges are
// undirected), and CalculateEdgePotentials predicts the add-one-
// smoothed joint histogram normalized so its largest entry is 1.
// Feature vectors are accepted but unused — the model is a pure label
// prior.
type Prior struct {
	states  int
	counts  *mat.Dense
	samples int
}

// interface compliance check
var _ Edge = (*Prior)(nil)

// NewPrior returns an empty co-occurrence trainer over nStates labels.
func NewPrior(nStates int) (*Prior, error) {
	if nStates <= 0 {
		return nil, ErrBadStates
	}

	return &Prior{states: nStates, counts: mat.NewDense(nStates, nStates, nil)}, nil
}

// AddFeatureVecs accumulates one paired ground-truth observation.
// Complexity: O(1).
func (t *Prior) AddFeatureVecs(_, _ []float64, gt1, gt2 byte) error {
	i, j := int(gt1), int(gt2)
	if i >= t.states || j >= t.states {
		return ErrBadLabel
	}
	t.counts.Set(i, j, t.counts.At(i, j)+1)
	if i != j {
		t.counts.Set(j, i, t.counts.At(j, i)+1)
	}
	t.samples++

	return nil
}

// Samples returns the number of accumulated observations.
func (t *Prior) Samples() int { return t.samples }

// Reset discards all accumulated statistics, keeping the label count.
func (t *Prior) Reset() {
	t.counts = mat.NewDense(t.states, t.states, nil)
	t.samples = 0
}

// CalculateEdgePotentials predicts the smoothed, max-normalized joint
// histogram. Features and params are ignored; with no samples the
// prediction is the uniform all-ones matrix.
// Complexity: O(nStates²).
func (t *Prior) CalculateEdgePotentials(_, _, _ []float64) (*mat.Dense, error) {
	pot := mat.NewDense(t.states, t.states, nil)
	maxCount := 0.0
	for i := 0; i < t.states; i++ {
		for j := 0; j < t.states; j++ {
			if c := t.counts.At(i, j); c > maxCount {
				maxCount = c
			}
		}
	}
	// add-one smoothing keeps unseen pairs strictly positive
	pot.Apply(func(_, _ int, v float64) float64 { return (v + 1) / (maxCount + 1) }, t.counts)

	return pot, nil
}
