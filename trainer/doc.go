// Package trainer defines the statistical-model capabilities the
// layered CRF engine delegates edge potentials to, plus three concrete
// models.
//
// What:
//
//   - Edge is the within-layer capability: accumulate paired feature
//     vectors with ground truth at training time, predict a pairwise
//     potential matrix from a feature pair at inference time.
//   - Link is the inter-layer capability: predict the base×occlusion
//     compatibility matrix from a single site's feature vector.
//   - Potts ignores features entirely — the classic data-independent
//     smoothness prior (diagonal val, off-diagonal 1).
//   - PottsCS attenuates the smoothness strength by the distance
//     between the two endpoint features, so label changes get cheap at
//     likely object boundaries. Three penalizers are available; all
//     equal 1 at zero distance and decay monotonically.
//   - Prior counts ground-truth label co-occurrences and predicts the
//     add-one-smoothed, max-normalized joint histogram.
//
// Why:
//
//   - The engine holds a capability reference and never knows the
//     training algorithm; any external model satisfying Edge or Link
//     plugs in the same way these do.
//
// Parameters:
//
//   - Potts/PottsCS read params[0] as val (> 0, the smoothness
//     strength) and PottsCS reads params[1] as λ (> 0, the distance
//     scale of the penalizer). Prior ignores params.
//
// Errors:
//
//   - ErrBadStates, ErrBadParams, ErrBadLabel, ErrFeatureLen.
package trainer
