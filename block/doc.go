// Package block provides rectangular multi-channel data blocks for
// grid-structured models: a W×H grid of sites where every site carries
// a fixed-length float64 vector (a feature vector or a potential
// vector), plus a byte-valued label grid for ground truth.
//
// What:
//
//   - Dense wraps a W×H×C block in one flat row-major slice.
//   - FromPlanes assembles a block from per-channel gonum matrices,
//     the "one single-channel plane per feature" input form; it is
//     numerically identical to filling a multi-channel block site by
//     site.
//   - Labels wraps a W×H byte grid of ground-truth states.
//
// Why:
//
//   - Feature extraction pipelines hand over per-site vectors; node
//     potential assignment hands over per-site label scores. Both are
//     the same shape, so both ride the same type.
//
// Complexity:
//
//   - At/SetAt: O(1) (At returns a view into the backing slice).
//   - FromPlanes/Plane: O(W×H) per channel.
//
// Errors:
//
//   - ErrBadShape, ErrRagged, ErrNoPlanes, ErrPlaneShape,
//     ErrSampleLen, ErrChannelRange.
package block
