// Package layered builds multi-layer pairwise CRF graphs over 2D
// grids and fills them with potentials — the construction side of the
// multi-layer CRF for labeling partially occluded regions.
//
// What:
//
//   - Graph wraps a borrowed pairwise.Graph backing with a layer count
//     and an edge-kind bitset (grid, diagonal, link), all fixed at
//     construction.
//   - BuildGraph enumerates W×H×layers nodes and the implied edge set;
//     intra-layer edges get group 0, inter-layer links group 1.
//   - DefineEdgeGroup regroups the edges crossing a line A·x+B·y+C=0.
//   - SetGraph / SetGraphLayered write per-site node potentials,
//     building the topology first when needed.
//   - AddDefaultEdgesModel / AddDefaultEdgesModelContrast write the
//     Potts and contrast-sensitive default edge models.
//   - AddFeatureVecs streams paired feature/ground-truth samples into
//     an external edge trainer (single-layer topologies only).
//   - FillEdges writes trainer-predicted potentials on every
//     intra-layer edge and link, always overwriting.
//
// Why:
//
//   - One canonical site walk drives building, regrouping, sampling
//     and filling, so the passes can never disagree about which edges
//     exist.
//
// Node identity:
//
//   - The node of site (x, y) on layer l has linear index
//     ((l·height)+y)·width + x — a stable bijection for a fixed size
//     and layer count, exposed as NodeIndex.
//
// Concurrency:
//
//   - No internal synchronization. Topology mutation (BuildGraph,
//     DefineEdgeGroup) must be exclusive and happen-before any
//     potential pass. Potential writes are local per node/edge, so the
//     caller may parallelize a pass over disjoint sites or edges. An
//     aborted pass leaves a partially updated potential set the caller
//     must treat as invalid.
//
// Complexity:
//
//   - BuildGraph: O(W×H×L) nodes + O(E) edges.
//   - Every pass (regroup, sample, fill): O(E) with O(1) per edge plus
//     the trainer's prediction cost.
//
// Errors:
//
//   - Configuration: ErrNoLayers, ErrBadSize, ErrBadLine, ErrBadValue,
//     ErrNilBacking, ErrNilBlock, ErrNilTrainer.
//   - Topology-state: ErrLayerCount, ErrLayeredSampling,
//     ErrStatesUnknown, ErrBlockShape.
//   - Not-yet-built: ErrNotBuilt.
package layered
