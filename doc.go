// Package crfgrid builds and populates multi-layer pairwise graphical
// models (Conditional Random Fields over stacked 2D grids) for
// structured image labeling with partially occluded regions.
//
// 🚀 What is crfgrid?
//
//	An in-memory engine that turns an image-sized grid into a layered
//	pairwise graph and fills it with potentials:
//		• Topology: 4-neighbor grid, diagonal, and inter-layer link edges
//		• Edge groups: geometric (line-based) regrouping for targeted assignment
//		• Potentials: per-site node vectors, bulk/grouped edge matrices
//		• Default edge models: Potts and contrast-sensitive Potts
//		• Trainer hookup: paired feature/ground-truth sampling and
//		  trainer-predicted edge filling
//
// ✨ Why choose crfgrid?
//
//   - Geometry you can trust – one canonical site walk drives building,
//     grouping, sampling and filling
//   - Swappable backing – the pairwise engine is an interface with dense
//     and adjacency-list implementations
//   - Caller-parallel – potential writes are local and non-overlapping,
//     safe to map over disjoint sites or edges
//   - Pure Go – gonum for the numerics, nothing else
//
// Everything is organized under four subpackages:
//
//	pairwise/ — generic pairwise-graph engine: nodes, edges, potentials, groups
//	block/    — W×H multi-channel float blocks: feature maps & potential planes
//	trainer/  — edge/link trainer capabilities + Potts, contrast-sensitive
//	            Potts and co-occurrence Prior models
//	layered/  — the layered CRF engine: build, group, assign, sample, fill
//
// Quick ASCII example (2 layers, 2×2 grid, grid+link edges):
//
//	base:   A───B        links:  A┆A'  B┆B'
//	        │   │                C┆C'  D┆D'
//	        C───D
//	occl:   A'──B'
//	        │   │
//	        C'──D'
//
// Inference (belief propagation, decoding) is deliberately out of scope:
// crfgrid builds the structure and writes the potentials; a decoder of
// your choice consumes them through the pairwise interface.
package crfgrid
