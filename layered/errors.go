package layered

import "errors"

var (
	// ErrNilBacking indicates a nil pairwise backing at construction.
	ErrNilBacking = errors.New("layered: backing graph must not be nil")
	// ErrNoLayers indicates a layer count below 1.
	ErrNoLayers = errors.New("layered: layer count must be at least 1")
	// ErrBadSize indicates negative or one-sided-zero grid dimensions.
	ErrBadSize = errors.New("layered: grid size must be (0,0) or strictly positive")
	// ErrBadLine indicates line coefficients with A and B both zero.
	ErrBadLine = errors.New("layered: line coefficients A and B must not both be zero")
	// ErrBadValue indicates a non-positive smoothness value.
	ErrBadValue = errors.New("layered: smoothness value must be > 0")
	// ErrNotBuilt indicates a potential pass over an empty topology.
	ErrNotBuilt = errors.New("layered: topology has not been built")
	// ErrLayerCount indicates an operation incompatible with the
	// engine's layer count (e.g. a two-layer fill on one layer).
	ErrLayerCount = errors.New("layered: operation incompatible with the layer count")
	// ErrLayeredSampling indicates feature sampling on a topology that
	// carries links or multiple layers.
	ErrLayeredSampling = errors.New("layered: feature sampling requires a single-layer, link-free topology")
	// ErrBlockShape indicates a block whose spatial size does not match
	// the graph size.
	ErrBlockShape = errors.New("layered: block size does not match the graph size")
	// ErrNilBlock indicates a nil feature/potential/label block.
	ErrNilBlock = errors.New("layered: block must not be nil")
	// ErrNilTrainer indicates a nil required trainer.
	ErrNilTrainer = errors.New("layered: trainer must not be nil")
	// ErrStatesUnknown indicates a default edge model requested before
	// node label counts were fixed by a SetGraph call.
	ErrStatesUnknown = errors.New("layered: node label counts are not set yet")
)
