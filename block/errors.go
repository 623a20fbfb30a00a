package block

import "errors"

var (
	// ErrBadShape indicates non-positive width, height or channel count.
	ErrBadShape = errors.New("block: width, height and channels must be > 0")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("block: all rows must have the same length")
	// ErrNoPlanes indicates an empty plane list.
	ErrNoPlanes = errors.New("block: at least one plane is required")
	// ErrPlaneShape indicates a nil plane or planes of differing sizes.
	ErrPlaneShape = errors.New("block: planes must be non-nil and equally sized")
	// ErrSampleLen indicates a per-site vector of the wrong length.
	ErrSampleLen = errors.New("block: sample length must equal the channel count")
	// ErrCoordRange indicates a site coordinate outside the block.
	ErrCoordRange = errors.New("block: site coordinates out of range")
	// ErrChannelRange indicates a channel index outside [0, Channels).
	ErrChannelRange = errors.New("block: channel index out of range")
)
