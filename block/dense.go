package block

import "gonum.org/v1/gonum/mat"

// Dense is a W×H grid of sites, each carrying a C-length float64
// vector. Storage is one flat slice in row-major order: the vector of
// site (x, y) starts at ((y·W)+x)·C.
type Dense struct {
	w, h, c int
	data    []float64
}

// New creates a zero-filled W×H block with the given channel count.
// Complexity: O(W×H×C) time and memory.
func New(width, height, channels int) (*Dense, error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{w: width, h: height, c: channels, data: make([]float64, width*height*channels)}, nil
}

// FromPlanes assembles a block from one single-channel plane per
// channel: planes[i] becomes channel i, and each plane is an H×W gonum
// matrix (rows are grid rows). All planes must share the same size.
// The input is copied; later plane mutation does not affect the block.
// Complexity: O(W×H×C).
func FromPlanes(planes []*mat.Dense) (*Dense, error) {
	if len(planes) == 0 {
		return nil, ErrNoPlanes
	}
	if planes[0] == nil {
		return nil, ErrPlaneShape
	}
	h, w := planes[0].Dims()
	for _, p := range planes[1:] {
		if p == nil {
			return nil, ErrPlaneShape
		}
		if ph, pw := p.Dims(); ph != h || pw != w {
			return nil, ErrPlaneShape
		}
	}
	b, err := New(w, h, len(planes))
	if err != nil {
		return nil, err
	}
	for ch, p := range planes {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.data[b.offset(x, y)+ch] = p.At(y, x)
			}
		}
	}

	return b, nil
}

// Width returns the number of sites per row.
func (b *Dense) Width() int { return b.w }

// Height returns the number of rows.
func (b *Dense) Height() int { return b.h }

// Channels returns the per-site vector length.
func (b *Dense) Channels() int { return b.c }

// InBounds reports whether (x, y) lies within the block.
// Complexity: O(1).
func (b *Dense) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// offset computes the flat index of site (x, y)'s first channel.
func (b *Dense) offset(x, y int) int {
	return ((y * b.w) + x) * b.c
}

// At returns the vector of site (x, y) as a view into the backing
// slice: mutating the returned slice mutates the block. Callers that
// need isolation must copy. Panics outside the block.
// Complexity: O(1).
func (b *Dense) At(x, y int) []float64 {
	if !b.InBounds(x, y) {
		panic(ErrCoordRange)
	}
	off := b.offset(x, y)

	return b.data[off : off+b.c : off+b.c]
}

// SetAt copies sample into the vector of site (x, y).
func (b *Dense) SetAt(x, y int, sample []float64) error {
	if !b.InBounds(x, y) {
		return ErrCoordRange
	}
	if len(sample) != b.c {
		return ErrSampleLen
	}
	copy(b.At(x, y), sample)

	return nil
}

// Plane extracts channel ch as a fresh H×W gonum matrix.
// Complexity: O(W×H).
func (b *Dense) Plane(ch int) (*mat.Dense, error) {
	if ch < 0 || ch >= b.c {
		return nil, ErrChannelRange
	}
	p := mat.NewDense(b.h, b.w, nil)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			p.Set(y, x, b.data[b.offset(x, y)+ch])
		}
	}

	return p, nil
}
