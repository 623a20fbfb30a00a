package block

// Labels is a W×H grid of ground-truth states, one byte per site,
// stored row-major.
type Labels struct {
	w, h int
	data []byte
}

// NewLabels creates a zero-filled W×H label grid.
func NewLabels(width, height int) (*Labels, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadShape
	}

	return &Labels{w: width, h: height, data: make([]byte, width*height)}, nil
}

// LabelsFrom deep-copies a rectangular [][]byte into a label grid;
// rows[y][x] is the state of site (x, y).
// Complexity: O(W×H).
func LabelsFrom(rows [][]byte) (*Labels, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRagged
		}
	}
	l := &Labels{w: w, h: h, data: make([]byte, w*h)}
	for y := 0; y < h; y++ {
		copy(l.data[y*w:(y+1)*w], rows[y])
	}

	return l, nil
}

// Width returns the number of sites per row.
func (l *Labels) Width() int { return l.w }

// Height returns the number of rows.
func (l *Labels) Height() int { return l.h }

// At returns the state of site (x, y). Panics outside the grid.
func (l *Labels) At(x, y int) byte {
	if x < 0 || x >= l.w || y < 0 || y >= l.h {
		panic(ErrCoordRange)
	}

	return l.data[y*l.w+x]
}

// SetAt stores the state of site (x, y).
func (l *Labels) SetAt(x, y int, state byte) error {
	if x < 0 || x >= l.w || y < 0 || y >= l.h {
		return ErrCoordRange
	}
	l.data[y*l.w+x] = state

	return nil
}
