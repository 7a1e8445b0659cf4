package align

import "fmt"

// Matrix is a dense row-major grid of scores. The width is fixed at
// construction; the height is derived from the buffer length. Row 0
// and column 0 represent "before the sequence starts".
//
// A matrix is constructed fresh per alignment call, filled once,
// consumed by one or more tracebacks, then discarded. It is never
// shared across calls.
type Matrix struct {
	buf   []Score
	width int
}

// Cell addresses one matrix cell by row and column.
type Cell struct {
	I int
	J int
}

// NewMatrix returns a zero-filled height x width matrix.
func NewMatrix(height, width int) *Matrix {
	return &Matrix{buf: make([]Score, height*width), width: width}
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return len(m.buf) / m.width
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Get returns the score at (i, j), reporting false when the
// coordinates fall outside the grid. Tracebacks probe predecessor
// cells through Get and depend on the absent result at the borders.
func (m *Matrix) Get(i, j int) (Score, bool) {
	if i < 0 || j < 0 || j >= m.width || i >= m.Height() {
		return 0, false
	}
	return m.buf[i*m.width+j], true
}

// Set writes the score at (i, j), reporting false when the
// coordinates fall outside the grid.
func (m *Matrix) Set(i, j int, score Score) bool {
	if i < 0 || j < 0 || j >= m.width || i >= m.Height() {
		return false
	}
	m.buf[i*m.width+j] = score
	return true
}

// At reads a confirmed-valid cell. Invalid coordinates are a
// programming-invariant violation, not a recoverable error: At panics.
func (m *Matrix) At(i, j int) Score {
	score, ok := m.Get(i, j)
	if !ok {
		panic(fmt.Sprintf("align: index (%d, %d) out of range for %dx%d matrix",
			i, j, m.Height(), m.width))
	}
	return score
}

// SetAt writes a confirmed-valid cell, panicking on invalid
// coordinates.
func (m *Matrix) SetAt(i, j int, score Score) {
	if !m.Set(i, j, score) {
		panic(fmt.Sprintf("align: index (%d, %d) out of range for %dx%d matrix",
			i, j, m.Height(), m.width))
	}
}

// Max returns the largest score in the matrix.
func (m *Matrix) Max() Score {
	best := m.buf[0]
	for _, score := range m.buf[1:] {
		if score > best {
			best = score
		}
	}
	return best
}

// ArgmaxAll returns every cell holding the matrix-wide maximum, in
// row-major scan order. The order is deterministic and fixes the
// output ordering of tied local alignments.
func (m *Matrix) ArgmaxAll() []Cell {
	best := m.Max()
	var cells []Cell
	for idx, score := range m.buf {
		if score == best {
			cells = append(cells, Cell{I: idx / m.width, J: idx % m.width})
		}
	}
	return cells
}
