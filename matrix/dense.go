package matrix

import "fmt"

// Dense is a row-major dense matrix backed by a single flat slice.
// The zero value is not usable; construct via NewDense or FromRows.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zeroed r×c matrix.
// Returns ErrBadShape when r <= 0 or c <= 0.
func NewDense(r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, r, c)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// FromRows builds a Dense from a rectangular slice-of-rows.
// Returns ErrBadShape on empty or ragged input. The input is copied.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: ragged row %d (len %d, want %d)", ErrBadShape, i, len(row), c)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j), or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.r, m.c)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns the element at (i, j), or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, i, j, m.r, m.c)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns an independent deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Row returns a copy of row i. Out-of-range i yields ErrOutOfRange.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.r)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Diag returns a copy of the main diagonal (length min(r, c)).
func (m *Dense) Diag() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}
