package label

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major boolean matrix with one row per character and one column per label.
type Matrix struct {
	rows int
	cols int
	data []bool
}

// NewMatrix allocates an all-false matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

// Empty returns a zero-row matrix of the standard label width.
func Empty() Matrix {
	return NewMatrix(0, NumLabels)
}

// OneHot returns a rows×NumLabels matrix with column f set on every row.
func OneHot(rows int, f Field) Matrix {
	m := NewMatrix(rows, NumLabels)
	for i := 0; i < rows; i++ {
		m.data[i*m.cols+int(f)] = true
	}
	return m
}

// FromIndices expands one label index per row into a one-hot matrix.
func FromIndices(indices []int) (Matrix, error) {
	m := NewMatrix(len(indices), NumLabels)
	for i, idx := range indices {
		if !Field(idx).Valid() {
			return Matrix{}, errors.Newf("label: row %d has invalid label %d", i, idx)
		}
		m.data[i*m.cols+idx] = true
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (int, int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Field returns the label of row i. It is only meaningful for a one-hot row.
func (m Matrix) Field(i int) Field {
	for j := 0; j < m.cols; j++ {
		if m.data[i*m.cols+j] {
			return Field(j)
		}
	}
	return Blank
}

// Indices compresses the matrix into one label index per row.
func (m Matrix) Indices() []int {
	out := make([]int, m.rows)
	for i := range out {
		out[i] = int(m.Field(i))
	}
	return out
}

// Validate checks the standard width and that every row has exactly one set column.
func (m Matrix) Validate() error {
	if m.cols != NumLabels {
		return errors.AssertionFailedf("label: matrix has %d columns, want %d", m.cols, NumLabels)
	}
	for i := 0; i < m.rows; i++ {
		set := 0
		for j := 0; j < m.cols; j++ {
			if m.data[i*m.cols+j] {
				set++
			}
		}
		if set != 1 {
			return errors.AssertionFailedf("label: row %d has %d labels set, want exactly 1", i, set)
		}
	}
	return nil
}

// Dense converts the matrix to a float64 gonum matrix of 0/1 values.
// gonum cannot represent zero-sized matrices, so an empty matrix yields nil.
func (m Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i*m.cols+j] {
				d.Set(i, j, 1)
			}
		}
	}
	return d
}

// Equal reports whether both matrices have the same shape and contents.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// stack appends matrices vertically. Callers guarantee a common width.
func stack(ms ...Matrix) Matrix {
	rows := 0
	for _, m := range ms {
		rows += m.rows
	}
	out := Matrix{rows: rows, cols: ms[0].cols, data: make([]bool, 0, rows*ms[0].cols)}
	for _, m := range ms {
		out.data = append(out.data, m.data...)
	}
	return out
}
