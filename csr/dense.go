// SPDX-License-Identifier: MIT

// Package csr: Dense storage (row-major) and CSR<->dense conversions.
//
// Dense exists for the dense-conversion multiplication kernel and for
// test diagnostics; it is deliberately minimal. Data is exported in the
// same spirit as the Matrix buffers: kernels index the flat slice with
// the explicit formula row*Cols+col.

package csr

import "fmt"

// Dense is a row-major rows×cols matrix of float32 values.
// Data has length Rows*Cols; the element (r,c) lives at Data[r*Cols+c].
type Dense struct {
	Rows int
	Cols int
	Data []float32
}

// NewDense creates a zero-filled rows×cols dense matrix.
// Fails with ErrInvalidDimensions on a non-positive shape and ErrTooLarge
// when the element count overflows.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < minDimension || cols < minDimension {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	n, err := checkedCount(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	return &Dense{Rows: rows, Cols: cols, Data: make([]float32, n)}, nil
}

// At returns the element at (row, col). Out-of-range indices yield
// ErrColumnOutOfRange; this accessor is for diagnostics, hot loops index
// Data directly.
func (d *Dense) At(row, col int) (float32, error) {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrColumnOutOfRange)
	}

	return d.Data[row*d.Cols+col], nil
}

// Set assigns v at (row, col), with the same bounds policy as At.
func (d *Dense) Set(row, col int, v float32) error {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrColumnOutOfRange)
	}
	d.Data[row*d.Cols+col] = v

	return nil
}

// ToDense expands m into a freshly allocated dense buffer.
// Complexity: O(Rows*Cols) for the zero fill plus O(NNZ) for the scatter.
func (m *Matrix) ToDense() (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	d, err := NewDense(m.Rows, m.Cols)
	if err != nil {
		return nil, err
	}

	for r := 0; r < m.Rows; r++ {
		base := r * m.Cols
		for i := m.RowPtr[r]; i < m.RowPtr[r+1]; i++ {
			d.Data[base+m.ColIndices[i]] = m.Values[i]
		}
	}

	return d, nil
}

// FromDense derives a clean CSR matrix from d by scanning for non-zero
// cells in row-major order. The result's buffers are exactly sized; no
// compaction step is needed.
// Complexity: O(Rows*Cols).
func FromDense(d *Dense) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}

	nnz := 0
	for _, v := range d.Data {
		if v != 0 {
			nnz++
		}
	}

	m := &Matrix{
		Rows:       d.Rows,
		Cols:       d.Cols,
		Values:     make([]float32, nnz),
		ColIndices: make([]int, nnz),
		RowPtr:     make([]int, d.Rows+1),
	}

	at := 0
	for r := 0; r < d.Rows; r++ {
		base := r * d.Cols
		for c := 0; c < d.Cols; c++ {
			if v := d.Data[base+c]; v != 0 {
				m.Values[at] = v
				m.ColIndices[at] = c
				at++
			}
		}
		m.RowPtr[r+1] = at
	}

	return m, nil
}
