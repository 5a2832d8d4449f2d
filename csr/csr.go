// SPDX-License-Identifier: MIT

// Package csr: the Matrix type and its structural invariants.
//
// Field layout mirrors the classic CSR triple. Fields are exported so that
// kernels (package multiply) and codecs (package matfile) can operate on
// the raw buffers without copying; everything outside those packages
// should treat a Matrix as immutable once obtained.

package csr

import (
	"fmt"
	"math/bits"
)

// minDimension is the smallest legal row/column count for a well-formed
// matrix. Multiplication is undefined on degenerate shapes.
const minDimension = 1

// Matrix is a sparse rows×cols matrix in Compressed Sparse Row form.
//
//   - Values holds the stored entries (length == NNZ for a clean matrix).
//   - ColIndices[i] is the column of Values[i]; same length as Values.
//   - RowPtr has length Rows+1; the half-open range
//     [RowPtr[r], RowPtr[r+1]) indexes the entries of row r.
//
// Kernels allocate Values/ColIndices larger than the final NNZ and shrink
// them during compaction; a Matrix that escapes this package's producers
// always satisfies Validate.
type Matrix struct {
	Rows int
	Cols int

	Values     []float32
	ColIndices []int
	RowPtr     []int
}

// New returns an empty (zero non-zeros) rows×cols matrix.
// Complexity: O(rows) for the row-pointer array.
func New(rows, cols int) (*Matrix, error) {
	if rows < minDimension || cols < minDimension {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{
		Rows:       rows,
		Cols:       cols,
		Values:     []float32{},
		ColIndices: []int{},
		RowPtr:     make([]int, rows+1),
	}, nil
}

// NewFromParts assembles a Matrix from pre-built buffers and validates the
// full invariant set before returning it. The buffers are adopted, not
// copied.
func NewFromParts(rows, cols int, values []float32, colIndices, rowPtr []int) (*Matrix, error) {
	m := &Matrix{Rows: rows, Cols: cols, Values: values, ColIndices: colIndices, RowPtr: rowPtr}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int {
	return len(m.Values)
}

// Clone returns a deep copy; the result shares no buffers with m.
// Complexity: O(NNZ + Rows).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}

	c := &Matrix{
		Rows:       m.Rows,
		Cols:       m.Cols,
		Values:     make([]float32, len(m.Values)),
		ColIndices: make([]int, len(m.ColIndices)),
		RowPtr:     make([]int, len(m.RowPtr)),
	}
	copy(c.Values, m.Values)
	copy(c.ColIndices, m.ColIndices)
	copy(c.RowPtr, m.RowPtr)

	return c
}

// Validate checks every structural invariant of a clean CSR matrix:
// positive shape, matching buffer lengths, a well-formed row-pointer array
// (starts at 0, row widths within [0, Cols], final pointer == NNZ),
// in-range column indices, per-row column uniqueness, and the absence of
// stored zeros. Returns the first violation found, wrapped with location
// context.
// Complexity: O(NNZ + Rows).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.Rows < minDimension || m.Cols < minDimension {
		return fmt.Errorf("Validate(%dx%d): %w", m.Rows, m.Cols, ErrInvalidDimensions)
	}
	if len(m.ColIndices) != len(m.Values) {
		return fmt.Errorf("Validate: len(colIndices)=%d len(values)=%d: %w",
			len(m.ColIndices), len(m.Values), ErrLengthMismatch)
	}
	if len(m.RowPtr) != m.Rows+1 {
		return fmt.Errorf("Validate: len(rowPtr)=%d want %d: %w",
			len(m.RowPtr), m.Rows+1, ErrBadRowPointers)
	}
	if m.RowPtr[0] != 0 {
		return fmt.Errorf("Validate: rowPtr[0]=%d: %w", m.RowPtr[0], ErrBadRowPointers)
	}
	if m.RowPtr[m.Rows] != len(m.Values) {
		return fmt.Errorf("Validate: rowPtr[%d]=%d want %d: %w",
			m.Rows, m.RowPtr[m.Rows], len(m.Values), ErrBadRowPointers)
	}

	// Vet the whole pointer array before touching the entry buffers: a
	// non-monotone pointer could otherwise index past them.
	for r := 0; r < m.Rows; r++ {
		width := m.RowPtr[r+1] - m.RowPtr[r]
		if width < 0 || width > m.Cols || m.RowPtr[r+1] > len(m.Values) {
			return fmt.Errorf("Validate: row %d width %d: %w", r, width, ErrBadRowPointers)
		}
	}

	for r := 0; r < m.Rows; r++ {
		seen := make(map[int]struct{}, m.RowPtr[r+1]-m.RowPtr[r])
		for i := m.RowPtr[r]; i < m.RowPtr[r+1]; i++ {
			col := m.ColIndices[i]
			if col < 0 || col >= m.Cols {
				return fmt.Errorf("Validate: row %d col %d: %w", r, col, ErrColumnOutOfRange)
			}
			if _, dup := seen[col]; dup {
				return fmt.Errorf("Validate: row %d col %d: %w", r, col, ErrDuplicateColumn)
			}
			seen[col] = struct{}{}

			if m.Values[i] == 0 {
				return fmt.Errorf("Validate: row %d col %d: %w", r, col, ErrZeroValue)
			}
		}
	}

	return nil
}

// checkedCount multiplies two non-negative counts and fails with ErrTooLarge
// when the product does not fit in int. Overflow is treated identically to
// an allocation failure everywhere in this module.
func checkedCount(rows, cols int) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, fmt.Errorf("%dx%d elements: %w", rows, cols, ErrTooLarge)
	}

	return int(lo), nil
}

// maxInt is the largest value representable by int on this platform.
const maxInt = int(^uint(0) >> 1)
