// SPDX-License-Identifier: MIT

// Package multiply: post-multiplication compaction.

package multiply

import "github.com/sparsekit/csrmul/csr"

// compact removes the zero-valued filler slots that the scatter kernels
// leave between real entries and shrinks the buffers to the true
// non-zero count, restoring the clean-matrix invariant.
//
// Single linear pass with a write cursor: within each row's old range,
// non-zero slots are copied down to the cursor and zero slots are counted
// as removed; each row pointer is rewritten as its old value minus the
// removals seen so far. Afterwards Values/ColIndices are reallocated at
// exactly the final length, releasing the upper-bound slack.
// Complexity: O(capacity) time, O(NNZ) extra space for the shrink.
func compact(m *csr.Matrix) *csr.Matrix {
	nnz := 0
	removed := 0
	beg := m.RowPtr[0]

	for row := 1; row <= m.Rows; row++ {
		end := m.RowPtr[row]
		for ; beg < end; beg++ {
			if m.Values[beg] != 0 {
				m.Values[nnz] = m.Values[beg]
				m.ColIndices[nnz] = m.ColIndices[beg]
				nnz++
			} else {
				removed++
			}
		}
		m.RowPtr[row] = end - removed
	}

	// Shrink to fit. A fresh exact-length allocation (rather than a
	// capacity-keeping reslice) lets the oversized scratch buffers be
	// collected even when the caller holds the result for a long time.
	values := make([]float32, nnz)
	copy(values, m.Values[:nnz])
	colIndices := make([]int, nnz)
	copy(colIndices, m.ColIndices[:nnz])
	m.Values = values
	m.ColIndices = colIndices

	return m
}
