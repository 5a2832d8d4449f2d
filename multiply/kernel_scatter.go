// SPDX-License-Identifier: MIT

// Package multiply: scatter-accumulate kernel (selector 2) and the shared
// row-range accumulation routine reused by the threaded kernel.

package multiply

import "github.com/sparsekit/csrmul/csr"

// scatterRows runs Gustavson accumulation for rows [startRow, endRow) of
// A into res, whose buffers are sized at the dense bound. Each output row
// is a dense window embedded at absolute offset row*Cols, so a
// contribution to column j lands at res.Values[row*Cols+j] and the row
// pointers are fixed a priori to (row+1)*Cols.
//
// The routine touches only slots inside its own row range; the threaded
// kernel relies on that to run several ranges concurrently over one
// shared result without locks.
func scatterRows(a, b, res *csr.Matrix, startRow, endRow int) {
	cols := res.Cols
	for i := startRow; i < endRow; i++ {
		base := i * cols
		for ia := a.RowPtr[i]; ia < a.RowPtr[i+1]; ia++ {
			va := a.Values[ia]
			// Row k of B pairs with column k of A.
			k := a.ColIndices[ia]
			for ib := b.RowPtr[k]; ib < b.RowPtr[k+1]; ib++ {
				j := b.ColIndices[ib]
				res.Values[base+j] += va * b.Values[ib]
				res.ColIndices[base+j] = j
			}
		}
		// Over-provisioned uniformly: every row owns exactly cols slots.
		res.RowPtr[i+1] = (i + 1) * cols
	}
}

// multiplyScatter is the unpredicted scatter-accumulate kernel: dense
// bound allocation, single-threaded accumulation, one compaction pass to
// strip the zero-valued filler slots.
// Complexity: O(flops + Rows(A)*Cols(B)) time, dense-bound memory.
func multiplyScatter(a, b *csr.Matrix) (*csr.Matrix, error) {
	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	res, err := newResult(a, b, denseBound)
	if err != nil {
		return nil, err
	}

	scatterRows(a, b, res, 0, a.Rows)

	return compact(res), nil
}
