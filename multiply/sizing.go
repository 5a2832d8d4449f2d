// SPDX-License-Identifier: MIT

// Package multiply: compatibility checking and result-buffer sizing.
//
// Two allocation policies exist. The dense bound sizes the scratch
// buffers at Rows(A)*Cols(B) so kernels can address slots by absolute
// offset; the predicted bound sizes them by a structural upper bound on
// the product's non-zero count, trading addressing convenience for
// memory. Both produce zero-filled buffers that the owning kernel dirties
// and compaction later shrinks.

package multiply

import (
	"fmt"
	"math/bits"

	"github.com/sparsekit/csrmul/csr"
)

// sizePolicy selects how large the result's scratch buffers are.
type sizePolicy int

const (
	// denseBound allocates Rows(A)*Cols(B) slots.
	denseBound sizePolicy = iota

	// predictedBound allocates predictSize(a, b) slots.
	predictedBound
)

// maxInt is the largest value representable by int on this platform.
const maxInt = int(^uint(0) >> 1)

// canMultiply reports whether a*b is mathematically defined: the shared
// dimension matches and all four dimensions are at least 1.
func canMultiply(a, b *csr.Matrix) bool {
	return a.Cols == b.Rows &&
		a.Rows >= 1 && a.Cols >= 1 &&
		b.Rows >= 1 && b.Cols >= 1
}

// checkedCount multiplies two non-negative counts, failing with ErrTooLarge
// when the product does not fit in int.
func checkedCount(rows, cols int) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, fmt.Errorf("%dx%d slots: %w", rows, cols, ErrTooLarge)
	}

	return int(lo), nil
}

// predictSize returns an upper bound on the non-zero count of a*b.
//
// For each shared dimension index k, every non-zero in column k of A can
// combine with every non-zero in row k of B, so the bound is
// sum_k fanOutA[k]*fanInB[k], capped at the dense bound Rows(A)*Cols(B).
// The sum over-counts when several k feed the same output cell, but never
// under-counts. Two linear passes over A's and B's structure.
// Complexity: O(NNZ(A) + Rows(B)).
func predictSize(a, b *csr.Matrix) (int, error) {
	max, err := checkedCount(a.Rows, b.Cols)
	if err != nil {
		return 0, err
	}

	// fanOut[k] = non-zeros in column k of A; B's fan-in per row is read
	// straight off its row pointers.
	fanOut := make([]int, a.Cols)
	for _, col := range a.ColIndices {
		fanOut[col]++
	}

	total := 0
	for k := 0; k < a.Cols; k++ {
		width := b.RowPtr[k+1] - b.RowPtr[k]
		// Cap before the addition so the running total cannot overflow.
		if fanOut[k] > 0 && width > (max-total)/fanOut[k] {
			return max, nil
		}
		total += fanOut[k] * width
	}
	if total > max {
		total = max
	}

	return total, nil
}

// newResult allocates the result matrix for a*b under the given policy:
// zero-filled Values/ColIndices at the policy's bound and a zeroed
// row-pointer array of length Rows(A)+1. On failure nothing is allocated
// and no partially built matrix escapes.
func newResult(a, b *csr.Matrix, policy sizePolicy) (*csr.Matrix, error) {
	var (
		size int
		err  error
	)
	if policy == predictedBound {
		size, err = predictSize(a, b)
	} else {
		size, err = checkedCount(a.Rows, b.Cols)
	}
	if err != nil {
		return nil, err
	}

	return &csr.Matrix{
		Rows:       a.Rows,
		Cols:       b.Cols,
		Values:     make([]float32, size),
		ColIndices: make([]int, size),
		RowPtr:     make([]int, a.Rows+1),
	}, nil
}
