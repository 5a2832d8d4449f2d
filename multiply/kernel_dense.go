// SPDX-License-Identifier: MIT

// Package multiply: dense-conversion kernel (selector 1).

package multiply

import (
	"fmt"

	"github.com/sparsekit/csrmul/csr"
)

// multiplyDense expands both operands into row-major dense buffers,
// multiplies with the textbook triple loop, and re-derives CSR form by
// scanning the product for non-zeros in row-major order. The result is
// emitted directly at its final size, so no compaction pass runs.
//
// Memory is O(Rows(A)*Cols(A) + Rows(B)*Cols(B) + Rows(A)*Cols(B)); a
// failure to build any of the three dense buffers surfaces as
// ErrConversion.
// Complexity: O(Rows(A)*Cols(B)*Cols(A)).
func multiplyDense(a, b *csr.Matrix) (*csr.Matrix, error) {
	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	da, err := a.ToDense()
	if err != nil {
		return nil, fmt.Errorf("operand a: %w: %w", ErrConversion, err)
	}
	db, err := b.ToDense()
	if err != nil {
		return nil, fmt.Errorf("operand b: %w: %w", ErrConversion, err)
	}
	out, err := csr.NewDense(a.Rows, b.Cols)
	if err != nil {
		return nil, fmt.Errorf("result: %w: %w", ErrConversion, err)
	}

	// Fixed i -> j -> k loop order: each output cell accumulates its
	// contributions in ascending k, matching the per-cell order of the
	// scatter kernels on row-sorted operands so outputs stay bitwise
	// identical across variants.
	for i := 0; i < a.Rows; i++ {
		rowA := da.Data[i*da.Cols : (i+1)*da.Cols]
		rowOut := out.Data[i*out.Cols : (i+1)*out.Cols]
		for j := 0; j < b.Cols; j++ {
			sum := rowOut[j]
			for k := 0; k < a.Cols; k++ {
				sum += rowA[k] * db.Data[k*db.Cols+j]
			}
			rowOut[j] = sum
		}
	}

	res, err := csr.FromDense(out)
	if err != nil {
		return nil, fmt.Errorf("result: %w: %w", ErrConversion, err)
	}

	return res, nil
}
