// SPDX-License-Identifier: MIT

// Package multiply: public entry point.

package multiply

import (
	"fmt"

	"github.com/sparsekit/csrmul/csr"
)

// Multiply computes a*b and returns a clean CSR result.
//
// The strategy defaults to Auto and is selected with WithKernel. Every
// kernel validates compatibility first (ErrDimensionMismatch, nothing
// allocated), then allocates, computes, and compacts. The returned matrix
// has Rows(a) rows and Cols(b) columns, stores no zeros, and repeats no
// column within a row. On error the returned matrix is nil.
//
// Operands are read-only for the duration of the call and are never
// retained.
func Multiply(a, b *csr.Matrix, opts ...Option) (*csr.Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}

	o := gatherOptions(opts...)
	switch o.kernel {
	case Auto:
		return multiplyAuto(a, b)
	case DenseConvert:
		return multiplyDense(a, b)
	case Scatter:
		return multiplyScatter(a, b)
	case ScatterSIMD128:
		return multiplyLanes128(a, b)
	case ScatterSIMD256:
		return multiplyLanes256(a, b)
	case ScatterPredicted:
		return multiplyPredicted(a, b)
	default:
		return nil, fmt.Errorf("kernel %d: %w", int(o.kernel), ErrUnknownKernel)
	}
}

// dimensionError builds the uniform shape-mismatch error used by every
// kernel.
func dimensionError(a, b *csr.Matrix) error {
	return fmt.Errorf("%dx%d * %dx%d: %w", a.Rows, a.Cols, b.Rows, b.Cols, ErrDimensionMismatch)
}
