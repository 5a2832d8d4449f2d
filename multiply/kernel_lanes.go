// SPDX-License-Identifier: MIT

// Package multiply: lane-batched scatter kernels (selectors 3 and 4).
//
// Same accumulation scheme as the scatter kernel, but the inner loop over
// a row segment of B is processed in fixed-width batches: the scalar
// A-value is broadcast across the lanes, multiplied against a contiguous
// load of B's values, and the products are then scattered one by one:
// the destinations depend on B's column indices, so the scatter itself
// cannot be batched. A scalar tail handles segment lengths that are not a
// multiple of the lane width.

package multiply

import "github.com/sparsekit/csrmul/csr"

const (
	// lanes128 is the lane count of a 128-bit single-precision vector.
	lanes128 = 4

	// lanes256 is the lane count of a 256-bit single-precision vector.
	lanes256 = 8
)

// multiplyLanes128 is the 4-lane scatter kernel.
func multiplyLanes128(a, b *csr.Matrix) (*csr.Matrix, error) {
	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	res, err := newResult(a, b, denseBound)
	if err != nil {
		return nil, err
	}

	laneRows128(a, b, res)

	return compact(res), nil
}

// multiplyLanes256 is the 8-lane scatter kernel. Without AVX on the
// executing processor it falls back to the dense-conversion kernel, which
// produces the identical result through the scalar path.
func multiplyLanes256(a, b *csr.Matrix) (*csr.Matrix, error) {
	if !wideLanesSupported {
		return multiplyDense(a, b)
	}

	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	res, err := newResult(a, b, denseBound)
	if err != nil {
		return nil, err
	}

	laneRows256(a, b, res)

	return compact(res), nil
}

// laneRows128 accumulates all rows with a 4-wide batched inner loop.
func laneRows128(a, b, res *csr.Matrix) {
	var prod [lanes128]float32
	cols := res.Cols

	for i := 0; i < a.Rows; i++ {
		base := i * cols
		for ia := a.RowPtr[i]; ia < a.RowPtr[i+1]; ia++ {
			va := a.Values[ia]
			k := a.ColIndices[ia]
			ib := b.RowPtr[k]
			end := b.RowPtr[k+1]

			// Batched body: broadcast va, multiply a full lane load,
			// scatter each product through its own column index.
			for ; end-ib >= lanes128; ib += lanes128 {
				bv := b.Values[ib : ib+lanes128 : ib+lanes128]
				prod[0] = va * bv[0]
				prod[1] = va * bv[1]
				prod[2] = va * bv[2]
				prod[3] = va * bv[3]

				bc := b.ColIndices[ib : ib+lanes128 : ib+lanes128]
				for l := 0; l < lanes128; l++ {
					j := bc[l]
					res.Values[base+j] += prod[l]
					res.ColIndices[base+j] = j
				}
			}

			// Scalar tail for the remainder.
			for ; ib < end; ib++ {
				j := b.ColIndices[ib]
				res.Values[base+j] += va * b.Values[ib]
				res.ColIndices[base+j] = j
			}
		}
		res.RowPtr[i+1] = (i + 1) * cols
	}
}

// laneRows256 accumulates all rows with an 8-wide batched inner loop.
func laneRows256(a, b, res *csr.Matrix) {
	var prod [lanes256]float32
	cols := res.Cols

	for i := 0; i < a.Rows; i++ {
		base := i * cols
		for ia := a.RowPtr[i]; ia < a.RowPtr[i+1]; ia++ {
			va := a.Values[ia]
			k := a.ColIndices[ia]
			ib := b.RowPtr[k]
			end := b.RowPtr[k+1]

			for ; end-ib >= lanes256; ib += lanes256 {
				bv := b.Values[ib : ib+lanes256 : ib+lanes256]
				prod[0] = va * bv[0]
				prod[1] = va * bv[1]
				prod[2] = va * bv[2]
				prod[3] = va * bv[3]
				prod[4] = va * bv[4]
				prod[5] = va * bv[5]
				prod[6] = va * bv[6]
				prod[7] = va * bv[7]

				bc := b.ColIndices[ib : ib+lanes256 : ib+lanes256]
				for l := 0; l < lanes256; l++ {
					j := bc[l]
					res.Values[base+j] += prod[l]
					res.ColIndices[base+j] = j
				}
			}

			for ; ib < end; ib++ {
				j := b.ColIndices[ib]
				res.Values[base+j] += va * b.Values[ib]
				res.ColIndices[base+j] = j
			}
		}
		res.RowPtr[i+1] = (i + 1) * cols
	}
}
