// SPDX-License-Identifier: MIT

// Package multiply: size-predicted scatter kernel (selector 5).

package multiply

import "github.com/sparsekit/csrmul/csr"

// multiplyPredicted accumulates into a buffer sized by the non-zero
// upper-bound prediction. Rows no longer own a uniform Cols-wide window,
// so contributions cannot be addressed by absolute column offset.
// Instead, each output row maintains a moving window [rowBegin, rowEnd)
// of already-placed entries: a contribution to column j linearly scans
// the window and either adds into the slot already holding j or claims
// the first zero-valued slot, extending the window.
//
// The probe is O(window) per contribution, worst-case quadratic in a
// row's entry count. That is the intended trade: memory proportional to
// the predicted bound instead of the dense bound. The compaction pass
// afterwards only trims the unused tail capacity left by prediction
// slack.
func multiplyPredicted(a, b *csr.Matrix) (*csr.Matrix, error) {
	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	res, err := newResult(a, b, predictedBound)
	if err != nil {
		return nil, err
	}

	capacity := len(res.Values)
	rowBegin := 0
	rowEnd := 0

	for i := 0; i < a.Rows; i++ {
		for ia := a.RowPtr[i]; ia < a.RowPtr[i+1]; ia++ {
			va := a.Values[ia]
			k := a.ColIndices[ia]

			for ib := b.RowPtr[k]; ib < b.RowPtr[k+1]; ib++ {
				j := b.ColIndices[ib]
				vc := va * b.Values[ib]

				// Linear probe over the current row's window: first free
				// slot inserts, matching column accumulates.
				for s := rowBegin; s < capacity; s++ {
					if res.Values[s] == 0 {
						res.Values[s] = vc
						res.ColIndices[s] = j
						rowEnd = s + 1
						break
					}
					if res.ColIndices[s] == j {
						res.Values[s] += vc
						break
					}
				}
			}
		}
		res.RowPtr[i+1] = rowEnd
		rowBegin = rowEnd
	}

	return compact(res), nil
}
