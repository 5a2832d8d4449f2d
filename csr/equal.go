// SPDX-License-Identifier: MIT

// Package csr: order-independent structural equality.
//
// Kernels are free to emit a row's entries in any column order (the
// scatter variants emit ascending columns, the predicted variant emits
// insertion order), so equality between kernel outputs must not depend on
// intra-row ordering. Equal normalizes both operands by sorting each row
// segment by ascending column before comparing.

package csr

// Equal reports whether a and b represent the same matrix: identical
// shape, identical non-zero count, and, after per-row normalization,
// identical values, column indices, and row pointers. Neither operand is
// mutated; both are cloned before sorting.
// Complexity: O(NNZ * maxRowWidth) for the insertion sorts, O(NNZ) compare.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Rows != b.Rows || a.Cols != b.Cols ||
		len(a.Values) != len(b.Values) || len(a.RowPtr) != len(b.RowPtr) {
		return false
	}

	sa := a.Clone()
	sb := b.Clone()
	sa.SortRows()
	sb.SortRows()

	for i := range sa.Values {
		if sa.ColIndices[i] != sb.ColIndices[i] || sa.Values[i] != sb.Values[i] {
			return false
		}
	}
	for i := range sa.RowPtr {
		if sa.RowPtr[i] != sb.RowPtr[i] {
			return false
		}
	}

	return true
}

// SortRows rearranges each row's entries by ascending column index,
// in place. Insertion sort per row: row segments are short in sparse
// workloads, and the scatter kernels already emit nearly sorted rows.
func (m *Matrix) SortRows() {
	for r := 0; r < m.Rows; r++ {
		beg := m.RowPtr[r]
		end := m.RowPtr[r+1]
		for i := beg + 1; i < end; i++ {
			col := m.ColIndices[i]
			val := m.Values[i]
			j := i - 1
			for j >= beg && m.ColIndices[j] > col {
				m.ColIndices[j+1] = m.ColIndices[j]
				m.Values[j+1] = m.Values[j]
				j--
			}
			m.ColIndices[j+1] = col
			m.Values[j+1] = val
		}
	}
}
