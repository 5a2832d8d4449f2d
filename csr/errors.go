// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// Only package-level sentinels are exposed; callers branch on semantics via
// errors.Is. Implementations attach context with %w wrapping at the call
// site and never stringify parameters into the sentinel definitions.

package csr

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("csr: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil *Matrix (or *Dense) was passed where
	// a materialized value is required.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrLengthMismatch indicates that the values and column-index buffers
	// disagree in length.
	ErrLengthMismatch = errors.New("csr: values and column indices differ in length")

	// ErrBadRowPointers indicates a malformed row-pointer array: wrong
	// length, non-zero start, a row wider than the column count, a negative
	// row width, or a final pointer that does not equal the value count.
	ErrBadRowPointers = errors.New("csr: malformed row pointers")

	// ErrColumnOutOfRange indicates a stored column index >= Cols (or < 0).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")

	// ErrDuplicateColumn indicates that a row stores the same column twice.
	ErrDuplicateColumn = errors.New("csr: duplicate column index within a row")

	// ErrZeroValue indicates an explicitly stored zero. Clean CSR matrices
	// store non-zeros only; zero slots exist solely inside kernel-owned
	// scratch buffers before compaction.
	ErrZeroValue = errors.New("csr: explicit zero value stored")

	// ErrTooLarge indicates that rows*cols does not fit in int; treated the
	// same as an allocation failure by all callers.
	ErrTooLarge = errors.New("csr: matrix too large")
)
