// SPDX-License-Identifier: MIT
// Package multiply: sentinel error set.
// All kernels return these sentinels (optionally wrapped with %w context);
// callers and tests branch via errors.Is. None of the conditions below is
// retried internally; each is terminal for the current Multiply call.

package multiply

import "errors"

var (
	// ErrDimensionMismatch indicates the product is mathematically
	// undefined: a.Cols != b.Rows, or a degenerate (<1) dimension.
	// Kernels check this first and allocate nothing when it fails.
	ErrDimensionMismatch = errors.New("multiply: incompatible dimensions")

	// ErrTooLarge indicates that a result-buffer size computation
	// overflowed. Overflow is treated identically to an allocation
	// failure: the multiplication aborts before touching the heap.
	ErrTooLarge = errors.New("multiply: result buffer too large")

	// ErrConversion indicates that an intermediate dense buffer for the
	// dense-conversion kernel could not be built.
	ErrConversion = errors.New("multiply: dense conversion failed")

	// ErrWorkerStart indicates that the threaded kernel could not start
	// its workers (a computed worker count of zero).
	ErrWorkerStart = errors.New("multiply: worker start failed")

	// ErrUnknownKernel indicates a kernel selector outside [0, 5].
	ErrUnknownKernel = errors.New("multiply: unknown kernel")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("multiply: nil matrix")
)
