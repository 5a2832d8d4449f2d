// SPDX-License-Identifier: MIT
// Package randcsr: sentinel error set.

package randcsr

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("randcsr: dimensions must be > 0")

	// ErrTooManyValues indicates a requested non-zero count above
	// rows*cols, which no matrix of that shape can hold.
	ErrTooManyValues = errors.New("randcsr: non-zero count exceeds capacity")
)
