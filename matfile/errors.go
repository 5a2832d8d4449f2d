// SPDX-License-Identifier: MIT
// Package matfile: sentinel error set.

package matfile

import "errors"

// ErrFormat indicates that the input does not conform to the four-line
// comma-separated representation, or that the parsed matrix violates a
// CSR structural invariant. The wrapped context names the offending line
// or field.
var ErrFormat = errors.New("matfile: malformed matrix file")
