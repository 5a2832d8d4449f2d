// SPDX-License-Identifier: MIT

// Package multiply: kernel selection and functional configuration.
//
// Kernel numbering is part of the public surface (the CLI selects kernels
// by index), so the constants below are ordered and stable.

package multiply

import "fmt"

// Kernel selects one of the six multiplication strategies.
type Kernel int

const (
	// Auto is the dispatching kernel: size-predicted accumulation for
	// small inputs, row-partitioned worker goroutines for large ones.
	Auto Kernel = iota

	// DenseConvert multiplies via dense intermediate buffers.
	DenseConvert

	// Scatter is single-threaded Gustavson accumulation at the dense
	// bound.
	Scatter

	// ScatterSIMD128 is Scatter with a 4-lane batched inner loop.
	ScatterSIMD128

	// ScatterSIMD256 is Scatter with an 8-lane batched inner loop; it
	// requires AVX and falls back to DenseConvert without it.
	ScatterSIMD256

	// ScatterPredicted accumulates into a buffer sized by the non-zero
	// upper-bound prediction.
	ScatterPredicted

	// numKernels bounds ParseKernel.
	numKernels
)

// String returns a stable human-readable kernel name.
func (k Kernel) String() string {
	switch k {
	case Auto:
		return "auto"
	case DenseConvert:
		return "dense-convert"
	case Scatter:
		return "scatter"
	case ScatterSIMD128:
		return "scatter-simd128"
	case ScatterSIMD256:
		return "scatter-simd256"
	case ScatterPredicted:
		return "scatter-predicted"
	default:
		return "unknown"
	}
}

// ParseKernel maps a numeric selector (0-5, as accepted by the CLI) onto
// a Kernel, failing with ErrUnknownKernel outside that range.
func ParseKernel(n int) (Kernel, error) {
	if n < 0 || n >= int(numKernels) {
		return 0, fmt.Errorf("ParseKernel(%d): %w", n, ErrUnknownKernel)
	}

	return Kernel(n), nil
}

// Option mutates the multiplication configuration. Setters are idempotent;
// the last writer wins.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Unexported by design: public entry points accept ...Option.
type options struct {
	kernel Kernel
}

// WithKernel selects the multiplication strategy. The default is Auto.
func WithKernel(k Kernel) Option {
	return func(o *options) { o.kernel = k }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{kernel: Auto}
	for _, set := range opts {
		set(&o)
	}

	return o
}
