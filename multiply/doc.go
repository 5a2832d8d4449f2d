// Package multiply computes products of CSR sparse matrices using six
// interchangeable kernels that trade memory, vectorization, and
// parallelism against each other.
//
// The kernels:
//
//   - Auto (0): the default entry point. Small inputs delegate to the
//     size-predicted kernel; large ones run the scatter kernel across
//     disjoint contiguous row ranges on worker goroutines.
//   - DenseConvert (1): expands both operands to dense form, multiplies
//     with the textbook triple loop, and re-derives CSR directly at its
//     final size.
//   - Scatter (2): Gustavson-style accumulation into a dense-bound buffer
//     addressed by absolute offsets row*Cols+col.
//   - ScatterSIMD128 (3) / ScatterSIMD256 (4): the scatter scheme with
//     4-lane / 8-lane batched inner loops over B's row segments.
//     ScatterSIMD256 falls back to DenseConvert when the processor lacks
//     AVX.
//   - ScatterPredicted (5): allocates at a predicted non-zero upper bound
//     and accumulates through a per-row linear-probe window, trading
//     runtime for memory.
//
// Every kernel follows the same pipeline: validate dimensions, allocate
// the result buffers, compute, compact. All kernels produce structurally
// identical results (compare with csr.Equal); when the operands store
// each row's columns in ascending order, every variant accumulates each
// output cell in the same order and the outputs agree bitwise.
//
// Failures are reported as sentinel errors returned directly from
// Multiply; on any failure path no partially populated matrix escapes.
package multiply
