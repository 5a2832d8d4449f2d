// Package csr implements the Compressed Sparse Row matrix representation
// shared by every multiplication kernel in this module.
//
// The csr package provides:
//
//   - Matrix, the CSR triple (values, column indices, row pointers) with
//     explicit structural invariants and a Validate method that enforces
//     them.
//   - Dense, a row-major float32 buffer, together with ToDense/FromDense
//     converters used by the dense-conversion kernel and by tests.
//   - Equal, an order-independent equality predicate that compares two
//     matrices after sorting each row segment by ascending column.
//
// A Matrix is "clean" when every stored value is non-zero, column indices
// are unique within each row, and the row-pointer array describes exactly
// the occupied prefix of the value buffer. Multiplication kernels may
// violate these invariants transiently inside their own over-allocated
// buffers; every matrix handed back to a caller is clean again.
package csr
