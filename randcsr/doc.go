// Package randcsr generates random CSR matrices for tests and
// benchmarks.
//
// Random produces a clean matrix with an exact non-zero count: entries
// are spread over rows without exceeding any row's column capacity,
// column indices are distinct and ascending within each row, and values
// are non-zero with one decimal place in (-100, 100). Generation is fully
// deterministic for a fixed seed.
package randcsr
