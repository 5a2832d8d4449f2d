// Package matfile reads and writes CSR matrices in a textual,
// comma-separated, four-line representation:
//
//	rows,cols
//	values
//	column indices
//	row pointers
//
// The format is strict: digits (plus a leading minus and a single decimal
// point for values) separated by single commas, no spaces, no trailing
// commas, no trailing newline. A matrix with zero stored entries
// serializes with empty value and column-index lines.
//
// The reader validates every structural invariant before handing the
// matrix out, so anything it returns satisfies csr.Validate; the writer
// consumes a clean matrix and never mutates it.
package matfile
