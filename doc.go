// Package csrmul is a sparse matrix multiplication toolkit built around
// the Compressed Sparse Row representation: one matrix type, one file
// format, and six interchangeable product kernels.
//
// 🚀 What is csrmul?
//
//	A small, focused library that brings together:
//		• csr: the CSR matrix type, dense conversion, clean-matrix checks
//		• multiply: six kernels from a dense reference to threaded scatter
//		• matfile: a strict reader/writer for the four-line text form
//		• randcsr: deterministic random matrix generation for tests
//		• cmd/csrmul: a command-line front end with built-in timing
//
// ✨ Why choose csrmul?
//
//   - Interchangeable kernels – every kernel returns the same clean matrix
//   - Direct error returns – no global error state, no partial results
//   - Deterministic – fixed seeds reproduce inputs and products exactly
//
// Start with csr.New or matfile.ReadFile, then call multiply.Multiply.
package csrmul
