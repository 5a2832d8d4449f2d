// SPDX-License-Identifier: MIT

// Package matfile: strict reader for the four-line CSR representation.

package matfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sparsekit/csrmul/csr"
)

// Line indices of the four-line representation.
const (
	lineShape = iota
	lineValues
	lineColIndices
	lineRowPtr
	lineCount
)

// fieldSep separates fields within a line.
const fieldSep = ","

// Read parses a CSR matrix from r. The input must consist of exactly
// four newline-separated lines with no trailing newline; any deviation
// (stray characters, unmatched commas, blank lines, out-of-range indices,
// stored zeros, inconsistent row pointers) fails with ErrFormat. I/O
// failures are returned as-is.
func Read(r io.Reader) (*csr.Matrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("matfile: read: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	if len(lines) != lineCount {
		return nil, fmt.Errorf("%d lines, want %d: %w", len(lines), lineCount, ErrFormat)
	}

	shape, err := parseIntLine(lines[lineShape])
	if err != nil {
		return nil, fmt.Errorf("shape line: %w", err)
	}
	if len(shape) != 2 {
		return nil, fmt.Errorf("shape line has %d fields, want 2: %w", len(shape), ErrFormat)
	}
	rows, cols := shape[0], shape[1]
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("shape %dx%d: %w", rows, cols, ErrFormat)
	}

	values, err := parseFloatLine(lines[lineValues])
	if err != nil {
		return nil, fmt.Errorf("values line: %w", err)
	}

	colIndices, err := parseIntLine(lines[lineColIndices])
	if err != nil {
		return nil, fmt.Errorf("column index line: %w", err)
	}

	rowPtr, err := parseIntLine(lines[lineRowPtr])
	if err != nil {
		return nil, fmt.Errorf("row pointer line: %w", err)
	}

	m, err := csr.NewFromParts(rows, cols, values, colIndices, rowPtr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	return m, nil
}

// ReadFile parses the matrix stored at path.
func ReadFile(path string) (*csr.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// parseIntLine parses a comma-separated list of unsigned decimal
// integers. An empty line yields an empty (non-nil) slice, the zero-nnz
// case; an empty field (leading, trailing, or doubled comma) is an error.
func parseIntLine(line string) ([]int, error) {
	if line == "" {
		return []int{}, nil
	}

	fields := strings.Split(line, fieldSep)
	out := make([]int, len(fields))
	for i, field := range fields {
		if !digitsOnly(field) {
			return nil, fmt.Errorf("field %q: %w", field, ErrFormat)
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, ErrFormat)
		}
		out[i] = n
	}

	return out, nil
}

// parseFloatLine parses a comma-separated list of decimal floats. The
// accepted alphabet matches the writer's output: digits, at most one
// decimal point, and a minus sign only in the leading position. No
// exponents, no spaces, no signs mid-field.
func parseFloatLine(line string) ([]float32, error) {
	if line == "" {
		return []float32{}, nil
	}

	fields := strings.Split(line, fieldSep)
	out := make([]float32, len(fields))
	for i, field := range fields {
		if !floatAlphabet(field) {
			return nil, fmt.Errorf("field %q: %w", field, ErrFormat)
		}
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, ErrFormat)
		}
		out[i] = float32(v)
	}

	return out, nil
}

// digitsOnly reports whether s is a non-empty run of ASCII digits.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// floatAlphabet reports whether s is non-empty and drawn from the float
// field alphabet: optional leading '-', digits, at most one '.'.
func floatAlphabet(s string) bool {
	if s == "" {
		return false
	}

	sawPoint := false
	sawDigit := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			sawDigit = true
		case c == '-':
			if i != 0 {
				return false
			}
		case c == '.':
			if sawPoint {
				return false
			}
			sawPoint = true
		default:
			return false
		}
	}

	return sawDigit
}
