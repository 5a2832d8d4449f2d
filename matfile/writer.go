// SPDX-License-Identifier: MIT

// Package matfile: writer for the four-line CSR representation.

package matfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sparsekit/csrmul/csr"
)

// Write serializes m in the four-line textual form: "rows,cols", then the
// value, column-index, and row-pointer lines, comma-separated with no
// trailing newline. Values are printed with %g-style shortest-form
// formatting at float32 precision. m must be a clean matrix; it is not
// mutated.
func Write(w io.Writer, m *csr.Matrix) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("matfile: write: %w", err)
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d,%d\n", m.Rows, m.Cols); err != nil {
		return fmt.Errorf("matfile: write shape: %w", err)
	}

	for i, v := range m.Values {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return fmt.Errorf("matfile: write values: %w", err)
			}
		}
		if _, err := bw.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32)); err != nil {
			return fmt.Errorf("matfile: write values: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("matfile: write values: %w", err)
	}

	for i, c := range m.ColIndices {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return fmt.Errorf("matfile: write column indices: %w", err)
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(c)); err != nil {
			return fmt.Errorf("matfile: write column indices: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("matfile: write column indices: %w", err)
	}

	for i, p := range m.RowPtr {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return fmt.Errorf("matfile: write row pointers: %w", err)
			}
		}
		if _, err := bw.WriteString(strconv.Itoa(p)); err != nil {
			return fmt.Errorf("matfile: write row pointers: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matfile: flush: %w", err)
	}

	return nil
}

// WriteFile serializes m to the file at path, truncating any existing
// content.
func WriteFile(path string, m *csr.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matfile: %w", err)
	}

	if err = Write(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
