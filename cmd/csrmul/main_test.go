package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsekit/csrmul/csr"
	"github.com/sparsekit/csrmul/matfile"
	"github.com/sparsekit/csrmul/multiply"
)

func writeMatrix(t *testing.T, dir, name string, m *csr.Matrix) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, matfile.WriteFile(path, m))

	return path
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	a, err := csr.NewFromParts(2, 2, []float32{1, 2}, []int{0, 1}, []int{0, 1, 2})
	require.NoError(t, err)
	b, err := csr.NewFromParts(2, 2, []float32{3, 4, 5, 6}, []int{0, 1, 0, 1}, []int{0, 2, 4})
	require.NoError(t, err)

	pathA := writeMatrix(t, dir, "a.txt", a)
	pathB := writeMatrix(t, dir, "b.txt", b)
	pathOut := filepath.Join(dir, "out.txt")

	for kernel := 0; kernel <= 5; kernel++ {
		require.NoError(t, run(pathA, pathB, pathOut, kernel, 0))

		got, err := matfile.ReadFile(pathOut)
		require.NoError(t, err)
		require.Equal(t, []float32{3, 4, 10, 12}, got.Values)
		require.Equal(t, []int{0, 1, 0, 1}, got.ColIndices)
		require.Equal(t, []int{0, 2, 4}, got.RowPtr)
	}
}

func TestRun_BenchmarkRepeats(t *testing.T) {
	dir := t.TempDir()

	m, err := csr.NewFromParts(1, 1, []float32{2}, []int{0}, []int{0, 1})
	require.NoError(t, err)
	path := writeMatrix(t, dir, "m.txt", m)
	pathOut := filepath.Join(dir, "out.txt")

	require.NoError(t, run(path, path, pathOut, 2, 3))

	got, err := matfile.ReadFile(pathOut)
	require.NoError(t, err)
	require.Equal(t, []float32{4}, got.Values)
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()

	m, err := csr.NewFromParts(1, 1, []float32{2}, []int{0}, []int{0, 1})
	require.NoError(t, err)
	path := writeMatrix(t, dir, "m.txt", m)
	pathOut := filepath.Join(dir, "out.txt")

	// Missing required flags.
	require.Error(t, run("", path, pathOut, 0, 0))
	require.Error(t, run(path, "", pathOut, 0, 0))
	require.Error(t, run(path, path, "", 0, 0))

	// Kernel selector out of range.
	err = run(path, path, pathOut, 6, 0)
	require.ErrorIs(t, err, multiply.ErrUnknownKernel)

	// Unreadable operand.
	err = run(filepath.Join(dir, "absent.txt"), path, pathOut, 0, 0)
	require.Error(t, err)

	// Incompatible shapes.
	wide, err := csr.NewFromParts(1, 2, []float32{1}, []int{0}, []int{0, 1})
	require.NoError(t, err)
	pathWide := writeMatrix(t, dir, "wide.txt", wide)
	err = run(pathWide, pathWide, pathOut, 2, 0)
	require.ErrorIs(t, err, multiply.ErrDimensionMismatch)
}
