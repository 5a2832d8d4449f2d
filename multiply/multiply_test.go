package multiply_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsekit/csrmul/csr"
	"github.com/sparsekit/csrmul/multiply"
	"github.com/sparsekit/csrmul/randcsr"
)

// allKernels enumerates every selectable strategy; table-driven tests run
// each property against all of them.
var allKernels = []multiply.Kernel{
	multiply.Auto,
	multiply.DenseConvert,
	multiply.Scatter,
	multiply.ScatterSIMD128,
	multiply.ScatterSIMD256,
	multiply.ScatterPredicted,
}

func mustMatrix(t testing.TB, rows, cols int, values []float32, colIndices, rowPtr []int) *csr.Matrix {
	t.Helper()
	m, err := csr.NewFromParts(rows, cols, values, colIndices, rowPtr)
	require.NoError(t, err)

	return m
}

// TestMultiply_Concrete checks a hand-computed 2x2 product on every
// kernel:
//
//	|1 0|   |3 4|   | 3  4|
//	|0 2| * |5 6| = |10 12|
func TestMultiply_Concrete(t *testing.T) {
	a := mustMatrix(t, 2, 2, []float32{1, 2}, []int{0, 1}, []int{0, 1, 2})
	b := mustMatrix(t, 2, 2, []float32{3, 4, 5, 6}, []int{0, 1, 0, 1}, []int{0, 2, 4})
	want := mustMatrix(t, 2, 2, []float32{3, 4, 10, 12}, []int{0, 1, 0, 1}, []int{0, 2, 4})

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			got, err := multiply.Multiply(a, b, multiply.WithKernel(k))
			require.NoError(t, err)
			require.True(t, csr.Equal(want, got), "got %+v", got)
			require.NoError(t, got.Validate())
		})
	}
}

// TestMultiply_ResultShape checks the shape law on rectangular operands:
// (2x3) * (3x4) yields a 2x4 matrix.
func TestMultiply_ResultShape(t *testing.T) {
	a := mustMatrix(t, 2, 3, []float32{1, 2}, []int{0, 2}, []int{0, 1, 2})
	b := mustMatrix(t, 3, 4, []float32{5, 6, 7}, []int{0, 3, 1}, []int{0, 1, 2, 3})

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			got, err := multiply.Multiply(a, b, multiply.WithKernel(k))
			require.NoError(t, err)
			require.Equal(t, 2, got.Rows)
			require.Equal(t, 4, got.Cols)
			require.NoError(t, got.Validate())
		})
	}
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	a := mustMatrix(t, 2, 3, []float32{1}, []int{0}, []int{0, 1, 1})
	b := mustMatrix(t, 2, 2, []float32{1}, []int{0}, []int{0, 1, 1})

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			res, err := multiply.Multiply(a, b, multiply.WithKernel(k))
			require.ErrorIs(t, err, multiply.ErrDimensionMismatch)
			require.Nil(t, res)
		})
	}
}

func TestMultiply_NilOperands(t *testing.T) {
	m := mustMatrix(t, 1, 1, []float32{1}, []int{0}, []int{0, 1})

	_, err := multiply.Multiply(nil, m)
	require.ErrorIs(t, err, multiply.ErrNilMatrix)
	_, err = multiply.Multiply(m, nil)
	require.ErrorIs(t, err, multiply.ErrNilMatrix)
}

// TestMultiply_EmptyOperand checks that a zero-entry operand yields a
// zero-entry product of the correct shape on every kernel.
func TestMultiply_EmptyOperand(t *testing.T) {
	empty := mustMatrix(t, 3, 3, []float32{}, []int{}, []int{0, 0, 0, 0})
	full := mustMatrix(t, 3, 3,
		[]float32{1, 2, 3},
		[]int{0, 1, 2},
		[]int{0, 1, 2, 3})

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			got, err := multiply.Multiply(empty, full, multiply.WithKernel(k))
			require.NoError(t, err)
			require.Equal(t, 0, got.NNZ())
			require.Equal(t, 3, got.Rows)
			require.Equal(t, 3, got.Cols)
			require.NoError(t, got.Validate())

			got, err = multiply.Multiply(full, empty, multiply.WithKernel(k))
			require.NoError(t, err)
			require.Equal(t, 0, got.NNZ())
			require.NoError(t, got.Validate())
		})
	}
}

// TestMultiply_CancellationDropsZeros builds a product whose only cell
// sums to exactly zero; the clean result must not store it.
func TestMultiply_CancellationDropsZeros(t *testing.T) {
	a := mustMatrix(t, 1, 2, []float32{1, -1}, []int{0, 1}, []int{0, 2})
	b := mustMatrix(t, 2, 1, []float32{5, 5}, []int{0, 0}, []int{0, 1, 2})

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			got, err := multiply.Multiply(a, b, multiply.WithKernel(k))
			require.NoError(t, err)
			require.Equal(t, 0, got.NNZ())
			require.NoError(t, got.Validate())
		})
	}
}

// TestMultiply_KernelsAgree multiplies seeded random operands with every
// kernel and requires results identical to the dense-conversion
// reference. Inputs come from randcsr, which emits ascending columns per
// row, so all kernels accumulate each output cell in the same order and
// the comparison is exact, not approximate.
func TestMultiply_KernelsAgree(t *testing.T) {
	cases := []struct {
		name                 string
		rowsA, shared, colsB int
		nnzA, nnzB           int
		seed                 int64
	}{
		{name: "small square", rowsA: 8, shared: 8, colsB: 8, nnzA: 20, nnzB: 20, seed: 1},
		{name: "rectangular", rowsA: 13, shared: 7, colsB: 19, nnzA: 40, nnzB: 60, seed: 2},
		{name: "dense-ish", rowsA: 10, shared: 10, colsB: 10, nnzA: 90, nnzB: 90, seed: 3},
		{name: "tall sparse", rowsA: 60, shared: 25, colsB: 9, nnzA: 75, nnzB: 30, seed: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := randcsr.Random(tc.rowsA, tc.shared, tc.nnzA, randcsr.WithSeed(tc.seed))
			require.NoError(t, err)
			b, err := randcsr.Random(tc.shared, tc.colsB, tc.nnzB, randcsr.WithSeed(tc.seed+100))
			require.NoError(t, err)

			want, err := multiply.Multiply(a, b, multiply.WithKernel(multiply.DenseConvert))
			require.NoError(t, err)
			require.NoError(t, want.Validate())

			for _, k := range allKernels {
				if k == multiply.DenseConvert {
					continue
				}
				got, err := multiply.Multiply(a, b, multiply.WithKernel(k))
				require.NoError(t, err, "kernel %s", k)
				require.NoError(t, got.Validate(), "kernel %s", k)
				require.True(t, csr.Equal(want, got), "kernel %s disagrees with reference", k)
			}
		})
	}
}

// TestMultiply_ThreadedPath drives the dispatching kernel past its
// delegation threshold so the row-partitioned goroutine path actually
// runs, then checks the result against the single-threaded scatter
// kernel.
func TestMultiply_ThreadedPath(t *testing.T) {
	const (
		n   = 200
		nnz = multiply.WorkerNNZThresholdForTest + 500
	)

	a, err := randcsr.Random(n, n, nnz, randcsr.WithSeed(42))
	require.NoError(t, err)
	b, err := randcsr.Random(n, n, nnz, randcsr.WithSeed(43))
	require.NoError(t, err)
	require.GreaterOrEqual(t, a.NNZ(), multiply.WorkerNNZThresholdForTest)

	want, err := multiply.Multiply(a, b, multiply.WithKernel(multiply.Scatter))
	require.NoError(t, err)

	got, err := multiply.Multiply(a, b, multiply.WithKernel(multiply.Auto))
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.True(t, csr.Equal(want, got))
}

// TestMultiply_OperandsUntouched checks that no kernel mutates its
// inputs.
func TestMultiply_OperandsUntouched(t *testing.T) {
	a, err := randcsr.Random(6, 6, 12, randcsr.WithSeed(7))
	require.NoError(t, err)
	b, err := randcsr.Random(6, 6, 12, randcsr.WithSeed(8))
	require.NoError(t, err)

	aBefore := a.Clone()
	bBefore := b.Clone()

	for _, k := range allKernels {
		_, err := multiply.Multiply(a, b, multiply.WithKernel(k))
		require.NoError(t, err)
	}

	require.Equal(t, aBefore, a)
	require.Equal(t, bBefore, b)
}

func TestMultiply_DefaultsToAuto(t *testing.T) {
	a := mustMatrix(t, 1, 1, []float32{2}, []int{0}, []int{0, 1})
	b := mustMatrix(t, 1, 1, []float32{3}, []int{0}, []int{0, 1})

	got, err := multiply.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{6}, got.Values)
}

func TestParseKernel(t *testing.T) {
	for n, want := range map[int]multiply.Kernel{
		0: multiply.Auto,
		1: multiply.DenseConvert,
		2: multiply.Scatter,
		3: multiply.ScatterSIMD128,
		4: multiply.ScatterSIMD256,
		5: multiply.ScatterPredicted,
	} {
		k, err := multiply.ParseKernel(n)
		require.NoError(t, err)
		require.Equal(t, want, k)
	}

	_, err := multiply.ParseKernel(-1)
	require.ErrorIs(t, err, multiply.ErrUnknownKernel)
	_, err = multiply.ParseKernel(6)
	require.ErrorIs(t, err, multiply.ErrUnknownKernel)
}

func TestKernel_String(t *testing.T) {
	require.Equal(t, "auto", multiply.Auto.String())
	require.Equal(t, "scatter-simd256", multiply.ScatterSIMD256.String())
	require.Equal(t, "unknown", multiply.Kernel(99).String())
}
