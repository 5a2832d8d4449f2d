// SPDX-License-Identifier: MIT

// Package randcsr: random clean-matrix generation.

package randcsr

import (
	"math/bits"
	"math/rand"
	"sort"
	"time"

	"github.com/sparsekit/csrmul/csr"
)

// negationDenominator controls the share of negative values: one value
// in negationDenominator is negated.
const negationDenominator = 4

// Option adjusts generation behaviour.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed makes generation deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws all randomness from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// gatherOptions applies opts over a time-seeded default.
func gatherOptions(opts ...Option) options {
	o := options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Random generates a rows x cols clean matrix holding exactly nnz
// non-zero values. Entries land in random rows, columns are distinct and
// ascending within each row, and every value has one decimal place in
// (-100, 100). nnz must not exceed rows*cols.
func Random(rows, cols, nnz int, opts ...Option) (*csr.Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if nnz < 0 || nnz > capacity(rows, cols) {
		return nil, ErrTooManyValues
	}

	o := gatherOptions(opts...)

	// Spread the requested count over rows: pick a random row for each
	// entry and walk forward past full rows.
	counts := make([]int, rows)
	for n := 0; n < nnz; n++ {
		row := o.rng.Intn(rows)
		for counts[row] == cols {
			row = (row + 1) % rows
		}
		counts[row]++
	}

	rowPtr := make([]int, rows+1)
	for i, c := range counts {
		rowPtr[i+1] = rowPtr[i] + c
	}

	values := make([]float32, nnz)
	colIndices := make([]int, nnz)
	for i := 0; i < rows; i++ {
		begin, end := rowPtr[i], rowPtr[i+1]
		fillColumns(o.rng, cols, colIndices[begin:end])
		for k := begin; k < end; k++ {
			values[k] = randomValue(o.rng)
		}
	}

	return csr.NewFromParts(rows, cols, values, colIndices, rowPtr)
}

// fillColumns writes len(dst) distinct ascending column indices from
// [0, cols) into dst, chosen by rejection sampling.
func fillColumns(rng *rand.Rand, cols int, dst []int) {
	taken := make(map[int]struct{}, len(dst))
	for i := range dst {
		c := rng.Intn(cols)
		for {
			if _, dup := taken[c]; !dup {
				break
			}
			c = rng.Intn(cols)
		}
		taken[c] = struct{}{}
		dst[i] = c
	}

	sort.Ints(dst)
}

// randomValue returns a non-zero value with one decimal place in
// (-100, 100), negative roughly a quarter of the time.
func randomValue(rng *rand.Rand) float32 {
	v := float32(0)
	for v == 0 {
		v = float32(rng.Intn(100)) + float32(rng.Intn(10))/10.0
	}
	if rng.Intn(negationDenominator) == 0 {
		v = -v
	}

	return v
}

// capacity returns rows*cols clamped to the int range.
func capacity(rows, cols int) int {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(maxInt) {
		return maxInt
	}

	return int(lo)
}

const maxInt = int(^uint(0) >> 1)
