// SPDX-License-Identifier: MIT

// Package multiply: the dispatching/threaded kernel (selector 0).

package multiply

import (
	"runtime"
	"sync"

	"github.com/sparsekit/csrmul/csr"
)

// multiplyAuto is the default entry point. Inputs too small for threading
// to pay off delegate entirely to the size-predicted kernel. Otherwise
// the rows of A are split into disjoint contiguous ranges and the scatter
// accumulation runs once per range on its own goroutine.
//
// Safety: ranges are disjoint and every worker writes only the absolute
// offset slots of its own rows, so the shared result needs no locks or
// atomics; rowPtr[0] is written before dispatch so no element of the
// result is touched by two goroutines. Workers always run to completion
// (there is no cancellation path) and the caller blocks at the join until
// all ranges are done.
func multiplyAuto(a, b *csr.Matrix) (*csr.Matrix, error) {
	if a.NNZ() < workerNNZThreshold || a.Rows < MinWorkers {
		return multiplyPredicted(a, b)
	}

	if !canMultiply(a, b) {
		return nil, dimensionError(a, b)
	}

	res, err := newResult(a, b, denseBound)
	if err != nil {
		return nil, err
	}

	workers := workerCount(a.Rows, runtime.NumCPU())
	ranges, err := partitionRows(a.Rows, workers)
	if err != nil {
		return nil, err
	}

	res.RowPtr[0] = 0

	var wg sync.WaitGroup
	for _, rr := range ranges {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			scatterRows(a, b, res, start, end)
		}(rr.start, rr.end)
	}
	wg.Wait()

	return compact(res), nil
}
