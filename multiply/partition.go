// SPDX-License-Identifier: MIT

// Package multiply: row partitioning and worker-count selection for the
// threaded kernel.

package multiply

// Worker-count constants for the dispatching kernel.
const (
	// MinWorkers is the smallest worker count the threaded path runs
	// with; inputs with fewer rows than this delegate to the
	// size-predicted kernel instead.
	MinWorkers = 2

	// minRowsPerWorker gates how many workers the row count justifies.
	minRowsPerWorker = 4

	// minValuesPerWorker gates workers by workload density. The heuristic
	// divides the row count by this threshold, mirroring the reference
	// behavior exactly.
	minValuesPerWorker = 40

	// workerNNZThreshold is the non-zero count of A below which threading
	// does not pay off and Auto delegates to ScatterPredicted.
	workerNNZThreshold = 10000
)

// rowRange is a half-open contiguous range of result rows owned by one
// worker.
type rowRange struct {
	start int
	end   int
}

// workerCount computes how many workers the dispatching kernel uses for a
// matrix with the given row count and avail processors:
// clamp(min(rows/minRowsPerWorker, rows/minValuesPerWorker), MinWorkers, avail).
// The lower clamp is applied last, so the result never drops below
// MinWorkers even on a single-processor machine.
func workerCount(rows, avail int) int {
	byRows := rows / minRowsPerWorker
	byValues := rows / minValuesPerWorker

	n := byRows
	if byValues < n {
		n = byValues
	}
	if avail < n {
		n = avail
	}
	if n < MinWorkers {
		n = MinWorkers
	}

	return n
}

// partitionRows splits [0, rows) into `workers` contiguous disjoint
// ranges. The first rows%workers ranges receive one extra row; the final
// range's end is forced to rows to absorb any rounding. Fails with
// ErrWorkerStart when workers < 1, the only way a dispatch can fail to
// start.
func partitionRows(rows, workers int) ([]rowRange, error) {
	if workers < 1 {
		return nil, ErrWorkerStart
	}

	step := rows / workers
	remainder := rows % workers

	ranges := make([]rowRange, workers)
	prev := 0
	for i := 0; i < workers; i++ {
		size := step
		if i < remainder {
			size++
		}
		ranges[i] = rowRange{start: prev, end: prev + size}
		prev += size
	}
	ranges[workers-1].end = rows

	return ranges, nil
}
