// SPDX-License-Identifier: MIT

package multiply

// Test bridge: exposes the sizing, partitioning, and compaction internals
// to multiply_test without widening the production API. Compiled only
// with the test binary.

var (
	CanMultiply = canMultiply
	PredictSize = predictSize
	Compact     = compact
	WorkerCount = workerCount
)

// PartitionSpans forwards to partitionRows, flattening each range to a
// [start, end) pair.
func PartitionSpans(rows, workers int) ([][2]int, error) {
	ranges, err := partitionRows(rows, workers)
	if err != nil {
		return nil, err
	}

	spans := make([][2]int, len(ranges))
	for i, r := range ranges {
		spans[i] = [2]int{r.start, r.end}
	}

	return spans, nil
}

// Worker-heuristic constants mirrored for tests.
const (
	MinRowsPerWorkerForTest   = minRowsPerWorker
	MinValuesPerWorkerForTest = minValuesPerWorker
	WorkerNNZThresholdForTest = workerNNZThreshold
)
