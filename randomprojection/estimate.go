package randomprojection

import (
	"github.com/katalvlaran/graphalgo/memest"
)

// Per-task resources: one graph handle and one generator.
const (
	taskGraphHandleBytes = 96
	taskGeneratorBytes   = 24
)

// MemoryEstimation returns the bytes a run over nodeCount nodes will allocate:
// two working buffers, the output rows and the per-task resources of up to
// concurrency workers. A non-positive concurrency falls back to cfg.Concurrency.
// The configuration is not validated.
func MemoryEstimation(cfg Config, nodeCount int, concurrency int) memest.Estimate {
	if concurrency < 1 {
		concurrency = max(cfg.Concurrency, 1)
	}
	n := int64(max(nodeCount, 0))
	dim := int64(max(cfg.EmbeddingDimension, 0))

	buffers := memest.Fixed(matrixBytes(n, dim)).Times(2)
	output := memest.Fixed(matrixBytes(n, int64(max(cfg.RowLength(), 0))))
	perTask := memest.Fixed(taskGraphHandleBytes + taskGeneratorBytes)
	tasks := memest.Range(perTask.Max, perTask.Times(int64(concurrency)).Max)

	return buffers.Add(output, tasks)
}

// matrixBytes is the footprint of newMatrix(rows, cols).
func matrixBytes(rows, cols int64) int64 {
	if rows == 0 {
		return 0
	}
	return memest.SizeOfSliceHeaders(rows) + memest.SizeOfFloat64Slice(rows*cols)
}
