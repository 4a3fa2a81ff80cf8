package closeness

import "github.com/katalvlaran/graphalgo/memest"

// bytes of one graph handle held by a walker
const walkerGraphHandleBytes = 96

// MemoryEstimation returns the bytes a run over nodeCount nodes allocates: the
// result slice plus one walker (visited bitset, two frontiers, graph handle)
// per worker, from one worker up to concurrency.
func MemoryEstimation(nodeCount, concurrency int) memest.Estimate {
	n := int64(max(nodeCount, 0))
	concurrency = max(concurrency, 1)

	result := memest.Fixed(memest.SizeOfFloat64Slice(n))
	visited := memest.SizeOfInt64Slice((n + 63) / 64)
	frontiers := 2 * memest.SizeOfInt64Slice(n)
	walker := memest.Fixed(visited + frontiers + walkerGraphHandleBytes)

	return result.Add(memest.Range(walker.Max, walker.Times(int64(concurrency)).Max))
}
