// Package memest estimates the memory an algorithm run will allocate, so callers
// can reject a run before any buffer exists.
//
// An Estimate is a [Min, Max] byte range. Fixed allocations contribute the same
// value to both bounds; allocations that depend on the worker count or on graph
// shape widen the range.
package memest

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// ErrBudgetExceeded is returned by Check when the worst case exceeds the budget.
var ErrBudgetExceeded = errors.New("memest: memory budget exceeded")

// Sizes of the primitive allocations.
const (
	BytesPerFloat64     = 8
	BytesPerInt64       = 8
	BytesPerSliceHeader = 24
	BytesPerObjectRef   = 8
)

// Estimate is a byte range.
type Estimate struct {
	Min int64
	Max int64
}

// Fixed returns an Estimate whose bounds are both bytes.
func Fixed(bytes int64) Estimate {
	return Estimate{Min: bytes, Max: bytes}
}

// Range returns an Estimate spanning [lo, hi]. The bounds are swapped when lo > hi.
func Range(lo, hi int64) Estimate {
	if lo > hi {
		lo, hi = hi, lo
	}
	return Estimate{Min: lo, Max: hi}
}

// Add returns the sum of e and every other estimate. Sums saturate at MaxInt64.
func (e Estimate) Add(others ...Estimate) Estimate {
	for _, o := range others {
		e.Min = satAdd(e.Min, o.Min)
		e.Max = satAdd(e.Max, o.Max)
	}
	return e
}

// Times returns e scaled by n (n < 0 is treated as 0).
func (e Estimate) Times(n int64) Estimate {
	if n <= 0 {
		return Estimate{}
	}
	return Estimate{Min: satMul(e.Min, n), Max: satMul(e.Max, n)}
}

// Check returns ErrBudgetExceeded when Max is larger than budget bytes.
// A non-positive budget disables the check.
func (e Estimate) Check(budget int64) error {
	if budget <= 0 || e.Max <= budget {
		return nil
	}
	return fmt.Errorf("%w: need up to %s, budget %s", ErrBudgetExceeded,
		humanize.IBytes(uint64(e.Max)), humanize.IBytes(uint64(budget)))
}

// String renders the range in IEC units, e.g. "[1.2 MiB ... 3.4 MiB]".
func (e Estimate) String() string {
	if e.Min == e.Max {
		return humanize.IBytes(uint64(max(e.Min, 0)))
	}
	return fmt.Sprintf("[%s ... %s]", humanize.IBytes(uint64(max(e.Min, 0))), humanize.IBytes(uint64(max(e.Max, 0))))
}

// SizeOfFloat64Slice returns the bytes of a []float64 of length n, header included.
func SizeOfFloat64Slice(n int64) int64 {
	return satAdd(BytesPerSliceHeader, satMul(max(n, 0), BytesPerFloat64))
}

// SizeOfInt64Slice returns the bytes of a []int64 (or []int on 64-bit) of length n.
func SizeOfInt64Slice(n int64) int64 {
	return satAdd(BytesPerSliceHeader, satMul(max(n, 0), BytesPerInt64))
}

// SizeOfSliceHeaders returns the bytes of a slice holding n slice headers,
// such as the outer [][]float64 of a node-indexed matrix.
func SizeOfSliceHeaders(n int64) int64 {
	return satAdd(BytesPerSliceHeader, satMul(max(n, 0), BytesPerSliceHeader))
}

// SizeOfFloat64Matrix returns the bytes of rows × cols stored as [][]float64.
func SizeOfFloat64Matrix(rows, cols int64) int64 {
	return satAdd(SizeOfSliceHeaders(rows), satMul(max(rows, 0), SizeOfFloat64Slice(cols)))
}

func satAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
