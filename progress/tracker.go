package progress

import (
	"context"
	"sync/atomic"
)

// Tracker receives coarse progress signals from an algorithm.
//
// Reset opens a new progress window (one phase or one iteration) expecting
// total units of work; LogProgress is called concurrently by workers as units
// complete; LogMessage marks phase boundaries. Implementations must be safe for
// concurrent LogProgress calls.
type Tracker interface {
	LogMessage(msg string)
	Reset(total int64)
	LogProgress(delta int64)
}

// Null is a Tracker that ignores every signal.
var Null Tracker = nullTracker{}

type nullTracker struct{}

func (nullTracker) LogMessage(string) {}
func (nullTracker) Reset(int64)       {}
func (nullTracker) LogProgress(int64) {}

// OrNull returns t, or Null when t is nil.
func OrNull(t Tracker) Tracker {
	if t == nil {
		return Null
	}
	return t
}

// logStep is the percentage granularity of LogTracker progress lines.
const logStep = 10

// LogTracker writes phase messages and every logStep percent of progress to a Logger.
type LogTracker struct {
	logger *Logger
	task   string

	total   atomic.Int64
	done    atomic.Int64
	lastPct atomic.Int64
}

// NewLogTracker returns a Tracker that logs through logger, prefixing
// messages with task (for example "RandomProjection").
func NewLogTracker(logger *Logger, task string) *LogTracker {
	if logger == nil {
		logger = NoopLogger()
	}
	return &LogTracker{logger: logger, task: task}
}

// LogMessage logs "<task> <msg>" at info level.
func (t *LogTracker) LogMessage(msg string) {
	t.logger.InfoContext(context.Background(), t.task+" "+msg)
}

// Reset opens a new window of total units.
func (t *LogTracker) Reset(total int64) {
	t.total.Store(total)
	t.done.Store(0)
	t.lastPct.Store(0)
}

// LogProgress adds delta completed units and logs when a new step is crossed.
// Exactly one goroutine logs each step.
func (t *LogTracker) LogProgress(delta int64) {
	done := t.done.Add(delta)
	total := t.total.Load()
	if total <= 0 {
		return
	}
	pct := done * 100 / total
	if pct > 100 {
		pct = 100
	}
	step := pct / logStep * logStep
	for {
		last := t.lastPct.Load()
		if step <= last {
			return
		}
		if t.lastPct.CompareAndSwap(last, step) {
			t.logger.DebugContext(context.Background(), t.task+" progress",
				"percent", step,
				"done", done,
				"total", total,
			)
			return
		}
	}
}

// Multi fans every signal out to all trackers.
func Multi(trackers ...Tracker) Tracker {
	out := make(multi, 0, len(trackers))
	for _, t := range trackers {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

type multi []Tracker

func (m multi) LogMessage(msg string) {
	for _, t := range m {
		t.LogMessage(msg)
	}
}

func (m multi) Reset(total int64) {
	for _, t := range m {
		t.Reset(total)
	}
}

func (m multi) LogProgress(delta int64) {
	for _, t := range m {
		t.LogProgress(delta)
	}
}
