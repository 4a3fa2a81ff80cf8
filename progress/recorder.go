package progress

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Recorder is an in-memory Tracker that keeps every message and the final
// count of every progress window. It is meant for tests and diagnostics.
type Recorder struct {
	mu       sync.Mutex
	messages []string
	windows  []*atomic.Int64
	totals   []int64
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// LogMessage stores msg.
func (r *Recorder) LogMessage(msg string) {
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()
}

// Reset opens a new window.
func (r *Recorder) Reset(total int64) {
	r.mu.Lock()
	r.windows = append(r.windows, &atomic.Int64{})
	r.totals = append(r.totals, total)
	r.mu.Unlock()
}

// LogProgress adds delta to the current window. Progress before the first
// Reset opens an implicit window with an unknown total.
func (r *Recorder) LogProgress(delta int64) {
	r.mu.Lock()
	if len(r.windows) == 0 {
		r.windows = append(r.windows, &atomic.Int64{})
		r.totals = append(r.totals, 0)
	}
	w := r.windows[len(r.windows)-1]
	r.mu.Unlock()
	w.Add(delta)
}

// Messages returns a copy of all recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// ContainsMessage reports whether any message contains fragment.
func (r *Recorder) ContainsMessage(fragment string) bool {
	for _, m := range r.Messages() {
		if strings.Contains(m, fragment) {
			return true
		}
	}
	return false
}

// Progresses returns the accumulated count of every window in Reset order.
func (r *Recorder) Progresses() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, len(r.windows))
	for i, w := range r.windows {
		out[i] = w.Load()
	}
	return out
}

// Totals returns the expected total announced by every Reset.
func (r *Recorder) Totals() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.totals...)
}
