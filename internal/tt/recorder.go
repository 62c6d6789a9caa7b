// Package tt provides test helper functions for the stylish packages.
package tt

import (
	"fmt"

	"github.com/rickchristie/stylish"
)

// -----------------------------------------------------------------------------
// Recorder
// -----------------------------------------------------------------------------

// Recorder collects a trace of handler invocations so tests can assert on dispatch order.
type Recorder struct {
	calls    []string
	payloads []any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handler returns a handler that records label and the payload each time it runs.
func (r *Recorder) Handler(label string) stylish.Handler {
	return func(payload any) {
		r.Record(label, payload)
	}
}

// Record appends one entry to the trace.
func (r *Recorder) Record(label string, payload any) {
	r.calls = append(r.calls, label)
	r.payloads = append(r.payloads, payload)
}

// Recordf appends a formatted label with no payload.
func (r *Recorder) Recordf(format string, args ...any) {
	r.Record(fmt.Sprintf(format, args...), nil)
}

// Calls returns the recorded labels in invocation order.
func (r *Recorder) Calls() []string {
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Payloads returns the recorded payloads in invocation order.
func (r *Recorder) Payloads() []any {
	out := make([]any, len(r.payloads))
	copy(out, r.payloads)
	return out
}

// Count returns how many times label was recorded.
func (r *Recorder) Count(label string) int {
	n := 0
	for _, c := range r.calls {
		if c == label {
			n++
		}
	}
	return n
}

// Reset clears the trace.
func (r *Recorder) Reset() {
	r.calls = nil
	r.payloads = nil
}
