package benchmark

import "time"

// Measurement is the timing of one (category, workload) pair.
type Measurement struct {
	Category   string        `json:"category"`
	Workload   string        `json:"workload"`
	Iterations uint64        `json:"iterations"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Key identifies the measured pair, e.g. "runtime/fma".
func (m Measurement) Key() string {
	return m.Category + "/" + m.Workload
}

// Seconds is the elapsed time as floating-point seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed.Seconds()
}

// NsPerOp is the mean cost of one call.
func (m Measurement) NsPerOp() float64 {
	if m.Iterations == 0 {
		return 0
	}
	return float64(m.Elapsed.Nanoseconds()) / float64(m.Iterations)
}

// Scope says whether a Run holds a single test or the whole catalog.
type Scope string

const (
	ScopeSingle Scope = "single"
	ScopeAll    Scope = "all"
)

// Run represents a collection of measurements from a single invocation.
type Run struct {
	ID         string        `json:"id,omitempty"`
	Timestamp  time.Time     `json:"timestamp"`
	Scope      Scope         `json:"scope"`
	Iterations uint64        `json:"iterations"`
	Build      Build         `json:"build"`
	Results    []Measurement `json:"results"`
}
