// Package harness times a bound workload over a fixed number of calls.
package harness

import (
	"time"
)

// Probe is the input passed to every workload call.
const Probe = 2.0

// Computer is the call shape every dispatch adapter exposes.
type Computer interface {
	Compute(x float64) float64
}

// Sink receives the accumulated result of a timed loop so the compiler
// cannot prove the loop is dead.
type Sink interface {
	Store(v float64)
}

// Barrier is the default Sink. The stored value is never read back by
// production code.
type Barrier struct {
	v float64
}

// Store implements Sink.
func (b *Barrier) Store(v float64) { b.v = v }

// Default is the process-wide barrier used by registry entries. Only one
// timed loop runs at a time, so it needs no synchronization.
var Default Sink = &Barrier{}

// Loop calls one bound adapter n times with Probe and returns the sum of the
// results. Each loop is compiled against a concrete adapter type, so the
// call inside it is bound the way its strategy binds it and not through a
// generic dictionary.
type Loop func(n uint64) float64

// Time runs loop for n calls, hands the sum to sink and returns the
// wall-clock time spent. n must be positive.
func Time(loop Loop, n uint64, sink Sink) time.Duration {
	if n == 0 {
		panic("harness: iteration count must be positive")
	}

	start := time.Now()
	sum := loop(n)
	sink.Store(sum)
	return time.Since(start)
}
