package dispatch

import "polybench/internal/workload"

// Template binds a kernel purely through its type parameter. It stores no
// kernel value; Compute evaluates W's zero value, the analogue of calling a
// static member.
type Template[W workload.Kernel] struct{}

func (Template[W]) Compute(x float64) float64 {
	var w W
	return w.Eval(x)
}
