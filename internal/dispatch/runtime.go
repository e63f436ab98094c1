package dispatch

import "polybench/internal/workload"

// Virtual binds a kernel behind the Computer interface. Callers hold it as a
// Computer, so every call goes through the itab.
type Virtual[W workload.Kernel] struct {
	w W
}

func (v Virtual[W]) Compute(x float64) float64 { return v.w.Eval(x) }

// NewVirtual returns the runtime adapter for W as an interface value.
//
//go:noinline
func NewVirtual[W workload.Kernel]() Computer {
	return Virtual[W]{}
}
