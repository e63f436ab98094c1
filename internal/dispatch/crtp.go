package dispatch

import "polybench/internal/workload"

// Impl is what Base requires of its concrete variant.
type Impl interface {
	ComputeImpl(x float64) float64
}

// Base is a shared abstraction parameterized by its own concrete variant.
// Compute forwards to the variant's ComputeImpl, resolved at compile time
// with no interface table involved.
type Base[D Impl] struct {
	derived D
}

func (b Base[D]) Compute(x float64) float64 {
	return b.derived.ComputeImpl(x)
}

// Derived is the concrete variant for kernel W.
type Derived[W workload.Kernel] struct{}

func (Derived[W]) ComputeImpl(x float64) float64 {
	var w W
	return w.Eval(x)
}

// Self is the self-dispatching adapter for W.
type Self[W workload.Kernel] = Base[Derived[W]]
