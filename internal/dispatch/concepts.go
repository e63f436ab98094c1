package dispatch

import "polybench/internal/workload"

// Computable is the capability contract checked by the compiler for the
// constrained-generic strategy.
type Computable interface {
	Compute(x float64) float64
}

// Concept is a plain value type that satisfies Computable.
type Concept[W workload.Kernel] struct{}

func (Concept[W]) Compute(x float64) float64 {
	var w W
	return w.Eval(x)
}

var (
	_ Computable = Concept[workload.Minimal]{}
	_ Computable = Concept[workload.FMA]{}
	_ Computable = Concept[workload.Simple]{}
	_ Computable = Concept[workload.Medium]{}
	_ Computable = Concept[workload.Expensive]{}
)

// Accept admits obj only if T satisfies Computable. It is the identity at
// run time.
func Accept[T Computable](obj T) T {
	return obj
}
