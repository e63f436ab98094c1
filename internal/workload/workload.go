// Package workload holds the numeric kernels timed by polybench.
//
// Each kernel is a zero-size type so it can be passed around as a type
// parameter without carrying state. All kernels are total for positive
// inputs, which covers the probe value.
package workload

import "math"

// Kernel is a pure numeric function of one input.
type Kernel interface {
	Eval(x float64) float64
}

// Names of the workloads in order of increasing cost.
const (
	NameMinimal   = "minimal"
	NameFMA       = "fma"
	NameSimple    = "simple"
	NameMedium    = "medium"
	NameExpensive = "expensive"
)

// Names lists every workload name by increasing cost.
func Names() []string {
	return []string{NameMinimal, NameFMA, NameSimple, NameMedium, NameExpensive}
}

// Minimal returns its input.
type Minimal struct{}

func (Minimal) Eval(x float64) float64 { return x }

// FMA is a fused multiply-add approximating sqrt(2) and e.
type FMA struct{}

func (FMA) Eval(x float64) float64 { return x*1.414 + 2.718 }

// Simple computes x² + x.
type Simple struct{}

func (Simple) Eval(x float64) float64 { return x*x + x }

// Medium is the cubic x³ + 2x² - 3x + 5.
type Medium struct{}

func (Medium) Eval(x float64) float64 {
	return (x * x * x) + (2.0 * x * x) - (3.0 * x) + 5.0
}

// Expensive computes sin(x)·ln(x+1) + √x.
type Expensive struct{}

func (Expensive) Eval(x float64) float64 {
	return math.Sin(x)*math.Log(x+1) + math.Sqrt(x)
}
