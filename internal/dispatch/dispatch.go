// Package dispatch adapts workload kernels to the calling conventions being
// compared. Every adapter exposes Compute(x float64) float64; they differ
// only in how that call is bound to the kernel.
package dispatch

// Computer is the shared adapter contract.
type Computer interface {
	Compute(x float64) float64
}
