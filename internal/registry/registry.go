// Package registry is the catalog of every (category, workload) pair that
// polybench can time. Rows are generated from the workload list and the
// strategy binders, so neither side is written out per pair.
package registry

//go:generate go run ../specialize

import (
	"iter"
	"sync"
	"time"

	"polybench/internal/dispatch"
	benchErrors "polybench/internal/errors"
	"polybench/internal/harness"
)

// Categories, one per dispatch strategy.
const (
	CategoryRuntime   = "runtime"
	CategoryTemplates = "templates"
	CategoryCRTP      = "crtp"
	CategoryConcepts  = "concepts"
)

// Entry is one runnable test.
type Entry struct {
	Name     string
	Category string
	Workload string

	// Run times the adapter over the given number of calls.
	Run func(iterations uint64) time.Duration
	// Eval is the timed adapter, called once and untimed.
	Eval func(x float64) float64
	// Reference is the generic adapter Eval was specialized from.
	Reference func(x float64) float64
}

type binding struct {
	loop      harness.Loop
	eval      func(float64) float64
	reference func(float64) float64
}

// bound pairs the generated loop over c with ref, the generic adapter c
// specializes.
func bound[C, R harness.Computer](loop func(C) harness.Loop, c C, ref R) binding {
	return binding{loop: loop(c), eval: c.Compute, reference: ref.Compute}
}

// constrained only admits types the compiler has checked against
// dispatch.Computable.
func constrained[C, R dispatch.Computable](loop func(C) harness.Loop, c C, ref R) binding {
	return bound(loop, dispatch.Accept(c), dispatch.Accept(ref))
}

type strategyBinding struct {
	category string
	binding
}

// workloadRow binds one workload to every strategy. The rows and their
// binders live in loops_gen.go.
type workloadRow struct {
	name string
	bind func() []strategyBinding
}

// Registry maps (category, workload) to Entry. It is read-only once built.
type Registry struct {
	categories []string
	workloads  map[string][]string
	entries    map[string]map[string]Entry
}

// New builds a registry whose entries write their barrier value to sink.
func New(sink harness.Sink) *Registry {
	r := &Registry{
		workloads: make(map[string][]string),
		entries:   make(map[string]map[string]Entry),
	}
	for _, row := range workloads {
		for _, sb := range row.bind() {
			loop := sb.loop
			r.add(Entry{
				Name:     sb.category + "." + row.name,
				Category: sb.category,
				Workload: row.name,
				Run: func(n uint64) time.Duration {
					return harness.Time(loop, n, sink)
				},
				Eval:      sb.eval,
				Reference: sb.reference,
			})
		}
	}
	return r
}

func (r *Registry) add(e Entry) {
	inner, ok := r.entries[e.Category]
	if !ok {
		inner = make(map[string]Entry)
		r.entries[e.Category] = inner
		r.categories = append(r.categories, e.Category)
	}
	if _, dup := inner[e.Workload]; dup {
		panic("registry: duplicate entry " + e.Name)
	}
	inner[e.Workload] = e
	r.workloads[e.Category] = append(r.workloads[e.Category], e.Workload)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, built on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = New(harness.Default)
	})
	return defaultReg
}

// Lookup resolves a pair. An unknown category and an unknown workload are
// reported as distinct errors; both match errors.ErrNotFound.
func (r *Registry) Lookup(category, workload string) (Entry, error) {
	inner, ok := r.entries[category]
	if !ok {
		return Entry{}, benchErrors.NewCategoryError(category)
	}
	e, ok := inner[workload]
	if !ok {
		return Entry{}, benchErrors.NewWorkloadError(category, workload)
	}
	return e, nil
}

// All yields every entry exactly once, categories in registration order and
// workloads by increasing cost. Each call starts a fresh iteration.
func (r *Registry) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, c := range r.categories {
			for _, w := range r.workloads[c] {
				if !yield(r.entries[c][w]) {
					return
				}
			}
		}
	}
}

// Len is the number of entries.
func (r *Registry) Len() int {
	n := 0
	for _, c := range r.categories {
		n += len(r.workloads[c])
	}
	return n
}

// Categories returns the registered categories.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}

// Workloads returns the workloads registered under category.
func (r *Registry) Workloads(category string) []string {
	return append([]string(nil), r.workloads[category]...)
}
