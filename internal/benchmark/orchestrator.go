package benchmark

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/google/uuid"

	benchErrors "polybench/internal/errors"
	"polybench/internal/registry"
	"polybench/internal/telemetry"
)

// Catalog is the registry view the orchestrator needs.
type Catalog interface {
	Lookup(category, workload string) (registry.Entry, error)
	All() iter.Seq[registry.Entry]
}

// Recorder receives every measurement, e.g. for metrics export.
type Recorder interface {
	Observe(category, workload string, iterations uint64, elapsed time.Duration)
}

// Orchestrator runs registry entries one at a time and forwards the
// results to a sink when asked to persist.
type Orchestrator struct {
	Catalog  Catalog
	Sink     Sink
	Out      io.Writer
	Recorder Recorder
	Build    Build
	Now      func() time.Time
}

// NewOrchestrator wires an orchestrator printing to out. sink may be nil
// when nothing is persisted.
func NewOrchestrator(catalog Catalog, sink Sink, out io.Writer) *Orchestrator {
	return &Orchestrator{
		Catalog: catalog,
		Sink:    sink,
		Out:     out,
		Build:   CurrentBuild(),
		Now:     time.Now,
	}
}

// RunOne times a single pair. If persist is set the measurement is saved as
// a single-scope run. A sink failure is returned as a *errors.SinkError
// alongside the valid measurement.
func (o *Orchestrator) RunOne(category, workload string, iterations uint64, persist bool) (Measurement, error) {
	if iterations == 0 {
		return Measurement{}, &benchErrors.IterationError{Input: "0"}
	}

	entry, err := o.Catalog.Lookup(category, workload)
	if err != nil {
		return Measurement{}, err
	}

	m := o.execute(entry, iterations)

	if persist {
		if err := o.save(ScopeSingle, iterations, []Measurement{m}); err != nil {
			return m, err
		}
	}
	return m, nil
}

// RunAll times every catalog entry exactly once, sequentially. When persist
// is set the full set is saved as one aggregate run at the end.
func (o *Orchestrator) RunAll(iterations uint64, persist bool) ([]Measurement, error) {
	if iterations == 0 {
		return nil, &benchErrors.IterationError{Input: "0"}
	}

	var results []Measurement
	for entry := range o.Catalog.All() {
		m, err := o.RunOne(entry.Category, entry.Workload, iterations, false)
		if err != nil {
			return results, err
		}
		results = append(results, m)
	}

	if persist {
		if err := o.save(ScopeAll, iterations, results); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (o *Orchestrator) execute(entry registry.Entry, iterations uint64) Measurement {
	telemetry.LogDebug("Running test", "test", entry.Name, "iterations", iterations)

	elapsed := entry.Run(iterations)

	m := Measurement{
		Category:   entry.Category,
		Workload:   entry.Workload,
		Iterations: iterations,
		Elapsed:    elapsed,
	}

	if o.Out != nil {
		fmt.Fprintf(o.Out, "%s: %d iterations in %.9f seconds\n", m.Key(), m.Iterations, m.Seconds())
	}
	if o.Recorder != nil {
		o.Recorder.Observe(m.Category, m.Workload, m.Iterations, m.Elapsed)
	}
	telemetry.LogInfo("Test completed", "test", entry.Name, "iterations", iterations, "seconds", m.Seconds())
	return m
}

func (o *Orchestrator) save(scope Scope, iterations uint64, results []Measurement) error {
	if o.Sink == nil {
		return benchErrors.NewSinkError("", fmt.Errorf("no sink configured"))
	}

	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	run := Run{
		ID:         uuid.NewString(),
		Timestamp:  now(),
		Scope:      scope,
		Iterations: iterations,
		Build:      o.Build,
		Results:    results,
	}

	target, err := o.Sink.Save(run)
	if err != nil {
		if !errors.Is(err, benchErrors.ErrSinkUnavailable) {
			err = benchErrors.NewSinkError(target, err)
		}
		telemetry.LogError("Failed to save results", err, "scope", scope)
		return err
	}
	if o.Out != nil && target != "" {
		fmt.Fprintf(o.Out, "Test results saved to: %s\n", target)
	}
	return nil
}
