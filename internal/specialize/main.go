// Command specialize writes the per-workload adapter types and timed loops
// that registry entries run.
//
// Every kernel is a zero-size type, so the compiler stencils all generic
// instantiations over them onto one GC shape and calls the kernel through
// a dictionary. A statically bound call site therefore has to exist in
// source. specialize emits one from the kernel list below and the four
// strategies, and the generic adapters in package dispatch stay as the
// reference each specialization is checked against.
//
// Run it through go generate in internal/registry.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	"github.com/spf13/pflag"
)

// kernel is one workload type in package workload.
type kernel struct {
	Type string
}

// kernels in order of increasing cost. Adding a workload means adding one
// row here and one type in package workload.
var kernels = []kernel{
	{Type: "Minimal"},
	{Type: "FMA"},
	{Type: "Simple"},
	{Type: "Medium"},
	{Type: "Expensive"},
}

type templateData struct {
	Kernels []kernel
}

var (
	dispatchTmpl = template.Must(template.New("dispatch").Parse(dispatchTemplate))
	registryTmpl = template.Must(template.New("registry").Parse(registryTemplate))
)

// render executes tmpl over the kernel list and writes gofmt'd source to w.
func render(w io.Writer, tmpl *template.Template) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Kernels: kernels}); err != nil {
		return fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", tmpl.Name(), err)
	}
	_, err = w.Write(src)
	return err
}

func writeFile(path string, tmpl *template.Template) error {
	var buf bytes.Buffer
	if err := render(&buf, tmpl); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

func main() {
	dispatchOut := pflag.String("dispatch", "../dispatch/specialized_gen.go", "output file for the adapter types")
	registryOut := pflag.String("registry", "loops_gen.go", "output file for the timed loops")
	pflag.Parse()

	for path, tmpl := range map[string]*template.Template{
		*dispatchOut: dispatchTmpl,
		*registryOut: registryTmpl,
	} {
		if err := writeFile(path, tmpl); err != nil {
			fmt.Fprintf(os.Stderr, "specialize: %v\n", err)
			os.Exit(1)
		}
	}
}

const dispatchTemplate = `// Code generated by specialize. DO NOT EDIT.

package dispatch

import "polybench/internal/workload"
{{range .Kernels}}
// Virtual{{.Type}} is Virtual[workload.{{.Type}}] with the kernel call bound
// directly. Callers only reach it through Computer.
type Virtual{{.Type}} struct{}

func (Virtual{{.Type}}) Compute(x float64) float64 { return workload.{{.Type}}{}.Eval(x) }

// NewVirtual{{.Type}} returns Virtual{{.Type}} as an interface value.
//
//go:noinline
func NewVirtual{{.Type}}() Computer { return Virtual{{.Type}}{} }

// Template{{.Type}} is Template[workload.{{.Type}}] specialized.
type Template{{.Type}} struct{}

func (Template{{.Type}}) Compute(x float64) float64 { return workload.{{.Type}}{}.Eval(x) }

// Derived{{.Type}} is Derived[workload.{{.Type}}] specialized.
type Derived{{.Type}} struct{}

func (Derived{{.Type}}) ComputeImpl(x float64) float64 { return workload.{{.Type}}{}.Eval(x) }

// Self{{.Type}} is Base[Derived[workload.{{.Type}}]] specialized.
type Self{{.Type}} struct {
	derived Derived{{.Type}}
}

func (b Self{{.Type}}) Compute(x float64) float64 { return b.derived.ComputeImpl(x) }

// Concept{{.Type}} is Concept[workload.{{.Type}}] specialized.
type Concept{{.Type}} struct{}

func (Concept{{.Type}}) Compute(x float64) float64 { return workload.{{.Type}}{}.Eval(x) }

var (
	_ Impl       = Derived{{.Type}}{}
	_ Computable = Concept{{.Type}}{}
)
{{end}}`

const registryTemplate = `// Code generated by specialize. DO NOT EDIT.

package registry

import (
	"polybench/internal/dispatch"
	"polybench/internal/harness"
	"polybench/internal/workload"
)

// workloads in order of increasing cost.
var workloads = []workloadRow{
{{- range .Kernels}}
	{workload.Name{{.Type}}, bind{{.Type}}},
{{- end}}
}
{{range .Kernels}}
func bind{{.Type}}() []strategyBinding {
	return []strategyBinding{
		{CategoryRuntime, bound(loopRuntime{{.Type}}, dispatch.NewVirtual{{.Type}}(), dispatch.NewVirtual[workload.{{.Type}}]())},
		{CategoryTemplates, bound(loopTemplates{{.Type}}, dispatch.Template{{.Type}}{}, dispatch.Template[workload.{{.Type}}]{})},
		{CategoryCRTP, bound(loopCRTP{{.Type}}, dispatch.Self{{.Type}}{}, dispatch.Self[workload.{{.Type}}]{})},
		{CategoryConcepts, constrained(loopConcepts{{.Type}}, dispatch.Concept{{.Type}}{}, dispatch.Concept[workload.{{.Type}}]{})},
	}
}

func loopRuntime{{.Type}}(c dispatch.Computer) harness.Loop {
	return func(n uint64) float64 {
		sum := 0.0
		for i := uint64(0); i < n; i++ {
			sum += c.Compute(harness.Probe)
		}
		return sum
	}
}

func loopTemplates{{.Type}}(c dispatch.Template{{.Type}}) harness.Loop {
	return func(n uint64) float64 {
		sum := 0.0
		for i := uint64(0); i < n; i++ {
			sum += c.Compute(harness.Probe)
		}
		return sum
	}
}

func loopCRTP{{.Type}}(c dispatch.Self{{.Type}}) harness.Loop {
	return func(n uint64) float64 {
		sum := 0.0
		for i := uint64(0); i < n; i++ {
			sum += c.Compute(harness.Probe)
		}
		return sum
	}
}

func loopConcepts{{.Type}}(c dispatch.Concept{{.Type}}) harness.Loop {
	return func(n uint64) float64 {
		sum := 0.0
		for i := uint64(0); i < n; i++ {
			sum += c.Compute(harness.Probe)
		}
		return sum
	}
}
{{end}}`
