package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polybench/internal/benchmark"
	"polybench/internal/harness"
	"polybench/internal/registry"
	"polybench/internal/ui"
	"polybench/internal/workload"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every strategy computes the same values",
	Long: `Evaluates every test once at the probe input, untimed, and checks that
all polymorphism categories agree for each computation and that every timed
adapter matches the generic adapter it was generated from. Exits with
status 1 when any computation diverges.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.Default()
		results := probeCatalog(reg, harness.Probe)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprint(w, "COMPUTATION")
		for _, c := range reg.Categories() {
			fmt.Fprintf(w, "\t%s", c)
		}
		fmt.Fprintln(w, "\tSTATUS")

		failed := 0
		for _, r := range results {
			fmt.Fprint(w, r.Workload)
			for _, v := range r.Values {
				fmt.Fprintf(w, "\t%.12g", v)
			}
			status := benchmark.StatusPass
			if !r.Agree {
				status = benchmark.StatusRegression
				failed++
			}
			fmt.Fprintf(w, "\t%s\n", ui.Status(status))
		}
		w.Flush()

		if failed > 0 {
			return fmt.Errorf("strategies disagree on %d computation(s)", failed)
		}
		return nil
	},
}

// probeResult holds one computation's value under every category, in
// registry category order. Agree also requires each timed adapter to match
// its generic reference bit for bit.
type probeResult struct {
	Workload string
	Values   []float64
	Agree    bool
}

func probeCatalog(reg *registry.Registry, x float64) []probeResult {
	var results []probeResult
	for _, name := range workload.Names() {
		r := probeResult{Workload: name}
		specialized := true
		for _, c := range reg.Categories() {
			e, err := reg.Lookup(c, name)
			if err != nil {
				r.Values = append(r.Values, math.NaN())
				continue
			}
			v := e.Eval(x)
			if math.Float64bits(v) != math.Float64bits(e.Reference(x)) {
				specialized = false
			}
			r.Values = append(r.Values, v)
		}
		r.Agree = specialized && agree(r.Values)
		results = append(results, r)
	}
	return results
}

// agree reports whether all values are equal within a relative 1e-12. NaN
// never agrees.
func agree(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) {
			return false
		}
	}
	for i := 1; i < len(values); i++ {
		a, b := values[0], values[i]
		scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
		if math.Abs(a-b) > 1e-12*scale {
			return false
		}
	}
	return true
}
