// Package report renders saved runs in formats meant for people rather than
// for the history files.
package report

import (
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"polybench/internal/benchmark"
	"polybench/internal/workload"
)

// ChartTitle heads every rendered chart.
const ChartTitle = "Polymorphism Benchmark"

// WriteChart renders run as an HTML bar chart of ns/op: one group per
// computation, one series per category. Computations keep their cost order.
func WriteChart(w io.Writer, run benchmark.Run) error {
	if len(run.Results) == 0 {
		return fmt.Errorf("run has no measurements")
	}

	var categories, workloads []string
	values := make(map[string]map[string]float64)
	for _, m := range run.Results {
		if _, ok := values[m.Category]; !ok {
			categories = append(categories, m.Category)
			values[m.Category] = make(map[string]float64)
		}
		if !slices.Contains(workloads, m.Workload) {
			workloads = append(workloads, m.Workload)
		}
		values[m.Category][m.Workload] = m.NsPerOp()
	}
	sortByCost(workloads)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    ChartTitle,
			Subtitle: fmt.Sprintf("%s, %d iterations, %s", run.Build, run.Iterations, run.Timestamp.Local().Format("2006-01-02 15:04:05")),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/op"}),
	)

	bar.SetXAxis(workloads)
	for _, c := range categories {
		data := make([]opts.BarData, 0, len(workloads))
		for _, wl := range workloads {
			v, ok := values[c][wl]
			if !ok {
				data = append(data, opts.BarData{Value: "-"})
				continue
			}
			data = append(data, opts.BarData{Name: wl, Value: v})
		}
		bar.AddSeries(c, data)
	}

	return bar.Render(w)
}

// sortByCost orders known workloads by cost and puts unknown ones last.
func sortByCost(names []string) {
	rank := make(map[string]int)
	for i, n := range workload.Names() {
		rank[n] = i
	}
	slices.SortStableFunc(names, func(a, b string) int {
		ra, okA := rank[a]
		rb, okB := rank[b]
		switch {
		case okA && okB:
			return ra - rb
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}
