package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polybench/internal/benchmark"
	"polybench/internal/config"
	"polybench/internal/ui"
)

var compareThreshold float64

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "Percentage threshold for regression warning")
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the last two saved runs",
	Long: `Loads the JSON history written by 'polybench -s' and compares the two most
recent runs test by test. Costs are compared per call, so runs with
different iteration counts can be compared. A slowdown beyond the threshold
is reported as FAIL, a speedup beyond it as IMPR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()
		store := benchmark.NewFileStore(cfg.HistoryFile)

		runs, err := store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(runs) < 2 {
			fmt.Fprintf(cmd.OutOrStdout(), "Need at least two saved runs in %s to compare, found %d.\n", store.Path(), len(runs))
			return nil
		}

		prev, curr := runs[len(runs)-2], runs[len(runs)-1]
		comparisons := benchmark.Compare(prev, curr)
		if len(comparisons) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The last two runs have no tests in common.")
			return nil
		}

		printComparisons(cmd, prev, curr, comparisons, compareThreshold)
		return nil
	},
}

func printComparisons(cmd *cobra.Command, prev, curr benchmark.Run, comparisons []benchmark.Comparison, threshold float64) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Comparing %s with %s (threshold %.1f%%)\n\n",
		curr.Timestamp.Local().Format("2006-01-02 15:04:05"),
		prev.Timestamp.Local().Format("2006-01-02 15:04:05"),
		threshold)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TEST\tPREV NS/OP\tCURR NS/OP\tDIFF %\tSTATUS")
	for _, c := range comparisons {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%+.2f%%\t%s\n",
			c.Key, c.Prev.NsPerOp(), c.Curr.NsPerOp(), c.Diff, ui.Status(c.Status(threshold)))
	}
	w.Flush()
}
