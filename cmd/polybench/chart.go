package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"polybench/internal/benchmark"
	"polybench/internal/config"
	"polybench/internal/report"
)

var chartOutput string

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "HTML file to write (default <output_dir>/chart.html)")
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the latest saved run as an HTML bar chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()

		runs, err := benchmark.NewFileStore(cfg.HistoryFile).LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(runs) == 0 {
			return fmt.Errorf("no saved runs in %s, run polybench with -s first", cfg.HistoryFile)
		}

		path := chartOutput
		if path == "" {
			path = filepath.Join(cfg.OutputDir, "chart.html")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := report.WriteChart(f, runs[len(runs)-1]); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Chart written to: %s\n", path)
		return nil
	},
}
