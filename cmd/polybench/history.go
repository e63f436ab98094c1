package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"polybench/internal/config"
	"polybench/internal/db"
	"polybench/internal/registry"
	"polybench/internal/utils"
)

var (
	historyLimit int
	historySince string
)

// historyNow is swapped in tests.
var historyNow = time.Now

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of measurements to show")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only show measurements newer than this (e.g. 7d, 24h, 2025-01-31)")
}

var historyCmd = &cobra.Command{
	Use:   "history <category> <workload>",
	Short: "Show past measurements of a test from the SQL store",
	Long: `Lists the most recent saved measurements of one test, newest first.
--limit is applied before --since. Requires store.type to be set to sqlite or postgres.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, name := args[0], args[1]
		if _, err := registry.Default().Lookup(category, name); err != nil {
			return err
		}

		now := historyNow()
		var since time.Time
		if historySince != "" {
			t, err := utils.ParseSince(historySince, now)
			if err != nil {
				return err
			}
			since = t
		}

		cfg := config.FromViper()
		if cfg.StoreType == "" {
			return fmt.Errorf("history requires store.type to be set (sqlite or postgres)")
		}

		store, err := newStore(db.StoreConfig{Type: cfg.StoreType, ConnectionString: cfg.StoreDSN})
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.StoreType, err)
		}
		defer store.Close()

		records, err := store.QueryHistory(category, name, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to query history: %w", err)
		}
		if !since.IsZero() {
			kept := records[:0]
			for _, r := range records {
				if !r.RecordedAt.Before(since) {
					kept = append(kept, r)
				}
			}
			records = kept
		}
		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No measurements found for %s/%s.\n", category, name)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RECORDED\tAGE\tSCOPE\tITERATIONS\tSECONDS\tNS/OP")
		for _, r := range records {
			m := r.Measurement()
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.9f\t%.3f\n",
				r.RecordedAt.Local().Format("2006-01-02 15:04:05"), utils.FormatAge(r.RecordedAt, now),
				r.Scope, m.Iterations, m.Seconds(), m.NsPerOp())
		}
		w.Flush()
		return nil
	},
}
