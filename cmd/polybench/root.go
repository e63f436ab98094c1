package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"polybench/internal/benchmark"
	"polybench/internal/config"
	benchErrors "polybench/internal/errors"
	"polybench/internal/metrics"
	"polybench/internal/registry"
	"polybench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string

var (
	iterationsFlag string
	saveFlag       bool
)

// errUsage marks errors whose usage text was already printed.
var errUsage = errors.New("invalid arguments")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "polybench [category] [workload]",
	Short: "Measure the cost of Go's polymorphism strategies",
	Long: `polybench times the same arithmetic workloads behind four dispatch
strategies: interface method calls, generic type parameters, a
self-referential generic base and constraint-checked generics.

With no arguments every test runs once, in catalog order. With a category
and a workload only that test runs.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = initConfig

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	rootCmd.Flags().StringVarP(&iterationsFlag, "iterations", "n", "", fmt.Sprintf("Number of timed calls per test (default %d)", config.DefaultIterations))
	rootCmd.Flags().BoolVarP(&saveFlag, "save", "s", false, "Save results to the output directory and history")
	rootCmd.Flags().Int("repeat", 1, "Run the selection this many times")

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			defaultHelp(cmd, args)
			return
		}
		printUsage(cmd.OutOrStdout(), registry.Default())
		fmt.Fprintf(cmd.OutOrStdout(), "\nFlags:\n%s", cmd.Flags().FlagUsages())
		fmt.Fprintln(cmd.OutOrStdout(), "\nCommands:")
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", c.Name(), c.Short)
			}
		}
	})
}

// initConfig reads in config file and ENV variables if set.
func initConfig(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("repeat", root.Flags().Lookup("repeat"))

	if err := config.Load(cfgFile); err != nil {
		return err
	}

	// Validate configuration values
	if err := config.ValidateConfig(); err != nil {
		return err
	}

	cfg := config.FromViper()
	telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	reg := registry.Default()
	stderr := cmd.ErrOrStderr()

	if len(args) != 0 && len(args) != 2 {
		fmt.Fprintf(stderr, "Error: expected a category and a workload, got %d argument(s)\n\n", len(args))
		printUsage(stderr, reg)
		return errUsage
	}

	cfg := config.FromViper()

	iterations := cfg.Iterations
	if cmd.Flags().Changed("iterations") {
		n, err := ParseIterations(iterationsFlag)
		if err != nil {
			return err
		}
		iterations = n
	}

	if len(args) == 2 {
		if _, err := reg.Lookup(args[0], args[1]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n\n", err)
			printUsage(stderr, reg)
			return errUsage
		}
	}

	var sink benchmark.Sink
	if saveFlag {
		s, closeSink := openSink(cfg, stderr)
		defer closeSink()
		sink = s
	}

	orch := benchmark.NewOrchestrator(reg, sink, cmd.OutOrStdout())

	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.NewMetrics()
		orch.Recorder = m
	}

	for range cfg.Repeat {
		var err error
		if len(args) == 2 {
			_, err = orch.RunOne(args[0], args[1], iterations, saveFlag)
		} else {
			_, err = orch.RunAll(iterations, saveFlag)
		}
		if err != nil {
			// Measurements stay valid when only persistence failed.
			if !errors.Is(err, benchErrors.ErrSinkUnavailable) {
				return err
			}
			fmt.Fprintf(stderr, "Warning: failed to save results: %v\n", err)
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to write metrics: %v\n", err)
		} else {
			telemetry.LogInfof("Metrics written to %s", cfg.MetricsFile)
		}
	}
	return nil
}
