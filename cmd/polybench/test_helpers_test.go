package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// cliResult is what one CLI invocation produced.
type cliResult struct {
	Stdout string
	Stderr string
	Code   int
}

// executeCommand runs the root command through Execute inside a fresh
// working directory and records the exit code instead of exiting.
func executeCommand(t *testing.T, args ...string) cliResult {
	t.Helper()
	return executeCommandIn(t, t.TempDir(), args...)
}

// executeCommandIn is executeCommand with a caller-chosen working directory,
// for tests that chain several invocations over the same files.
func executeCommandIn(t *testing.T, dir string, args ...string) cliResult {
	t.Helper()
	t.Chdir(dir)

	viper.Reset()
	resetFlags(rootCmd)
	cfgFile = ""

	res := cliResult{}
	oldExit := exit
	exit = func(code int) { res.Code = code }
	defer func() { exit = oldExit }()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(bytes.NewBufferString(""))
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	Execute()

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
