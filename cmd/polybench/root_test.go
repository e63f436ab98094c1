package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resultLine = regexp.MustCompile(`^([a-z]+)/([a-z]+): (\d+) iterations in \d+\.\d{9} seconds$`)

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRoot_SingleTest(t *testing.T) {
	res := executeCommand(t, "runtime", "fma", "-n", "1000")

	assert.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	out := lines(res.Stdout)
	require.Len(t, out, 1)
	m := resultLine.FindStringSubmatch(out[0])
	require.NotNil(t, m, "unexpected line %q", out[0])
	assert.Equal(t, "runtime", m[1])
	assert.Equal(t, "fma", m[2])
	assert.Equal(t, "1000", m[3])
}

func TestRoot_SingleTestDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	res := executeCommandIn(t, dir, "templates", "minimal", "-n", "10")
	require.Equal(t, 0, res.Code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a run without -s must not touch the disk")
}

func TestRoot_AllTests(t *testing.T) {
	res := executeCommand(t, "-n", "10")

	assert.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	out := lines(res.Stdout)
	require.Len(t, out, 20)

	var keys []string
	for _, l := range out {
		m := resultLine.FindStringSubmatch(l)
		require.NotNil(t, m, "unexpected line %q", l)
		assert.Equal(t, "10", m[3])
		keys = append(keys, m[1]+"/"+m[2])
	}
	assert.Equal(t, "runtime/minimal", keys[0])
	assert.Equal(t, "runtime/expensive", keys[4])
	assert.Equal(t, "templates/minimal", keys[5])
	assert.Equal(t, "concepts/expensive", keys[19])
}

func TestRoot_Repeat(t *testing.T) {
	res := executeCommand(t, "crtp", "simple", "-n", "5", "--repeat", "3")

	assert.Equal(t, 0, res.Code)
	out := lines(res.Stdout)
	require.Len(t, out, 3)
	for _, l := range out {
		assert.True(t, strings.HasPrefix(l, "crtp/simple: 5 iterations"), l)
	}
}

func TestRoot_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown category", []string{"badcat", "fma"}, "invalid polymorphism category 'badcat'"},
		{"unknown workload", []string{"runtime", "nope"}, "invalid computation 'nope' for category 'runtime'"},
		{"single argument", []string{"runtime"}, "expected a category and a workload, got 1 argument(s)"},
		{"three arguments", []string{"runtime", "fma", "extra"}, "got 3 argument(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := executeCommand(t, append(tt.args, "-n", "10")...)

			assert.Equal(t, 1, res.Code)
			assert.Empty(t, res.Stdout, "nothing may run")
			assert.Contains(t, res.Stderr, tt.wantErr)
			assert.Contains(t, res.Stderr, "Usage: polybench")
			assert.Contains(t, res.Stderr, "Valid arguments:")
			assert.Contains(t, res.Stderr, "concepts")
			assert.Contains(t, res.Stderr, "expensive")
		})
	}
}

func TestRoot_InvalidIterations(t *testing.T) {
	for _, input := range []string{"0", "abc", "100abc", "-5", ""} {
		t.Run("input="+input, func(t *testing.T) {
			res := executeCommand(t, "runtime", "fma", "-n", input)

			assert.Equal(t, 1, res.Code)
			assert.Empty(t, res.Stdout)
			assert.Contains(t, res.Stderr, "invalid iteration count '"+input+"'")
		})
	}
}

func TestRoot_IterationsFromEnv(t *testing.T) {
	t.Setenv("POLYBENCH_ITERATIONS", "7")
	res := executeCommand(t, "concepts", "medium")

	assert.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	assert.Contains(t, res.Stdout, "concepts/medium: 7 iterations")
}

func TestRoot_FlagOverridesEnv(t *testing.T) {
	t.Setenv("POLYBENCH_ITERATIONS", "7")
	res := executeCommand(t, "concepts", "medium", "-n", "9")

	assert.Equal(t, 0, res.Code)
	assert.Contains(t, res.Stdout, "concepts/medium: 9 iterations")
}

func TestRoot_InvalidConfig(t *testing.T) {
	t.Setenv("POLYBENCH_STORE_TYPE", "mongo")
	res := executeCommand(t, "runtime", "fma", "-n", "10")

	assert.Equal(t, 1, res.Code)
	assert.Empty(t, res.Stdout)
	assert.Contains(t, res.Stderr, "store.type must be one of sqlite, postgres, got: mongo")
}

func TestRoot_Help(t *testing.T) {
	res := executeCommand(t, "--help")

	assert.Equal(t, 0, res.Code)
	assert.Contains(t, res.Stdout, "Usage: polybench [category] [workload] [-n iterations] [-s]")
	assert.Contains(t, res.Stdout, "Valid arguments:")
	assert.Contains(t, res.Stdout, "--iterations")
	assert.Contains(t, res.Stdout, "verify")
	assert.NotContains(t, res.Stdout, "iterations in")
}

func TestRoot_SubcommandHelp(t *testing.T) {
	res := executeCommand(t, "compare", "--help")

	assert.Equal(t, 0, res.Code)
	assert.Contains(t, res.Stdout, "--threshold")
	assert.NotContains(t, res.Stdout, "Valid arguments:")
}

func TestRoot_Save(t *testing.T) {
	dir := t.TempDir()
	res := executeCommandIn(t, dir, "runtime", "fma", "-n", "100", "-s")

	require.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	assert.Contains(t, res.Stdout, "Test results saved to: ")

	files, err := filepath.Glob(filepath.Join(dir, "data", "single_test_results", "*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Regexp(t, `\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}-\d{3}\.txt$`, files[0])

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Polymorphism Benchmark Results")
	assert.Contains(t, string(content), "- Iterations: 100")
	assert.Regexp(t, `\| runtime \| fma \| \d+\.\d{9} \|`, string(content))

	assert.FileExists(t, filepath.Join(dir, "data", "history.json"))
}

func TestRoot_SaveAll(t *testing.T) {
	dir := t.TempDir()
	res := executeCommandIn(t, dir, "-n", "3", "-s")
	require.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)

	files, err := filepath.Glob(filepath.Join(dir, "data", "run_all_tests_results", "*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	rows := regexp.MustCompile(`(?m)^\| [a-z]+ \| [a-z]+ \| `).FindAllString(string(content), -1)
	assert.Len(t, rows, 20, "one row per test")
	assert.Equal(t, 1, strings.Count(res.Stdout, "Test results saved to:"))
}

func TestRoot_SinkFailureKeepsExitZero(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocked"), []byte("x"), 0644))
	t.Setenv("POLYBENCH_OUTPUT_DIR", "blocked/out")
	t.Setenv("POLYBENCH_HISTORY_FILE", "blocked/history.json")

	res := executeCommandIn(t, dir, "runtime", "fma", "-n", "10", "-s")

	assert.Equal(t, 0, res.Code)
	assert.Contains(t, res.Stdout, "runtime/fma: 10 iterations")
	assert.NotContains(t, res.Stdout, "Test results saved to:")
	assert.Contains(t, res.Stderr, "Warning: failed to save results")
	assert.Contains(t, res.Stderr, "result sink unavailable")
}

func TestRoot_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POLYBENCH_METRICS_FILE", "metrics/polybench.prom")

	res := executeCommandIn(t, dir, "templates", "expensive", "-n", "50")
	require.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)

	content, err := os.ReadFile(filepath.Join(dir, "metrics", "polybench.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `polybench_iterations_total{category="templates",workload="expensive"} 50`)
	assert.Contains(t, string(content), "polybench_ns_per_op")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("iterations: 12\nrepeat: 2\n"), 0644))

	res := executeCommandIn(t, dir, "runtime", "simple")

	require.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	out := lines(res.Stdout)
	require.Len(t, out, 2)
	assert.Contains(t, out[0], "runtime/simple: 12 iterations")
}

func TestRoot_ConfigHookRunsForSubcommands(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentPreRunE)

	res := executeCommand(t, "list", "-v")

	assert.Equal(t, 0, res.Code, "stderr: %s", res.Stderr)
	assert.True(t, viper.GetBool("verbose"), "persistent flags bound through the root command")
	assert.Equal(t, 1, viper.GetInt("repeat"))
}
