package benchmark

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	benchErrors "polybench/internal/errors"
)

// Sink persists a Run. Save returns where the run was written.
type Sink interface {
	Save(run Run) (string, error)
}

// MultiSink saves a run to every sink in order. A failing sink does not
// stop the others; the failures are joined.
type MultiSink []Sink

func (m MultiSink) Save(run Run) (string, error) {
	var targets []string
	var errs []error
	for _, s := range m {
		target, err := s.Save(run)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if target != "" {
			targets = append(targets, target)
		}
	}
	return strings.Join(targets, ", "), errors.Join(errs...)
}

// Output directories under the Markdown sink root.
const (
	SingleDir = "single_test_results"
	AllDir    = "run_all_tests_results"
)

// MarkdownSink writes each run to its own timestamped text file holding a
// Markdown table.
type MarkdownSink struct {
	Root string
}

// createFile is swapped in tests.
var createFile = func(path string) (io.WriteCloser, error) { return os.Create(path) }

func NewMarkdownSink(root string) *MarkdownSink {
	return &MarkdownSink{Root: root}
}

func (s *MarkdownSink) Save(run Run) (string, error) {
	dir := filepath.Join(s.Root, SingleDir)
	if run.Scope == ScopeAll {
		dir = filepath.Join(s.Root, AllDir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", benchErrors.NewSinkError(dir, fmt.Errorf("failed to create directory: %w", err))
	}

	path := filepath.Join(dir, TimestampFileName(run))
	f, err := createFile(path)
	if err != nil {
		return "", benchErrors.NewSinkError(path, err)
	}

	if err := WriteMarkdown(f, run); err != nil {
		f.Close()
		return "", benchErrors.NewSinkError(path, err)
	}
	if err := f.Close(); err != nil {
		return "", benchErrors.NewSinkError(path, fmt.Errorf("failed to close report: %w", err))
	}
	return path, nil
}

// TimestampFileName names a run's file after its timestamp with millisecond
// resolution, e.g. 2025-01-02-15-04-05-123.txt.
func TimestampFileName(run Run) string {
	ts := run.Timestamp.Local()
	return fmt.Sprintf("%s-%03d.txt", ts.Format("2006-01-02-15-04-05"), ts.Nanosecond()/1e6)
}

// WriteMarkdown renders the report header and one table row per
// measurement.
func WriteMarkdown(w io.Writer, run Run) error {
	flags := run.Build.Flags
	if flags == "" {
		flags = "none"
	}
	revision := run.Build.Revision
	if revision == "" {
		revision = "unknown"
	}

	var b strings.Builder
	b.WriteString("# Polymorphism Benchmark Results\n\n")
	if run.ID != "" {
		fmt.Fprintf(&b, "- Run: %s\n", run.ID)
	}
	fmt.Fprintf(&b, "- Go: %s\n", run.Build)
	fmt.Fprintf(&b, "- Revision: %s\n", revision)
	fmt.Fprintf(&b, "- Build flags: %s\n", flags)
	fmt.Fprintf(&b, "- Iterations: %d\n\n", run.Iterations)
	b.WriteString("| Polymorphism Category | Computation | Time (s) |\n")
	b.WriteString("|---|---|---|\n")
	for _, m := range run.Results {
		fmt.Fprintf(&b, "| %s | %s | %.9f |\n", m.Category, m.Workload, m.Seconds())
	}

	_, err := io.WriteString(w, b.String())
	return err
}
