// Package domain implements expectation extraction, comparison and the run workflow.
package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"loxcheck.dev/pkg/loxcheck/internal/adapter"
	"loxcheck.dev/pkg/loxcheck/internal/controller"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// RunArgs contains the arguments for a test run.
type RunArgs struct {
	Paths   []m.Path
	Exclude []string
	// Report, when set, is where the YAML run report is written.
	Report m.Path
	// Interpreter describes the interpreter command line for the report.
	Interpreter string
}

// ListArgs contains the arguments for listing discovered scripts.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// Workflow defines the top-level operations exposed to the CLI.
type Workflow interface {
	// Run executes every discovered script and returns the accumulated tally.
	Run(ctx context.Context, args RunArgs) (m.Tally, error)
	// List prints the discovered scripts and their expectations without running them.
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	ScriptFinder
	Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	finder ScriptFinder,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		ScriptFinder:    finder,
		Orchestrator:    orchestrator,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.Tally, error) {
	if len(args.Paths) == 0 {
		return m.Tally{}, &UsageError{}
	}

	started := time.Now()

	scripts, err := w.discover(ctx, args.Paths, args.Exclude)
	if err != nil {
		return m.Tally{}, err
	}

	slog.Info("Running scripts", "count", len(scripts))

	tally, verdicts, err := w.runScripts(ctx, scripts)
	if err != nil {
		slog.Error("Run interrupted", "completed", tally.Total, "error", err)
		return tally, err
	}

	w.DisplaySummary(ctx, tally, verdicts)

	if args.Report != "" {
		report := buildReport(args.Interpreter, started, tally, verdicts)
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return tally, fmt.Errorf("save report: %w", err)
		}
	}

	slog.Info("Run finished", "total", tally.Total, "passed", tally.Passed, "failed", tally.Failed)

	return tally, nil
}

// runScripts folds the verdict of each script into a tally, one script at a time.
func (w *workflow) runScripts(ctx context.Context, scripts []m.Path) (m.Tally, []m.Verdict, error) {
	tally := m.Tally{}
	verdicts := make([]m.Verdict, 0, len(scripts))

	for _, script := range scripts {
		verdict, err := w.RunScript(ctx, script)
		if err != nil {
			return tally, verdicts, err
		}

		w.DisplayVerdict(ctx, verdict)

		tally = tally.Add(verdict)
		verdicts = append(verdicts, verdict)
	}

	return tally, verdicts, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if len(args.Paths) == 0 {
		return &UsageError{}
	}

	paths, err := w.discover(ctx, args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	scripts := make([]m.Script, 0, len(paths))

	for _, path := range paths {
		script := m.Script{Path: path}

		content, err := w.ReadFile(ctx, path)
		if err == nil {
			script.Expectation, err = ParseExpectation(bytes.NewReader(content))
		}

		if err != nil {
			slog.Warn("Failed to read expectations", "script", path, "error", err)
			script.Err = err
		}

		scripts = append(scripts, script)
	}

	w.DisplayScripts(ctx, scripts)

	return nil
}

func (w *workflow) discover(ctx context.Context, roots []m.Path, exclude []string) ([]m.Path, error) {
	result, err := w.Find(ctx, roots, exclude)
	if err != nil {
		return nil, fmt.Errorf("discover scripts: %w", err)
	}

	for _, failure := range result.Failures {
		w.DisplayDiscoveryError(ctx, failure)
	}

	return result.Scripts, nil
}

func buildReport(interpreter string, started time.Time, tally m.Tally, verdicts []m.Verdict) m.RunReport {
	report := m.RunReport{
		Interpreter: interpreter,
		StartedAt:   started.UTC(),
		Duration:    time.Since(started),
		Total:       tally.Total,
		Passed:      tally.Passed,
		Failed:      tally.Failed,
		Scripts:     make([]m.ScriptReport, 0, len(verdicts)),
	}

	for _, verdict := range verdicts {
		entry := m.ScriptReport{
			Path:     string(verdict.Script),
			Passed:   verdict.Passed,
			ExitCode: verdict.Result.ExitCode,
		}

		for _, diagnostic := range verdict.Diagnostics {
			entry.Diagnostics = append(entry.Diagnostics, describeDiagnostic(diagnostic))
		}

		report.Scripts = append(report.Scripts, entry)
	}

	return report
}

func describeDiagnostic(d m.Diagnostic) string {
	switch d.Kind {
	case m.LineMismatch:
		return fmt.Sprintf("line %d: expected %q, got %q", d.Line, d.Expected, d.Actual)
	case m.LengthMismatch:
		return fmt.Sprintf("expected %s lines, got %s", d.Expected, d.Actual)
	case m.MissingRuntimeError:
		return fmt.Sprintf("missing runtime error %q in %s", d.Expected, d.Actual)
	default:
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
}
