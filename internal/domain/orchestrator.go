package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"loxcheck.dev/pkg/loxcheck/internal/adapter"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// Orchestrator runs a single test script against the interpreter, derives the
// script's expectation and compares the two into a verdict.
type Orchestrator interface {
	// RunScript returns an error only when ctx is cancelled; every other
	// failure is turned into a failing verdict for the script.
	RunScript(ctx context.Context, script m.Path) (m.Verdict, error)
}

type orchestrator struct {
	fsAdapter          adapter.SourceFSAdapter
	interpreterAdapter adapter.InterpreterAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided filesystem
// and interpreter adapters.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, interpreterAdapter adapter.InterpreterAdapter) Orchestrator {
	return &orchestrator{
		fsAdapter:          fsAdapter,
		interpreterAdapter: interpreterAdapter,
	}
}

func (o *orchestrator) RunScript(ctx context.Context, script m.Path) (m.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return m.Verdict{}, err
	}

	started := time.Now()
	verdict := m.Verdict{Script: script}

	result, err := o.interpreterAdapter.Run(ctx, script)
	verdict.Result = result

	if ctxErr := ctx.Err(); ctxErr != nil {
		return verdict, ctxErr
	}

	if err != nil {
		execErr := &ExecutionError{Script: script, Err: err}
		slog.Error("Failed to execute script", "script", script, "error", err)

		return o.failed(verdict, started, m.ExecutionFailure, execErr), nil
	}

	expectation, err := o.extractExpectation(ctx, script)
	if err != nil {
		kind := m.ExecutionFailure

		var malformed *MalformedExpectationError
		if errors.As(err, &malformed) {
			kind = m.MalformedExpectation
		}

		slog.Error("Failed to extract expectation", "script", script, "error", err)

		return o.failed(verdict, started, kind, err), nil
	}

	verdict.Expectation = expectation
	verdict.Passed, verdict.Diagnostics = Compare(expectation, result)
	verdict.Duration = time.Since(started)

	slog.Debug("Script finished", "script", script, "passed", verdict.Passed, "diagnostics", len(verdict.Diagnostics))

	return verdict, nil
}

func (o *orchestrator) extractExpectation(ctx context.Context, script m.Path) (m.Expectation, error) {
	content, err := o.fsAdapter.ReadFile(ctx, script)
	if err != nil {
		return m.Expectation{}, fmt.Errorf("read script: %w", err)
	}

	expectation, err := ParseExpectationBytes(content)
	if err != nil {
		return m.Expectation{}, fmt.Errorf("parse expectations: %w", err)
	}

	return expectation, nil
}

func (o *orchestrator) failed(verdict m.Verdict, started time.Time, kind m.DiagnosticKind, err error) m.Verdict {
	verdict.Passed = false
	verdict.Diagnostics = []m.Diagnostic{{Kind: kind, Message: err.Error()}}
	verdict.Duration = time.Since(started)

	return verdict
}
