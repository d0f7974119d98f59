package domain

import (
	"fmt"

	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// UsageExitCode is the process exit status for an invocation without test paths.
const UsageExitCode = 64

// MaxExitCode is the largest failure count representable as a process exit status.
const MaxExitCode = 255

// UsageError reports that the runner was invoked without any test paths.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return "no test paths given"
	}

	return "no test paths given\n" + e.Usage
}

// DiscoveryError reports a root path (or an entry below it) that could not be walked.
type DiscoveryError struct {
	Path m.Path
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover %s: %v", e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// ExecutionError reports that the interpreter could not be launched or awaited for a script.
type ExecutionError struct {
	Script m.Path
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute %s: %v", e.Script, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// MalformedExpectationError reports an expectation comment that cannot be interpreted.
type MalformedExpectationError struct {
	Line   int // 1-based
	Text   string
	Reason string
}

func (e *MalformedExpectationError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// FailuresError carries the number of failed scripts out of a completed run.
type FailuresError struct {
	Count int
}

func (e *FailuresError) Error() string {
	return fmt.Sprintf("%d test script(s) failed", e.Count)
}

// ExitCode maps the failure count onto a process exit status. Counts above
// MaxExitCode are clamped so they cannot wrap around to success.
func (e *FailuresError) ExitCode() int {
	return min(e.Count, MaxExitCode)
}
