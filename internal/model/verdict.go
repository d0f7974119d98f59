package model

import "time"

// DiagnosticKind identifies why a verdict failed.
type DiagnosticKind int

const (
	// LineMismatch means the actual line at Line does not contain the expected text.
	LineMismatch DiagnosticKind = iota
	// LengthMismatch means the number of expected and actual lines differ.
	LengthMismatch
	// MissingRuntimeError means the interpreter failed but never printed the expected error.
	MissingRuntimeError
	// ExecutionFailure means the interpreter could not be launched or awaited.
	ExecutionFailure
	// MalformedExpectation means the script's expectation comments could not be parsed.
	MalformedExpectation
)

func (k DiagnosticKind) String() string {
	switch k {
	case LineMismatch:
		return "line mismatch"
	case LengthMismatch:
		return "length mismatch"
	case MissingRuntimeError:
		return "missing runtime error"
	case ExecutionFailure:
		return "execution failure"
	case MalformedExpectation:
		return "malformed expectation"
	default:
		return "unknown"
	}
}

// IsMismatch reports whether the diagnostic describes expected-vs-actual divergence
// rather than a failure to run the test at all.
func (k DiagnosticKind) IsMismatch() bool {
	return k == LineMismatch || k == LengthMismatch || k == MissingRuntimeError
}

// Diagnostic is a single human-readable reason for a failing verdict.
//
// For LineMismatch, Line is the zero-based output position. For LengthMismatch,
// Expected and Actual hold the two line counts.
type Diagnostic struct {
	Kind     DiagnosticKind
	Line     int
	Expected string
	Actual   string
	Message  string
}

// Verdict is the outcome of running one script.
type Verdict struct {
	Script      Path
	Passed      bool
	Diagnostics []Diagnostic
	Expectation Expectation
	Result      ExecutionResult
	Duration    time.Duration
}

// Tally accumulates verdicts across a run.
type Tally struct {
	Total  int
	Passed int
	Failed int
}

// Add returns a new tally including the given verdict.
func (t Tally) Add(v Verdict) Tally {
	t.Total++
	if v.Passed {
		t.Passed++
	} else {
		t.Failed++
	}

	return t
}
