package model

// ExecutionResult is what the interpreter produced for a single script.
type ExecutionResult struct {
	// OutputLines holds the merged stdout/stderr stream, one trimmed entry per line, in emission order.
	OutputLines []string
	ExitCode    int
}

// Failed reports whether the interpreter signalled a failure through its exit status.
func (r ExecutionResult) Failed() bool {
	return r.ExitCode != 0
}
