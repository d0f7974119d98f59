package domain

import (
	"strconv"
	"strings"

	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// Compare applies the comparison protocol to one script's expectation and the
// interpreter's result.
//
// When a runtime error is expected and the interpreter exited non-zero, the
// verdict depends only on some output line containing the expected error; the
// line-by-line comparison is skipped. Otherwise every overlapping position is
// checked by substring containment and the line counts must agree.
func Compare(expectation m.Expectation, result m.ExecutionResult) (bool, []m.Diagnostic) {
	if expectation.HasRuntimeError && result.Failed() {
		return compareRuntimeError(expectation.RuntimeError, result.OutputLines)
	}

	return compareOutput(expectation.ExpectedLines, result.OutputLines)
}

func compareRuntimeError(expected string, output []string) (bool, []m.Diagnostic) {
	for _, line := range output {
		if strings.Contains(line, expected) {
			return true, nil
		}
	}

	return false, []m.Diagnostic{{
		Kind:     m.MissingRuntimeError,
		Expected: expected,
		Actual:   FormatLines(output),
	}}
}

func compareOutput(expected, actual []string) (bool, []m.Diagnostic) {
	var diagnostics []m.Diagnostic

	for i := range min(len(expected), len(actual)) {
		if !strings.Contains(actual[i], expected[i]) {
			diagnostics = append(diagnostics, m.Diagnostic{
				Kind:     m.LineMismatch,
				Line:     i,
				Expected: expected[i],
				Actual:   actual[i],
			})
		}
	}

	// Reported even when the overlapping prefix matched.
	if len(expected) != len(actual) {
		diagnostics = append(diagnostics, m.Diagnostic{
			Kind:     m.LengthMismatch,
			Expected: strconv.Itoa(len(expected)),
			Actual:   strconv.Itoa(len(actual)),
		})
	}

	return len(diagnostics) == 0, diagnostics
}

// FormatLines renders output lines as a bracketed, comma separated list.
func FormatLines(lines []string) string {
	return "[" + strings.Join(lines, ", ") + "]"
}
