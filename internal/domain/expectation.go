package domain

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// Expectation markers recognised in test scripts. They are matched anywhere in
// a line, checked in this order, and a line matches at most one of them.
const (
	ExpectMarker       = "// expect:"
	RuntimeErrorMarker = "// expect runtime error:"
	ErrorMarker        = "Error"
	CommentDelimiter   = "//"
)

const maxScriptLineSize = 1024 * 1024

// ParseExpectation reads script source from r and derives its Expectation.
func ParseExpectation(r io.Reader) (m.Expectation, error) {
	var expectation m.Expectation

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLineSize)

	lineNumber := 0

	for scanner.Scan() {
		lineNumber++

		if err := applyExpectationLine(&expectation, scanner.Text(), lineNumber); err != nil {
			return m.Expectation{}, err
		}
	}

	if err := scanner.Err(); err != nil {
		return m.Expectation{}, fmt.Errorf("scan script: %w", err)
	}

	return expectation, nil
}

// ParseExpectationBytes is ParseExpectation over an in-memory script.
func ParseExpectationBytes(content []byte) (m.Expectation, error) {
	return ParseExpectation(bytes.NewReader(content))
}

func applyExpectationLine(expectation *m.Expectation, line string, lineNumber int) error {
	if _, text, ok := strings.Cut(line, ExpectMarker); ok {
		expectation.ExpectedLines = append(expectation.ExpectedLines, strings.TrimSpace(text))
		return nil
	}

	if _, text, ok := strings.Cut(line, RuntimeErrorMarker); ok {
		if expectation.HasRuntimeError {
			return &MalformedExpectationError{
				Line:   lineNumber,
				Text:   line,
				Reason: "more than one runtime error expectation",
			}
		}

		expectation.RuntimeError = trimPunctuation(text)
		expectation.HasRuntimeError = true

		return nil
	}

	if strings.Contains(line, ErrorMarker) {
		_, text, ok := strings.Cut(line, CommentDelimiter)
		if !ok {
			return &MalformedExpectationError{
				Line:   lineNumber,
				Text:   line,
				Reason: "error expectation without a // comment",
			}
		}

		expectation.ExpectedLines = append(expectation.ExpectedLines, strings.TrimSpace(text))
	}

	return nil
}

// trimPunctuation strips leading and trailing runs of anything that is not a
// letter or digit, e.g. ": Division by zero." becomes "Division by zero".
func trimPunctuation(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
