package domain

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

func TestParseExpectation(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   m.Expectation
	}{
		{
			name:   "no markers",
			script: "var a = 1;\nprint a;\n",
			want:   m.Expectation{},
		},
		{
			name:   "expect lines keep file order",
			script: "print 1+1; // expect: 2\nprint \"b\"; // expect: b\nprint nil; // expect:   nil  \n",
			want:   m.Expectation{ExpectedLines: []string{"2", "b", "nil"}},
		},
		{
			name:   "runtime error is punctuation trimmed",
			script: "print 1/0; // expect runtime error: Division by zero.\n",
			want:   m.Expectation{RuntimeError: "Division by zero", HasRuntimeError: true},
		},
		{
			name:   "runtime error keeps inner punctuation",
			script: "a.b; // expect runtime error: Undefined property 'b'.\n",
			want:   m.Expectation{RuntimeError: "Undefined property 'b", HasRuntimeError: true},
		},
		{
			name:   "compile error line contributes comment text",
			script: "var a = ; // [line 1] Error at ';': Expect expression.\n",
			want:   m.Expectation{ExpectedLines: []string{"[line 1] Error at ';': Expect expression."}},
		},
		{
			name:   "error comment on its own line",
			script: "// [line 3] Error at end: Expect '}' after block.\n{\n",
			want:   m.Expectation{ExpectedLines: []string{"[line 3] Error at end: Expect '}' after block."}},
		},
		{
			name:   "expect marker wins over error rule",
			script: "print \"Error\"; // expect: Error\n",
			want:   m.Expectation{ExpectedLines: []string{"Error"}},
		},
		{
			name:   "runtime marker wins over error rule",
			script: "foo(); // expect runtime error: Error calling foo.\n",
			want:   m.Expectation{RuntimeError: "Error calling foo", HasRuntimeError: true},
		},
		{
			name:   "lowercase error is not a marker",
			script: "print \"no error here\";\n",
			want:   m.Expectation{},
		},
		{
			name:   "output and runtime error together",
			script: "print 1; // expect: 1\nprint x; // expect runtime error: Undefined variable 'x'.\n",
			want: m.Expectation{
				ExpectedLines:   []string{"1"},
				RuntimeError:    "Undefined variable 'x",
				HasRuntimeError: true,
			},
		},
		{
			name:   "crlf line endings",
			script: "print 1; // expect: 1\r\nprint 2; // expect: 2\r\n",
			want:   m.Expectation{ExpectedLines: []string{"1", "2"}},
		},
		{
			name:   "empty expectation text",
			script: "print \"\"; // expect:\n",
			want:   m.Expectation{ExpectedLines: []string{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpectation(strings.NewReader(tt.script))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseExpectation() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseExpectation_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantLine int
		reason   string
	}{
		{
			name:     "error without comment",
			script:   "class Error {}\n",
			wantLine: 1,
			reason:   "without a // comment",
		},
		{
			name:     "duplicate runtime error",
			script:   "print 1;\nx; // expect runtime error: first.\ny; // expect runtime error: second.\n",
			wantLine: 3,
			reason:   "more than one runtime error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExpectationBytes([]byte(tt.script))
			require.Error(t, err)

			var malformed *MalformedExpectationError
			require.True(t, errors.As(err, &malformed), "want MalformedExpectationError, got %T", err)
			assert.Equal(t, tt.wantLine, malformed.Line)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestParseExpectation_LineTooLong(t *testing.T) {
	script := "// expect: " + strings.Repeat("x", maxScriptLineSize+1) + "\n"

	_, err := ParseExpectation(strings.NewReader(script))
	require.Error(t, err)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestTrimPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{": Division by zero.", "Division by zero"},
		{"  Operands must be numbers.  ", "Operands must be numbers"},
		{"'x'.", "x"},
		{"...", ""},
		{"", ""},
		{"Stack overflow", "Stack overflow"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, trimPunctuation(tt.in))
		})
	}
}

// TestParseExpectation_Fixtures runs the script/want pairs packed in
// testdata/expectations.txtar. A want file lists one "line: <text>" entry per
// expected output line and at most one "runtime: <text>" entry.
func TestParseExpectation_Fixtures(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/expectations.txtar")
	require.NoError(t, err)

	scripts := map[string][]byte{}
	wants := map[string][]byte{}

	for _, file := range archive.Files {
		switch {
		case strings.HasSuffix(file.Name, ".lox"):
			scripts[strings.TrimSuffix(file.Name, ".lox")] = file.Data
		case strings.HasSuffix(file.Name, ".want"):
			wants[strings.TrimSuffix(file.Name, ".want")] = file.Data
		}
	}

	require.NotEmpty(t, scripts)

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			wantData, ok := wants[name]
			require.True(t, ok, "missing %s.want", name)

			got, err := ParseExpectationBytes(script)
			require.NoError(t, err)

			if diff := cmp.Diff(parseWant(wantData), got); diff != "" {
				t.Errorf("expectation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func parseWant(data []byte) m.Expectation {
	var want m.Expectation

	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "line: "):
			want.ExpectedLines = append(want.ExpectedLines, strings.TrimPrefix(line, "line: "))
		case strings.HasPrefix(line, "runtime: "):
			want.RuntimeError = strings.TrimPrefix(line, "runtime: ")
			want.HasRuntimeError = true
		}
	}

	return want
}
