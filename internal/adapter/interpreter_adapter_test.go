package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
	"loxcheck.dev/pkg/loxcheck/internal/testhelpers"
)

func TestMain(main *testing.M) {
	testhelpers.RunFakeInterpreterIfRequested()
	os.Exit(main.Run())
}

func TestLocalInterpreterAdapter_Run(t *testing.T) {
	bin := testhelpers.FakeInterpreter(t)
	dir := t.TempDir()

	t.Run("captures output and success", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "ok.lox", "print 1;\nprint   two  ;\n")

		result, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, []string{"1", "two"}, result.OutputLines)
		assert.Equal(t, 0, result.ExitCode)
		assert.False(t, result.Failed())
	})

	t.Run("merges stdout and stderr in emission order", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "merged.lox", strings.Join([]string{
			"print first;",
			"eprint second;",
			"print third;",
			"eprint fourth;",
		}, "\n"))

		result, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, []string{"first", "second", "third", "fourth"}, result.OutputLines)
	})

	t.Run("non-zero exit is a result not an error", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "fail.lox", "eprint Division by zero.;\nexit 70;\nprint unreachable;\n")

		result, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, 70, result.ExitCode)
		assert.True(t, result.Failed())
		assert.Equal(t, []string{"Division by zero."}, result.OutputLines)
	})

	t.Run("no output", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "silent.lox", "var a = 1;\n")

		result, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Empty(t, result.OutputLines)
	})

	t.Run("prefix arguments precede the script path", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "args.lox", "args;\n")

		result, err := NewLocalInterpreterAdapter(bin, []string{"--mode", "tree"}, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, []string{"--mode tree"}, result.OutputLines)
	})

	t.Run("reads to end of stream when a descendant holds the output", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "linger.lox", "print 2;\nlinger 2500ms;\n")

		started := time.Now()
		result, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, []string{"2"}, result.OutputLines)
		assert.Equal(t, 0, result.ExitCode)
		assert.GreaterOrEqual(t, time.Since(started), 2*time.Second)
	})

	t.Run("clean exit survives the wait delay under a timeout", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "linger_timeout.lox", "print 2;\nlinger 5s;\n")

		started := time.Now()
		result, err := NewLocalInterpreterAdapter(bin, nil, time.Minute).Run(context.Background(), m.Path(script))
		require.NoError(t, err)

		assert.Equal(t, []string{"2"}, result.OutputLines)
		assert.Equal(t, 0, result.ExitCode)
		assert.Less(t, time.Since(started), 4*time.Second)
	})

	t.Run("timeout kills the interpreter", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "slow.lox", "print started;\nsleep 10s;\n")

		started := time.Now()
		_, err := NewLocalInterpreterAdapter(bin, nil, 200*time.Millisecond).Run(context.Background(), m.Path(script))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInterpreterTimeout)
		assert.Less(t, time.Since(started), 5*time.Second)
	})

	t.Run("cancelled context", func(t *testing.T) {
		script := testhelpers.WriteScript(t, dir, "cancel.lox", "sleep 10s;\n")

		ctx, cancel := context.WithCancel(context.Background())
		timer := time.AfterFunc(100*time.Millisecond, cancel)
		defer timer.Stop()

		_, err := NewLocalInterpreterAdapter(bin, nil, 0).Run(ctx, m.Path(script))
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, errors.Is(err, ErrInterpreterTimeout))
	})
}

func TestLocalInterpreterAdapter_LaunchFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-interpreter")

	_, err := NewLocalInterpreterAdapter(missing, nil, 0).Run(context.Background(), "a.lox")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start "+missing)
}

func TestLocalInterpreterAdapter_DoesNotAliasArgs(t *testing.T) {
	args := []string{"a", "b"}
	a := NewLocalInterpreterAdapter("jlox", args, 0)
	args[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, a.args)
}

func TestReadOutputLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "single line", input: "1\n", want: []string{"1"}},
		{name: "missing final newline", input: "1\n2", want: []string{"1", "2"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "whitespace trimmed", input: "  padded \t\n", want: []string{"padded"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readOutputLines(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestReadOutputLines_Error(t *testing.T) {
	_, err := readOutputLines(failingReader{})
	assert.EqualError(t, err, "broken pipe")
}
