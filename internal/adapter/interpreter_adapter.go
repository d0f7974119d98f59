package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// waitDelay bounds how long Wait keeps draining output once the interpreter
// has exited or been killed while a descendant still holds the pipe open. It
// only applies when a timeout is configured; otherwise Run reads to end of
// stream however long that takes.
const waitDelay = 2 * time.Second

// ErrInterpreterTimeout is returned when a script runs past the configured timeout.
var ErrInterpreterTimeout = errors.New("interpreter timed out")

// InterpreterAdapter abstracts launching the interpreter under test.
type InterpreterAdapter interface {
	// Run executes the interpreter against script and returns its merged
	// stdout/stderr lines and exit code. A non-zero exit code is not an error;
	// errors are reserved for failures to launch or await the process.
	Run(ctx context.Context, script m.Path) (m.ExecutionResult, error)
}

// LocalInterpreterAdapter runs the interpreter as a local process using os/exec.
type LocalInterpreterAdapter struct {
	command string
	args    []string
	timeout time.Duration
}

// NewLocalInterpreterAdapter constructs a LocalInterpreterAdapter. args are
// passed before the script path; a zero timeout disables the per-script limit.
func NewLocalInterpreterAdapter(command string, args []string, timeout time.Duration) *LocalInterpreterAdapter {
	return &LocalInterpreterAdapter{
		command: command,
		args:    slices.Clone(args),
		timeout: timeout,
	}
}

// Run launches the interpreter with the script path as its final argument.
func (a *LocalInterpreterAdapter) Run(ctx context.Context, script m.Path) (m.ExecutionResult, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	argv := append(slices.Clone(a.args), string(script))

	// #nosec G204 - the interpreter command is chosen by the user running the suite
	cmd := exec.CommandContext(ctx, a.command, argv...)
	if a.timeout > 0 {
		cmd.WaitDelay = waitDelay
	}

	reader, writer := io.Pipe()

	// Same writer for both streams: exec hands the child a single pipe, so
	// stdout and stderr lines keep their relative order.
	cmd.Stdout = writer
	cmd.Stderr = writer

	slog.Debug("Starting interpreter", "command", a.command, "args", argv)

	if err := cmd.Start(); err != nil {
		_ = writer.Close()

		slog.Error("Failed to start interpreter", "command", a.command, "script", script, "error", err)

		return m.ExecutionResult{}, fmt.Errorf("start %s: %w", a.command, err)
	}

	var group errgroup.Group

	group.Go(func() error {
		defer func() { _ = writer.Close() }()
		return cmd.Wait()
	})

	lines, readErr := readOutputLines(reader)
	if readErr != nil {
		// Unblock the copy goroutine inside exec so Wait can return.
		_ = reader.CloseWithError(readErr)
	}

	waitErr := group.Wait()

	result := m.ExecutionResult{OutputLines: lines}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return result, fmt.Errorf("%w after %s", ErrInterpreterTimeout, a.timeout)
		}

		return result, ctxErr
	}

	if readErr != nil {
		return result, fmt.Errorf("read interpreter output: %w", readErr)
	}

	if errors.Is(waitErr, exec.ErrWaitDelay) && cmd.ProcessState != nil {
		// The interpreter itself exited cleanly; only a leftover descendant kept the pipe open.
		slog.Warn("Interpreter output still open after exit", "script", script, "waitDelay", waitDelay)

		result.ExitCode = cmd.ProcessState.ExitCode()
		waitErr = nil
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			slog.Error("Failed to wait for interpreter", "script", script, "error", waitErr)
			return result, fmt.Errorf("wait for %s: %w", a.command, waitErr)
		}

		result.ExitCode = exitErr.ExitCode()
	}

	slog.Debug("Interpreter finished", "script", script, "exitCode", result.ExitCode, "lines", len(result.OutputLines))

	return result, nil
}

// readOutputLines drains r to end-of-stream, trimming each line.
func readOutputLines(r io.Reader) ([]string, error) {
	lines := []string{}
	buffered := bufio.NewReader(r)

	for {
		line, err := buffered.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return lines, err
		}
	}
}
