// Package testhelpers provides scaffolding shared by the package tests.
package testhelpers

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeInterpreterEnv switches a re-executed test binary into fake interpreter mode.
const fakeInterpreterEnv = "LOXCHECK_FAKE_INTERPRETER"

// fakeLingerEnv makes a re-executed test binary sleep for the given duration
// while holding the output streams it inherited.
const fakeLingerEnv = "LOXCHECK_FAKE_LINGER"

// RunFakeInterpreterIfRequested turns the current test binary into a tiny
// interpreter when FakeInterpreter armed it. Call it first thing in TestMain.
//
// The fake reads the script named by its last argument and understands one
// statement per line, ignoring anything after "//":
//
//	print <text>;   write <text> to stdout
//	eprint <text>;  write <text> to stderr
//	exit <code>;    stop with the given exit status
//	sleep <dur>;    sleep for a Go duration
//	args;           write the arguments preceding the script path
//	linger <dur>;   leave a background process holding stdout for <dur>
//
// Every other line is ignored.
func RunFakeInterpreterIfRequested() {
	if linger, ok := os.LookupEnv(fakeLingerEnv); ok {
		duration, _ := time.ParseDuration(linger)
		time.Sleep(duration)
		os.Exit(0)
	}

	if os.Getenv(fakeInterpreterEnv) != "1" {
		return
	}

	os.Exit(runFakeInterpreter(os.Args[len(os.Args)-1]))
}

// FakeInterpreter arms the fake interpreter for child processes started by
// the calling test and returns the command that launches it.
func FakeInterpreter(t *testing.T) string {
	t.Helper()
	t.Setenv(fakeInterpreterEnv, "1")

	return os.Args[0]
}

func runFakeInterpreter(script string) int {
	// #nosec G304 - test-only helper reading a fixture path
	file, err := os.Open(script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fake interpreter: %v\n", err)
		return 66
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		statement, _, _ := strings.Cut(scanner.Text(), "//")
		statement = strings.TrimSuffix(strings.TrimSpace(statement), ";")

		keyword, operand, _ := strings.Cut(statement, " ")
		operand = strings.TrimSpace(operand)

		switch keyword {
		case "print":
			fmt.Fprintln(os.Stdout, operand)
		case "eprint":
			fmt.Fprintln(os.Stderr, operand)
		case "exit":
			code, err := strconv.Atoi(operand)
			if err != nil {
				return 70
			}

			return code
		case "args":
			fmt.Fprintln(os.Stdout, strings.Join(os.Args[1:len(os.Args)-1], " "))
		case "linger":
			if err := startLingering(operand); err != nil {
				fmt.Fprintf(os.Stderr, "fake interpreter: %v\n", err)
				return 70
			}
		case "sleep":
			duration, err := time.ParseDuration(operand)
			if err != nil {
				return 70
			}

			time.Sleep(duration)
		}
	}

	return 0
}

// startLingering starts a copy of the binary that outlives the fake
// interpreter and keeps its stdout and stderr open until it exits.
func startLingering(duration string) error {
	if _, err := time.ParseDuration(duration); err != nil {
		return err
	}

	// #nosec G204 - re-executes the test binary itself
	child := exec.Command(os.Args[0])
	child.Env = append(os.Environ(), fakeLingerEnv+"="+duration)
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	return child.Start()
}

// WriteScript writes a test script below dir, creating parent directories.
func WriteScript(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}
