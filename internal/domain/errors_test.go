package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailuresError_ExitCode(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 1},
		{42, 42},
		{255, 255},
		{256, 255},
		{1000, 255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, (&FailuresError{Count: tt.count}).ExitCode(), "count %d", tt.count)
	}
}

func TestUsageError_Error(t *testing.T) {
	assert.Equal(t, "no test paths given", (&UsageError{}).Error())
	assert.Equal(t, "no test paths given\nUsage: loxcheck [paths...]", (&UsageError{Usage: "Usage: loxcheck [paths...]"}).Error())
}

func TestWrappedErrorsUnwrap(t *testing.T) {
	discoveryErr := &DiscoveryError{Path: "missing", Err: fs.ErrNotExist}
	assert.True(t, errors.Is(discoveryErr, fs.ErrNotExist))
	assert.Contains(t, discoveryErr.Error(), "missing")

	execErr := &ExecutionError{Script: "a.lox", Err: fs.ErrPermission}
	assert.True(t, errors.Is(execErr, fs.ErrPermission))
	assert.Equal(t, "execute a.lox: permission denied", execErr.Error())
}

func TestMalformedExpectationError_Error(t *testing.T) {
	err := &MalformedExpectationError{Line: 3, Text: "class Error {}", Reason: "error expectation without a // comment"}
	assert.Equal(t, `line 3: error expectation without a // comment: "class Error {}"`, err.Error())
}
