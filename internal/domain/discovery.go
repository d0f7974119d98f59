package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"loxcheck.dev/pkg/loxcheck/internal/adapter"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// DefaultScriptSuffix is the file name suffix of Lox test scripts.
const DefaultScriptSuffix = ".lox"

// DiscoveryResult holds the scripts found under a set of roots together with
// the roots (or nested entries) that could not be walked.
type DiscoveryResult struct {
	Scripts  []m.Path
	Failures []*DiscoveryError
}

// ScriptFinder locates test scripts below a set of root paths.
type ScriptFinder interface {
	Find(ctx context.Context, roots []m.Path, exclude []string) (DiscoveryResult, error)
}

type scriptFinder struct {
	fsAdapter adapter.SourceFSAdapter
	suffix    string
}

// NewScriptFinder constructs a ScriptFinder that keeps regular files ending in suffix.
func NewScriptFinder(fsAdapter adapter.SourceFSAdapter, suffix string) ScriptFinder {
	if suffix == "" {
		suffix = DefaultScriptSuffix
	}

	return &scriptFinder{
		fsAdapter: fsAdapter,
		suffix:    suffix,
	}
}

// Find walks every root in order. A root that fails is recorded in
// DiscoveryResult.Failures and the walk moves on to the next one; the returned
// error is reserved for invalid exclude patterns and cancellation.
func (f *scriptFinder) Find(ctx context.Context, roots []m.Path, exclude []string) (DiscoveryResult, error) {
	patterns, err := compileExcludePatterns(exclude)
	if err != nil {
		return DiscoveryResult{}, err
	}

	var result DiscoveryResult

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		scripts, failures := f.findInRoot(ctx, root, patterns)
		result.Scripts = append(result.Scripts, scripts...)
		result.Failures = append(result.Failures, failures...)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	slog.Debug("Discovered scripts", "roots", len(roots), "scripts", len(result.Scripts), "failures", len(result.Failures))

	return result, nil
}

func (f *scriptFinder) findInRoot(ctx context.Context, root m.Path, patterns []*regexp.Regexp) ([]m.Path, []*DiscoveryError) {
	var (
		scripts  []m.Path
		failures []*DiscoveryError
	)

	walkErr := f.fsAdapter.Walk(ctx, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Error("Failed to walk path", "root", root, "path", path, "error", err)
			failures = append(failures, &DiscoveryError{Path: m.Path(path), Err: err})

			return nil
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), f.suffix) {
			return nil
		}

		if isExcluded(path, patterns) {
			slog.Debug("Excluded script", "path", path)
			return nil
		}

		if !f.isRegularFile(ctx, m.Path(path), info) {
			return nil
		}

		scripts = append(scripts, m.Path(path))

		return nil
	})

	if walkErr != nil && ctx.Err() == nil {
		slog.Error("Failed to walk root", "root", root, "error", walkErr)
		failures = append(failures, &DiscoveryError{Path: root, Err: walkErr})
	}

	return scripts, failures
}

// isRegularFile follows symlinks so a link to a script counts while a link to
// a directory does not.
func (f *scriptFinder) isRegularFile(ctx context.Context, path m.Path, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := f.fsAdapter.FileInfo(ctx, path)
	if err != nil {
		slog.Debug("Skipping unresolvable symlink", "path", path, "error", err)
		return false
	}

	return target.Mode().IsRegular()
}

func compileExcludePatterns(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

func isExcluded(path string, patterns []*regexp.Regexp) bool {
	for _, pattern := range patterns {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}
