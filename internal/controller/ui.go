// Package controller renders runner results on the reporting surface.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// ColorMode selects when output is colored.
type ColorMode string

// Available ColorMode values.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag value into a ColorMode.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, always or never)", value)
	}
}

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds presentation settings.
type Config struct {
	showPassed bool
	summary    bool
	diff       bool
	color      ColorMode
}

// WithShowPassed prints a PASS line for every passing script.
func WithShowPassed(enabled bool) Option {
	return func(c *Config) {
		c.showPassed = enabled
	}
}

// WithSummaryTable renders a summary table after the run.
func WithSummaryTable(enabled bool) Option {
	return func(c *Config) {
		c.summary = enabled
	}
}

// WithDiff appends a unified diff of expected and actual output to line mismatches.
func WithDiff(enabled bool) Option {
	return func(c *Config) {
		c.diff = enabled
	}
}

// WithColor sets the color mode.
func WithColor(mode ColorMode) Option {
	return func(c *Config) {
		c.color = mode
	}
}

// UI defines the reporting surface used by the workflow.
// Implementations can use different output methods.
type UI interface {
	DisplayDiscoveryError(ctx context.Context, err error)
	DisplayVerdict(ctx context.Context, verdict m.Verdict)
	DisplaySummary(ctx context.Context, tally m.Tally, verdicts []m.Verdict)
	DisplayScripts(ctx context.Context, scripts []m.Script)
}

// NewUI builds the UI writing to cmd's output streams.
func NewUI(cmd *cobra.Command, options ...Option) UI {
	cfg := Config{color: ColorAuto}
	for _, option := range options {
		option(&cfg)
	}

	colored := cfg.color == ColorAlways || (cfg.color == ColorAuto && IsTTY(cmd.OutOrStdout()))

	return NewSimpleUI(cmd, cfg, newStyles(cmd.OutOrStdout(), colored))
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
