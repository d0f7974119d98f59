package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

// SimpleUI implements UI by printing plain lines to the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	cfg    Config
	styles styles
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, cfg Config, st styles) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: cfg, styles: st}
}

// DisplayDiscoveryError reports a path that could not be walked on stderr.
func (s *SimpleUI) DisplayDiscoveryError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %v\n", s.styles.paint(s.styles.fail, "discovery error:"), err)
}

// DisplayVerdict prints diagnostics for a failing script. Passing scripts are
// silent unless show-passed is enabled.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, verdict m.Verdict) {
	if ctx.Err() != nil {
		return
	}

	if verdict.Passed {
		if s.cfg.showPassed {
			s.printf("%s %s\n", s.styles.paint(s.styles.pass, "PASS:"), verdict.Script)
		}

		return
	}

	s.printf("%s", s.renderFailure(verdict))
}

func (s *SimpleUI) renderFailure(verdict m.Verdict) string {
	var b strings.Builder

	header := "FAIL:"
	mismatch := false

	for _, diagnostic := range verdict.Diagnostics {
		switch diagnostic.Kind {
		case m.MissingRuntimeError:
			header = "FAIL (missing runtime error):"

			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Expected error:"), diagnostic.Expected)
			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Got:"), diagnostic.Actual)
		case m.LineMismatch:
			mismatch = true

			fmt.Fprintf(&b, "Mismatch at line %d\n", diagnostic.Line)
			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Expected:"), diagnostic.Expected)
			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Got:     "), diagnostic.Actual)
		case m.LengthMismatch:
			mismatch = true

			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Expected lines:"), diagnostic.Expected)
			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, "Got lines:     "), diagnostic.Actual)
		case m.ExecutionFailure, m.MalformedExpectation:
			fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.label, diagnostic.Kind.String()+":"), diagnostic.Message)
		}
	}

	if mismatch {
		fmt.Fprintf(&b, "%s [%s]\n", s.styles.paint(s.styles.muted, "Expected:"), strings.Join(verdict.Expectation.ExpectedLines, ", "))
		fmt.Fprintf(&b, "%s [%s]\n", s.styles.paint(s.styles.muted, "Got:     "), strings.Join(verdict.Result.OutputLines, ", "))

		if s.cfg.diff {
			b.WriteString(unifiedDiff(verdict.Expectation.ExpectedLines, verdict.Result.OutputLines))
		}
	}

	fmt.Fprintf(&b, "%s %s\n", s.styles.paint(s.styles.fail, header), verdict.Script)

	return b.String()
}

func unifiedDiff(expected, actual []string) string {
	diff := difflib.UnifiedDiff{
		A:        withNewlines(expected),
		B:        withNewlines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}

	return out
}

// DisplaySummary prints the final failure count, optionally preceded by a table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, tally m.Tally, verdicts []m.Verdict) {
	if ctx.Err() != nil {
		return
	}

	if s.cfg.summary {
		s.printf("\n%s", renderSummaryTable(tally, verdicts))
	}

	label := s.styles.paint(s.styles.pass, "Failed:")
	if tally.Failed > 0 {
		label = s.styles.paint(s.styles.fail, "Failed:")
	}

	s.printf("%s %d\n", label, tally.Failed)
}

func renderSummaryTable(tally m.Tally, verdicts []m.Verdict) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Script", "Result", "Exit"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT})

	for _, verdict := range failedFirst(verdicts) {
		result := "pass"
		if !verdict.Passed {
			result = "FAIL"
		}

		table.Append([]string{string(verdict.Script), result, strconv.Itoa(verdict.Result.ExitCode)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", tally.Total),
		fmt.Sprintf("Passed %d", tally.Passed),
		fmt.Sprintf("Failed %d", tally.Failed),
	})

	table.Render()

	return tableBuffer.String()
}

func failedFirst(verdicts []m.Verdict) []m.Verdict {
	sorted := make([]m.Verdict, len(verdicts))
	copy(sorted, verdicts)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Passed != sorted[j].Passed {
			return !sorted[i].Passed
		}

		return sorted[i].Script < sorted[j].Script
	})

	return sorted
}

// DisplayScripts prints discovered scripts with their expectation counts.
func (s *SimpleUI) DisplayScripts(ctx context.Context, scripts []m.Script) {
	if ctx.Err() != nil {
		return
	}

	sorted := make([]m.Script, len(scripts))
	copy(sorted, scripts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Expected Lines", "Runtime Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	expectedTotal := 0

	for _, script := range sorted {
		if script.Err != nil {
			table.Append([]string{string(script.Path), "-", "invalid: " + script.Err.Error()})
			continue
		}

		runtimeError := ""
		if script.Expectation.HasRuntimeError {
			runtimeError = script.Expectation.RuntimeError
		}

		expectedTotal += len(script.Expectation.ExpectedLines)
		table.Append([]string{string(script.Path), strconv.Itoa(len(script.Expectation.ExpectedLines)), runtimeError})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Scripts %d", len(sorted)),
		strconv.Itoa(expectedTotal),
		"",
	})

	table.Render()

	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
