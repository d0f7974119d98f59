// Package cmd provides the root command and CLI setup for loxcheck.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"loxcheck.dev/pkg/loxcheck/internal/adapter"
	"loxcheck.dev/pkg/loxcheck/internal/controller"
	"loxcheck.dev/pkg/loxcheck/internal/domain"
	m "loxcheck.dev/pkg/loxcheck/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

// workflowFactory builds the workflow once flags are parsed; tests replace it.
var workflowFactory = newWorkflow

var (
	interpreterFlag    string
	interpreterArgFlag []string
	suffixFlag         string
	excludePatterns    []string
	timeoutFlag        string
	showPassedFlag     bool
	summaryFlag        bool
	diffFlag           bool
	reportFlag         string
	colorFlag          string
	logFileFlag        string
	verboseFlag        bool
)

func init() {
	configureRootFlags(rootCmd)
	configureRunFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const usageLine = "loxcheck <file|dir> [<file|dir> ...]"

const rootLongDescription = `loxcheck runs Lox test scripts against an interpreter and checks the
output against the expectation comments embedded in each script:

  // expect: <text>                 next output line must contain <text>
  // expect runtime error: <text>   a failing run must print <text> somewhere
  <code containing Error> // <text>  next output line must contain <text>

Directories are searched recursively for *.lox files. The exit status is
the number of failed scripts (capped at 255), or 64 when no path is given.

A path named like a subcommand (list, init, version, help, completion) is
taken as that subcommand. Write it as ./version or after --, for example
loxcheck -i clox -- version.`

// rootCmd represents the base command; it runs the suite for the given paths.
var rootCmd = baseRootCmd()

// newRootCmd returns a fully configured root command without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	configureRunFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           usageLine,
		Short:         "Conformance test runner for Lox interpreters",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configReadErr != nil {
				slog.Warn("Ignoring unreadable config file", "file", configFileName, "error", configReadErr)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &domain.UsageError{Usage: "Usage: " + usageLine}
			}

			wf, err := workflowFactory(cmd)
			if err != nil {
				return err
			}

			tally, err := wf.Run(cmd.Context(), domain.RunArgs{
				Paths:       parsePaths(args),
				Exclude:     viper.GetStringSlice(excludeConfigKey),
				Report:      m.Path(viper.GetString(reportConfigKey)),
				Interpreter: interpreterCommandLine(),
			})
			if err != nil && tally.Failed == 0 {
				return err
			}

			if err != nil {
				// The failure count still decides the exit status.
				slog.Error("Run finished with error", "failed", tally.Failed, "error", err)
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			}

			if tally.Failed > 0 {
				return &domain.FailuresError{Count: tally.Failed}
			}

			return nil
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&suffixFlag, suffixFlagName, viper.GetString(suffixConfigKey), "file name suffix of test scripts")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(suffixFlagName), suffixConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude scripts matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&colorFlag, colorFlagName, viper.GetString(colorConfigKey), "colorize output: auto, always or never")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(colorFlagName), colorConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&interpreterFlag, interpreterFlagName, "i", viper.GetString(interpreterCommandKey), "interpreter executable to run each script with")
	bindFlagToConfig(cmd.Flags().Lookup(interpreterFlagName), interpreterCommandKey)

	cmd.Flags().StringArrayVarP(&interpreterArgFlag, interpreterArgFlagName, "a", viper.GetStringSlice(interpreterArgsKey), "argument passed to the interpreter before the script path (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(interpreterArgFlagName), interpreterArgsKey)

	cmd.Flags().StringVar(&timeoutFlag, timeoutFlagName, viper.GetString(timeoutConfigKey), "per-script timeout, e.g. 10s (0 disables)")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.Flags().BoolVar(&showPassedFlag, showPassedFlagName, viper.GetBool(showPassedConfigKey), "print a PASS line for every passing script")
	bindFlagToConfig(cmd.Flags().Lookup(showPassedFlagName), showPassedConfigKey)

	cmd.Flags().BoolVar(&summaryFlag, summaryFlagName, viper.GetBool(summaryConfigKey), "print a summary table after the run")
	bindFlagToConfig(cmd.Flags().Lookup(summaryFlagName), summaryConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, viper.GetBool(diffConfigKey), "show a unified diff for output mismatches")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, viper.GetString(reportConfigKey), "write a YAML run report to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	colorMode, err := controller.ParseColorMode(viper.GetString(colorConfigKey))
	if err != nil {
		return nil, err
	}

	timeout, err := parseTimeout(viper.GetString(timeoutConfigKey))
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd,
		controller.WithShowPassed(viper.GetBool(showPassedConfigKey)),
		controller.WithSummaryTable(viper.GetBool(summaryConfigKey)),
		controller.WithDiff(viper.GetBool(diffConfigKey)),
		controller.WithColor(colorMode),
	)

	interpreter := adapter.NewLocalInterpreterAdapter(
		viper.GetString(interpreterCommandKey),
		viper.GetStringSlice(interpreterArgsKey),
		timeout,
	)

	return domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		domain.NewScriptFinder(fsAdapter, viper.GetString(suffixConfigKey)),
		domain.NewOrchestrator(fsAdapter, interpreter),
	), nil
}

func interpreterCommandLine() string {
	parts := append([]string{viper.GetString(interpreterCommandKey)}, viper.GetStringSlice(interpreterArgsKey)...)
	return strings.Join(parts, " ")
}

// Execute runs the root command and exits with the status the run calls for.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if code := exitCode(rootCmd.ErrOrStderr(), err); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps the outcome of a run onto the process exit status, printing
// anything the user needs to see on errOut.
func exitCode(errOut io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var usageErr *domain.UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(errOut, usageErr.Error())
		return domain.UsageExitCode
	}

	var failures *domain.FailuresError
	if errors.As(err, &failures) {
		return failures.ExitCode()
	}

	_, _ = fmt.Fprintln(errOut, "Error:", err)

	return 1
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
