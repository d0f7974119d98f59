package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loxcheck.dev/pkg/loxcheck/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file|dir> [<file|dir> ...]",
		Short: "List test scripts and their expectations without running them",
		Long: `List every discovered test script together with the number of expected
output lines and the expected runtime error, if any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &domain.UsageError{Usage: "Usage: loxcheck list <file|dir> [<file|dir> ...]"}
			}

			wf, err := workflowFactory(cmd)
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
