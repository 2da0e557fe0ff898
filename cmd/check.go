package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var jsonOutput bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Runs the Docker and Docker Compose checks only",
	Long: `The check command makes sure Docker is running, launching Docker Desktop if
needed, and that Docker Compose is installed. It exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := cmd
		if jsonOutput {
			// progress lines would corrupt the JSON document
			target = quiet(cmd)
		}
		l := newLauncher(target, false)

		report, err := l.preflight(cmd.Context())
		if !jsonOutput {
			return err
		}

		out := checkReportJSON{
			Passed:        report.Passed(),
			Runtime:       report.Runtime.String(),
			RuntimePath:   cfg.Runtime.Path,
			ToolChecked:   report.ToolChecked,
			ToolAvailable: report.ToolAvailable,
		}
		if err != nil {
			out.Error = err.Error()
		}
		jsonBytes, merr := json.MarshalIndent(out, "", "  ")
		if merr != nil {
			return fmt.Errorf("failed to marshal report to JSON: %w", merr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return err
	},
}

// quiet returns a copy of cmd whose output is discarded.
func quiet(cmd *cobra.Command) *cobra.Command {
	c := &cobra.Command{}
	c.SetOut(io.Discard)
	c.SetIn(cmd.InOrStdin())
	return c
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")
}
