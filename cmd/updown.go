package cmd

import (
	"stacklaunch/pkg/model"

	"github.com/spf13/cobra"
)

var dryRun bool

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Check Docker, then build and start the stack",
	Long: `The up command runs the same checks as the interactive menu and then
runs the compose "up --build" command with its output streamed to the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newLauncher(cmd, dryRun).runChoice(cmd.Context(), model.MenuStart, dryRun)
	},
}

// downCmd represents the down command
var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Check Docker, then stop and remove the stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return newLauncher(cmd, dryRun).runChoice(cmd.Context(), model.MenuStop, dryRun)
	},
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	upCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the compose command without running it")
	downCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the compose command without running it")
}
