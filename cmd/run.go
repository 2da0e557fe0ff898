package cmd

import (
	"stacklaunch/pkg/model"

	"github.com/spf13/cobra"
)

// runCmd represents the interactive menu; it is also what the bare root command runs.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check Docker, then choose to start or stop the stack",
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := newLauncher(cmd, false)
	l.presenter.Header()

	if _, err := l.preflight(ctx); err != nil {
		if pause {
			_ = l.presenter.Pause(ctx)
		}
		return err
	}

	l.presenter.Menu()
	choice, err := l.presenter.ReadChoice(ctx)
	if err != nil {
		return err
	}
	logger.Debug("menu choice", "choice", choice)

	err = l.dispatcher.Dispatch(ctx, choice)
	if pause && choice != model.MenuExit {
		if perr := l.presenter.Pause(ctx); err == nil {
			err = perr
		}
	}
	return err
}

func init() {
	rootCmd.AddCommand(runCmd)
}
