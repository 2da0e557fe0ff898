package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stacklaunch/pkg/config"
	"stacklaunch/pkg/log"
	"stacklaunch/pkg/system"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	pause     bool
	logger    log.Logger
	cfg       *config.Config
	cmdRunner system.CommandRunner = &system.LiveCommandRunner{}
	rootCmd                        = &cobra.Command{
		Use:   "stacklaunch",
		Short: "stacklaunch starts and stops the application stack with Docker Compose",
		Long: `A console launcher that makes sure Docker is running (starting Docker Desktop
when it is not), checks that Docker Compose is installed, and then starts or
stops the application stack.

Run without a subcommand for the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = log.NewSlogLogger(level, cmd.ErrOrStderr())
			if live, ok := cmdRunner.(*system.LiveCommandRunner); ok {
				live.Logger = logger
			}

			cfg, err = config.LoadConfig(cfgFile, logger)
			return err
		},
		RunE: runMenu,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pause, "pause", false, "Wait for Enter before exiting")
}
