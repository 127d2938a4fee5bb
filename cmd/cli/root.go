package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/dealhunter/internal/client/cli"
	"github.com/dmitrijs2005/dealhunter/internal/client/config"
	"github.com/dmitrijs2005/dealhunter/internal/logging"
)

// NewRootCmd creates the dealhunter command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dealhunter",
		Short: "Game Deal Hunter - find the best PC game deals",
		Long: `Game Deal Hunter keeps a small local account list and searches
CheapShark for the current deals on a PC game title.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags())
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	return cmd
}

func run(ctx context.Context, fs *pflag.FlagSet) error {
	cfg, err := config.LoadConfig(fs)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogFormat, cfg.LogLevel, nil)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
