package main

import (
	"freshmart/internal/config"
	"freshmart/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is filled in by the root command before any subcommand runs.
type env struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Inspect and publish the FreshMart catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	root.AddCommand(
		newListCmd(e),
		newSeedCmd(e),
		newPushCmd(e),
	)
	return root
}
