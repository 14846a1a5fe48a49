package main

import (
	"fmt"
	"os"

	"github.com/muhammadheryan/home-service/cmd/config"
	_ "github.com/muhammadheryan/home-service/docs"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title HOME SERVICE API
// @version 1.0
// @description Home service intake, verification and admin lifecycle API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "home-service",
		Short:         "Home service request backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration from environment variables
			cfg = config.Load()

			if err := logger.Init(cfg.Environment); err != nil {
				return err
			}
			logger.Info("starting", zap.String("command", cmd.Name()), zap.String("env", cfg.Environment))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Close()
		},
	}

	load := func() *config.Config { return cfg }

	cmd.AddCommand(newServeCommand(load))
	cmd.AddCommand(newExpiryConsumerCommand(load))
	cmd.AddCommand(newSweepCommand(load))
	cmd.AddCommand(newCreateAdminCommand(load))

	return cmd
}
