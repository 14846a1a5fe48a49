package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExpiryConsumerCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "expiry-consumer",
		Short: "Purge unverified service requests when their grace period ends",
		Long: `Consume delayed expiration messages and call the internal expire endpoint
of the API for each one. Records verified in the meantime are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()
			if cfg.Internal.APIKey == "" {
				logger.Warn("INTERNAL_API_KEY is empty, the API will reject expire calls")
			}

			consumer, err := rabbitmq.NewConsumer(
				cfg.RabbitMQ.Host,
				cfg.RabbitMQ.Port,
				cfg.RabbitMQ.User,
				cfg.RabbitMQ.Password,
				cfg.Internal.APIURL,
				cfg.Internal.APIKey,
			)
			if err != nil {
				logger.Error("err connect rabbitmq", zap.Error(err))
				return err
			}
			defer consumer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("expiry consumer running", zap.String("api_url", cfg.Internal.APIURL))
			return consumer.Start(ctx)
		},
	}
}
