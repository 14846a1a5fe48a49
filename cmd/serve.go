package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inquiryapp "github.com/muhammadheryan/home-service/application/inquiry"
	lifecycleapp "github.com/muhammadheryan/home-service/application/lifecycle"
	otpapp "github.com/muhammadheryan/home-service/application/otp"
	serviceapp "github.com/muhammadheryan/home-service/application/service"
	userapp "github.com/muhammadheryan/home-service/application/user"
	"github.com/muhammadheryan/home-service/application/verification"
	"github.com/muhammadheryan/home-service/cmd/config"
	redisclient "github.com/muhammadheryan/home-service/cmd/redis"
	redisRepo "github.com/muhammadheryan/home-service/repository/redis"
	userRepo "github.com/muhammadheryan/home-service/repository/user"
	"github.com/muhammadheryan/home-service/templates"
	"github.com/muhammadheryan/home-service/thirdparty/phone"
	"github.com/muhammadheryan/home-service/thirdparty/rabbitmq"
	"github.com/muhammadheryan/home-service/transport"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, load())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	policy, err := verification.ParsePolicy(cfg.Service.VerificationPolicy)
	if err != nil {
		return err
	}

	renderer, err := templates.New(cfg.Service.DefaultLocale)
	if err != nil {
		return err
	}

	// Connect to database
	db, err := openSQL(cfg)
	if err != nil {
		logger.Error("err connect db", zap.Error(err))
		return err
	}
	defer db.Close()

	ServiceRepo, closeStore, err := openServiceRepo(ctx, cfg, db)
	if err != nil {
		logger.Error("err open service store", zap.Error(err))
		return err
	}
	defer closeStore()

	// Initialize Redis client
	if err := redisclient.New(ctx, cfg); err != nil {
		logger.Error("err connect redis", zap.String("addr", redisclient.Addr(cfg)), zap.Error(err))
		return err
	}
	defer func() {
		_ = redisclient.Close()
	}()

	var publisher rabbitmq.ExpirationPublisher = rabbitmq.NoopPublisher{}
	rmq, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, unverified records wait for the sweep", zap.Error(err))
	} else {
		publisher = rmq
		defer rmq.Close()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(metricsNamespace, registry)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()

	dispatcher := newDispatcher(ctx, cfg, m)
	normalizer := phone.NewNormalizer()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	InquiryApp := inquiryapp.NewInquiryApp(cfg, ServiceRepo)
	OTPApp := otpapp.NewOTPApp(cfg, ServiceRepo, RedisRepo, dispatcher, renderer, normalizer, publisher, m)
	ServiceApp := serviceapp.NewServiceApp(cfg, policy, ServiceRepo, InquiryApp, dispatcher, renderer, normalizer, m)
	LifecycleApp := lifecycleapp.NewLifecycleApp(ServiceRepo, dispatcher, renderer, m)

	httpTransport := transport.NewTransport(cfg.Internal.APIKey, registry, UserApp, OTPApp, ServiceApp, LifecycleApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port), zap.String("verification_policy", string(policy)))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		logger.Error("failed server", zap.Error(err))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
