package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	inquiryapp "github.com/muhammadheryan/home-service/application/inquiry"
	serviceapp "github.com/muhammadheryan/home-service/application/service"
	"github.com/muhammadheryan/home-service/application/verification"
	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/muhammadheryan/home-service/templates"
	"github.com/muhammadheryan/home-service/thirdparty/phone"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCommand(load func() *config.Config) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete stale finished, cancelled and unverified service requests",
		Long: `Apply the retention rules every SWEEP_INTERVAL:
  - finished or cancelled requests untouched for TERMINAL_RETENTION
  - pending requests with no verified contact older than UNVERIFIED_GRACE

Example:
  home-service sweep --once`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return sweep(ctx, load(), once)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "run a single pass and exit")

	return cmd
}

func sweep(ctx context.Context, cfg *config.Config, once bool) error {
	policy, err := verification.ParsePolicy(cfg.Service.VerificationPolicy)
	if err != nil {
		return err
	}

	renderer, err := templates.New(cfg.Service.DefaultLocale)
	if err != nil {
		return err
	}

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

	m := metrics.NewMetrics(metricsNamespace, prometheus.NewRegistry())
	ServiceApp := serviceapp.NewServiceApp(
		cfg,
		policy,
		ServiceRepo,
		inquiryapp.NewInquiryApp(cfg, ServiceRepo),
		newDispatcher(ctx, cfg, m),
		renderer,
		phone.NewNormalizer(),
		m,
	)

	run := func() {
		if _, err := ServiceApp.Purge(ctx, time.Now().UTC()); err != nil {
			logger.Error("[sweep] err Purge", zap.Error(err))
		}
	}

	run()
	if once || cfg.Service.SweepInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(cfg.Service.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("sweep stopped")
			return nil
		case <-ticker.C:
			run()
		}
	}
}
