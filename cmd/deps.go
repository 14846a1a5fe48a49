package main

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/home-service/cmd/config"
	mongoclient "github.com/muhammadheryan/home-service/cmd/mongo"
	"github.com/muhammadheryan/home-service/constant"
	serviceRepo "github.com/muhammadheryan/home-service/repository/service"
	"github.com/muhammadheryan/home-service/thirdparty/gmail"
	"github.com/muhammadheryan/home-service/thirdparty/notification"
	"github.com/muhammadheryan/home-service/thirdparty/twilio"
	"github.com/muhammadheryan/home-service/utils/logger"
	"github.com/muhammadheryan/home-service/utils/metrics"
	"go.uber.org/zap"
)

const metricsNamespace = "home_service"

// openSQL connects to MySQL, which always holds admin users and, unless
// DB_DRIVER selects mongo, the service records too.
func openSQL(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	return db, nil
}

// openServiceRepo picks the service record store. The returned closer
// releases whatever the store opened beyond db.
func openServiceRepo(ctx context.Context, cfg *config.Config, db *sqlx.DB) (serviceRepo.ServiceRepository, func(), error) {
	switch cfg.Database.Driver {
	case "mysql", "":
		return serviceRepo.NewServiceRepository(db), func() {}, nil
	case "mongo":
		client, database, err := mongoclient.New(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closer := func() { _ = client.Disconnect(context.Background()) }
		return serviceRepo.NewMongoServiceRepository(ctx, database), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Database.Driver)
	}
}

// newDispatcher wires Gmail and Twilio when their credentials are present and
// falls back to logging the message otherwise.
func newDispatcher(ctx context.Context, cfg *config.Config, m *metrics.Metrics) notification.Dispatcher {
	n := cfg.Notification
	senders := map[constant.Channel]notification.Sender{
		constant.ChannelEmail: notification.LogSender{Channel: constant.ChannelEmail},
		constant.ChannelPhone: notification.LogSender{Channel: constant.ChannelPhone},
	}

	if n.GmailClientID != "" && n.GmailRefreshToken != "" {
		sender, err := gmail.NewSender(ctx, n.GmailClientID, n.GmailClientSecret, n.GmailRefreshToken, n.GmailSender)
		if err != nil {
			logger.Warn("gmail sender disabled", zap.Error(err))
		} else {
			senders[constant.ChannelEmail] = sender
		}
	}

	if n.TwilioAccountSID != "" && n.TwilioAuthToken != "" {
		sender, err := twilio.NewSender(n.TwilioAccountSID, n.TwilioAuthToken, n.TwilioFrom)
		if err != nil {
			logger.Warn("twilio sender disabled", zap.Error(err))
		} else {
			senders[constant.ChannelPhone] = sender
		}
	}

	return notification.NewDispatcher(n.Timeout, m, senders)
}
