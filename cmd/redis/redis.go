package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/home-service/cmd/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// Addr is the host:port the client dials.
func Addr(cfg *config.Config) string {
	return fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
}

// New connects the shared client used for admin sessions and OTP resend
// cooldowns. The client is only published once the server answers a ping.
func New(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	c := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", Addr(cfg), err)
	}

	client = c
	return nil
}

// Get returns the shared client, nil until New succeeds.
func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
