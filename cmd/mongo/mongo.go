package mongoclient

import (
	"context"
	"time"

	"github.com/muhammadheryan/home-service/cmd/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// New connects to MongoDB and returns the configured database.
func New(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.Mongo.URI)
	if cfg.Mongo.User != "" && cfg.Mongo.Password != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Mongo.User,
			Password: cfg.Mongo.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(cfg.Mongo.DB), nil
}
