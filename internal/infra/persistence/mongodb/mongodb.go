// Package mongodb contains the MongoDB implementation of the account store.
package mongodb

import (
	"context"
	"log/slog"

	"signup/config"
	"signup/internal/domain/lifecycle"
	"signup/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// New creates the MongoDB client. The connection is verified on start and
// closed on stop, so the client is owned by the application lifecycle.
func New(lc fx.Lifecycle, cfg *config.MongoConfig, logger *slog.Logger) (*mongo.Client, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is not configured")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return client, nil
}

// AccountCollection returns the collection accounts are stored in.
func AccountCollection(client *mongo.Client, cfg *config.MongoConfig) *mongo.Collection {
	return client.Database(cfg.Database).Collection(cfg.Collection)
}
