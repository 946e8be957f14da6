package main

import (
	"log/slog"

	"signup/config"
	"signup/internal/domain/repository"
	"signup/internal/errors"
	"signup/internal/infra/persistence/mongodb"
	"signup/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// newAccountRepository picks the store named by storage.driver.
func newAccountRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.AccountRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.New(lc, cfg, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open postgres")
		}

		return postgres.NewAccountRepository(db), nil
	case config.StorageDriverMongo:
		client, err := mongodb.New(lc, cfg.Mongo, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open mongo")
		}

		return mongodb.NewAccountRepository(mongodb.AccountCollection(client, cfg.Mongo)), nil
	default:
		return nil, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
