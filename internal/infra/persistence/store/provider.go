// Package store selects the account store backend from configuration.
package store

import (
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/docstore"
	"accounts/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the AccountRepository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository opens the configured backend and returns its AccountRepository.
// An unset driver falls back to postgres.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	driver := config.StoreDriverPostgres
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case config.StoreDriverPostgres:
		params.Logger.Info("Using PostgreSQL account store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewAccountRepository(db), nil

	case config.StoreDriverDocstore:
		params.Logger.Info("Using docstore account store")

		coll, err := docstore.New(docstore.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return docstore.NewAccountRepository(coll), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}
}
