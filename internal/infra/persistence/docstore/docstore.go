package docstore

import (
	"context"
	"log/slog"

	"accounts/config"
	"accounts/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/docstore"

	// Collection URL schemes: mem:// and mongo://.
	_ "gocloud.dev/docstore/memdocstore"
	_ "gocloud.dev/docstore/mongodocstore"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the collection named by store.url and closes it when the fx app stops.
func New(params Params) (*docstore.Collection, error) {
	if params.Config.Store == nil || params.Config.Store.URL == "" {
		return nil, errors.New("docstore collection url is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	coll, err := docstore.OpenCollection(ctx, params.Config.Store.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open docstore collection")
	}

	params.Logger.Info("Docstore collection opened", slog.String("url", params.Config.Store.URL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return coll.Close()
		},
	})

	return coll, nil
}
