package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"accounts/config"
	"accounts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, store *config.StoreConfig) (Params, *fxtest.Lifecycle) {
	t.Helper()

	lc := fxtest.NewLifecycle(t)

	return Params{
		Lc:     lc,
		Config: &config.Config{Store: store},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, lc
}

func TestNewAccountRepository_Docstore(t *testing.T) {
	params, lc := newParams(t, &config.StoreConfig{
		Driver: config.StoreDriverDocstore,
		URL:    "mem://users/id",
	})

	repo, err := NewAccountRepository(params)
	require.NoError(t, err)
	require.NotNil(t, repo)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Username: "alice", Email: "a@x.io", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
}

func TestNewAccountRepository_DocstoreMissingURL(t *testing.T) {
	params, _ := newParams(t, &config.StoreConfig{Driver: config.StoreDriverDocstore})

	repo, err := NewAccountRepository(params)

	assert.Nil(t, repo)
	assert.ErrorContains(t, err, "docstore collection url is missing")
}

func TestNewAccountRepository_PostgresMissingConfig(t *testing.T) {
	params, _ := newParams(t, nil)

	repo, err := NewAccountRepository(params)

	assert.Nil(t, repo)
	assert.ErrorContains(t, err, "postgres configuration is missing")
}

func TestNewAccountRepository_UnknownDriver(t *testing.T) {
	params, _ := newParams(t, &config.StoreConfig{Driver: "redis"})

	repo, err := NewAccountRepository(params)

	assert.Nil(t, repo)
	assert.ErrorContains(t, err, "unknown store driver: redis")
}
