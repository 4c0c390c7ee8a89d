package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: accounts
  log:
    level: info
http:
  port: 5000
  timeouts:
    readTimeout: 15s
store:
  driver: docstore
  url: mem://users/id
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "accounts", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Store)
	assert.Equal(t, StoreDriverDocstore, cfg.Store.Driver)
	assert.Equal(t, "mem://users/id", cfg.Store.URL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.ErrorContains(t, err, "config file missing.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Store: &StoreConfig{Driver: StoreDriverDocstore},
		Auth:  &AuthConfig{BcryptCost: 12},
	}
	cfg.HTTP.MaxRequestBodySize = "2M"

	applyDefaults(cfg)

	assert.Equal(t, "2M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreDriverDocstore, cfg.Store.Driver)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
