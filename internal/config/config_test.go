package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
env: prod
db:
  db_url: postgres://u:p@db:5432/app
http_server:
  address: 0.0.0.0:8080
  read_timeout: 3s
jwt:
  secret: file-secret
  token_ttl: 15m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.DbURL)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "file-secret", cfg.Secret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: file-secret
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, "postgres://env/db", cfg.DbURL)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "only-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "only-env", cfg.Secret)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "localhost:3333", cfg.Address)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	path := writeConfig(t, "env: local\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
