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
  serviceName: blog-test
http:
  port: 9090
sqlite:
  path: ":memory:"
secretKey:
  session: from-file
auth:
  tokenTtl: 2h
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAMLAndDurations(t *testing.T) {
	writeConfig(t, testConfigYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "blog-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "from-file", cfg.SecretKey.Session)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.SQLite)
	assert.Equal(t, ":memory:", cfg.SQLite.Path)
}

func TestLoadWithEnv_EnvironmentOverridesFile(t *testing.T) {
	writeConfig(t, testConfigYAML)
	t.Setenv("SECRETKEY_SESSION", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Session)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills auth defaults", func(t *testing.T) {
		cfg := &Config{SQLite: &SQLiteConfig{Path: ":memory:"}}
		cfg.SecretKey.Session = "secret"

		require.NoError(t, cfg.applyDefaults())

		assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, 10, cfg.Auth.BcryptCost)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "token", cfg.Auth.CookieName)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &Config{
			SQLite: &SQLiteConfig{Path: ":memory:"},
			Auth:   &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour, CookieName: "sid"},
		}
		cfg.SecretKey.Session = "secret"

		require.NoError(t, cfg.applyDefaults())

		assert.Equal(t, 12, cfg.Auth.BcryptCost)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "sid", cfg.Auth.CookieName)
	})

	t.Run("requires a session secret", func(t *testing.T) {
		cfg := &Config{SQLite: &SQLiteConfig{Path: ":memory:"}}

		assert.Error(t, cfg.applyDefaults())
	})

	t.Run("requires a store", func(t *testing.T) {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"

		assert.Error(t, cfg.applyDefaults())
	})
}
