package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"linktrack/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":9090"
  base_url: "https://lnk.example.com"
  requests_per_minute: 30
  shutdown_timeout: 5s
database:
  path: "/tmp/test.db"
redis:
  addr: "localhost:6379"
  db: 2
auth:
  jwt_secret: "s3cret"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "https://lnk.example.com", cfg.Server.BaseURL)
	assert.Equal(t, 30, cfg.Server.RequestsPerMinute)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
auth:
  jwt_secret: "s3cret"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, 60, cfg.Server.RequestsPerMinute)
	assert.Equal(t, "linktrack.db", cfg.Database.Path)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_MissingSecret_Errors(t *testing.T) {
	path := writeConfigFile(t, `
server:
  addr: ":8080"
`)

	cfg, err := config.Load(path)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
auth:
  jwt_secret: "s3cret"
`)

	t.Setenv("LINKTRACK_SERVER_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}
