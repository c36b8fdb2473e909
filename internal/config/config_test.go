package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25060, cfg.Database.Port)
	assert.Equal(t, "defaultdb", cfg.Database.Name)
	assert.Equal(t, "doadmin", cfg.Database.User)
	assert.False(t, cfg.Database.AllowInsecure)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_ALLOW_INSECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.True(t, cfg.Database.AllowInsecure)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "divscout.yaml")
	content := `
server:
  port: "7070"
database:
  host: pg.example.com
  name: dividends
  max_open_conns: 10
log:
  format: json
cors:
  allowed_origins:
    - https://divscout.app
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "pg.example.com", cfg.Database.Host)
	assert.Equal(t, "dividends", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 25060, cfg.Database.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://divscout.app"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost", Port: 5432},
			Log:      LogConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = " " }},
		{name: "empty host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "db port out of range", mutate: func(c *Config) { c.Database.Port = 70000 }},
		{name: "negative pool", mutate: func(c *Config) { c.Database.MaxOpenConns = -1 }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), apperrors.ErrConfigInvalid)
		})
	}
}
