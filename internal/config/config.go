// Package config loads the service configuration once at startup. The
// resulting Config is passed explicitly to every component that needs it.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds the Postgres connection and pool settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// SSLRootCert is the CA bundle used to verify the server. When the file
	// is missing the service refuses to start unless AllowInsecure is set.
	SSLRootCert   string `mapstructure:"ssl_root_cert"`
	AllowInsecure bool   `mapstructure:"allow_insecure"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console, json
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// CORSConfig lists the origins allowed to call the API. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var envBindings = map[string]string{
	"server.port":                "PORT",
	"database.host":              "DB_HOST",
	"database.port":              "DB_PORT",
	"database.name":              "DB_NAME",
	"database.user":              "DB_USER",
	"database.password":          "DB_PASSWORD",
	"database.ssl_root_cert":     "DB_SSL_ROOT_CERT",
	"database.allow_insecure":    "DB_ALLOW_INSECURE",
	"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"log.level":                  "LOG_LEVEL",
	"log.format":                 "LOG_FORMAT",
	"log.file_path":              "LOG_FILE",
	"cors.allowed_origins":       "CORS_ALLOWED_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 25060)
	v.SetDefault("database.name", "defaultdb")
	v.SetDefault("database.user", "doadmin")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_root_cert", "ca-certificate.crt")
	v.SetDefault("database.allow_insecure", false)
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file_path", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads configuration from defaults, an optional YAML file at path and
// the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Port) == "" {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "server.port is empty")
	}
	if c.Database.Host == "" {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "database.host is empty")
	}
	if c.Database.Port <= 0 || c.Database.Port > 65535 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "database.port %d out of range", c.Database.Port)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "database pool sizes must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "log.format %q", c.Log.Format)
	}
	return nil
}
