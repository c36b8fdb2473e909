// Package database owns the Postgres connection pool. Callers borrow one
// connection per request through Pool.WithConn and never hold it past the
// callback.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/divscout/divscout-api/internal/apperrors"
	"github.com/divscout/divscout-api/internal/config"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Querier is the read surface of a borrowed connection.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Pool hands out request-scoped connections from a database/sql pool.
type Pool struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewPool wraps an already opened *sql.DB.
func NewPool(db *sql.DB, logger zerolog.Logger) *Pool {
	return &Pool{db: db, logger: logger}
}

// Open connects to Postgres using cfg, sizes the pool and pings the server.
func Open(cfg config.DatabaseConfig, logger zerolog.Logger) (*Pool, error) {
	dsn, insecure, err := BuildDSN(cfg)
	if err != nil {
		return nil, err
	}
	if insecure {
		logger.Warn().
			Str("ssl_root_cert", cfg.SSLRootCert).
			Msg("database TLS disabled by database.allow_insecure")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pool := NewPool(db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Bool("tls", !insecure).
		Msg("database connection established")

	return pool, nil
}

// BuildDSN renders cfg as a lib/pq connection URL. TLS with full server
// verification is used whenever the root certificate exists; otherwise the
// call fails unless AllowInsecure is set. The boolean reports whether the
// resulting DSN is unencrypted.
func BuildDSN(cfg config.DatabaseConfig) (string, bool, error) {
	query := url.Values{}
	insecure := false

	switch {
	case certExists(cfg.SSLRootCert):
		query.Set("sslmode", "verify-full")
		query.Set("sslrootcert", cfg.SSLRootCert)
	case cfg.AllowInsecure:
		query.Set("sslmode", "disable")
		insecure = true
	default:
		return "", false, apperrors.Wrapf(apperrors.ErrConfigInvalid,
			"database root certificate %q not found and database.allow_insecure is false", cfg.SSLRootCert)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: query.Encode(),
	}
	return u.String(), insecure, nil
}

func certExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// WithConn borrows one connection for the duration of fn. The connection is
// returned to the pool on every exit path, including a panic in fn.
func (p *Pool) WithConn(ctx context.Context, fn func(Querier) error) error {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			p.logger.Warn().Err(cerr).Msg("failed to release connection")
		}
	}()

	return fn(conn)
}

// Ping checks that the store is reachable.
func (p *Pool) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Stats exposes pool statistics.
func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

// Close closes every pooled connection.
func (p *Pool) Close() error {
	return p.db.Close()
}
