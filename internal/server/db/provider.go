// Package db owns the connection lifecycle for the Postgres store. Every
// logical operation acquires one fresh connection and releases it when done;
// there is no pooling or reuse across operations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/obolotin/ledgerboard/internal/common"
	"github.com/obolotin/ledgerboard/internal/dbx"
)

// Settings are the externally supplied connection parameters.
type Settings struct {
	Host           string
	Port           int
	Database       string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
}

// DSN renders the settings as a pgx connection string.
func (s Settings) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   fmt.Sprintf("%s:%d", s.Host, s.Port),
		Path:   s.Database,
	}
	q := u.Query()
	if s.SSLMode != "" {
		q.Set("sslmode", s.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

type Provider struct {
	dsn            string
	connectTimeout time.Duration
}

func NewProvider(s Settings) *Provider {
	timeout := s.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Provider{dsn: s.DSN(), connectTimeout: timeout}
}

// Acquire opens a fresh connection for a single logical operation and
// verifies it under the configured connect timeout. Failures are reported
// as common.ErrorConnection; the DSN (and so the credentials) never appear
// in the returned error.
func (p *Provider) Acquire(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("pgx", p.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}
	conn.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorConnection, err)
	}

	return conn, nil
}

// Release closes a connection obtained from Acquire.
func (p *Provider) Release(conn *sql.DB) {
	if conn != nil {
		_ = conn.Close()
	}
}

// Do runs fn inside one acquire/release scope. The connection is released on
// every exit path, including panic.
func (p *Provider) Do(ctx context.Context, fn func(ctx context.Context, conn dbx.DBTX) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)
	return fn(ctx, conn)
}
