package dbx

import (
	"context"
	"net/http"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported driver names, as registered with database/sql
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrRegistry = errx.NewRegistry("STORE")

var (
	CodeMisconfigured = ErrRegistry.Register("MISCONFIGURED", errx.TypeConfiguration, http.StatusInternalServerError, "Store connection settings are invalid")
	CodeUnreachable   = ErrRegistry.Register("UNREACHABLE", errx.TypeExternal, http.StatusServiceUnavailable, "Store is unreachable")
)

// Options describes how to reach the relational store
type Options struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open builds the store handle shared by every repository and verifies it
// answers a ping.
func Open(ctx context.Context, opts Options) (*sqlx.DB, error) {
	if opts.Driver != DriverPostgres && opts.Driver != DriverSQLite {
		return nil, ErrRegistry.New(CodeMisconfigured).
			WithDetail("driver", opts.Driver).
			WithDetail("reason", "unsupported driver")
	}
	if opts.DSN == "" {
		return nil, ErrRegistry.New(CodeMisconfigured).
			WithDetail("driver", opts.Driver).
			WithDetail("reason", "empty dsn")
	}

	db, err := sqlx.Open(opts.Driver, opts.DSN)
	if err != nil {
		return nil, ErrRegistry.NewWithCause(CodeMisconfigured, err).
			WithDetail("driver", opts.Driver)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Ping checks connectivity with a trivial round trip
func Ping(ctx context.Context, db *sqlx.DB) error {
	var one int
	if err := db.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return ErrRegistry.NewWithCause(CodeUnreachable, err).
			WithDetail("driver", db.DriverName())
	}
	return nil
}
