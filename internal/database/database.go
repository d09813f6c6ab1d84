package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"womenhub/internal/config"
)

// ErrNotConfigured is returned by Open when neither DATABASE_URL nor DB_HOST is set.
var ErrNotConfigured = errors.New("database is not configured")

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

const defaultQueryTimeout = 30 * time.Second

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type DB struct {
	*sqlx.DB
	Dialect      Dialect
	queryTimeout time.Duration
}

// Wrap adopts an already opened handle. Tests use it with sqlmock.
func Wrap(db *sqlx.DB, dialect Dialect) *DB {
	return &DB{DB: db, Dialect: dialect, queryTimeout: defaultQueryTimeout}
}

// ParseDSN maps a connection string onto a registered driver.
// postgres:// and postgresql:// URLs and "host=..." keyword strings go to lib/pq;
// sqlite://<path> and file: URIs go to modernc.org/sqlite.
func ParseDSN(dsn string) (driver, source string, dialect Dialect, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"), strings.Contains(dsn, "host="):
		return "postgres", dsn, Postgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", sqliteSource(strings.TrimPrefix(dsn, "sqlite://")), SQLite, nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite", sqliteSource(dsn), SQLite, nil
	}
	return "", "", "", fmt.Errorf("unsupported database url %q", redact(dsn))
}

func sqliteSource(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func redact(dsn string) string {
	if i := strings.LastIndex(dsn, "@"); i > 0 {
		if j := strings.Index(dsn, "://"); j > 0 && j < i {
			return dsn[:j+3] + "***" + dsn[i:]
		}
	}
	return dsn
}

// Open connects using cfg and configures the pool. The returned handle has been
// pinged once.
func Open(ctx context.Context, cfg config.DB, logger *zap.Logger) (*DB, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		return nil, ErrNotConfigured
	}

	driver, source, dialect, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}

	logger.Info("connecting to database", zap.String("dialect", string(dialect)), zap.String("dsn", redact(dsn)))

	db, err := sqlx.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dialect == SQLite {
		// sqlite has a single writer
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("database connected", zap.String("dialect", string(dialect)))
	return &DB{DB: db, Dialect: dialect, queryTimeout: timeout}, nil
}

func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || db.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, db.queryTimeout)
}

// WithConn acquires one pooled connection, runs fn on it and always returns the
// connection to the pool.
func (db *DB) WithConn(ctx context.Context, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// WithTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx, cancel := db.withTimeout(ctx)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return ErrNotConfigured
	}

	ctx, cancel := db.withTimeout(ctx)
	defer cancel()
	return db.PingContext(ctx)
}

func (db *DB) CloseDB() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}
