// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
)

const (
	defaultPage      uint64 = 1
	defaultPageSize  uint64 = 50
	maxPageSize      uint64 = 200
	defaultTxTimeout        = time.Second * 30
)

type lazyTxContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// Offset returns the row offset for a 1-based page.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return uint64(pageParam-1) * pageSize
}

// PageSize clamps a requested page size to (0, maxPageSize].
func PageSize(sizeParam int64) uint64 {
	if sizeParam <= 0 {
		return defaultPageSize
	}
	if uint64(sizeParam) > maxPageSize {
		return maxPageSize
	}
	return uint64(sizeParam)
}

// lazyTx opens the transaction on the first statement issued inside WithTx.
// A failed BEGIN is remembered so every later statement fails the same way.
type lazyTx struct {
	begin     func(context.Context) (TxInterface, error)
	tx        TxInterface
	err       error
	committed bool
	cancel    context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil || lt.err != nil {
		return lt.tx, lt.err
	}

	// detached from the request context so a cancelled request cannot leave
	// the transaction half rolled back while fn is still running
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.begin(ctx)
	if err != nil {
		cancel()
		lt.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, lt.err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) isStarted() bool {
	return lt.tx != nil
}

// failedTxRunner stands in for a transaction that could not be opened.
type failedTxRunner struct {
	err error
}

var _ sq.RunnerContext = failedTxRunner{}

func (r failedTxRunner) Exec(string, ...any) (sql.Result, error) { return nil, r.err }
func (r failedTxRunner) Query(string, ...any) (*sql.Rows, error) { return nil, r.err }
func (r failedTxRunner) QueryRow(string, ...any) sq.RowScanner   { return failedRow{err: r.err} }
func (r failedTxRunner) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, r.err
}
func (r failedTxRunner) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, r.err
}
func (r failedTxRunner) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return failedRow{err: r.err}
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...any) error { return r.err }

type DBClient struct {
	pool     *pgxpool.Pool
	db       *sql.DB
	dbRunner sq.BaseRunner
	beginTx  func(context.Context) (TxInterface, error)

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder bound to the transaction in ctx, if any, or to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("statement not run: %v", err)
			return builder.RunWith(failedTxRunner{err: err})
		}
		return builder.RunWith(tx)
	}

	return builder.RunWith(d.dbRunner)
}

// WithTx runs fn inside a single transaction, committed when fn returns nil.
// Nested calls join the outer transaction. No transaction is opened if fn
// never touches the database.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{begin: d.beginTx}
	txCtx := context.WithValue(ctx, lazyTxContextKey{}, lt)

	defer func() {
		if lt.isStarted() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if lt.err != nil {
		return lt.err
	}

	if lt.isStarted() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		lt.committed = true
	}

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

// NewDBClient opens a pgx pool and exposes it through database/sql for squirrel.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db
	d.dbRunner = db
	d.beginTx = func(ctx context.Context) (TxInterface, error) {
		tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
		if err != nil {
			return nil, err
		}
		return tx, nil
	}

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
