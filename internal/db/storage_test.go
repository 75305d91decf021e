// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/logging"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		page     int64
		size     uint64
		expected uint64
	}{
		{page: 0, size: 50, expected: 0},
		{page: -3, size: 50, expected: 0},
		{page: 1, size: 50, expected: 0},
		{page: 3, size: 20, expected: 40},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.size); got != tt.expected {
			t.Errorf("Offset(%d, %d): expected %d, got %d", tt.page, tt.size, tt.expected, got)
		}
	}
}

func TestPageSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected uint64
	}{
		{size: 0, expected: defaultPageSize},
		{size: -1, expected: defaultPageSize},
		{size: 10, expected: 10},
		{size: 10000, expected: maxPageSize},
	}

	for _, tt := range tests {
		if got := PageSize(tt.size); got != tt.expected {
			t.Errorf("PageSize(%d): expected %d, got %d", tt.size, tt.expected, got)
		}
	}
}

func TestWithTxWithoutStatementsOpensNothing(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}

	called := false
	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		if lazyTxFromContext(ctx) == nil {
			t.Errorf("expected a transaction holder in context")
		}
		return nil
	})

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !called {
		t.Errorf("expected fn to be called")
	}
}

func TestWithTxNestedJoinsOuter(t *testing.T) {
	d := &DBClient{logger: logging.NewNoopLogger()}
	boom := errors.New("boom")

	err := d.WithTx(context.Background(), func(outer context.Context) error {
		return d.WithTx(outer, func(inner context.Context) error {
			if lazyTxFromContext(inner) != lazyTxFromContext(outer) {
				t.Errorf("expected nested call to reuse the outer transaction")
			}
			return boom
		})
	})

	if !errors.Is(err, boom) {
		t.Errorf("expected error %v, got %v", boom, err)
	}
}

type recordingRunner struct {
	calls int
}

func (r *recordingRunner) Exec(string, ...any) (sql.Result, error) {
	r.calls++
	return nil, nil
}

func (r *recordingRunner) Query(string, ...any) (*sql.Rows, error) {
	r.calls++
	return nil, nil
}

func TestWithTxBeginFailureNeverReachesPool(t *testing.T) {
	refused := errors.New("too many connections")
	pool := new(recordingRunner)

	d := &DBClient{
		dbRunner: pool,
		beginTx: func(context.Context) (TxInterface, error) {
			return nil, refused
		},
		logger: logging.NewNoopLogger(),
	}

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		// a caller that ignores the first failure must not autocommit the second write
		_, _ = d.Statement(ctx).Insert("companies").Columns("id").Values("c-1").ExecContext(ctx)

		var id string
		if err := d.Statement(ctx).Select("id").From("users").Where(sq.Eq{"id": "u-1"}).QueryRowContext(ctx).Scan(&id); !errors.Is(err, refused) {
			t.Errorf("expected scan to fail with %v, got %v", refused, err)
		}
		return nil
	})

	if !errors.Is(err, refused) {
		t.Errorf("expected error %v, got %v", refused, err)
	}
	if pool.calls != 0 {
		t.Errorf("expected no statement on the pool, got %d", pool.calls)
	}
}
