// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	WithTx(context.Context, func(context.Context) error) error
	Ping(context.Context) error
	Close()
}

// TxRunnerInterface is the subset of the client services need to group writes atomically.
type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
