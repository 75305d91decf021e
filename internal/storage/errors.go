// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Miky-dev/GestIA/internal/types"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeCheckViolation       = "23514"
	pgErrCodeInvalidTextRepresent = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgErrCodeForeignKeyViolation
}

// constraintName returns the violated constraint, if the driver reported one.
func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// translate maps driver errors onto the storage sentinels, keeping the
// original error in the chain for logging.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	switch pgCode(err) {
	case pgErrCodeUniqueViolation:
		return fmt.Errorf("%s: %s: %w", op, constraintName(err), ErrDuplicateKey)
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %s: %w", op, constraintName(err), ErrForeignKeyViolation)
	case pgErrCodeCheckViolation:
		return fmt.Errorf("%s: %s: %w", op, constraintName(err), ErrCheckViolation)
	case pgErrCodeInvalidTextRepresent:
		// malformed identifiers can never match a row
		return ErrNotFound
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}

// DomainError maps storage sentinels onto the service error taxonomy.
// A foreign key violation means the referenced record is not visible to the
// tenant, so it reads as not found. conflict is the message reported for a
// unique violation.
func DomainError(err error, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForeignKeyViolation):
		return types.ErrNotFound
	case errors.Is(err, ErrDuplicateKey):
		return &types.ConflictError{Message: conflict}
	case errors.Is(err, ErrCheckViolation):
		return fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	return err
}
