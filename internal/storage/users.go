// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/types"
)

var userColumns = []string{
	"id", "company_id", "name", "email", "password_hash", "role", "is_active",
	"email_verified", "email_verify_token_hash", "email_verify_expires",
	"last_verification_email_sent_at", "created_at", "updated_at",
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	err := row.Scan(
		&u.ID, &u.CompanyID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active,
		&u.EmailVerified, &u.VerifyTokenHash, &u.VerifyExpires,
		&u.LastVerificationEmailAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) getUser(ctx context.Context, where sq.Sqlizer, op string) (*types.User, error) {
	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(where).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, op)
	}
	return u, nil
}

// EmailExists checks the global uniqueness of a login email across all companies.
func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EmailExists")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Eq{"email": email}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, translate(err, "check email")
	}

	return exists, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns(
				"id", "company_id", "name", "email", "password_hash", "role", "is_active",
				"email_verified", "email_verify_token_hash", "email_verify_expires",
				"last_verification_email_sent_at",
			).
			Values(
				id, u.CompanyID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.Active,
				u.EmailVerified, u.VerifyTokenHash, u.VerifyExpires,
				u.LastVerificationEmailAt,
			).
			Suffix("RETURNING " + columnList(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert user")
	}

	return created, nil
}

// GetUserByEmail is the only unscoped principal lookup; login happens before a tenant is known.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email}, "get user by email")
}

func (s *Storage) GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id, "company_id": tenantID}, "get user")
}

func (s *Storage) GetUserByVerifyTokenHash(ctx context.Context, hash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByVerifyTokenHash")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email_verify_token_hash": hash}, "get user by token")
}

func (s *Storage) ListUsers(ctx context.Context, tenantID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"company_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list users")
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translate(err, "scan user")
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, "iterate users")
	}

	return users, nil
}

func (s *Storage) CountActiveUsers(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveUsers")
	defer span.End()

	return s.count(ctx,
		s.db.Statement(ctx).
			Select("count(*)").
			From("users").
			Where(sq.Eq{"company_id": tenantID, "is_active": true}),
		"count users",
	)
}

// UpdateUser applies the non-nil fields of upd. Email and company are immutable.
func (s *Storage) UpdateUser(ctx context.Context, tenantID, id string, upd types.UserUpdate) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("users").
		Set("updated_at", sq.Expr("now()"))

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Role != nil {
		q = q.Set("role", string(*upd.Role))
	}
	if upd.PasswordHash != nil {
		q = q.Set("password_hash", *upd.PasswordHash)
	}

	u, err := scanUser(
		q.Where(sq.Eq{"id": id, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update user")
	}

	return u, nil
}

// ToggleUserActive flips the soft-delete flag in a single conditional statement.
func (s *Storage) ToggleUserActive(ctx context.Context, tenantID, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ToggleUserActive")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Update("users").
			Set("is_active", sq.Expr("NOT is_active")).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(userColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "toggle user")
	}

	return u, nil
}

func (s *Storage) SetVerificationToken(ctx context.Context, tenantID, id, hash string, expires, sentAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetVerificationToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("email_verify_token_hash", hash).
		Set("email_verify_expires", expires).
		Set("last_verification_email_sent_at", sentAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "company_id": tenantID, "email_verified": false}).
		ExecContext(ctx)

	return affected(res, err, "set verification token")
}

// MarkEmailVerified consumes the verification token. It matches only unverified
// users so a concurrent second consumption affects no row.
func (s *Storage) MarkEmailVerified(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkEmailVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("email_verified", true).
		Set("email_verify_token_hash", nil).
		Set("email_verify_expires", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "email_verified": false}).
		ExecContext(ctx)

	return affected(res, err, "mark email verified")
}
