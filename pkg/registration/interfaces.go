// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

// StorageInterface is the subset of internal/storage used by signup and
// email verification.
type StorageInterface interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error)
	GetUserByVerifyTokenHash(ctx context.Context, hash string) (*types.User, error)
	SetVerificationToken(ctx context.Context, tenantID, id, hash string, expires, sentAt time.Time) error
	MarkEmailVerified(ctx context.Context, id string) error
}

type ServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*Registration, error)
	VerifyEmail(ctx context.Context, rawToken string) error
	ResendVerification(ctx context.Context, session *types.Session) error
}
