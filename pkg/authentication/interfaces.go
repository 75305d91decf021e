// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// ResolveSession turns verified claims into a session, reloading the
	// principal so deactivation and role changes apply immediately.
	ResolveSession(ctx context.Context, claims *Claims) (*types.Session, error)
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, session *types.Session) (string, time.Time, error)
}

type TokenVerifierInterface interface {
	// VerifyToken checks signature and expiry of a raw session token and
	// returns its claims.
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
}

type StorageInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, tenantID, id string) (*types.User, error)
}
