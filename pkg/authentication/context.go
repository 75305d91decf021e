// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var sessionContextKey = contextKey{}

// WithSession returns a new context carrying the resolved session.
func WithSession(ctx context.Context, session *types.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext retrieves the session set by the Authenticate middleware.
// Returns nil when the request is anonymous.
func SessionFromContext(ctx context.Context) *types.Session {
	session, _ := ctx.Value(sessionContextKey).(*types.Session)
	return session
}
