// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/types"
)

type AuthorizerInterface interface {
	// Authorize checks session against the rule for action and returns the
	// tenant every subsequent read or write must be scoped to.
	Authorize(context.Context, *types.Session, Action) (string, error)
	RequireTenant(*types.Session) (string, error)
	RequireRole(*types.Session, types.Role) error
	RequireVerifiedEmail(*types.Session) error
}
