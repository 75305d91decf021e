// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	Summary(ctx context.Context, session *types.Session) (*types.DashboardSummary, error)
}

type StorageInterface interface {
	CountCustomers(ctx context.Context, tenantID string) (int, error)
	CountAppointments(ctx context.Context, tenantID string, from, to time.Time) (int, error)
	CountConversations(ctx context.Context, tenantID string, status types.ConversationStatus) (int, error)
	CountActiveUsers(ctx context.Context, tenantID string) (int, error)
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
