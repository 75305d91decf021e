// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	ListEmployees(ctx context.Context, session *types.Session) ([]*types.User, error)
	CreateEmployee(ctx context.Context, session *types.Session, req *CreateEmployeeRequest) (*types.User, error)
	UpdateEmployee(ctx context.Context, session *types.Session, id string, req *UpdateEmployeeRequest) (*types.User, error)
	ToggleEmployeeStatus(ctx context.Context, session *types.Session, id string) (*types.User, error)
}

type StorageInterface interface {
	ListUsers(ctx context.Context, tenantID string) ([]*types.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	UpdateUser(ctx context.Context, tenantID, id string, upd types.UserUpdate) (*types.User, error)
	ToggleUserActive(ctx context.Context, tenantID, id string) (*types.User, error)
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
