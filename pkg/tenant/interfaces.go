// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	GetCompany(ctx context.Context, session *types.Session) (*types.Company, error)
	UpdateCompany(ctx context.Context, session *types.Session, req *UpdateCompanyRequest) (*types.Company, error)
}

type StorageInterface interface {
	GetCompany(ctx context.Context, tenantID string) (*types.Company, error)
	UpdateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
}

type AuthzInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
