// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	ListCustomers(ctx context.Context, session *types.Session, page, size int64) (*Page, error)
	GetCustomer(ctx context.Context, session *types.Session, id string) (*types.Customer, error)
	CreateCustomer(ctx context.Context, session *types.Session, req *CustomerRequest) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, session *types.Session, id string, req *CustomerRequest) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, session *types.Session, id string) error
}

type StorageInterface interface {
	ListCustomers(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Customer, error)
	CountCustomers(ctx context.Context, tenantID string) (int, error)
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListAppointmentsByCustomer(ctx context.Context, tenantID, customerID string) ([]*types.Appointment, error)
	CreateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, tenantID, id string) error
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
