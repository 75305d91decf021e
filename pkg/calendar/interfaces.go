// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"time"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/types"
)

type ServiceInterface interface {
	ListAppointments(ctx context.Context, session *types.Session, from, to time.Time) ([]*types.Appointment, error)
	ListCustomerAppointments(ctx context.Context, session *types.Session, customerID string) ([]*types.Appointment, error)
	CreateAppointment(ctx context.Context, session *types.Session, req *AppointmentRequest) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, session *types.Session, id string, req *AppointmentRequest) (*types.Appointment, error)
	RescheduleAppointment(ctx context.Context, session *types.Session, id string, req *RescheduleRequest) (*types.Appointment, error)
	DeleteAppointment(ctx context.Context, session *types.Session, id string) error
}

type StorageInterface interface {
	GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error)
	ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*types.Appointment, error)
	ListAppointmentsByCustomer(ctx context.Context, tenantID, customerID string) ([]*types.Appointment, error)
	CreateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error)
	RescheduleAppointment(ctx context.Context, tenantID, id string, start, end time.Time) (*types.Appointment, error)
	DeleteAppointment(ctx context.Context, tenantID, id string) error
}

type AuthorizerInterface interface {
	Authorize(ctx context.Context, session *types.Session, action authorization.Action) (string, error)
}
