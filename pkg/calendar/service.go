// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

// views showing appointments
var affectedViews = []string{cache.ViewCalendar, cache.ViewCustomers, cache.ViewDashboard}

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	views   cache.ViewCacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// ListAppointments returns the appointments fully contained in [from, to],
// earliest first, each with its customer.
func (s *Service) ListAppointments(ctx context.Context, session *types.Session, from, to time.Time) ([]*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.ListAppointments")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_READ)
	if err != nil {
		return nil, err
	}

	if !from.Before(to) {
		return nil, types.NewValidationError("to", "must be after from")
	}

	key := fmt.Sprintf("range:%d:%d", from.Unix(), to.Unix())

	appointments := make([]*types.Appointment, 0)
	if s.views.Get(ctx, tenantID, cache.ViewCalendar, key, &appointments) {
		return appointments, nil
	}

	appointments, err = s.storage.ListAppointments(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}

	s.views.Set(ctx, tenantID, cache.ViewCalendar, key, appointments)

	return appointments, nil
}

// ListCustomerAppointments returns the history of one customer, newest first.
func (s *Service) ListCustomerAppointments(ctx context.Context, session *types.Session, customerID string) ([]*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.ListCustomerAppointments")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_READ)
	if err != nil {
		return nil, err
	}

	if _, err := s.storage.GetCustomer(ctx, tenantID, customerID); err != nil {
		return nil, storage.DomainError(err, "")
	}

	return s.storage.ListAppointmentsByCustomer(ctx, tenantID, customerID)
}

func (s *Service) CreateAppointment(ctx context.Context, session *types.Session, req *AppointmentRequest) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.CreateAppointment")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_WRITE)
	if err != nil {
		return nil, err
	}

	req.normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateAppointment(ctx, tenantID, req.toAppointment())
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, affectedViews...)

	return created, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, session *types.Session, id string, req *AppointmentRequest) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.UpdateAppointment")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_WRITE)
	if err != nil {
		return nil, err
	}

	req.normalize()
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	a := req.toAppointment()
	a.ID = id

	updated, err := s.storage.UpdateAppointment(ctx, tenantID, a)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, affectedViews...)

	return updated, nil
}

func (s *Service) RescheduleAppointment(ctx context.Context, session *types.Session, id string, req *RescheduleRequest) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.RescheduleAppointment")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	updated, err := s.storage.RescheduleAppointment(ctx, tenantID, id, req.StartTime, req.EndTime)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, affectedViews...)

	return updated, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, session *types.Session, id string) error {
	ctx, span := s.tracer.Start(ctx, "calendar.Service.DeleteAppointment")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.APPOINTMENT_WRITE)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteAppointment(ctx, tenantID, id); err != nil {
		return storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, affectedViews...)

	return nil
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	views cache.ViewCacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.views = views

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
