// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"context"
	"fmt"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

const phoneConflict = "a customer with this phone number already exists"

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	views   cache.ViewCacheInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) ListCustomers(ctx context.Context, session *types.Session, page, size int64) (*Page, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.ListCustomers")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CUSTOMER_READ)
	if err != nil {
		return nil, err
	}

	limit := db.PageSize(size)
	offset := db.Offset(page, limit)
	key := fmt.Sprintf("list:%d:%d", offset, limit)

	result := new(Page)
	if s.views.Get(ctx, tenantID, cache.ViewCustomers, key, result) {
		return result, nil
	}

	customers, err := s.storage.ListCustomers(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.storage.CountCustomers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	result.Customers = customers
	result.Page = int64(offset/limit) + 1
	result.Size = int64(limit)
	result.Total = total

	s.views.Set(ctx, tenantID, cache.ViewCustomers, key, result)

	return result, nil
}

// GetCustomer returns the customer with its appointments, newest first.
func (s *Service) GetCustomer(ctx context.Context, session *types.Session, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.GetCustomer")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CUSTOMER_READ)
	if err != nil {
		return nil, err
	}

	key := "detail:" + id

	customer := new(types.Customer)
	if s.views.Get(ctx, tenantID, cache.ViewCustomers, key, customer) {
		return customer, nil
	}

	customer, err = s.storage.GetCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	appointments, err := s.storage.ListAppointmentsByCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	customer.Appointments = appointments

	s.views.Set(ctx, tenantID, cache.ViewCustomers, key, customer)

	return customer, nil
}

func (s *Service) CreateCustomer(ctx context.Context, session *types.Session, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.CreateCustomer")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CUSTOMER_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	created, err := s.storage.CreateCustomer(ctx, tenantID, req.toCustomer())
	if err != nil {
		return nil, storage.DomainError(err, phoneConflict)
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewCustomers, cache.ViewDashboard)

	return created, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, session *types.Session, id string, req *CustomerRequest) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "customers.Service.UpdateCustomer")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CUSTOMER_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	c := req.toCustomer()
	c.ID = id

	updated, err := s.storage.UpdateCustomer(ctx, tenantID, c)
	if err != nil {
		return nil, storage.DomainError(err, phoneConflict)
	}

	// conversation and calendar views embed the customer name
	s.views.Invalidate(ctx, tenantID, cache.ViewCustomers, cache.ViewCalendar, cache.ViewInbox)

	return updated, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, session *types.Session, id string) error {
	ctx, span := s.tracer.Start(ctx, "customers.Service.DeleteCustomer")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.CUSTOMER_WRITE)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteCustomer(ctx, tenantID, id); err != nil {
		return storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewCustomers, cache.ViewCalendar, cache.ViewInbox, cache.ViewDashboard)

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
