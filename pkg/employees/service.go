// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"context"
	"fmt"
	"strings"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

const (
	listKey       = "list"
	emailConflict = "an account with this email already exists"
)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	views   cache.ViewCacheInterface
	hasher  password.HasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) ListEmployees(ctx context.Context, session *types.Session) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.ListEmployees")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.EMPLOYEE_READ)
	if err != nil {
		return nil, err
	}

	users := make([]*types.User, 0)
	if s.views.Get(ctx, tenantID, cache.ViewEmployees, listKey, &users) {
		return users, nil
	}

	users, err = s.storage.ListUsers(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	s.views.Set(ctx, tenantID, cache.ViewEmployees, listKey, users)

	return users, nil
}

// CreateEmployee adds an active principal to the caller's company. The new
// account starts unverified; email uniqueness is global across companies.
func (s *Service) CreateEmployee(ctx context.Context, session *types.Session, req *CreateEmployeeRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.CreateEmployee")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.EMPLOYEE_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	email := types.NormalizeEmail(req.Email)

	exists, err := s.storage.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &types.ConflictError{Code: types.CodeEmailTaken, Message: emailConflict}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.storage.CreateUser(ctx, &types.User{
		CompanyID:    tenantID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         types.Role(req.Role),
		Active:       true,
	})
	if err != nil {
		return nil, storage.DomainError(err, emailConflict)
	}

	s.logger.Security().AccountCreated(created.ID, tenantID)
	s.views.Invalidate(ctx, tenantID, cache.ViewEmployees, cache.ViewDashboard)

	return created, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, session *types.Session, id string, req *UpdateEmployeeRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.UpdateEmployee")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.EMPLOYEE_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	role := types.Role(req.Role)
	upd := types.UserUpdate{Name: &name, Role: &role}

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		upd.PasswordHash = &hash
	}

	updated, err := s.storage.UpdateUser(ctx, tenantID, id, upd)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.views.Invalidate(ctx, tenantID, cache.ViewEmployees, cache.ViewDashboard)

	return updated, nil
}

// ToggleEmployeeStatus activates or deactivates an employee. Deactivated
// principals keep their history but can no longer sign in.
func (s *Service) ToggleEmployeeStatus(ctx context.Context, session *types.Session, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "employees.Service.ToggleEmployeeStatus")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.EMPLOYEE_WRITE)
	if err != nil {
		return nil, err
	}

	if id == session.PrincipalID {
		return nil, types.NewValidationError("id", "you cannot deactivate your own account")
	}

	updated, err := s.storage.ToggleUserActive(ctx, tenantID, id)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.logger.Security().AccountStatusChanged(session.PrincipalID, updated.ID, updated.Active)
	s.views.Invalidate(ctx, tenantID, cache.ViewEmployees, cache.ViewDashboard)

	return updated, nil
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	views cache.ViewCacheInterface,
	hasher password.HasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.views = views
	s.hasher = hasher

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
