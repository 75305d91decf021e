// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package employees -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package employees -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package employees -destination ./mock_cache.go -source=../../internal/cache/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package employees -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

const employeeID = "0190a5b2-7c3e-7d1a-8f00-0123456789ef"

var (
	admin           = &types.Session{PrincipalID: "user-1", TenantID: "tenant-1", Role: types.RoleAdmin, EmailVerified: true}
	unverifiedAdmin = &types.Session{PrincipalID: "user-1", TenantID: "tenant-1", Role: types.RoleAdmin}
	secretary       = &types.Session{PrincipalID: "user-2", TenantID: "tenant-1", Role: types.RoleSecretary, EmailVerified: true}
)

func newTestService(ctrl *gomock.Controller, s StorageInterface, views cache.ViewCacheInterface, logger logging.LoggerInterface, spanName string) *Service {
	monitor := monitoring.NewNoopMonitor("test", logging.NewNoopLogger())

	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx))

	authz := authorization.NewAuthorizer(tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())

	return NewService(s, authz, views, password.NewHasher(bcrypt.MinCost), mockTracer, monitor, logger)
}

func TestService_ListEmployees(t *testing.T) {
	tests := []struct {
		name        string
		session     *types.Session
		setupMocks  func(*MockStorageInterface, *MockViewCacheInterface)
		expectedErr error
	}{
		{
			name:    "admin",
			session: admin,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				v.EXPECT().Get(gomock.Any(), "tenant-1", cache.ViewEmployees, "list", gomock.Any()).Return(false)
				s.EXPECT().ListUsers(gomock.Any(), "tenant-1").Return([]*types.User{{ID: "user-1"}}, nil)
				v.EXPECT().Set(gomock.Any(), "tenant-1", cache.ViewEmployees, "list", gomock.Any())
			},
		},
		{
			name:        "secretary",
			session:     secretary,
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockViews)

			svc := newTestService(ctrl, mockStorage, mockViews, logging.NewNoopLogger(), "employees.Service.ListEmployees")

			if _, err := svc.ListEmployees(context.Background(), tt.session); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_CreateEmployee(t *testing.T) {
	valid := &CreateEmployeeRequest{Name: "Giulia", Email: " Giulia@Example.com ", Role: "SECRETARY", Password: "password123"}

	tests := []struct {
		name        string
		session     *types.Session
		request     *CreateEmployeeRequest
		setupMocks  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:    "created active and unverified",
			session: admin,
			request: valid,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().EmailExists(gomock.Any(), "giulia@example.com").Return(false, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.CompanyID != "tenant-1" || !u.Active || u.EmailVerified {
							t.Errorf("unexpected user %+v", u)
						}
						if u.PasswordHash == "" || u.PasswordHash == "password123" {
							t.Errorf("password not hashed")
						}
						created := *u
						created.ID = employeeID
						return &created, nil
					},
				)
				sec.EXPECT().AccountCreated(employeeID, "tenant-1")
				v.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewEmployees, cache.ViewDashboard)
			},
		},
		{
			name:    "email taken",
			session: admin,
			request: valid,
			setupMocks: func(s *MockStorageInterface, _ *MockViewCacheInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().EmailExists(gomock.Any(), "giulia@example.com").Return(true, nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name:    "email taken concurrently",
			session: admin,
			request: valid,
			setupMocks: func(s *MockStorageInterface, _ *MockViewCacheInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().EmailExists(gomock.Any(), "giulia@example.com").Return(false, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name:        "multibyte password over 72 bytes",
			session:     admin,
			request:     &CreateEmployeeRequest{Name: "Giulia", Email: "giulia@example.com", Role: "SECRETARY", Password: strings.Repeat("é", 40)},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name:        "unknown role",
			session:     admin,
			request:     &CreateEmployeeRequest{Name: "Giulia", Email: "giulia@example.com", Role: "OWNER", Password: "password123"},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name:        "short password",
			session:     admin,
			request:     &CreateEmployeeRequest{Name: "Giulia", Email: "giulia@example.com", Role: "ADMIN", Password: "short"},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name:        "unverified admin",
			session:     unverifiedAdmin,
			request:     valid,
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			tt.setupMocks(mockStorage, mockViews, mockSecurity)

			svc := newTestService(ctrl, mockStorage, mockViews, mockLogger, "employees.Service.CreateEmployee")

			if _, err := svc.CreateEmployee(context.Background(), tt.session, tt.request); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateEmployee(t *testing.T) {
	tests := []struct {
		name         string
		request      *UpdateEmployeeRequest
		withPassword bool
	}{
		{name: "keeps password", request: &UpdateEmployeeRequest{Name: "Giulia", Role: "ADMIN"}},
		{name: "new password", request: &UpdateEmployeeRequest{Name: "Giulia", Role: "ADMIN", Password: "another-secret"}, withPassword: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			mockStorage.EXPECT().UpdateUser(gomock.Any(), "tenant-1", employeeID, gomock.Any()).DoAndReturn(
				func(_ context.Context, _, id string, upd types.UserUpdate) (*types.User, error) {
					if upd.Role == nil || *upd.Role != types.RoleAdmin {
						t.Errorf("expected role ADMIN, got %v", upd.Role)
					}
					if (upd.PasswordHash != nil) != tt.withPassword {
						t.Errorf("unexpected password change %v", upd.PasswordHash != nil)
					}
					return &types.User{ID: id, Role: *upd.Role}, nil
				},
			)
			mockViews.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewEmployees, cache.ViewDashboard)

			svc := newTestService(ctrl, mockStorage, mockViews, logging.NewNoopLogger(), "employees.Service.UpdateEmployee")

			if _, err := svc.UpdateEmployee(context.Background(), admin, employeeID, tt.request); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ToggleEmployeeStatus(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		setupMocks  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name: "deactivates",
			id:   employeeID,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface, sec *MockSecurityLoggerInterface) {
				s.EXPECT().ToggleUserActive(gomock.Any(), "tenant-1", employeeID).Return(&types.User{ID: employeeID, Active: false}, nil)
				sec.EXPECT().AccountStatusChanged("user-1", employeeID, false)
				v.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewEmployees, cache.ViewDashboard)
			},
		},
		{
			name:        "self",
			id:          "user-1",
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface, *MockSecurityLoggerInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name: "other company",
			id:   employeeID,
			setupMocks: func(s *MockStorageInterface, _ *MockViewCacheInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().ToggleUserActive(gomock.Any(), "tenant-1", employeeID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			tt.setupMocks(mockStorage, mockViews, mockSecurity)

			svc := newTestService(ctrl, mockStorage, mockViews, mockLogger, "employees.Service.ToggleEmployeeStatus")

			if _, err := svc.ToggleEmployeeStatus(context.Background(), admin, tt.id); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
