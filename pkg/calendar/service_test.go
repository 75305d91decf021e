// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package calendar -destination ./mock_cache.go -source=../../internal/cache/interfaces.go

const (
	customerID    = "0190a5b2-7c3e-7d1a-8f00-0123456789ab"
	appointmentID = "0190a5b2-7c3e-7d1a-8f00-0123456789cd"
)

var (
	secretary = &types.Session{PrincipalID: "user-2", TenantID: "tenant-1", Role: types.RoleSecretary}

	monday = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
)

func newTestService(ctrl *gomock.Controller, s StorageInterface, views cache.ViewCacheInterface, spanName string) *Service {
	logger := logging.NewNoopLogger()
	monitor := monitoring.NewNoopMonitor("test", logger)

	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx))

	authz := authorization.NewAuthorizer(tracing.NewNoopTracer(), monitor, logger)

	return NewService(s, authz, views, mockTracer, monitor, logger)
}

func TestService_ListAppointments(t *testing.T) {
	weekEnd := monday.AddDate(0, 0, 7)

	tests := []struct {
		name        string
		from, to    time.Time
		setupMocks  func(*MockStorageInterface, *MockViewCacheInterface)
		expectedLen int
		expectedErr error
	}{
		{
			name: "loaded from storage and cached",
			from: monday,
			to:   weekEnd,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				v.EXPECT().Get(gomock.Any(), "tenant-1", cache.ViewCalendar, gomock.Any(), gomock.Any()).Return(false)
				s.EXPECT().ListAppointments(gomock.Any(), "tenant-1", monday, weekEnd).Return([]*types.Appointment{{ID: appointmentID}}, nil)
				v.EXPECT().Set(gomock.Any(), "tenant-1", cache.ViewCalendar, gomock.Any(), gomock.Any())
			},
			expectedLen: 1,
		},
		{
			name: "served from cache",
			from: monday,
			to:   weekEnd,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				v.EXPECT().Get(gomock.Any(), "tenant-1", cache.ViewCalendar, gomock.Any(), gomock.Any()).Return(true)
			},
		},
		{
			name:        "empty range",
			from:        monday,
			to:          monday,
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name:        "inverted range",
			from:        weekEnd,
			to:          monday,
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockViews)

			svc := newTestService(ctrl, mockStorage, mockViews, "calendar.Service.ListAppointments")

			appointments, err := svc.ListAppointments(context.Background(), secretary, tt.from, tt.to)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil && len(appointments) != tt.expectedLen {
				t.Errorf("expected %d appointments, got %d", tt.expectedLen, len(appointments))
			}
		})
	}
}

func TestService_ListCustomerAppointments(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "history of own customer",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", customerID).Return(&types.Customer{ID: customerID}, nil)
				s.EXPECT().ListAppointmentsByCustomer(gomock.Any(), "tenant-1", customerID).Return([]*types.Appointment{}, nil)
			},
		},
		{
			name: "customer of another company",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), "tenant-1", customerID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			svc := newTestService(ctrl, mockStorage, NewMockViewCacheInterface(ctrl), "calendar.Service.ListCustomerAppointments")

			if _, err := svc.ListCustomerAppointments(context.Background(), secretary, customerID); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_CreateAppointment(t *testing.T) {
	price := 35.0
	valid := &AppointmentRequest{
		CustomerID:  customerID,
		StartTime:   monday,
		EndTime:     monday.Add(time.Hour),
		ServiceType: "Haircut",
		Price:       &price,
	}

	tests := []struct {
		name        string
		request     *AppointmentRequest
		setupMocks  func(*MockStorageInterface, *MockViewCacheInterface)
		expectedErr error
	}{
		{
			name:    "defaults to scheduled",
			request: valid,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				s.EXPECT().CreateAppointment(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, a *types.Appointment) (*types.Appointment, error) {
						if a.Status != types.AppointmentScheduled {
							t.Errorf("expected status %s, got %s", types.AppointmentScheduled, a.Status)
						}
						if a.UserID != nil {
							t.Errorf("expected no employee, got %v", *a.UserID)
						}
						a.ID = appointmentID
						return a, nil
					},
				)
				v.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewCalendar, cache.ViewCustomers, cache.ViewDashboard)
			},
		},
		{
			name:    "customer not in the company",
			request: valid,
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				s.EXPECT().CreateAppointment(gomock.Any(), "tenant-1", gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "end before start",
			request: &AppointmentRequest{
				CustomerID:  customerID,
				StartTime:   monday,
				EndTime:     monday.Add(-time.Hour),
				ServiceType: "Haircut",
			},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name: "empty employee means none",
			request: &AppointmentRequest{
				CustomerID:  customerID,
				UserID:      new(string),
				StartTime:   monday,
				EndTime:     monday.Add(time.Hour),
				ServiceType: "Haircut",
			},
			setupMocks: func(s *MockStorageInterface, v *MockViewCacheInterface) {
				s.EXPECT().CreateAppointment(gomock.Any(), "tenant-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, a *types.Appointment) (*types.Appointment, error) {
						if a.UserID != nil {
							t.Errorf("expected no employee, got %q", *a.UserID)
						}
						return a, nil
					},
				)
				v.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewCalendar, cache.ViewCustomers, cache.ViewDashboard)
			},
		},
		{
			name: "malformed employee",
			request: &AppointmentRequest{
				CustomerID:  customerID,
				UserID:      func() *string { id := "not-a-uuid"; return &id }(),
				StartTime:   monday,
				EndTime:     monday.Add(time.Hour),
				ServiceType: "Haircut",
			},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name: "unknown status",
			request: &AppointmentRequest{
				CustomerID:  customerID,
				StartTime:   monday,
				EndTime:     monday.Add(time.Hour),
				ServiceType: "Haircut",
				Status:      "MAYBE",
			},
			setupMocks:  func(*MockStorageInterface, *MockViewCacheInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockViews := NewMockViewCacheInterface(ctrl)
			tt.setupMocks(mockStorage, mockViews)

			svc := newTestService(ctrl, mockStorage, mockViews, "calendar.Service.CreateAppointment")

			if _, err := svc.CreateAppointment(context.Background(), secretary, tt.request); !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_RescheduleAppointment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := monday.Add(2 * time.Hour)
	end := start.Add(30 * time.Minute)

	mockStorage := NewMockStorageInterface(ctrl)
	mockViews := NewMockViewCacheInterface(ctrl)
	mockStorage.EXPECT().RescheduleAppointment(gomock.Any(), "tenant-1", appointmentID, start, end).
		Return(&types.Appointment{ID: appointmentID, StartTime: start, EndTime: end}, nil)
	mockViews.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewCalendar, cache.ViewCustomers, cache.ViewDashboard)

	svc := newTestService(ctrl, mockStorage, mockViews, "calendar.Service.RescheduleAppointment")

	moved, err := svc.RescheduleAppointment(context.Background(), secretary, appointmentID, &RescheduleRequest{StartTime: start, EndTime: end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved.StartTime.Equal(start) {
		t.Errorf("expected start %v, got %v", start, moved.StartTime)
	}
}

func TestService_DeleteAppointmentTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockViews := NewMockViewCacheInterface(ctrl)
	gomock.InOrder(
		mockStorage.EXPECT().DeleteAppointment(gomock.Any(), "tenant-1", appointmentID).Return(nil),
		mockStorage.EXPECT().DeleteAppointment(gomock.Any(), "tenant-1", appointmentID).Return(storage.ErrNotFound),
	)
	mockViews.EXPECT().Invalidate(gomock.Any(), "tenant-1", cache.ViewCalendar, cache.ViewCustomers, cache.ViewDashboard).Times(1)

	logger := logging.NewNoopLogger()
	monitor := monitoring.NewNoopMonitor("test", logger)
	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "calendar.Service.DeleteAppointment").Return(ctx, trace.SpanFromContext(ctx)).Times(2)

	svc := NewService(mockStorage, authorization.NewAuthorizer(tracing.NewNoopTracer(), monitor, logger), mockViews, mockTracer, monitor, logger)

	if err := svc.DeleteAppointment(ctx, secretary, appointmentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.DeleteAppointment(ctx, secretary, appointmentID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected %v, got %v", types.ErrNotFound, err)
	}
}
