// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/ratelimit"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_ratelimit.go -source=../../internal/ratelimit/interfaces.go

func TestService_Login(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	activeUser := &types.User{
		ID:            "user-1",
		CompanyID:     "tenant-1",
		Email:         "anna@example.com",
		PasswordHash:  hash,
		Role:          types.RoleAdmin,
		Active:        true,
		EmailVerified: true,
	}
	disabledUser := &types.User{ID: "user-2", CompanyID: "tenant-1", PasswordHash: hash, Role: types.RoleSecretary}

	allowed := &ratelimit.Result{Allowed: true, Remaining: 4}
	errStorage := errors.New("connection reset")
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(*MockStorageInterface, *MockLimiterInterface, *MockTokenIssuerInterface)
		expectedErr error
	}{
		{
			name:     "success normalises email and resets limiter",
			email:    "  Anna@Example.com ",
			password: "s3cret-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), "login:anna@example.com").Return(allowed, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "anna@example.com").Return(activeUser, nil)
				l.EXPECT().Reset(gomock.Any(), "login:anna@example.com").Return(nil)
				ti.EXPECT().IssueToken(gomock.Any(), &types.Session{
					PrincipalID:   "user-1",
					TenantID:      "tenant-1",
					Role:          types.RoleAdmin,
					EmailVerified: true,
				}).Return("token", expires, nil)
			},
		},
		{
			name:     "rate limited",
			email:    "anna@example.com",
			password: "whatever",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), "login:anna@example.com").Return(&ratelimit.Result{Allowed: false, RetryAfter: 10 * time.Minute}, nil)
			},
			expectedErr: types.ErrRateLimited,
		},
		{
			name:     "limiter failure does not block",
			email:    "anna@example.com",
			password: "s3cret-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
				s.EXPECT().GetUserByEmail(gomock.Any(), "anna@example.com").Return(activeUser, nil)
				l.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				ti.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("token", expires, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "s3cret-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(allowed, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "anna@example.com",
			password: "wrong-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(allowed, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(activeUser, nil)
			},
			expectedErr: types.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			email:    "anna@example.com",
			password: "s3cret-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(allowed, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(disabledUser, nil)
			},
			expectedErr: types.ErrAccountDisabled,
		},
		{
			name:     "storage failure",
			email:    "anna@example.com",
			password: "s3cret-password",
			setupMocks: func(s *MockStorageInterface, l *MockLimiterInterface, ti *MockTokenIssuerInterface) {
				l.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(allowed, nil)
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errStorage)
			},
			expectedErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLimiter := NewMockLimiterInterface(ctrl)
			mockIssuer := NewMockTokenIssuerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			logger := logging.NewNoopLogger()

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.Login").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockStorage, mockLimiter, mockIssuer)

			svc := NewService(mockStorage, mockLimiter, hasher, mockIssuer, mockTracer, monitoring.NewNoopMonitor("test", logger), logger)

			result, err := svc.Login(ctx, tt.email, tt.password)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if result.Token != "token" || result.Session.TenantID != "tenant-1" {
					t.Errorf("unexpected result %+v", result)
				}
				return
			}

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}

			var rerr *types.RateLimitError
			if errors.As(err, &rerr) && rerr.RetryAfter <= 0 {
				t.Errorf("expected positive retry after, got %s", rerr.RetryAfter)
			}
		})
	}
}

func TestService_LoginSixthAttemptIsRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockIssuer := NewMockTokenIssuerInterface(ctrl)
	logger := logging.NewNoopLogger()
	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()

	limiter := ratelimit.NewMemoryLimiter(5, 15*time.Minute)

	mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "anna@example.com").Return(nil, storage.ErrNotFound).Times(5)
	mockStorage.EXPECT().GetUserByEmail(gomock.Any(), "bruno@example.com").Return(nil, storage.ErrNotFound).Times(1)

	svc := NewService(mockStorage, limiter, password.NewHasher(bcrypt.MinCost), mockIssuer, tracer, monitoring.NewNoopMonitor("test", logger), logger)

	for i := 0; i < 5; i++ {
		if _, err := svc.Login(context.Background(), "anna@example.com", "bad"); !errors.Is(err, types.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	if _, err := svc.Login(context.Background(), "anna@example.com", "bad"); !errors.Is(err, types.ErrRateLimited) {
		t.Errorf("expected sixth attempt rate limited, got %v", err)
	}

	if _, err := svc.Login(context.Background(), "bruno@example.com", "bad"); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Errorf("expected other email unaffected, got %v", err)
	}
}

func TestService_ResolveSession(t *testing.T) {
	tests := []struct {
		name        string
		claims      *Claims
		setupMocks  func(*MockStorageInterface)
		expected    *types.Session
		expectedErr error
	}{
		{
			name:        "missing claims",
			claims:      nil,
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:   "role and verification come from storage",
			claims: &Claims{Subject: "user-1", TenantID: "tenant-1", Role: types.RoleAdmin, EmailVerified: false},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "tenant-1", "user-1").Return(&types.User{
					ID: "user-1", CompanyID: "tenant-1", Role: types.RoleSecretary, Active: true, EmailVerified: true,
				}, nil)
			},
			expected: &types.Session{PrincipalID: "user-1", TenantID: "tenant-1", Role: types.RoleSecretary, EmailVerified: true},
		},
		{
			name:   "deactivated principal",
			claims: &Claims{Subject: "user-1", TenantID: "tenant-1"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "tenant-1", "user-1").Return(&types.User{ID: "user-1", CompanyID: "tenant-1"}, nil)
			},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name:   "principal gone",
			claims: &Claims{Subject: "user-1", TenantID: "tenant-1"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByID(gomock.Any(), "tenant-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			logger := logging.NewNoopLogger()

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Service.ResolveSession").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockStorage)

			svc := NewService(mockStorage, NewMockLimiterInterface(ctrl), password.NewHasher(bcrypt.MinCost), NewMockTokenIssuerInterface(ctrl), mockTracer, monitoring.NewNoopMonitor("test", logger), logger)

			session, err := svc.ResolveSession(ctx, tt.claims)

			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expected != nil && *session != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, session)
			}
		})
	}
}
