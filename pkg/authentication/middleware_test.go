// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

func TestMiddleware_Authenticate(t *testing.T) {
	claims := &Claims{Subject: "user-1", TenantID: "tenant-1", Role: types.RoleAdmin}
	session := &types.Session{PrincipalID: "user-1", TenantID: "tenant-1", Role: types.RoleAdmin}

	tests := []struct {
		name           string
		setupRequest   func(*http.Request)
		setupMocks     func(*MockTokenVerifierInterface, *MockServiceInterface)
		expectedStatus int
		expectSession  bool
	}{
		{
			name:           "no credentials",
			setupRequest:   func(*http.Request) {},
			setupMocks:     func(*MockTokenVerifierInterface, *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(claims, nil)
				s.EXPECT().ResolveSession(gomock.Any(), claims).Return(session, nil)
			},
			expectedStatus: http.StatusOK,
			expectSession:  true,
		},
		{
			name: "session cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "gestia_session", Value: "cookie-token"})
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "cookie-token").Return(claims, nil)
				s.EXPECT().ResolveSession(gomock.Any(), claims).Return(session, nil)
			},
			expectedStatus: http.StatusOK,
			expectSession:  true,
		},
		{
			name: "bearer wins over cookie",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
				r.AddCookie(&http.Cookie{Name: "gestia_session", Value: "cookie-token"})
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(claims, nil)
				s.EXPECT().ResolveSession(gomock.Any(), claims).Return(session, nil)
			},
			expectedStatus: http.StatusOK,
			expectSession:  true,
		},
		{
			name: "invalid token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer forged")
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "forged").Return(nil, errors.New("signature mismatch"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "deactivated principal",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(claims, nil)
				s.EXPECT().ResolveSession(gomock.Any(), claims).Return(nil, types.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "session store unavailable",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			setupMocks: func(v *MockTokenVerifierInterface, s *MockServiceInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(claims, nil)
				s.EXPECT().ResolveSession(gomock.Any(), claims).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockService := NewMockServiceInterface(ctrl)
			logger := logging.NewNoopLogger()
			tt.setupMocks(mockVerifier, mockService)

			mw := NewMiddleware(mockVerifier, mockService, "gestia_session", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			var got *types.Session
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/customers", nil)
			tt.setupRequest(req)
			rec := httptest.NewRecorder()

			mw.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectSession && (got == nil || got.TenantID != "tenant-1") {
				t.Errorf("expected session in context, got %+v", got)
			}
			if !tt.expectSession && got != nil {
				t.Errorf("handler must not run without a session")
			}
		})
	}
}

func TestMiddleware_getBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		found    bool
	}{
		{name: "missing", header: "", found: false},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", found: false},
		{name: "empty bearer", header: "Bearer ", found: false},
		{name: "valid", header: "Bearer abc.def.ghi", expected: "abc.def.ghi", found: true},
	}

	m := &Middleware{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}

			token, found := m.getBearerToken(h)
			if found != tt.found || token != tt.expected {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.expected, tt.found, token, found)
			}
		})
	}
}
