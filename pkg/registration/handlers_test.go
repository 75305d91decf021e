// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

func withSession(session *types.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), session)))
		})
	}
}

func newTestRouter(svc ServiceInterface, session *types.Session) http.Handler {
	router := chi.NewRouter()
	NewAPI(svc, "https://app.gestia.test/", logging.NewNoopLogger()).RegisterEndpoints(router, withSession(session))
	return router
}

func TestAPI_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"company_name":"Salone Bella","admin_name":"Anna","email":"anna@example.com","password":"correct-horse","company_id":"someone-else"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), &RegisterRequest{
					CompanyName: "Salone Bella",
					AdminName:   "Anna",
					Email:       "anna@example.com",
					Password:    "correct-horse",
				}).Return(&Registration{Company: &types.Company{ID: "company-1"}, User: &types.User{ID: "user-1"}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "email taken",
			body: `{"company_name":"Salone Bella","admin_name":"Anna","email":"anna@example.com","password":"correct-horse"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, &types.ConflictError{Code: types.CodeEmailTaken, Message: "taken"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed",
			body:           `[`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			rec := httptest.NewRecorder()
			newTestRouter(mockService, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus == http.StatusConflict && !strings.Contains(rec.Body.String(), types.CodeEmailTaken) {
				t.Errorf("expected EMAIL_TAKEN code, got %s", rec.Body.String())
			}
		})
	}
}

func TestAPI_VerifyEmailLink(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		location string
	}{
		{name: "verified", err: nil, location: "https://app.gestia.test/login?verified=1"},
		{name: "invalid", err: types.ErrInvalidToken, location: "https://app.gestia.test/login?error=invalid"},
		{name: "expired", err: types.ErrExpiredToken, location: "https://app.gestia.test/login?error=expired"},
		{name: "already", err: types.ErrAlreadyVerified, location: "https://app.gestia.test/login?error=already"},
		{name: "server", err: errors.New("db down"), location: "https://app.gestia.test/login?error=server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().VerifyEmail(gomock.Any(), "0123456789abcdef").Return(tt.err)

			rec := httptest.NewRecorder()
			newTestRouter(mockService, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-email?token=0123456789abcdef", nil))

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("expected redirect, got %d", rec.Code)
			}
			if got := rec.Header().Get("Location"); got != tt.location {
				t.Errorf("expected location %q, got %q", tt.location, got)
			}
		})
	}
}

func TestAPI_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().VerifyEmail(gomock.Any(), "0123456789abcdef").Return(types.ErrExpiredToken)

	rec := httptest.NewRecorder()
	newTestRouter(mockService, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/verify-email", strings.NewReader(`{"token":"0123456789abcdef"}`)))

	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "EXPIRED_TOKEN") {
		t.Errorf("expected 400 EXPIRED_TOKEN, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_Resend(t *testing.T) {
	session := &types.Session{PrincipalID: "user-1", TenantID: "company-1", Role: types.RoleAdmin}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		retryAfter     string
	}{
		{name: "sent", expectedStatus: http.StatusAccepted},
		{name: "cooldown", err: &types.RateLimitError{RetryAfter: 75 * time.Second}, expectedStatus: http.StatusTooManyRequests, retryAfter: "75"},
		{name: "already verified", err: types.ErrAlreadyVerified, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockService.EXPECT().ResendVerification(gomock.Any(), session).Return(tt.err)

			rec := httptest.NewRecorder()
			newTestRouter(mockService, session).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/verify-email/resend", nil))

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if got := rec.Header().Get("Retry-After"); got != tt.retryAfter {
				t.Errorf("expected Retry-After %q, got %q", tt.retryAfter, got)
			}
		})
	}
}
