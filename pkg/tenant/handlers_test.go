// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

func TestHandler_Company(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           string
		span           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			span:   "tenant.Handler.GetCompany",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetCompany(gomock.Any(), admin).Return(&types.Company{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update",
			method: http.MethodPut,
			body:   `{"name":"Salone Rossi","subscription_plan":"ENTERPRISE"}`,
			span:   "tenant.Handler.UpdateCompany",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCompany(gomock.Any(), admin, &UpdateCompanyRequest{Name: "Salone Rossi"}).Return(&types.Company{ID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update unverified",
			method: http.MethodPut,
			body:   `{"name":"Salone Rossi"}`,
			span:   "tenant.Handler.UpdateCompany",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCompany(gomock.Any(), admin, gomock.Any()).Return(nil, types.ErrEmailNotVerified)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   httptypes.CodeEmailNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			logger := logging.NewNoopLogger()
			tt.setupMocks(mockService)

			mockTracer.EXPECT().Start(gomock.Any(), tt.span).DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)

			router := chi.NewRouter()
			router.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), admin)))
				})
			})
			NewHandler(mockService, mockTracer, monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/company", strings.NewReader(tt.body)))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if tt.expectedCode != "" {
				var resp httptypes.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, resp.Code)
				}
			}
		})
	}
}
