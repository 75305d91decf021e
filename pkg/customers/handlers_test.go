// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package customers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/Miky-dev/GestIA/internal/http/types"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

const customerID = "0190a5b2-7c3e-7d1a-8f00-0123456789ab"

func newTestRouter(svc ServiceInterface, session *types.Session) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), session)))
		})
	})
	NewAPI(svc, logging.NewNoopLogger()).RegisterEndpoints(router)
	return router
}

func TestAPI_Customers(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list with paging meta",
			method: http.MethodGet,
			path:   "/customers?page=2&size=10",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCustomers(gomock.Any(), secretary, int64(2), int64(10)).Return(&Page{Customers: []*types.Customer{}, Page: 2, Size: 10, Total: 11}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list with bad paging",
			method:         http.MethodGet,
			path:           "/customers?page=two",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "create ignores company in payload",
			method: http.MethodPost,
			path:   "/customers",
			body:   `{"first_name":"Mario","last_name":"Bianchi","phone":"3331234567","company_id":"tenant-2"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateCustomer(gomock.Any(), secretary, &CustomerRequest{FirstName: "Mario", LastName: "Bianchi", Phone: "3331234567"}).
					Return(&types.Customer{ID: customerID, CompanyID: "tenant-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed id",
			method:         http.MethodGet,
			path:           "/customers/42",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/customers/" + customerID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetCustomer(gomock.Any(), secretary, customerID).Return(&types.Customer{ID: customerID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update conflict",
			method: http.MethodPut,
			path:   "/customers/" + customerID,
			body:   `{"first_name":"Mario","last_name":"Bianchi","phone":"3331234567"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCustomer(gomock.Any(), secretary, customerID, gomock.Any()).Return(nil, &types.ConflictError{Message: "duplicate phone"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/customers/" + customerID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteCustomer(gomock.Any(), secretary, customerID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			path:   "/customers/" + customerID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteCustomer(gomock.Any(), secretary, customerID).Return(types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			rec := httptest.NewRecorder()
			newTestRouter(mockService, secretary).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if tt.name == "list with paging meta" {
				var resp httptypes.Response
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Meta == nil || resp.Meta.Total != 11 || resp.Meta.Page != 2 {
					t.Errorf("unexpected meta %+v", resp.Meta)
				}
			}
		})
	}
}
