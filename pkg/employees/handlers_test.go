// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package employees

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/pkg/authentication"
)

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

func TestAPI_Employees(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/employees",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListEmployees(gomock.Any(), admin).Return([]*types.User{{ID: employeeID, PasswordHash: "$2a$secret"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list as secretary",
			method: http.MethodGet,
			path:   "/employees",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListEmployees(gomock.Any(), admin).Return(nil, types.ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/employees",
			body:   `{"name":"Giulia","email":"giulia@example.com","role":"SECRETARY","password":"password123"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateEmployee(gomock.Any(), admin, &CreateEmployeeRequest{Name: "Giulia", Email: "giulia@example.com", Role: "SECRETARY", Password: "password123"}).
					Return(&types.User{ID: employeeID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "create duplicate",
			method: http.MethodPost,
			path:   "/employees",
			body:   `{"name":"Giulia","email":"giulia@example.com","role":"SECRETARY","password":"password123"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateEmployee(gomock.Any(), admin, gomock.Any()).Return(nil, &types.ConflictError{Code: types.CodeEmailTaken, Message: "taken"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "update",
			method: http.MethodPut,
			path:   "/employees/" + employeeID,
			body:   `{"name":"Giulia","role":"ADMIN"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateEmployee(gomock.Any(), admin, employeeID, &UpdateEmployeeRequest{Name: "Giulia", Role: "ADMIN"}).Return(&types.User{ID: employeeID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "toggle self",
			method: http.MethodPost,
			path:   "/employees/" + employeeID + "/toggle-status",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ToggleEmployeeStatus(gomock.Any(), admin, employeeID).Return(nil, types.NewValidationError("id", "self"))
			},
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
			newTestRouter(mockService, admin).ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}

			if strings.Contains(rec.Body.String(), "$2a$") {
				t.Error("password hash leaked in response")
			}
		})
	}
}

func TestAPI_ToggleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ToggleEmployeeStatus(gomock.Any(), admin, employeeID).Return(&types.User{ID: employeeID, Active: true}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(mockService, admin).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/employees/"+employeeID+"/toggle-status", nil))

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "employee activated" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
