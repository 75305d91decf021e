// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
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

func TestAPI_Appointments(t *testing.T) {
	from := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "list range",
			method: http.MethodGet,
			path:   "/appointments?from=2026-03-02T00:00:00Z&to=2026-03-09T00:00:00Z",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListAppointments(gomock.Any(), secretary, from, to).Return([]*types.Appointment{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list without range",
			method:         http.MethodGet,
			path:           "/appointments",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "customer history",
			method: http.MethodGet,
			path:   "/customers/" + customerID + "/appointments",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListCustomerAppointments(gomock.Any(), secretary, customerID).Return([]*types.Appointment{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/appointments",
			body:   `{"customer_id":"` + customerID + `","start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z","service_type":"Haircut"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateAppointment(gomock.Any(), secretary, gomock.Any()).Return(&types.Appointment{ID: appointmentID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "reschedule",
			method: http.MethodPatch,
			path:   "/appointments/" + appointmentID + "/reschedule",
			body:   `{"start_time":"2026-03-02T11:00:00Z","end_time":"2026-03-02T12:00:00Z"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RescheduleAppointment(gomock.Any(), secretary, appointmentID, &RescheduleRequest{
					StartTime: time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC),
				}).Return(&types.Appointment{ID: appointmentID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update missing",
			method: http.MethodPut,
			path:   "/appointments/" + appointmentID,
			body:   `{"customer_id":"` + customerID + `","start_time":"2026-03-02T09:00:00Z","end_time":"2026-03-02T10:00:00Z","service_type":"Haircut"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateAppointment(gomock.Any(), secretary, appointmentID, gomock.Any()).Return(nil, types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/appointments/" + appointmentID,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteAppointment(gomock.Any(), secretary, appointmentID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
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
		})
	}
}
