// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package calendar

import (
	"strings"
	"time"

	"github.com/Miky-dev/GestIA/internal/types"
)

// AppointmentRequest is the create and update payload.
type AppointmentRequest struct {
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	UserID      *string   `json:"user_id" validate:"omitempty,uuid"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	ServiceType string    `json:"service_type" validate:"required,min=2,max=200"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=SCHEDULED COMPLETED CANCELLED NO_SHOW"`
}

// RescheduleRequest moves an appointment, as done by dragging it on the calendar.
type RescheduleRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// normalize clears an empty user_id so it means "no employee" instead of
// failing the uuid rule.
func (r *AppointmentRequest) normalize() {
	if r.UserID != nil && *r.UserID == "" {
		r.UserID = nil
	}
}

func (r *AppointmentRequest) toAppointment() *types.Appointment {
	status := types.AppointmentStatus(r.Status)
	if status == "" {
		status = types.AppointmentScheduled
	}

	return &types.Appointment{
		CustomerID:  r.CustomerID,
		UserID:      r.UserID,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		ServiceType: strings.TrimSpace(r.ServiceType),
		Price:       r.Price,
		Status:      status,
	}
}
