// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/types"
)

var appointmentColumns = []string{
	"id", "company_id", "customer_id", "user_id", "start_time", "end_time",
	"service_type", "price::float8", "status", "created_at", "updated_at",
}

// appointments joined with the owning customer, as rendered by the calendar
var appointmentWithCustomerColumns = append(
	prefixed("a", appointmentColumns),
	"c.id", "c.first_name", "c.last_name", "c.phone_e164",
)

func scanAppointment(row rowScanner) (*types.Appointment, error) {
	var a types.Appointment
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.CustomerID, &a.UserID, &a.StartTime, &a.EndTime,
		&a.ServiceType, &a.Price, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAppointmentWithCustomer(row rowScanner) (*types.Appointment, error) {
	var (
		a types.Appointment
		c types.CustomerRef
	)
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.CustomerID, &a.UserID, &a.StartTime, &a.EndTime,
		&a.ServiceType, &a.Price, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneE164,
	)
	if err != nil {
		return nil, err
	}
	a.Customer = &c
	return &a, nil
}

func (s *Storage) listAppointments(ctx context.Context, where sq.Sqlizer, order, op string) ([]*types.Appointment, error) {
	rows, err := s.db.Statement(ctx).
		Select(appointmentWithCustomerColumns...).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id AND c.company_id = a.company_id").
		Where(where).
		OrderBy(order).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, op)
	}
	defer rows.Close()

	appointments := make([]*types.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointmentWithCustomer(rows)
		if err != nil {
			return nil, translate(err, "scan appointment")
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, op)
	}

	return appointments, nil
}

// ListAppointments returns the appointments fully contained in [from, to], earliest first.
func (s *Storage) ListAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAppointments")
	defer span.End()

	return s.listAppointments(ctx,
		sq.And{
			sq.Eq{"a.company_id": tenantID},
			sq.GtOrEq{"a.start_time": from},
			sq.LtOrEq{"a.end_time": to},
		},
		"a.start_time ASC",
		"list appointments",
	)
}

func (s *Storage) ListAppointmentsByCustomer(ctx context.Context, tenantID, customerID string) ([]*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAppointmentsByCustomer")
	defer span.End()

	return s.listAppointments(ctx,
		sq.Eq{"a.company_id": tenantID, "a.customer_id": customerID},
		"a.start_time DESC",
		"list customer appointments",
	)
}

// CountAppointments counts appointments starting in [from, to).
func (s *Storage) CountAppointments(ctx context.Context, tenantID string, from, to time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountAppointments")
	defer span.End()

	return s.count(ctx,
		s.db.Statement(ctx).
			Select("count(*)").
			From("appointments").
			Where(sq.And{
				sq.Eq{"company_id": tenantID},
				sq.GtOrEq{"start_time": from},
				sq.Lt{"start_time": to},
			}),
		"count appointments",
	)
}

// CreateAppointment relies on the composite foreign keys on (customer_id,
// company_id) and (user_id, company_id): a reference to another tenant's
// record fails with ErrForeignKeyViolation.
func (s *Storage) CreateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAppointment")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanAppointment(
		s.db.Statement(ctx).
			Insert("appointments").
			Columns(
				"id", "company_id", "customer_id", "user_id", "start_time", "end_time",
				"service_type", "price", "status",
			).
			Values(
				id, tenantID, a.CustomerID, a.UserID, a.StartTime, a.EndTime,
				a.ServiceType, a.Price, string(a.Status),
			).
			Suffix("RETURNING " + columnList(appointmentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert appointment")
	}

	return created, nil
}

func (s *Storage) UpdateAppointment(ctx context.Context, tenantID string, a *types.Appointment) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAppointment")
	defer span.End()

	updated, err := scanAppointment(
		s.db.Statement(ctx).
			Update("appointments").
			Set("customer_id", a.CustomerID).
			Set("user_id", a.UserID).
			Set("start_time", a.StartTime).
			Set("end_time", a.EndTime).
			Set("service_type", a.ServiceType).
			Set("price", a.Price).
			Set("status", string(a.Status)).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": a.ID, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(appointmentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update appointment")
	}

	return updated, nil
}

func (s *Storage) RescheduleAppointment(ctx context.Context, tenantID, id string, start, end time.Time) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RescheduleAppointment")
	defer span.End()

	updated, err := scanAppointment(
		s.db.Statement(ctx).
			Update("appointments").
			Set("start_time", start).
			Set("end_time", end).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(appointmentColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "reschedule appointment")
	}

	return updated, nil
}

func (s *Storage) DeleteAppointment(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAppointment")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("appointments").
		Where(sq.Eq{"id": id, "company_id": tenantID}).
		ExecContext(ctx)

	return affected(res, err, "delete appointment")
}
