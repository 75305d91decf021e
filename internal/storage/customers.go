// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/types"
)

var customerColumns = []string{
	"id", "company_id", "first_name", "last_name", "phone_e164", "email",
	"internal_notes", "birth_date", "gender", "fiscal_code", "vat_number",
	"created_at", "updated_at",
}

func scanCustomer(row rowScanner) (*types.Customer, error) {
	var c types.Customer
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.FirstName, &c.LastName, &c.PhoneE164, &c.Email,
		&c.InternalNotes, &c.BirthDate, &c.Gender, &c.FiscalCode, &c.VATNumber,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) ListCustomers(ctx context.Context, tenantID string, offset, limit uint64) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"company_id": tenantID}).
		OrderBy("created_at DESC", "id").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, translate(err, "list customers")
	}
	defer rows.Close()

	customers := make([]*types.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, translate(err, "scan customer")
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err, "iterate customers")
	}

	return customers, nil
}

func (s *Storage) CountCustomers(ctx context.Context, tenantID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountCustomers")
	defer span.End()

	return s.count(ctx,
		s.db.Statement(ctx).
			Select("count(*)").
			From("customers").
			Where(sq.Eq{"company_id": tenantID}),
		"count customers",
	)
}

func (s *Storage) GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomer")
	defer span.End()

	c, err := scanCustomer(
		s.db.Statement(ctx).
			Select(customerColumns...).
			From("customers").
			Where(sq.Eq{"id": id, "company_id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get customer")
	}

	return c, nil
}

// CreateCustomer stamps the record with tenantID, ignoring any company on c.
func (s *Storage) CreateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanCustomer(
		s.db.Statement(ctx).
			Insert("customers").
			Columns(
				"id", "company_id", "first_name", "last_name", "phone_e164", "email",
				"internal_notes", "birth_date", "gender", "fiscal_code", "vat_number",
			).
			Values(
				id, tenantID, c.FirstName, c.LastName, c.PhoneE164, c.Email,
				c.InternalNotes, c.BirthDate, c.Gender, c.FiscalCode, c.VATNumber,
			).
			Suffix("RETURNING " + columnList(customerColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert customer")
	}

	return created, nil
}

func (s *Storage) UpdateCustomer(ctx context.Context, tenantID string, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCustomer")
	defer span.End()

	updated, err := scanCustomer(
		s.db.Statement(ctx).
			Update("customers").
			Set("first_name", c.FirstName).
			Set("last_name", c.LastName).
			Set("phone_e164", c.PhoneE164).
			Set("email", c.Email).
			Set("internal_notes", c.InternalNotes).
			Set("birth_date", c.BirthDate).
			Set("gender", c.Gender).
			Set("fiscal_code", c.FiscalCode).
			Set("vat_number", c.VATNumber).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": c.ID, "company_id": tenantID}).
			Suffix("RETURNING " + columnList(customerColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update customer")
	}

	return updated, nil
}

// DeleteCustomer removes the customer; appointments, conversations and
// messages go with it through ON DELETE CASCADE.
func (s *Storage) DeleteCustomer(ctx context.Context, tenantID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCustomer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("customers").
		Where(sq.Eq{"id": id, "company_id": tenantID}).
		ExecContext(ctx)

	return affected(res, err, "delete customer")
}
