// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Miky-dev/GestIA/internal/types"
)

var companyColumns = []string{
	"id", "name", "subscription_plan", "subscription_status",
	"vat_number", "phone_number", "industry", "created_at", "updated_at",
}

func scanCompany(row rowScanner) (*types.Company, error) {
	var c types.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.SubscriptionPlan, &c.SubscriptionStatus,
		&c.VATNumber, &c.PhoneNumber, &c.Industry, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created, err := scanCompany(
		s.db.Statement(ctx).
			Insert("companies").
			Columns("id", "name", "subscription_plan", "subscription_status", "vat_number", "phone_number", "industry").
			Values(id, c.Name, c.SubscriptionPlan, c.SubscriptionStatus, c.VATNumber, c.PhoneNumber, c.Industry).
			Suffix("RETURNING " + columnList(companyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "insert company")
	}

	return created, nil
}

func (s *Storage) GetCompany(ctx context.Context, tenantID string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompany")
	defer span.End()

	c, err := scanCompany(
		s.db.Statement(ctx).
			Select(companyColumns...).
			From("companies").
			Where(sq.Eq{"id": tenantID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "get company")
	}

	return c, nil
}

// UpdateCompany rewrites the editable profile fields. Subscription fields are not touched.
func (s *Storage) UpdateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompany")
	defer span.End()

	updated, err := scanCompany(
		s.db.Statement(ctx).
			Update("companies").
			Set("name", c.Name).
			Set("vat_number", c.VATNumber).
			Set("phone_number", c.PhoneNumber).
			Set("industry", c.Industry).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": c.ID}).
			Suffix("RETURNING " + columnList(companyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, translate(err, "update company")
	}

	return updated, nil
}
