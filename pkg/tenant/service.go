// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"strings"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) GetCompany(ctx context.Context, session *types.Session) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetCompany")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.COMPANY_READ)
	if err != nil {
		return nil, err
	}

	company, err := s.storage.GetCompany(ctx, tenantID)
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	return company, nil
}

// UpdateCompany rewrites the profile of the caller's own company; the id in
// the update always comes from the session.
func (s *Service) UpdateCompany(ctx context.Context, session *types.Session, req *UpdateCompanyRequest) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateCompany")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.COMPANY_WRITE)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	company, err := s.storage.UpdateCompany(ctx, &types.Company{
		ID:          tenantID,
		Name:        strings.TrimSpace(req.Name),
		VATNumber:   strings.TrimSpace(req.VATNumber),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Industry:    strings.TrimSpace(req.Industry),
	})
	if err != nil {
		return nil, storage.DomainError(err, "")
	}

	s.logger.Infof("company %s profile updated by %s", tenantID, session.PrincipalID)

	return company, nil
}
