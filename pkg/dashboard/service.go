// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Miky-dev/GestIA/internal/authorization"
	"github.com/Miky-dev/GestIA/internal/cache"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

const summaryKey = "summary"

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	views   cache.ViewCacheInterface

	location *time.Location
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// Summary returns the counters shown on the home page. The five counts run
// concurrently on separate pool connections.
func (s *Service) Summary(ctx context.Context, session *types.Session) (*types.DashboardSummary, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Summary")
	defer span.End()

	tenantID, err := s.authz.Authorize(ctx, session, authorization.DASHBOARD_READ)
	if err != nil {
		return nil, err
	}

	summary := new(types.DashboardSummary)
	if s.views.Get(ctx, tenantID, cache.ViewDashboard, summaryKey, summary) {
		return summary, nil
	}

	start, end := s.today()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.Customers, err = s.storage.CountCustomers(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		summary.AppointmentsToday, err = s.storage.CountAppointments(gctx, tenantID, start, end)
		return err
	})
	g.Go(func() (err error) {
		summary.OpenConversations, err = s.storage.CountConversations(gctx, tenantID, types.ConversationOpen)
		return err
	})
	g.Go(func() (err error) {
		summary.PendingConversations, err = s.storage.CountConversations(gctx, tenantID, types.ConversationPending)
		return err
	})
	g.Go(func() (err error) {
		summary.ActiveEmployees, err = s.storage.CountActiveUsers(gctx, tenantID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.views.Set(ctx, tenantID, cache.ViewDashboard, summaryKey, summary)

	return summary, nil
}

// today is the current calendar day in the business time zone.
func (s *Service) today() (time.Time, time.Time) {
	now := s.now().In(s.location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	return start, start.AddDate(0, 0, 1)
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	views cache.ViewCacheInterface,
	location *time.Location,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.views = views

	s.location = location
	if s.location == nil {
		s.location = time.UTC
	}
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
