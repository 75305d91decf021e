// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer is the tenant guard. It holds no state besides the policy.
type Authorizer struct {
	policy map[Action]Rule

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) RequireTenant(session *types.Session) (string, error) {
	if session == nil || session.TenantID == "" || session.PrincipalID == "" {
		return "", types.ErrUnauthorized
	}
	return session.TenantID, nil
}

func (a *Authorizer) RequireRole(session *types.Session, role types.Role) error {
	if _, err := a.RequireTenant(session); err != nil {
		return err
	}
	if session.Role != role {
		return types.ErrUnauthorized
	}
	return nil
}

func (a *Authorizer) RequireVerifiedEmail(session *types.Session) error {
	if _, err := a.RequireTenant(session); err != nil {
		return err
	}
	if !session.EmailVerified {
		return types.ErrEmailNotVerified
	}
	return nil
}

func (a *Authorizer) Authorize(ctx context.Context, session *types.Session, action Action) (string, error) {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	tenantID, err := a.RequireTenant(session)
	if err != nil {
		a.logger.Security().AuthzFailure("anonymous", string(action))
		return "", err
	}

	rule, ok := a.policy[action]
	if !ok {
		a.logger.Security().AuthzFailure(session.PrincipalID, string(action))
		return "", fmt.Errorf("no rule for %s: %w", action, types.ErrUnauthorized)
	}

	if !slices.Contains(rule.Roles, session.Role) {
		a.logger.Security().AuthzFailure(session.PrincipalID, string(action))
		return "", types.ErrUnauthorized
	}

	if rule.VerifiedEmail {
		if err := a.RequireVerifiedEmail(session); err != nil {
			a.logger.Security().AuthzFailure(session.PrincipalID, string(action))
			return "", err
		}
	}

	return tenantID, nil
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.policy = Policy
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
