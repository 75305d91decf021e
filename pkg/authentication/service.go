// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/ratelimit"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

const loginKeyPrefix = "login:"

// LoginResult is a freshly issued session.
type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Session   *types.Session `json:"session"`
}

type Service struct {
	storage StorageInterface
	limiter ratelimit.LimiterInterface
	hasher  password.HasherInterface
	tokens  TokenIssuerInterface

	// compared against when the email is unknown so both paths cost one bcrypt round
	dummyHash string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	email = types.NormalizeEmail(email)
	if email == "" || plain == "" {
		return nil, types.ErrInvalidCredentials
	}

	res, err := s.limiter.Consume(ctx, loginKeyPrefix+email)
	switch {
	case err != nil:
		s.logger.Errorf("login rate limiter unavailable, allowing attempt: %v", err)
	case !res.Allowed:
		s.logger.Security().AuthnFailure(email, "rate_limited")
		return nil, &types.RateLimitError{RetryAfter: res.RetryAfter}
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		_, _ = s.hasher.Compare(s.dummyHash, plain)
		s.logger.Security().AuthnFailure(email, "unknown_email")
		return nil, types.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load principal: %w", err)
	}

	if !user.Active {
		s.logger.Security().AuthnFailure(user.ID, "account_disabled")
		return nil, types.ErrAccountDisabled
	}

	ok, err := s.hasher.Compare(user.PasswordHash, plain)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Security().AuthnFailure(user.ID, "bad_password")
		return nil, types.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, loginKeyPrefix+email); err != nil {
		s.logger.Errorf("failed to reset login rate limit: %v", err)
	}

	session := sessionFromUser(user)

	token, expires, err := s.tokens.IssueToken(ctx, session)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expires, Session: session}, nil
}

func (s *Service) ResolveSession(ctx context.Context, claims *Claims) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.ResolveSession")
	defer span.End()

	if claims == nil || claims.Subject == "" || claims.TenantID == "" {
		return nil, types.ErrUnauthorized
	}

	user, err := s.storage.GetUserByID(ctx, claims.TenantID, claims.Subject)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthnFailure(claims.Subject, "unknown_principal")
		return nil, types.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	if !user.Active {
		s.logger.Security().AuthnFailure(user.ID, "account_disabled")
		return nil, types.ErrUnauthorized
	}

	return sessionFromUser(user), nil
}

func sessionFromUser(u *types.User) *types.Session {
	return &types.Session{
		PrincipalID:   u.ID,
		TenantID:      u.CompanyID,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
	}
}

func NewService(
	storage StorageInterface,
	limiter ratelimit.LimiterInterface,
	hasher password.HasherInterface,
	tokens TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.storage = storage
	s.limiter = limiter
	s.hasher = hasher
	s.tokens = tokens

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	dummy, err := hasher.Hash("gestia-timing-equalizer")
	if err != nil {
		logger.Errorf("failed to prepare dummy password hash: %v", err)
	}
	s.dummyHash = dummy

	return s
}
