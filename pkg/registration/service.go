// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Miky-dev/GestIA/internal/db"
	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/mail"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/password"
	"github.com/Miky-dev/GestIA/internal/storage"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
	"github.com/Miky-dev/GestIA/internal/validation"
)

var errEmailTaken = &types.ConflictError{Code: types.CodeEmailTaken, Message: "an account with this email already exists"}

type Service struct {
	storage StorageInterface
	tx      db.TxRunnerInterface
	hasher  password.HasherInterface
	mailer  mail.SenderInterface
	config  Config

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

// Register creates a company together with its first ADMIN in one
// transaction, then mails the verification link. Delivery failures are
// logged and never undo the signup.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Registration, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Service.Register")
	defer span.End()

	if req == nil {
		return nil, types.NewValidationError("body", "is required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	email := types.NormalizeEmail(req.Email)

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	rawToken, tokenHash, err := newVerificationToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	expires := now.Add(s.config.TokenTTL)

	result := new(Registration)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.storage.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return errEmailTaken
		}

		company, err := s.storage.CreateCompany(ctx, &types.Company{
			Name:               strings.TrimSpace(req.CompanyName),
			SubscriptionPlan:   types.PlanStarter,
			SubscriptionStatus: types.SubscriptionTrial,
			VATNumber:          strings.TrimSpace(req.VATNumber),
			PhoneNumber:        strings.TrimSpace(req.PhoneNumber),
			Industry:           strings.TrimSpace(req.Industry),
		})
		if err != nil {
			return err
		}

		user, err := s.storage.CreateUser(ctx, &types.User{
			CompanyID:               company.ID,
			Name:                    strings.TrimSpace(req.AdminName),
			Email:                   email,
			PasswordHash:            hash,
			Role:                    types.RoleAdmin,
			Active:                  true,
			EmailVerified:           false,
			VerifyTokenHash:         &tokenHash,
			VerifyExpires:           &expires,
			LastVerificationEmailAt: &now,
		})
		if err != nil {
			return err
		}

		result.Company = company
		result.User = user
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, types.ErrConflict):
		return nil, err
	case errors.Is(err, storage.ErrDuplicateKey):
		// lost a concurrent signup race on users.email
		return nil, errEmailTaken
	default:
		return nil, fmt.Errorf("failed to register company: %w", err)
	}

	s.logger.Security().AccountCreated(result.User.ID, result.Company.ID)
	s.sendVerification(ctx, email, rawToken)

	return result, nil
}

// VerifyEmail consumes a one-time verification token.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) error {
	ctx, span := s.tracer.Start(ctx, "registration.Service.VerifyEmail")
	defer span.End()

	if len(rawToken) < minTokenLength {
		return types.ErrInvalidToken
	}

	user, err := s.storage.GetUserByVerifyTokenHash(ctx, hashToken(rawToken))
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrInvalidToken
	}
	if err != nil {
		return fmt.Errorf("failed to look up verification token: %w", err)
	}

	if user.EmailVerified {
		return types.ErrAlreadyVerified
	}

	if user.VerifyExpires == nil || user.VerifyExpires.Before(s.now()) {
		return types.ErrExpiredToken
	}

	err = s.storage.MarkEmailVerified(ctx, user.ID)
	if errors.Is(err, storage.ErrNotFound) {
		// consumed by a concurrent request
		return types.ErrAlreadyVerified
	}
	if err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}

	return nil
}

// ResendVerification issues a fresh token for the caller, at most once per
// cooldown window.
func (s *Service) ResendVerification(ctx context.Context, session *types.Session) error {
	ctx, span := s.tracer.Start(ctx, "registration.Service.ResendVerification")
	defer span.End()

	if session == nil || session.PrincipalID == "" || session.TenantID == "" {
		return types.ErrUnauthorized
	}

	user, err := s.storage.GetUserByID(ctx, session.TenantID, session.PrincipalID)
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrUnauthorized
	}
	if err != nil {
		return fmt.Errorf("failed to load principal: %w", err)
	}

	if user.EmailVerified {
		return types.ErrAlreadyVerified
	}

	now := s.now()

	if last := user.LastVerificationEmailAt; last != nil {
		if wait := last.Add(s.config.ResendCooldown).Sub(now); wait > 0 {
			return &types.RateLimitError{RetryAfter: wait}
		}
	}

	rawToken, tokenHash, err := newVerificationToken()
	if err != nil {
		return err
	}

	err = s.storage.SetVerificationToken(ctx, user.CompanyID, user.ID, tokenHash, now.Add(s.config.TokenTTL), now)
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrAlreadyVerified
	}
	if err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}

	s.sendVerification(ctx, user.Email, rawToken)

	return nil
}

func (s *Service) sendVerification(ctx context.Context, to, rawToken string) {
	msg, err := mail.NewVerificationMessage(to, s.config.AppURL, rawToken, s.config.TokenTTL)
	if err != nil {
		s.logger.Errorf("failed to render verification email: %v", err)
		return
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Errorf("failed to send verification email to %s: %v", to, fmt.Errorf("%w: %w", types.ErrTransientFailure, err))
	}
}

func NewService(
	storage StorageInterface,
	tx db.TxRunnerInterface,
	hasher password.HasherInterface,
	mailer mail.SenderInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.hasher = hasher
	s.mailer = mailer
	s.config = config
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
