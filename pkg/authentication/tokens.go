// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
	"github.com/Miky-dev/GestIA/internal/tracing"
	"github.com/Miky-dev/GestIA/internal/types"
)

const (
	tokenIssuer     = "gestia"
	minSecretLength = 32

	claimTenant        = "tid"
	claimRole          = "role"
	claimEmailVerified = "email_verified"
)

// Claims is the content of a verified session token.
type Claims struct {
	Subject       string
	TenantID      string
	Role          types.Role
	EmailVerified bool
	ExpiresAt     time.Time
}

// JWTTokens issues and verifies HS256 session tokens.
type JWTTokens struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var (
	_ TokenIssuerInterface   = (*JWTTokens)(nil)
	_ TokenVerifierInterface = (*JWTTokens)(nil)
)

func (j *JWTTokens) IssueToken(ctx context.Context, session *types.Session) (string, time.Time, error) {
	_, span := j.tracer.Start(ctx, "authentication.JWTTokens.IssueToken")
	defer span.End()

	now := j.now()
	expires := now.Add(j.maxAge)

	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(session.PrincipalID).
		IssuedAt(now).
		Expiration(expires).
		Claim(claimTenant, session.TenantID).
		Claim(claimRole, string(session.Role)).
		Claim(claimEmailVerified, session.EmailVerified).
		Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256(), j.key))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), expires, nil
}

func (j *JWTTokens) VerifyToken(ctx context.Context, rawToken string) (*Claims, error) {
	_, span := j.tracer.Start(ctx, "authentication.JWTTokens.VerifyToken")
	defer span.End()

	tok, err := jwt.Parse(
		[]byte(rawToken),
		jwt.WithKey(jwa.HS256(), j.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithClock(jwt.ClockFunc(j.now)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	claims := new(Claims)

	subject, ok := tok.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf("session token without subject")
	}
	claims.Subject = subject

	if exp, ok := tok.Expiration(); ok {
		claims.ExpiresAt = exp
	}

	var role string
	if err := tok.Get(claimTenant, &claims.TenantID); err != nil || claims.TenantID == "" {
		return nil, fmt.Errorf("session token without tenant")
	}
	if err := tok.Get(claimRole, &role); err != nil {
		return nil, fmt.Errorf("session token without role")
	}
	claims.Role = types.Role(role)

	// absent means unverified
	_ = tok.Get(claimEmailVerified, &claims.EmailVerified)

	return claims, nil
}

// NewJWTTokens builds the session token codec. The secret must be at least
// 32 bytes long.
func NewJWTTokens(
	secret string,
	maxAge time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*JWTTokens, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretLength)
	}
	if maxAge <= 0 {
		return nil, fmt.Errorf("session max age must be positive")
	}

	j := new(JWTTokens)
	j.key = []byte(secret)
	j.maxAge = maxAge
	j.now = time.Now

	j.tracer = tracer
	j.monitor = monitor
	j.logger = logger

	return j, nil
}
