// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventAuthnFailure         = "authn_login_fail"
	eventAuthzFailure         = "authz_fail"
	eventAccountCreated       = "user_created"
	eventAccountStatusChanged = "user_updated"
	eventSystemStartup        = "sys_startup"
	eventSystemShutdown       = "sys_shutdown"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits events tagged with type=security so they can be routed separately.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", eventAuthnFailure+":"+subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn("authorization failure",
		zap.String("event", eventAuthzFailure+":"+subject+","+resource),
	)
}

func (s *SecurityLogger) AccountCreated(subject, tenantID string) {
	s.l.Info("account created",
		zap.String("event", eventAccountCreated+":"+subject),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) AccountStatusChanged(actor, subject string, active bool) {
	s.l.Info("account status changed",
		zap.String("event", eventAccountStatusChanged+":"+actor+","+subject),
		zap.Bool("active", active),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", eventSystemStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", eventSystemShutdown))
}

func newSecurityLogger(base *zap.Logger) *SecurityLogger {
	return &SecurityLogger{
		l: base.With(zap.String("type", "security")),
	}
}
