// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface records security relevant events on a dedicated channel.
type SecurityLoggerInterface interface {
	AuthnFailure(subject, reason string)
	AuthzFailure(subject, resource string)
	AccountCreated(subject, tenantID string)
	AccountStatusChanged(actor, subject string, active bool)
	SystemStartup()
	SystemShutdown()
}
