// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(-1) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(0) {
		t.Errorf("expected info level to be disabled")
	}
	if !l.Desugar().Core().Enabled(2) {
		t.Errorf("expected error level to be enabled")
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	l.Security().AuthzFailure("user", "resource")
	l.Security().AuthnFailure("user", "reason")
	l.Security().SystemStartup()
	l.Security().SystemShutdown()
}
