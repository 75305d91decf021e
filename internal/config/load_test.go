// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		dotenv      string
		expectedErr bool
		validate    func(*testing.T, *EnvSpec)
	}{
		{
			name:        "missing required values",
			env:         map[string]string{},
			expectedErr: true,
		},
		{
			name: "defaults applied",
			env: map[string]string{
				"DSN":            "postgres://localhost/gestia",
				"SESSION_SECRET": "secret",
			},
			validate: func(t *testing.T, s *EnvSpec) {
				if s.SessionMaxAge != 720*time.Hour {
					t.Errorf("expected 30 day session, got %v", s.SessionMaxAge)
				}
				if s.LoginRatePoints != 5 || s.LoginRateWindow != 15*time.Minute {
					t.Errorf("unexpected login limiter defaults %d/%v", s.LoginRatePoints, s.LoginRateWindow)
				}
				if s.VerificationResendCooldown != 2*time.Minute {
					t.Errorf("unexpected resend cooldown %v", s.VerificationResendCooldown)
				}
			},
		},
		{
			name: "dotenv file fills missing values",
			env:  map[string]string{},
			dotenv: "DSN=postgres://localhost/fromfile\n" +
				"SESSION_SECRET=fromfile\n" +
				"PORT=9090\n",
			validate: func(t *testing.T, s *EnvSpec) {
				if s.DSN != "postgres://localhost/fromfile" {
					t.Errorf("expected DSN from file, got %s", s.DSN)
				}
				if s.Port != 9090 {
					t.Errorf("expected port 9090, got %d", s.Port)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DSN", "SESSION_SECRET", "PORT"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			file := filepath.Join(t.TempDir(), ".env")
			if tt.dotenv != "" {
				if err := os.WriteFile(file, []byte(tt.dotenv), 0o600); err != nil {
					t.Fatalf("failed to write dotenv: %v", err)
				}
			}

			specs, err := Load(file)

			if tt.expectedErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.validate(t, specs)
		})
	}
}
