// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/Miky-dev/GestIA/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	m := &Monitor{service: "gestia", logger: logging.NewNoopLogger()}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET /"}, 0.1); err == nil {
		t.Errorf("expected error before histograms are registered")
	}

	m.registerHistograms()
	m.registerGauges()

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET /", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := m.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if m.GetService() != "gestia" {
		t.Errorf("expected service gestia, got %s", m.GetService())
	}
}
