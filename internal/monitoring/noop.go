// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"github.com/Miky-dev/GestIA/internal/logging"
)

type NoopMonitor struct {
	service string

	logger logging.LoggerInterface
}

func (m *NoopMonitor) GetService() string {
	return m.service
}

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}

func NewNoopMonitor(service string, logger logging.LoggerInterface) *NoopMonitor {
	return &NoopMonitor{
		service: service,
		logger:  logger,
	}
}
