// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.labels(tags, "route", "status")).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(m.labels(tags, "component")).Set(value)

	return nil
}

func (m *Monitor) labels(tags map[string]string, keys ...string) prometheus.Labels {
	l := prometheus.Labels{"service": m.service}
	for _, k := range keys {
		l[k] = tags[k]
	}
	return l
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.responseTime = are.ExistingCollector.(*prometheus.HistogramVec)
			return
		}
		m.logger.Errorf("failed to register response time histogram: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	if err := prometheus.Register(m.dependencies); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.dependencies = are.ExistingCollector.(*prometheus.GaugeVec)
			return
		}
		m.logger.Errorf("failed to register dependency gauge: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()

	return m
}
