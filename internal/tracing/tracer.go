// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Miky-dev/GestIA/internal/logging"
)

const serviceName = "gestia"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func (t *Tracer) init(cfg *Config) {
	exporter, err := t.exporter(cfg)
	if err != nil {
		t.logger.Errorf("unable to initialize tracing exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			jaeger.Jaeger{},
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	t.tracer = tp.Tracer(serviceName)
}

func (t *Tracer) exporter(cfg *Config) (sdktrace.SpanExporter, error) {
	ctx := context.Background()

	switch {
	case cfg.OtelGRPCEndpoint != "":
		return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint), otlptracegrpc.WithInsecure())
	case cfg.OtelHTTPEndpoint != "":
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint), otlptracehttp.WithInsecure())
	default:
		return stdouttrace.New()
	}
}

// NewTracer builds an exporting tracer, or a noop one when tracing is disabled.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return t
	}

	t.init(cfg)

	return t
}

func NewNoopTracer() *Tracer {
	return NewTracer(NewNoopConfig())
}
