// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

type TracingInterface interface {
	Start(context.Context, string, ...trace.SpanStartOption) (context.Context, trace.Span)
}
