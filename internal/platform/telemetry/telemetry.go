// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package telemetry configures OpenTelemetry tracing and the catalog's metrics.

Spans are exported over OTLP/HTTP only when an endpoint is configured. Without
one, the global no-op providers stay installed and instrumentation costs
nothing. Metrics are recorded against the global meter provider.
*/
package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
)

// InstrumentationName names the tracer and meter of this module.
const InstrumentationName = "github.com/taibuivan/locallibrary"

// Options controls the exporter.
type Options struct {
	ServiceName string
	Endpoint    string
	Environment string
}

// Telemetry owns the tracer provider and the catalog's instruments.
type Telemetry struct {
	provider      *sdktrace.TracerProvider
	formsRejected metric.Int64Counter
}

// Setup installs the tracer provider and creates the instruments.
func Setup(ctx context.Context, options Options, logger *slog.Logger) (*Telemetry, error) {
	telemetry := &Telemetry{}

	counter, err := otel.Meter(InstrumentationName).Int64Counter(
		"library.forms.rejected",
		metric.WithDescription("Form submissions rejected by validation"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry: failed to create counter: %w", err)
	}
	telemetry.formsRejected = counter

	if options.Endpoint == "" {
		logger.Info("tracing_disabled")
		return telemetry, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(options.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("telemetry: failed to create exporter: %w", err)
	}

	serviceResource := resource.NewSchemaless(
		attribute.String("service.name", options.ServiceName),
		attribute.String("service.version", constants.AppVersion),
		attribute.String("deployment.environment", options.Environment),
	)

	telemetry.provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(serviceResource),
	)

	otel.SetTracerProvider(telemetry.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing_enabled", slog.String("endpoint", options.Endpoint))
	return telemetry, nil
}

// FormRejected counts one submission that failed validation.
func (telemetry *Telemetry) FormRejected(ctx context.Context, form string) {
	if telemetry == nil || telemetry.formsRejected == nil {
		return
	}
	telemetry.formsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("form", form)))
}

// Shutdown flushes pending spans.
func (telemetry *Telemetry) Shutdown(ctx context.Context) error {
	if telemetry == nil || telemetry.provider == nil {
		return nil
	}
	return telemetry.provider.Shutdown(ctx)
}
