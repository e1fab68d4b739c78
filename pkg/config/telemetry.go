package config

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/msimtools/motorsport-session-manager-go/log"
	"github.com/msimtools/motorsport-session-manager-go/version"
)

// Telemetry holds the tracer provider while telemetry is enabled.
type Telemetry struct {
	tracerProvider *sdktrace.TracerProvider
}

// Tracer returns the tracer used by the application commands.
func Tracer() trace.Tracer {
	return otel.Tracer("msm")
}

// SetupTelemetry initializes tracing with a stdout exporter and
// registers the provider as the global one.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("msm"),
			semconv.ServiceVersion(version.Version),
		))
	if err != nil {
		return nil, fmt.Errorf("create telemetry resource: %w", err)
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	return &Telemetry{tracerProvider: tracerProvider}, nil
}

// Shutdown flushes pending spans and stops the tracer provider.
func (t *Telemetry) Shutdown() {
	if err := t.tracerProvider.Shutdown(context.Background()); err != nil {
		log.Error("error shutting down tracer provider", log.ErrorField(err))
	}
}
