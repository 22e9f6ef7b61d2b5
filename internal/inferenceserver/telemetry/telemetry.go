// Package telemetry wires up OpenTelemetry tracing for the inference
// container: an OTLP-over-gRPC exporter when telemetry is enabled (Init
// fails if no endpoint is configured), otherwise a stdout exporter so spans
// are still visible locally.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// Init installs a global TracerProvider named "<identifier>-<version>",
// the same service-name convention the original tracing setup used. It
// returns a shutdown func the caller must invoke before exiting.
func Init(ctx context.Context, identifier, version string, enabled bool, endpoint string) (func(context.Context) error, error) {
	serviceName := fmt.Sprintf("%s-%s", identifier, version)

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("building telemetry resource: %w", err)
	}

	var exporter sdktrace.SpanExporter
	if enabled {
		if endpoint == "" {
			return nil, fmt.Errorf("telemetry enabled but no endpoint configured")
		}
		exporter, err = otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("creating otlp exporter: %w", err)
		}
	} else {
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("creating stdout exporter: %w", err)
		}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// Tracer returns the named tracer for instrumenting a predict call.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
