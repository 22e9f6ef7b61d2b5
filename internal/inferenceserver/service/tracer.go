package service

import (
	"go.opentelemetry.io/otel/trace"

	"chassisml.io/coreservice/internal/inferenceserver/telemetry"
)

func tracer() trace.Tracer {
	return telemetry.Tracer("chassisml.io/coreservice/inferenceserver")
}
