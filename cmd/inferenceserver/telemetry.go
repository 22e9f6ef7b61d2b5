package main

import (
	"context"

	"chassisml.io/coreservice/internal/inferenceserver/config"
	"chassisml.io/coreservice/internal/inferenceserver/telemetry"
)

func initTelemetry(cfg config.Config) (func(context.Context) error, error) {
	return telemetry.Init(context.Background(), cfg.ModelIdentifier, cfg.ModelVersion, cfg.TelemetryEnabled, cfg.TelemetryEndpoint)
}
