// Command inferenceserver runs a single loaded model behind the v1 and v2
// gRPC surfaces, backed by an embedded Lua interpreter.
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/inferenceserver/bootstrap"
	"chassisml.io/coreservice/internal/inferenceserver/config"
	"chassisml.io/coreservice/internal/inferenceserver/runner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	shutdownTelemetry, err := initTelemetry(cfg)
	if err != nil {
		logger.Fatal("could not initialize telemetry", zap.Error(err))
	}
	defer shutdownTelemetry(context.Background())

	r, err := runner.Load(cfg.ModelScriptPath())
	if err != nil {
		logger.Fatal("could not load model", zap.Error(err))
	}
	defer r.Close()

	srv, err := bootstrap.New(cfg, logger, r)
	if err != nil {
		logger.Fatal("could not assemble server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
