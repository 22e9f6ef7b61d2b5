// Package config loads the inference server's environment-driven
// configuration, the same viper-defaults-then-environment pattern the
// build orchestrator uses.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings an inference container needs at startup: which
// model it is, where its code and metadata live, which gRPC surfaces to
// expose, and how to report telemetry.
type Config struct {
	ModelIdentifier      string
	ModelVersion         string
	ModelPort            int
	ModelDir             string
	MetricsPort          int
	TelemetryEnabled     bool
	TelemetryEndpoint    string
	LogLevel             string
	ModelMetadataPath    string
	ContainerMetadataPath string
	EnableV1             bool
	EnableV2             bool
}

// Load reads environment variables with typed defaults via viper.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("MODEL_IDENTIFIER", "")
	v.SetDefault("MODEL_VERSION", "0.0.1")
	v.SetDefault("MODEL_PORT", 45000)
	v.SetDefault("MODEL_DIR", "/app/model")
	v.SetDefault("METRICS_PORT", 9090)
	v.SetDefault("TELEMETRY_ENABLED", false)
	v.SetDefault("TELEMETRY_ENDPOINT", "")
	v.SetDefault("LOG_LEVEL", "info")
	// Left unset by default: LoadModelMetadata/LoadContainerInfo fall back
	// to well-known filenames under MODEL_DIR when these are empty.
	v.SetDefault("MODEL_METADATA_PATH", "")
	v.SetDefault("CONTAINER_METADATA_PATH", "")
	v.SetDefault("ENABLE_V1", true)
	v.SetDefault("ENABLE_V2", false)

	cfg := Config{
		ModelIdentifier:       v.GetString("MODEL_IDENTIFIER"),
		ModelVersion:          v.GetString("MODEL_VERSION"),
		ModelPort:             v.GetInt("MODEL_PORT"),
		ModelDir:              v.GetString("MODEL_DIR"),
		MetricsPort:           v.GetInt("METRICS_PORT"),
		TelemetryEnabled:      v.GetBool("TELEMETRY_ENABLED"),
		TelemetryEndpoint:     v.GetString("TELEMETRY_ENDPOINT"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		ModelMetadataPath:     v.GetString("MODEL_METADATA_PATH"),
		ContainerMetadataPath: v.GetString("CONTAINER_METADATA_PATH"),
		EnableV1:              v.GetBool("ENABLE_V1"),
		EnableV2:              v.GetBool("ENABLE_V2"),
	}

	if cfg.ModelIdentifier == "" {
		return Config{}, fmt.Errorf("MODEL_IDENTIFIER must be set")
	}
	if !cfg.EnableV1 && !cfg.EnableV2 {
		return Config{}, fmt.Errorf("at least one of ENABLE_V1, ENABLE_V2 must be true")
	}

	return cfg, nil
}

// ModelScriptPath is the Lua chunk the runner loads at startup.
func (c Config) ModelScriptPath() string {
	return c.ModelDir + "/model.lua"
}
