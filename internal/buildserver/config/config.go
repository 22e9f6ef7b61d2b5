// Package config loads the build server's environment-driven configuration.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the Build Orchestrator's service-wide, as-opposed to
// per-build, settings. Per-build overrides live on BuildConfig.
type Config struct {
	ServiceName                   string
	PodName                       string
	DataDir                       string
	ContextPort                   int
	BuildNamespace                string
	BuildTimeout                  time.Duration
	BuildTTLAfterFinished         time.Duration
	BuildResourcesJSON            string
	RegistryURL                   string
	RegistryPrefix                string
	RegistryCredentialsSecretName string
	RegistryInsecure              bool
	LogLevel                      string
	BuilderImage                  string
}

// Load reads environment variables with typed defaults via viper, mirroring
// the original Rust service's `config` crate usage: defaults first,
// environment always wins.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVICE_NAME", "chassis-remote-build")
	v.SetDefault("POD_NAME", "chassis-remote-build-0")
	v.SetDefault("CHASSIS_DATA_DIR", "/data")
	v.SetDefault("CONTEXT_PORT", 8080)
	v.SetDefault("BUILD_NAMESPACE", "")
	v.SetDefault("BUILD_TIMEOUT", 3600)
	v.SetDefault("BUILD_TTL_AFTER_FINISHED", 3600)
	v.SetDefault("BUILD_RESOURCES", `{"limits":{"cpu":"2","memory":"4Gi"}}`)
	v.SetDefault("REGISTRY_URL", "")
	v.SetDefault("REGISTRY_PREFIX", "")
	v.SetDefault("REGISTRY_CREDENTIALS_SECRET_NAME", "")
	v.SetDefault("REGISTRY_INSECURE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BUILDER_IMAGE", "ghcr.io/chassisml/chassis-builder:latest")

	var resources map[string]any
	if err := json.Unmarshal([]byte(v.GetString("BUILD_RESOURCES")), &resources); err != nil {
		return Config{}, fmt.Errorf("BUILD_RESOURCES is not valid JSON: %w", err)
	}

	return Config{
		ServiceName:                   v.GetString("SERVICE_NAME"),
		PodName:                       v.GetString("POD_NAME"),
		DataDir:                       strings.TrimRight(v.GetString("CHASSIS_DATA_DIR"), "/"),
		ContextPort:                   v.GetInt("CONTEXT_PORT"),
		BuildNamespace:                v.GetString("BUILD_NAMESPACE"),
		BuildTimeout:                  time.Duration(v.GetInt64("BUILD_TIMEOUT")) * time.Second,
		BuildTTLAfterFinished:         time.Duration(v.GetInt64("BUILD_TTL_AFTER_FINISHED")) * time.Second,
		BuildResourcesJSON:            v.GetString("BUILD_RESOURCES"),
		RegistryURL:                   v.GetString("REGISTRY_URL"),
		RegistryPrefix:                v.GetString("REGISTRY_PREFIX"),
		RegistryCredentialsSecretName: v.GetString("REGISTRY_CREDENTIALS_SECRET_NAME"),
		RegistryInsecure:              v.GetBool("REGISTRY_INSECURE"),
		LogLevel:                      v.GetString("LOG_LEVEL"),
		BuilderImage:                  v.GetString("BUILDER_IMAGE"),
	}, nil
}

// ContextsDir is where per-build context archives are cached.
func (c Config) ContextsDir() string {
	return c.DataDir + "/contexts"
}
