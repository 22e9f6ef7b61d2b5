package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MODEL_IDENTIFIER", "MODEL_VERSION", "MODEL_PORT", "MODEL_DIR",
		"METRICS_PORT", "TELEMETRY_ENABLED", "TELEMETRY_ENDPOINT", "LOG_LEVEL",
		"MODEL_METADATA_PATH", "CONTAINER_METADATA_PATH", "ENABLE_V1", "ENABLE_V2",
	} {
		os.Unsetenv(k)
	}
}

func TestLoadRequiresModelIdentifier(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error when MODEL_IDENTIFIER is unset")
	}
}

func TestLoadRejectsBothServicesDisabled(t *testing.T) {
	clearEnv(t)
	os.Setenv("MODEL_IDENTIFIER", "my-model")
	os.Setenv("ENABLE_V1", "false")
	os.Setenv("ENABLE_V2", "false")
	defer clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error when both ENABLE_V1 and ENABLE_V2 are false")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("MODEL_IDENTIFIER", "my-model")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ModelPort != 45000 {
		t.Errorf("ModelPort = %d, want 45000", cfg.ModelPort)
	}
	if !cfg.EnableV1 {
		t.Errorf("expected v1 enabled by default")
	}
	if cfg.EnableV2 {
		t.Errorf("expected v2 disabled by default")
	}
	if cfg.ModelScriptPath() != cfg.ModelDir+"/model.lua" {
		t.Errorf("ModelScriptPath() = %q", cfg.ModelScriptPath())
	}
}
