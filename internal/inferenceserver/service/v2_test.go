package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/inferenceserver/protowire"
	"chassisml.io/coreservice/internal/inferenceserver/runner"
)

func newTestRunner(t *testing.T) *runner.ModelRunner {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.lua")
	script := `
function predict(inputs)
  return {
    success = true,
    outputs = { { key = "r", tag = "text", text = "echo:" .. (inputs["in"] or "") } },
  }
end
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := runner.Load(path)
	if err != nil {
		t.Fatalf("runner.Load() error = %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestV2ServicePredict(t *testing.T) {
	svc := &V2Service{
		ModelIdentifier: "test-model",
		ModelVersion:    "1.0.0",
		Runner:          newTestRunner(t),
		Log:             zap.NewNop(),
		ShutdownCh:      make(chan struct{}),
		ShutdownOnce:    &sync.Once{},
	}

	resp, err := svc.Predict(context.Background(), &protowire.PredictRequest{
		Inputs: []*protowire.InputItem{{Key: "in", Source: protowire.InputSourceText, Text: "hi"}},
		Tags:   map[string]string{"request_id": "abc123"},
	})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success = true")
	}
	if resp.Outputs[0].Text.Text != "echo:hi" {
		t.Errorf("text = %q, want %q", resp.Outputs[0].Text.Text, "echo:hi")
	}
	if resp.ModelIdentifier != "test-model" || resp.ModelVersion != "1.0.0" {
		t.Errorf("identity fields not stamped onto response: %+v", resp)
	}
	if resp.Timings == nil {
		t.Error("expected timings to be populated")
	}
	if resp.Tags["request_id"] != "abc123" {
		t.Errorf("tags not echoed onto response: %+v", resp.Tags)
	}
}

func TestV2ServiceShutdownClosesChannelOnce(t *testing.T) {
	ch := make(chan struct{})
	svc := &V2Service{Log: zap.NewNop(), ShutdownCh: ch, ShutdownOnce: &sync.Once{}}

	if _, err := svc.Shutdown(context.Background(), &protowire.ShutdownRequest{}); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	select {
	case <-ch:
	default:
		t.Fatal("expected shutdown channel to be closed")
	}

	// A second call must not panic by closing an already-closed channel.
	if _, err := svc.Shutdown(context.Background(), &protowire.ShutdownRequest{}); err != nil {
		t.Fatalf("second Shutdown() error = %v", err)
	}
}
