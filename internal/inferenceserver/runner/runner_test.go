package runner

import (
	"os"
	"path/filepath"
	"testing"

	"chassisml.io/coreservice/internal/inferenceserver/preprocess"
	"chassisml.io/coreservice/internal/inferenceserver/protowire"
)

func writeModel(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.lua")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const textModel = `
function predict(inputs)
  return {
    success = true,
    error = "",
    outputs = {
      { key = "result", tag = "text", text = "hello " .. inputs["name"] },
    },
  }
end
`

func TestLoadRejectsMissingPredictFunction(t *testing.T) {
	path := writeModel(t, `local x = 1`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for chunk with no predict function")
	}
}

func TestPredictRunsLuaModel(t *testing.T) {
	path := writeModel(t, textModel)
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer r.Close()

	result, err := r.Predict(preprocess.ModelInput{"name": []byte("world")})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if !result.Success {
		t.Fatal("expected success = true")
	}
	if len(result.Outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(result.Outputs))
	}
	out := result.Outputs[0]
	if out.Tag != protowire.OutputText {
		t.Fatalf("tag = %v, want OutputText", out.Tag)
	}
	if out.Text.Text != "hello world" {
		t.Fatalf("text = %q, want %q", out.Text.Text, "hello world")
	}
}

func TestPredictBatchPreservesOrder(t *testing.T) {
	path := writeModel(t, textModel)
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer r.Close()

	batch := []preprocess.ModelInput{
		{"name": []byte("a")},
		{"name": []byte("b")},
	}
	results, err := r.PredictBatch(batch)
	if err != nil {
		t.Fatalf("PredictBatch() error = %v", err)
	}
	if results[0].Outputs[0].Text.Text != "hello a" {
		t.Errorf("element 0 = %q", results[0].Outputs[0].Text.Text)
	}
	if results[1].Outputs[0].Text.Text != "hello b" {
		t.Errorf("element 1 = %q", results[1].Outputs[0].Text.Text)
	}
}

const driftModel = `
function predict(inputs)
  return {
    success = true,
    outputs = { { key = "r", tag = "data", data = "\1\2\3", content_type = "application/octet-stream" } },
    drift = { score = 0.42 },
  }
end
`

func TestPredictDecodesDriftAndDataOutput(t *testing.T) {
	path := writeModel(t, driftModel)
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer r.Close()

	result, err := r.Predict(preprocess.ModelInput{})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if result.Drift == nil || result.Drift.Score != 0.42 {
		t.Fatalf("drift = %+v, want score 0.42", result.Drift)
	}
	if result.Outputs[0].Tag != protowire.OutputData {
		t.Fatalf("tag = %v, want OutputData", result.Outputs[0].Tag)
	}
	if string(result.Outputs[0].Data.Data) != "\x01\x02\x03" {
		t.Fatalf("data = %v", result.Outputs[0].Data.Data)
	}
}
