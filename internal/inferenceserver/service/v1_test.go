package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/inferenceserver/protowire"
)

func TestV1ServiceRunFlattensBatch(t *testing.T) {
	svc := &V1Service{
		ModelIdentifier: "test-model",
		ModelVersion:    "1.0.0",
		Runner:          newTestRunner(t),
		Log:             zap.NewNop(),
		ShutdownCh:      make(chan struct{}),
		ShutdownOnce:    &sync.Once{},
	}

	resp, err := svc.Run(context.Background(), &protowire.RunRequest{
		Inputs: []*protowire.InputSetV1{
			{Input: []*protowire.KeyedInputV1{{Key: "in", Data: []byte("a")}}},
			{Input: []*protowire.KeyedInputV1{{Key: "in", Data: []byte("b")}}},
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if len(resp.Outputs) != 2 {
		t.Fatalf("len(Outputs) = %d, want 2", len(resp.Outputs))
	}
	if string(resp.Outputs[0].Output[0].Data) != "echo:a" {
		t.Errorf("element 0 = %q", resp.Outputs[0].Output[0].Data)
	}
	if string(resp.Outputs[1].Output[0].Data) != "echo:b" {
		t.Errorf("element 1 = %q", resp.Outputs[1].Output[0].Data)
	}
}
