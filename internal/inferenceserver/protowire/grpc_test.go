package protowire

import "testing"

func TestServiceDescriptorsNameTheRightMethods(t *testing.T) {
	wantV2 := []string{"Predict", "Status", "GetContainerInfo", "Shutdown"}
	if len(inferenceServiceServiceDesc.Methods) != len(wantV2) {
		t.Fatalf("v2 has %d methods, want %d", len(inferenceServiceServiceDesc.Methods), len(wantV2))
	}
	for i, m := range inferenceServiceServiceDesc.Methods {
		if m.MethodName != wantV2[i] {
			t.Errorf("v2 method %d = %q, want %q", i, m.MethodName, wantV2[i])
		}
	}
	if inferenceServiceServiceDesc.ServiceName != "openmodel.v2.InferenceService" {
		t.Errorf("v2 service name = %q", inferenceServiceServiceDesc.ServiceName)
	}

	wantV1 := []string{"Run", "Status", "Shutdown"}
	if len(modzyModelServiceDesc.Methods) != len(wantV1) {
		t.Fatalf("v1 has %d methods, want %d", len(modzyModelServiceDesc.Methods), len(wantV1))
	}
	for i, m := range modzyModelServiceDesc.Methods {
		if m.MethodName != wantV1[i] {
			t.Errorf("v1 method %d = %q, want %q", i, m.MethodName, wantV1[i])
		}
	}
	if modzyModelServiceDesc.ServiceName != "modzy.ModzyModel" {
		t.Errorf("v1 service name = %q", modzyModelServiceDesc.ServiceName)
	}
}

func TestUnimplementedServersReturnUnimplementedStatus(t *testing.T) {
	var v2 InferenceServiceServer = UnimplementedInferenceServiceServer{}
	if _, err := v2.Predict(nil, nil); err == nil {
		t.Fatal("expected error from unimplemented Predict")
	}

	var v1 ModzyModelServer = UnimplementedModzyModelServer{}
	if _, err := v1.Run(nil, nil); err == nil {
		t.Fatal("expected error from unimplemented Run")
	}
}
