package manager

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"chassisml.io/coreservice/internal/buildserver/config"
	"chassisml.io/coreservice/internal/buildserver/contextcache"
)

func newTestState(t *testing.T) *ServiceState {
	t.Helper()
	return &ServiceState{
		Clientset: fake.NewSimpleClientset(),
		Namespace: "default",
		Cache:     contextcache.New(t.TempDir(), "pod-0", "build-svc", 8080, zap.NewNop()),
		Config: config.Config{
			BuildTimeout:          5 * time.Second,
			BuildTTLAfterFinished: 10 * time.Second,
			BuildResourcesJSON:    `{}`,
			BuilderImage:          "ghcr.io/chassisml/builder:latest",
		},
		Log: zap.NewNop(),
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateJobObjectUsesPerBuildTimeout(t *testing.T) {
	state := newTestState(t)
	m := NewBuildManager(state, BuildConfig{
		ImageName: "u/i",
		Tag:       "t",
		Timeout:   int64Ptr(42),
	})

	job, err := m.CreateJobObject("http://pod.svc:8080/contexts/x/context.zip")
	if err != nil {
		t.Fatalf("CreateJobObject: %v", err)
	}
	if job.Spec.ActiveDeadlineSeconds == nil || *job.Spec.ActiveDeadlineSeconds != 42 {
		t.Errorf("expected per-build timeout of 42s, got %+v", job.Spec.ActiveDeadlineSeconds)
	}
	if !strings.HasPrefix(job.Name, "chassis-remote-build-job-") {
		t.Errorf("unexpected job name: %s", job.Name)
	}
	if job.Labels[jobIdentifierLabel] != m.BuildID() {
		t.Errorf("job-identifier label = %q, want %q", job.Labels[jobIdentifierLabel], m.BuildID())
	}
}

func TestGetTimeoutFallsBackToServiceDefault(t *testing.T) {
	state := newTestState(t)
	m := NewBuildManager(state, BuildConfig{ImageName: "u/i", Tag: "t"})

	if got := m.GetTimeout(); got != int64(state.Config.BuildTimeout.Seconds()) {
		t.Errorf("GetTimeout() = %d, want %d", got, int64(state.Config.BuildTimeout.Seconds()))
	}
}

func TestIsInsecureRegistryPrefersServiceFlag(t *testing.T) {
	state := newTestState(t)
	state.Config.RegistryURL = "registry.example.com"
	state.Config.RegistryInsecure = true

	insecureOverride := false
	m := NewBuildManager(state, BuildConfig{ImageName: "u/i", Tag: "t", InsecureRegistry: &insecureOverride})

	if !m.IsInsecureRegistry() {
		t.Error("expected service-level registry_insecure to win when a registry is configured")
	}
}

func TestIsInsecureRegistryFallsBackToPerBuildFlag(t *testing.T) {
	state := newTestState(t)
	insecureOverride := true
	m := NewBuildManager(state, BuildConfig{ImageName: "u/i", Tag: "t", InsecureRegistry: &insecureOverride})

	if !m.IsInsecureRegistry() {
		t.Error("expected per-build insecure_registry to apply when no service registry is configured")
	}
}

func TestGetBuildStatusResponseClassifiesSuccess(t *testing.T) {
	state := newTestState(t)
	m := ForJob(state, "build-1")

	job := &batchv1.Job{
		ObjectMeta: metav1.ObjectMeta{
			Annotations: map[string]string{destinationAnnotation: "u/i:t"},
		},
		Status: batchv1.JobStatus{Succeeded: 1},
	}

	resp := m.GetBuildStatusResponse(context.Background(), job)
	if !resp.Completed || !resp.Success {
		t.Fatalf("expected completed success, got %+v", resp)
	}
	if resp.ImageTag != "u/i:t" {
		t.Errorf("image tag = %q, want %q", resp.ImageTag, "u/i:t")
	}
}

func TestGetBuildStatusResponseTreatsSimultaneousCountersAsFailed(t *testing.T) {
	state := newTestState(t)
	m := ForJob(state, "build-2")

	job := &batchv1.Job{Status: batchv1.JobStatus{Succeeded: 1, Failed: 1}}

	resp := m.GetBuildStatusResponse(context.Background(), job)
	if !resp.Completed || resp.Success {
		t.Fatalf("expected anomalous succeeded+failed to classify as failed, got %+v", resp)
	}
}

func TestBuildEndToEndWithFakeClientset(t *testing.T) {
	state := newTestState(t)

	buildID, err := Build(context.Background(), state, BuildConfig{ImageName: "u/i", Tag: "t"}, strings.NewReader("1234"))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if buildID == "" {
		t.Fatal("expected a non-empty build id")
	}

	job, err := state.Clientset.BatchV1().Jobs("default").Get(context.Background(), "chassis-remote-build-job-"+buildID, metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected job to exist: %v", err)
	}
	if job.Labels[jobIdentifierLabel] != buildID {
		t.Errorf("job-identifier label = %q, want %q", job.Labels[jobIdentifierLabel], buildID)
	}
}
