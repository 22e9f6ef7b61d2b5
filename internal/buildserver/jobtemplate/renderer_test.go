package jobtemplate

import "testing"

func TestRenderProducesExpectedMetadata(t *testing.T) {
	job, err := Render(Fields{
		JobName:          "chassis-remote-build-job-abc123",
		JobIdentifier:    "abc123",
		BuilderImage:     "ghcr.io/chassisml/builder:latest",
		ImageName:        "username/image:tag",
		ContextURL:       "http://pod.svc:8080/contexts/abc123/context.zip",
		Timeout:          3600,
		TTLAfterFinished: 600,
		AddtlOptions:     "",
		Resources:        `{"limits":{"cpu":"2","memory":"4Gi"}}`,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if job.Name != "chassis-remote-build-job-abc123" {
		t.Errorf("job name = %q", job.Name)
	}
	if job.Labels["chassisml.io/job-identifier"] != "abc123" {
		t.Errorf("job-identifier label = %q", job.Labels["chassisml.io/job-identifier"])
	}
	if job.Spec.ActiveDeadlineSeconds == nil || *job.Spec.ActiveDeadlineSeconds != 3600 {
		t.Errorf("activeDeadlineSeconds not rendered correctly: %+v", job.Spec.ActiveDeadlineSeconds)
	}
	if len(job.Spec.Template.Spec.Containers) != 1 {
		t.Fatalf("expected exactly one container, got %d", len(job.Spec.Template.Spec.Containers))
	}
}

func TestRenderWithCredsAddsVolume(t *testing.T) {
	job, err := Render(Fields{
		JobName:       "chassis-remote-build-job-xyz",
		JobIdentifier: "xyz",
		BuilderImage:  "ghcr.io/chassisml/builder:latest",
		ImageName:     "username/image:tag",
		ContextURL:    "http://pod.svc:8080/contexts/xyz/context.zip",
		Timeout:       60,
		Resources:     `{}`,
		Creds:         "registry-creds-secret",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(job.Spec.Template.Spec.Volumes) != 1 {
		t.Fatalf("expected a credentials volume, got %d volumes", len(job.Spec.Template.Spec.Volumes))
	}
	if job.Spec.Template.Spec.Volumes[0].Secret == nil ||
		job.Spec.Template.Spec.Volumes[0].Secret.SecretName != "registry-creds-secret" {
		t.Errorf("volume does not reference the credentials secret")
	}
}
