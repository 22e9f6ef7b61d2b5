// Package manager implements the Build Manager: one instance per build,
// owning the id, the config, and the supervising background task that
// watches the Job through to completion.
package manager

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"chassisml.io/coreservice/internal/buildserver/imageref"
	"chassisml.io/coreservice/internal/buildserver/jobtemplate"
)

const jobIdentifierLabel = "chassisml.io/job-identifier"
const destinationAnnotation = "chassisml.io/destination"

// BuildManager is constructed once per build and owns that build's
// lifecycle: the context directory, the rendered Job, and the supervising
// goroutine that watches it to completion.
type BuildManager struct {
	state  *ServiceState
	jobID  string
	config *BuildConfig // nil for read-only managers built via ForJob
}

// NewBuildManager starts a fresh build: generates a BuildId and attaches
// the supplied config.
func NewBuildManager(state *ServiceState, config BuildConfig) *BuildManager {
	return &BuildManager{
		state:  state,
		jobID:  uuid.NewString(),
		config: &config,
	}
}

// ForJob attaches a read-only manager to an existing build for status
// queries; its config is unknown (per-build config is never persisted past
// Job submission).
func ForJob(state *ServiceState, jobID string) *BuildManager {
	return &BuildManager{state: state, jobID: jobID}
}

// BuildID is the id this manager was constructed with or generated.
func (m *BuildManager) BuildID() string {
	return m.jobID
}

// JobName is the Job's cluster-side name.
func (m *BuildManager) JobName() string {
	return "chassis-remote-build-job-" + m.jobID
}

// Build performs the synchronous portion of a build (save the context,
// render and submit the Job) and spawns a detached goroutine to supervise
// it to completion. It returns the BuildId as soon as the Job has been
// accepted by the cluster; failures before that point are returned to the
// caller, failures after are the supervisor's to handle and log.
func Build(ctx context.Context, state *ServiceState, config BuildConfig, contextContent io.Reader) (string, error) {
	m := NewBuildManager(state, config)

	contextURL, err := m.SaveContext(contextContent)
	if err != nil {
		return "", fmt.Errorf("saving build context: %w", err)
	}

	job, err := m.CreateJobObject(contextURL)
	if err != nil {
		m.state.Cache.Clean(m.jobID)
		return "", fmt.Errorf("rendering build job: %w", err)
	}

	if err := m.StartBuildJob(ctx, job); err != nil {
		m.state.Cache.Clean(m.jobID)
		return "", fmt.Errorf("starting build job: %w", err)
	}

	go m.CleanupJob(context.Background())

	return m.jobID, nil
}

// SaveContext persists the uploaded archive into the shared context cache
// and returns the URL the builder pod will fetch it from.
func (m *BuildManager) SaveContext(content io.Reader) (string, error) {
	return m.state.Cache.Save(m.jobID, content)
}

// GetTimeout returns the build's per-build timeout override if set,
// otherwise the service default.
func (m *BuildManager) GetTimeout() int64 {
	if m.config != nil && m.config.Timeout != nil {
		return *m.config.Timeout
	}
	return int64(m.state.Config.BuildTimeout.Seconds())
}

// IsInsecureRegistry returns the service's registry-insecure flag when the
// service has a preconfigured registry, otherwise the per-build override.
func (m *BuildManager) IsInsecureRegistry() bool {
	if m.state.Config.RegistryURL != "" {
		return m.state.Config.RegistryInsecure
	}
	if m.config != nil && m.config.InsecureRegistry != nil {
		return *m.config.InsecureRegistry
	}
	return false
}

// CreateJobObject renders the Job manifest for this build from config and
// service state: timeout precedence is config.Timeout then state default;
// the insecure-registry and publish flags fold into AddtlOptions.
func (m *BuildManager) CreateJobObject(contextURL string) (*batchv1.Job, error) {
	addtlOptions := ""
	if m.IsInsecureRegistry() {
		addtlOptions += ",registry.insecure=true"
	}
	if m.config != nil && !m.config.publish() {
		addtlOptions += ",skip-publish=true"
	}

	image := imageref.Assemble(
		m.state.Config.RegistryURL,
		m.state.Config.RegistryPrefix,
		m.config.ImageName,
		m.config.Tag,
	)

	return jobtemplate.Render(jobtemplate.Fields{
		JobName:          m.JobName(),
		JobIdentifier:    m.jobID,
		BuilderImage:     m.state.Config.BuilderImage,
		ImageName:        image,
		ContextURL:       contextURL,
		Timeout:          m.GetTimeout(),
		TTLAfterFinished: int64(m.state.Config.BuildTTLAfterFinished.Seconds()),
		AddtlOptions:     addtlOptions,
		Resources:        m.state.Config.BuildResourcesJSON,
		Creds:            m.state.Config.RegistryCredentialsSecretName,
	})
}

// StartBuildJob submits the rendered Job to the cluster under the
// configured namespace.
func (m *BuildManager) StartBuildJob(ctx context.Context, job *batchv1.Job) error {
	_, err := m.state.Clientset.BatchV1().Jobs(m.state.Namespace).Create(ctx, job, metav1.CreateOptions{})
	return err
}

// GetJob fetches the Job's current cluster state.
func (m *BuildManager) GetJob(ctx context.Context) (*batchv1.Job, error) {
	job, err := m.state.Clientset.BatchV1().Jobs(m.state.Namespace).Get(ctx, m.JobName(), metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("job not found: %w", err)
	}
	return job, nil
}
