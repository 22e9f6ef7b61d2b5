package manager

import (
	"context"
	"time"

	"go.uber.org/zap"
	batchv1 "k8s.io/api/batch/v1"

	"chassisml.io/coreservice/internal/buildserver/k8sclient"
	"chassisml.io/coreservice/internal/buildserver/webhook"
)

// CleanupJob is the supervisor body spawned as a detached goroutine by
// Build. It watches the Job to completion or timeout, classifies the
// outcome, fires the webhook, and always cleans the context — regardless
// of how the watch resolved.
func (m *BuildManager) CleanupJob(ctx context.Context) {
	defer m.CleanContext()

	bound := time.Duration(m.GetTimeout())*time.Second + 10*time.Second
	outcome, err := k8sclient.WaitForJobCompletion(ctx, m.state.Clientset, m.state.Namespace, m.JobName(), bound)
	if err != nil {
		m.state.Log.Warn("job watch ended in error", zap.String("build_id", m.jobID), zap.Error(err))
		return
	}
	if outcome == k8sclient.JobTimedOut {
		m.state.Log.Warn("supervisor timed out waiting for job completion",
			zap.String("build_id", m.jobID), zap.Duration("bound", bound))
		return
	}

	job, err := m.GetJob(ctx)
	if err != nil {
		m.state.Log.Warn("could not fetch completed job", zap.String("build_id", m.jobID), zap.Error(err))
		return
	}

	status := m.GetBuildStatusResponse(ctx, job)

	if m.config != nil && m.config.Webhook != "" {
		payload := webhook.Payload{
			BuildID:  m.jobID,
			Success:  status.Success,
			ImageTag: status.ImageTag,
			Error:    status.ErrorMessage,
		}
		if err := webhook.Notify(ctx, m.config.Webhook, payload); err != nil {
			m.state.Log.Warn("webhook delivery failed", zap.String("build_id", m.jobID), zap.Error(err))
		}
	}

	// TODO: cluster-side credential Secret cleanup is a documented
	// non-requirement upstream; nothing to do here.
}

// CleanContext best-effort removes the build's cached context archive.
func (m *BuildManager) CleanContext() {
	m.state.Cache.Clean(m.jobID)
}

// GetJobLogs returns the logs of the first pod backing this build's Job.
func (m *BuildManager) GetJobLogs(ctx context.Context) (string, error) {
	return k8sclient.GetJobLogs(ctx, m.state.Clientset, m.state.Namespace, m.JobName())
}

// GetBuildStatusResponse classifies a Job's status counters into the
// client-facing projection, populating ImageTag from the destination
// annotation on success and Logs from the first matched builder pod on
// either completion path. Both counters rising simultaneously is logged
// as anomalous and treated as Failed.
func (m *BuildManager) GetBuildStatusResponse(ctx context.Context, job *batchv1.Job) BuildStatusResponse {
	resp := BuildStatusResponse{RemoteBuildID: m.jobID}

	succeeded := job.Status.Succeeded >= 1
	failed := job.Status.Failed >= 1

	if succeeded && failed {
		m.state.Log.Warn("job reported both succeeded and failed counters",
			zap.String("build_id", m.jobID))
		failed, succeeded = true, false
	}

	switch {
	case failed:
		resp.Completed = true
		resp.Success = false
		resp.ErrorMessage = "Build failed. Check logs for more information."
	case succeeded:
		resp.Completed = true
		resp.Success = true
		resp.ImageTag = job.Annotations[destinationAnnotation]
	default:
		resp.Completed = false
	}

	if resp.Completed {
		if logs, err := m.GetJobLogs(ctx); err == nil {
			resp.Logs = logs
		}
	}

	return resp
}
