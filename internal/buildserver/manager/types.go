package manager

import (
	"go.uber.org/zap"
	"k8s.io/client-go/kubernetes"

	"chassisml.io/coreservice/internal/buildserver/config"
	"chassisml.io/coreservice/internal/buildserver/contextcache"
)

// BuildConfig is the per-build descriptor uploaded alongside the context.
// Immutable once a BuildManager has been constructed from it.
type BuildConfig struct {
	ImageName        string  `json:"image_name"`
	Tag              string  `json:"tag"`
	Webhook          string  `json:"webhook,omitempty"`
	Timeout          *int64  `json:"timeout,omitempty"`
	Publish          *bool   `json:"publish,omitempty"`
	InsecureRegistry *bool   `json:"insecure_registry,omitempty"`
}

func (c BuildConfig) publish() bool {
	if c.Publish == nil {
		return true
	}
	return *c.Publish
}

// BuildStatusResponse is the projection returned by GET /job/{id} and by
// POST /build, which answers as soon as the Job is submitted (Completed
// false) or with the error that stopped the submission.
type BuildStatusResponse struct {
	ImageTag      string `json:"image_tag,omitempty"`
	Logs          string `json:"logs,omitempty"`
	Success       bool   `json:"success"`
	Completed     bool   `json:"completed"`
	ErrorMessage  string `json:"error_message,omitempty"`
	RemoteBuildID string `json:"remote_build_id"`
}

// ServiceState is the process-wide, shared-by-reference state every
// BuildManager is built against: the cluster client, the context cache,
// and registry/timeout defaults.
type ServiceState struct {
	Clientset *kubernetes.Clientset
	Namespace string
	Cache     *contextcache.Cache
	Config    config.Config
	Log       *zap.Logger
}
