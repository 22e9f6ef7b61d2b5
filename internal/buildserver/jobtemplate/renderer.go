// Package jobtemplate renders the single pre-registered build Job manifest.
// The template's identity is fixed; callers only ever supply field values.
package jobtemplate

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	batchv1 "k8s.io/api/batch/v1"
	"sigs.k8s.io/yaml"
)

//go:embed job.yaml.tmpl
var jobTemplateSource string

var jobTemplate = template.Must(template.New("job").Parse(jobTemplateSource))

// Fields is the fixed field set the renderer accepts. Resources is a JSON
// fragment (a flow-style Kubernetes ResourceRequirements object) embedded
// verbatim into the container's resources block; AddtlOptions is a
// comma-prefixed string of extension flags appended to the builder's
// options argument, e.g. ",registry.insecure=true".
type Fields struct {
	JobName          string
	JobIdentifier    string
	BuilderImage     string
	ImageName        string
	ContextURL       string
	Timeout          int64
	TTLAfterFinished int64
	AddtlOptions     string
	Resources        string
	Creds            string
}

// Render executes the embedded template with fields and decodes the result
// into a batchv1.Job.
func Render(fields Fields) (*batchv1.Job, error) {
	var buf bytes.Buffer
	if err := jobTemplate.Execute(&buf, fields); err != nil {
		return nil, fmt.Errorf("rendering job template: %w", err)
	}

	var job batchv1.Job
	if err := yaml.Unmarshal(buf.Bytes(), &job); err != nil {
		return nil, fmt.Errorf("decoding rendered job manifest: %w", err)
	}
	return &job, nil
}
