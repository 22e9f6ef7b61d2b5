// Package metrics registers the inference container's Prometheus
// collectors and exposes them on a plain HTTP handler, mirroring the
// original server's metric surface one-for-one.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InferenceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inference_requests", Help: "Inference Requests"},
		[]string{"model_identifier", "model_version"},
	)
	InferencesPerformed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inferences_performed", Help: "Inferences Performed"},
		[]string{"model_identifier", "model_version"},
	)
	InferenceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "inference_failures", Help: "Inference Failures"},
		[]string{"model_identifier", "model_version"},
	)
	DataProcessedSizeInBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "data_processed_size_in_bytes", Help: "Data processed by model (in bytes)"},
		[]string{"model_identifier", "model_version"},
	)
	ResponseCode = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "response_code", Help: "Response Codes"},
		[]string{"env", "statuscode", "type"},
	)
	ResponseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "response_time", Help: "Response Times"},
		[]string{"env"},
	)
	// DataDrift buckets match the upstream fixed 0.1-wide scale; a score
	// above 1.0 lands in the +Inf overflow bucket rather than being
	// clipped.
	DataDrift = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "data_drift",
			Help:    "Data Drift",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
		[]string{"model_identifier", "model_version"},
	)
)

func init() {
	prometheus.MustRegister(
		InferenceRequests,
		InferencesPerformed,
		InferenceFailures,
		DataProcessedSizeInBytes,
		ResponseCode,
		ResponseTime,
		DataDrift,
	)
}

// Handler serves the registered collectors in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
