// Package service implements both gRPC surfaces over a shared model
// runner: the typed v2 InferenceService and the legacy v1 ModzyModel.
package service

import (
	"context"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpccodes "google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"chassisml.io/coreservice/internal/inferenceserver/metrics"
	"chassisml.io/coreservice/internal/inferenceserver/preprocess"
	"chassisml.io/coreservice/internal/inferenceserver/protowire"
	"chassisml.io/coreservice/internal/inferenceserver/runner"
)

// V2Service is the openmodel.v2.InferenceService implementation. One
// instance is shared across every call; the model runner it wraps
// serializes concurrent predictions internally.
type V2Service struct {
	protowire.UnimplementedInferenceServiceServer

	ModelIdentifier string
	ModelVersion    string
	ContainerInfo   []byte
	Runner          *runner.ModelRunner
	Log             *zap.Logger
	ShutdownCh      chan struct{}
	ShutdownOnce    *sync.Once
}

func (s *V2Service) labels() []string { return []string{s.ModelIdentifier, s.ModelVersion} }

func (s *V2Service) Status(ctx context.Context, _ *protowire.StatusRequest) (*protowire.StatusResponse, error) {
	return &protowire.StatusResponse{
		StatusCode: 200,
		Status:     "OK",
		Metadata:   s.ContainerInfo,
	}, nil
}

func (s *V2Service) GetContainerInfo(ctx context.Context, _ *protowire.ContainerInfoRequest) (*protowire.ContainerInfoResponse, error) {
	return &protowire.ContainerInfoResponse{ContainerInfo: s.ContainerInfo}, nil
}

func (s *V2Service) Predict(ctx context.Context, req *protowire.PredictRequest) (*protowire.PredictResponse, error) {
	rpcStart := time.Now()
	labels := s.labels()

	ctx, span := tracer().Start(ctx, "Predict", trace.WithAttributes(
		attribute.String("model_identifier", s.ModelIdentifier),
		attribute.String("model_version", s.ModelVersion),
	))
	defer span.End()

	metrics.InferenceRequests.WithLabelValues(labels...).Inc()

	preStart := time.Now()
	inputs, totalBytes := preprocess.V2(req.Inputs)
	span.SetAttributes(attribute.Int("data_processed", totalBytes))
	metrics.DataProcessedSizeInBytes.WithLabelValues(labels...).Add(float64(totalBytes))
	preDuration := time.Since(preStart)

	modelStart := time.Now()
	result, err := s.Runner.Predict(inputs)
	if err != nil {
		metrics.InferenceFailures.WithLabelValues(labels...).Inc()
		span.SetStatus(codes.Error, err.Error())
		return nil, grpcstatus.Error(grpccodes.Internal, err.Error())
	}
	metrics.InferencesPerformed.WithLabelValues(labels...).Inc()
	modelDuration := time.Since(modelStart)

	if result.Drift != nil {
		metrics.DataDrift.WithLabelValues(labels...).Observe(float64(result.Drift.Score))
	}

	rpcDuration := time.Since(rpcStart)

	return &protowire.PredictResponse{
		Outputs:         result.Outputs,
		Success:         result.Success,
		Error:           result.Error,
		Explanation:     result.Explanation,
		Drift:           result.Drift,
		ModelIdentifier: s.ModelIdentifier,
		ModelVersion:    s.ModelVersion,
		Tags:            req.Tags,
		Timings: &protowire.Timings{
			ModelExecution: modelDuration.Seconds(),
			Preprocessing:  preDuration.Seconds(),
			Postprocessing: 0,
			Formatting:     0,
			Total:          rpcDuration.Seconds(),
		},
	}, nil
}

func (s *V2Service) Shutdown(ctx context.Context, _ *protowire.ShutdownRequest) (*protowire.ShutdownResponse, error) {
	s.Log.Info("shutdown request received via gRPC")
	s.ShutdownOnce.Do(func() { close(s.ShutdownCh) })
	return &protowire.ShutdownResponse{Acknowledged: true}, nil
}

// RegisterV2 wires the typed service onto a gRPC server.
func RegisterV2(s grpc.ServiceRegistrar, svc *V2Service) {
	protowire.RegisterInferenceServiceServer(s, svc)
}

// LoadContainerInfo reads the pre-rendered container metadata blob a
// Chassis-built image ships at build time, checked in this preference
// order: explicit override path, then the model directory's own copy.
func LoadContainerInfo(explicitPath, modelDir string) ([]byte, error) {
	path := explicitPath
	if path == "" {
		path = modelDir + "/container_info"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}
