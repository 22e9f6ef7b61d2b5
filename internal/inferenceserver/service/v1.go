package service

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
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

// V1Service is the legacy batched ModzyModel implementation, kept for
// clients that have not migrated to the typed v2 surface. It shares the
// same runner instance as V2Service.
type V1Service struct {
	protowire.UnimplementedModzyModelServer

	ModelIdentifier string
	ModelVersion    string
	ModelMetadata   []byte
	Runner          *runner.ModelRunner
	Log             *zap.Logger
	ShutdownCh      chan struct{}
	ShutdownOnce    *sync.Once
}

func (s *V1Service) Status(ctx context.Context, _ *protowire.StatusRequestV1) (*protowire.StatusResponseV1, error) {
	return &protowire.StatusResponseV1{
		StatusCode: 200,
		Status:     "200 OK",
		ModelInfo:  s.ModelMetadata,
	}, nil
}

func (s *V1Service) Run(ctx context.Context, req *protowire.RunRequest) (*protowire.RunResponse, error) {
	labels := []string{s.ModelIdentifier, s.ModelVersion}

	ctx, span := tracer().Start(ctx, "Run", trace.WithAttributes(
		attribute.String("model_identifier", s.ModelIdentifier),
		attribute.String("model_version", s.ModelVersion),
	))
	defer span.End()

	batch, totalBytes := preprocess.V1(req.Inputs)
	span.SetAttributes(
		attribute.Int("data_processed", totalBytes),
		attribute.Int("batch_size", len(batch)),
	)
	metrics.DataProcessedSizeInBytes.WithLabelValues(labels...).Add(float64(totalBytes))
	metrics.InferenceRequests.WithLabelValues(labels...).Add(float64(len(batch)))

	results, err := s.Runner.PredictBatch(batch)
	if err != nil {
		metrics.InferenceFailures.WithLabelValues(labels...).Inc()
		return nil, grpcstatus.Error(grpccodes.Internal, err.Error())
	}
	metrics.InferencesPerformed.WithLabelValues(labels...).Add(float64(len(results)))

	outputs := make([]*protowire.BatchOutputV1, len(results))
	for i, r := range results {
		outputs[i] = &protowire.BatchOutputV1{
			Output:  toKeyedOutputs(r),
			Success: true,
			Error:   r.Error,
		}
	}

	return &protowire.RunResponse{
		StatusCode: 200,
		Status:     "OK",
		Message:    "Inference executed",
		Outputs:    outputs,
	}, nil
}

func (s *V1Service) Shutdown(ctx context.Context, _ *protowire.ShutdownRequestV1) (*protowire.ShutdownResponseV1, error) {
	s.Log.Info("shutdown request received via legacy gRPC surface")
	s.ShutdownOnce.Do(func() { close(s.ShutdownCh) })
	return &protowire.ShutdownResponseV1{Acknowledged: true}, nil
}

// RegisterV1 wires the legacy service onto a gRPC server.
func RegisterV1(s grpc.ServiceRegistrar, svc *V1Service) {
	protowire.RegisterModzyModelServer(s, svc)
}

// toKeyedOutputs flattens a typed prediction result back down to the
// legacy key/bytes shape. Only the variants the legacy wire format can
// carry (text, data, image) are represented; anything else is dropped
// without logging since there is no legacy slot for it.
func toKeyedOutputs(r runner.Result) []*protowire.KeyedOutputV1 {
	out := make([]*protowire.KeyedOutputV1, 0, len(r.Outputs))
	for _, o := range r.Outputs {
		var data []byte
		switch o.Tag {
		case protowire.OutputText:
			data = []byte(o.Text.Text)
		case protowire.OutputData:
			data = o.Data.Data
		case protowire.OutputImage:
			data = o.Image.Data
		default:
			continue
		}
		out = append(out, &protowire.KeyedOutputV1{Key: o.Key, Data: data})
	}
	return out
}
