// Package bootstrap assembles the inference container's gRPC and metrics
// servers and drives them through startup and graceful shutdown, the Go
// analogue of the original builder-pattern server assembly: a health
// service, reflection, the enabled model service(s), a sidecar
// metrics HTTP server, and a shutdown path reachable from either an OS
// signal or a gRPC Shutdown call.
package bootstrap

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"chassisml.io/coreservice/internal/inferenceserver/config"
	"chassisml.io/coreservice/internal/inferenceserver/metrics"
	"chassisml.io/coreservice/internal/inferenceserver/runner"
	"chassisml.io/coreservice/internal/inferenceserver/service"
)

// Server owns the model gRPC listener, the metrics HTTP listener, and the
// shutdown channel both model services close when they receive a
// Shutdown RPC.
type Server struct {
	cfg        config.Config
	log        *zap.Logger
	grpcServer *grpc.Server
	httpServer *http.Server
	shutdownCh chan struct{}
}

// New wires up the gRPC server (health, reflection, and whichever of v1/v2
// ENABLE_* flags are set) plus the sidecar metrics HTTP server. It does
// not start listening; call Run for that.
func New(cfg config.Config, log *zap.Logger, r *runner.ModelRunner) (*Server, error) {
	shutdownCh := make(chan struct{})
	// Both services may observe a Shutdown RPC; they share one channel and
	// one sync.Once so only the first call actually closes it.
	var shutdownOnce sync.Once

	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	if !cfg.EnableV1 && !cfg.EnableV2 {
		return nil, fmt.Errorf("at least one of ENABLE_V1, ENABLE_V2 must be true")
	}

	if cfg.EnableV1 {
		metadata, err := service.LoadModelMetadata(cfg.ModelMetadataPath, cfg.ModelDir)
		if err != nil {
			return nil, fmt.Errorf("loading v1 model metadata: %w", err)
		}
		v1 := &service.V1Service{
			ModelIdentifier: cfg.ModelIdentifier,
			ModelVersion:    cfg.ModelVersion,
			ModelMetadata:   metadata,
			Runner:          r,
			Log:             log,
			ShutdownCh:      shutdownCh,
			ShutdownOnce:    &shutdownOnce,
		}
		service.RegisterV1(grpcServer, v1)
		healthSrv.SetServingStatus("modzy.ModzyModel", healthpb.HealthCheckResponse_SERVING)
	}

	if cfg.EnableV2 {
		containerInfo, err := service.LoadContainerInfo(cfg.ContainerMetadataPath, cfg.ModelDir)
		if err != nil {
			return nil, fmt.Errorf("loading v2 container info: %w", err)
		}
		v2 := &service.V2Service{
			ModelIdentifier: cfg.ModelIdentifier,
			ModelVersion:    cfg.ModelVersion,
			ContainerInfo:   containerInfo,
			Runner:          r,
			Log:             log,
			ShutdownCh:      shutdownCh,
			ShutdownOnce:    &shutdownOnce,
		}
		service.RegisterV2(grpcServer, v2)
		healthSrv.SetServingStatus("openmodel.v2.InferenceService", healthpb.HealthCheckResponse_SERVING)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	return &Server{
		cfg:        cfg,
		log:        log,
		grpcServer: grpcServer,
		httpServer: &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", cfg.MetricsPort), Handler: mux},
		shutdownCh: shutdownCh,
	}, nil
}

// Run starts both listeners and blocks until a shutdown is triggered by
// either SIGTERM/SIGINT or a gRPC Shutdown call on either model service.
// A Shutdown call drains both servers gracefully; a signal stops the gRPC
// server immediately and returns without draining.
func (s *Server) Run() error {
	modelAddr := fmt.Sprintf("0.0.0.0:%d", s.cfg.ModelPort)
	lis, err := net.Listen("tcp", modelAddr)
	if err != nil {
		return fmt.Errorf("binding model listener on %s: %w", modelAddr, err)
	}

	grpcErrCh := make(chan error, 1)
	go func() {
		s.log.Info("model server listening", zap.String("addr", modelAddr))
		grpcErrCh <- s.grpcServer.Serve(lis)
	}()

	httpErrCh := make(chan error, 1)
	go func() {
		s.log.Info("metrics server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			httpErrCh <- err
			return
		}
		httpErrCh <- nil
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, os.Interrupt)

	select {
	case sig := <-sigCh:
		s.log.Info("received shutdown signal", zap.String("signal", sig.String()))
		s.grpcServer.Stop()
		s.log.Info("servers have shut down")
		return nil
	case <-s.shutdownCh:
		s.log.Info("received shutdown request via gRPC")
	case err := <-grpcErrCh:
		if err != nil {
			return fmt.Errorf("model server exited: %w", err)
		}
		return nil
	}

	// Only the RPC-triggered path drains gracefully: give in-flight calls a
	// moment to land before refusing new ones and waiting for the rest.
	time.Sleep(1 * time.Second)
	s.grpcServer.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Warn("metrics server did not shut down cleanly", zap.Error(err))
	}

	s.log.Info("servers have shut down")
	return nil
}
