// Command buildserver runs the Remote Build Orchestrator: it accepts model
// build contexts over HTTP, stages them in a node-local cache, and drives a
// Kubernetes Job through to completion.
package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"chassisml.io/coreservice/internal/buildserver/config"
	"chassisml.io/coreservice/internal/buildserver/contextcache"
	"chassisml.io/coreservice/internal/buildserver/httpapi"
	"chassisml.io/coreservice/internal/buildserver/k8sclient"
	"chassisml.io/coreservice/internal/buildserver/manager"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	clientset, namespace, err := k8sclient.NewClientAndResolvedNamespace(cfg.BuildNamespace)
	if err != nil {
		logger.Fatal("could not initialize kubernetes client", zap.Error(err))
	}

	cache := contextcache.New(cfg.ContextsDir(), cfg.PodName, cfg.ServiceName, cfg.ContextPort, logger)

	state := &manager.ServiceState{
		Clientset: clientset,
		Namespace: namespace,
		Cache:     cache,
		Config:    cfg,
		Log:       logger,
	}

	router := httpapi.NewRouter(state)

	addr := fmt.Sprintf(":%d", cfg.ContextPort)
	logger.Info("build orchestrator listening", zap.String("addr", addr), zap.String("namespace", namespace))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("http server exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
