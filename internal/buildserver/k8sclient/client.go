// Package k8sclient resolves a Kubernetes REST client the same way an
// in-cluster controller would: kubeconfig first, in-cluster config as the
// fallback, with the active context's namespace used as the default.
package k8sclient

import (
	"fmt"

	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// NewClientAndResolvedNamespace returns a Clientset plus the namespace it
// should operate in. An empty ns defers to the active kubeconfig context.
func NewClientAndResolvedNamespace(ns string) (*kubernetes.Clientset, string, error) {
	var err error
	if ns == "" {
		ns, err = GetDefaultNamespace()
		if err != nil {
			return nil, ns, err
		}
	}

	client, err := NewClientset()
	return client, ns, err
}

// NewClientset builds a Clientset from the resolved REST config.
func NewClientset() (*kubernetes.Clientset, error) {
	restConfig, err := GetRESTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return kubernetes.NewForConfig(restConfig)
}

// GetRESTConfig resolves the cluster REST config, preferring a kubeconfig
// (local development, out-of-cluster builds) and falling back to the
// in-cluster service account config when no kubeconfig is discoverable.
func GetRESTConfig() (*rest.Config, error) {
	cfg, err := GetClientConfig().ClientConfig()
	if err == nil {
		return cfg, nil
	}
	if inClusterConfig, icErr := rest.InClusterConfig(); icErr == nil {
		return inClusterConfig, nil
	}
	return nil, err
}

// GetDefaultNamespace returns the namespace of the active kubeconfig context.
func GetDefaultNamespace() (namespace string, err error) {
	namespace, _, err = GetClientConfig().Namespace()
	if namespace == "" {
		namespace = "default"
	}
	return
}

func GetClientConfig() clientcmd.ClientConfig {
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{})
}
