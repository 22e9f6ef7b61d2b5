package k8sclient

import (
	"bytes"
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetJobLogs returns the logs of the first pod matching the Job's
// "job-name" label, the same selector Kubernetes itself sets on pods it
// creates for a Job. Returns "", nil if no pod is found yet.
func GetJobLogs(ctx context.Context, clientset *kubernetes.Clientset, namespace, jobName string) (string, error) {
	pods, err := clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: "job-name=" + jobName,
	})
	if err != nil {
		return "", fmt.Errorf("cannot list pods for job %s: %w", jobName, err)
	}
	if len(pods.Items) == 0 {
		return "", nil
	}

	pod := pods.Items[0]
	req := clientset.CoreV1().Pods(namespace).GetLogs(pod.Name, &corev1.PodLogOptions{})
	stream, err := req.Stream(ctx)
	if err != nil {
		return "", fmt.Errorf("cannot stream logs for pod %s: %w", pod.Name, err)
	}
	defer stream.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", fmt.Errorf("error copying logs for pod %s: %w", pod.Name, err)
	}
	return buf.String(), nil
}
