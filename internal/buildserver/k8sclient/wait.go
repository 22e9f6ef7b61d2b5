package k8sclient

import (
	"context"
	"fmt"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/fields"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
)

// JobOutcome is the terminal classification of a watched Job.
type JobOutcome int

const (
	JobTimedOut JobOutcome = iota
	JobSucceeded
	JobFailed
)

// WaitForJobCompletion watches a single Job by name and blocks until its
// status counters show completion or the bound elapses. The watch is a
// single bounded select between the watch channel, the timeout, and the
// caller's context — never a polling loop — so the wait terminates exactly
// once regardless of how many watch events arrive.
func WaitForJobCompletion(ctx context.Context, clientset *kubernetes.Clientset, namespace, jobName string, bound time.Duration) (JobOutcome, error) {
	watcher, err := clientset.BatchV1().Jobs(namespace).Watch(ctx, metav1.ListOptions{
		FieldSelector: fields.OneTermEqualSelector("metadata.name", jobName).String(),
	})
	if err != nil {
		return JobTimedOut, fmt.Errorf("cannot watch job %s: %w", jobName, err)
	}
	defer watcher.Stop()

	timer := time.NewTimer(bound)
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.ResultChan():
			if !ok {
				return JobTimedOut, fmt.Errorf("watch channel for job %s closed before completion", jobName)
			}
			job, isJob := event.Object.(*batchv1.Job)
			if !isJob || event.Type == watch.Deleted {
				continue
			}
			if outcome, complete := classifyJob(job); complete {
				return outcome, nil
			}
		case <-timer.C:
			return JobTimedOut, nil
		case <-ctx.Done():
			return JobTimedOut, ctx.Err()
		}
	}
}

// classifyJob reads the succeeded/failed counters off a Job's status. Both
// counters rising at once is anomalous and is treated as Failed.
func classifyJob(job *batchv1.Job) (outcome JobOutcome, complete bool) {
	succeeded := job.Status.Succeeded >= 1
	failed := job.Status.Failed >= 1
	switch {
	case succeeded && failed:
		return JobFailed, true
	case failed:
		return JobFailed, true
	case succeeded:
		return JobSucceeded, true
	default:
		return JobTimedOut, false
	}
}
