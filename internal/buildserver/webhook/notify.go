// Package webhook delivers the build-completion notification. The wire
// format was unspecified upstream; this is the resolution: a small JSON
// object POSTed with a bounded timeout.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Payload is the completion notification body.
type Payload struct {
	BuildID  string `json:"build_id"`
	Success  bool   `json:"success"`
	ImageTag string `json:"image_tag,omitempty"`
	Error    string `json:"error,omitempty"`
}

var client = &http.Client{Timeout: 10 * time.Second}

// Notify POSTs payload as JSON to url. Callers are expected to log and
// discard any error; webhook delivery failures never fail a build.
func Notify(ctx context.Context, url string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
