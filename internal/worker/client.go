package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Dispatcher submits generation jobs to the external worker. The call is
// fire-and-forget: the returned id is only an acknowledgment, results arrive
// later on the callback URL.
type Dispatcher interface {
	Submit(ctx context.Context, job Job) (string, error)
}

// Client is a thin REST wrapper for the generation worker API.
type Client struct {
	baseURL     string
	apiKey      string
	callbackURL string
	httpClient  *http.Client
}

// NewClient creates a new generation worker client.
func NewClient(baseURL, apiKey, callbackURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		callbackURL: callbackURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submit sends the job to the worker's run endpoint and returns the external
// job id.
func (c *Client) Submit(ctx context.Context, job Job) (string, error) {
	body, err := json.Marshal(submitRequest{
		Input: submitInput{
			Prompt:   job.Prompt,
			Settings: job.Settings,
		},
		Webhook: c.callbackURL,
	})
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: status %d: %s", ErrDispatchFailed, resp.StatusCode, respBody)
	}

	var ack submitResponse
	if err := json.Unmarshal(respBody, &ack); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if ack.ID == "" {
		return "", fmt.Errorf("%w: worker returned no job id", ErrDispatchFailed)
	}

	return ack.ID, nil
}
