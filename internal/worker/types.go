package worker

import "errors"

// ModelSettings describes how a prompt should be rendered.
type ModelSettings struct {
	Model     string `json:"model"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      int64  `json:"seed,omitempty"`
	BatchSize int    `json:"batch_size,omitempty"`
}

// Job is an outbound generation request.
type Job struct {
	Prompt   string
	Settings ModelSettings
}

// Callback statuses reported by the worker.
const (
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// ErrDispatchFailed indicates the worker rejected or failed to accept a job.
var ErrDispatchFailed = errors.New("worker dispatch failed")

// CallbackPayload is the body the worker POSTs back when a job settles.
type CallbackPayload struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output struct {
		Message string `json:"message"`
	} `json:"output"`
}

// submitRequest is the wire shape of a job submission.
type submitRequest struct {
	Input   submitInput `json:"input"`
	Webhook string      `json:"webhook"`
}

type submitInput struct {
	Prompt   string        `json:"prompt"`
	Settings ModelSettings `json:"settings"`
}

// submitResponse is the worker's acknowledgment; generation happens later and
// arrives via the callback.
type submitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
