package worker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSubmit(t *testing.T) {
	var gotAuth string
	var gotReq submitRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/run" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]string{"id": "job-abc", "status": "IN_QUEUE"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rw_test_key", "https://example.com/api/worker/callback")
	id, err := c.Submit(context.Background(), Job{
		Prompt:   "a fox in the snow",
		Settings: ModelSettings{Model: "flux", Width: 1024, Height: 768, Seed: 42},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if id != "job-abc" {
		t.Errorf("job id = %q, want job-abc", id)
	}
	if gotAuth != "rw_test_key" {
		t.Errorf("auth header = %q, want rw_test_key", gotAuth)
	}
	if gotReq.Webhook != "https://example.com/api/worker/callback" {
		t.Errorf("webhook = %q", gotReq.Webhook)
	}
	if gotReq.Input.Prompt != "a fox in the snow" {
		t.Errorf("prompt = %q", gotReq.Input.Prompt)
	}
	if gotReq.Input.Settings.Width != 1024 {
		t.Errorf("width = %d, want 1024", gotReq.Input.Settings.Width)
	}
}

func TestClientSubmit_WorkerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no capacity"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rw_test_key", "https://example.com/cb")
	_, err := c.Submit(context.Background(), Job{Prompt: "x"})
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("err = %v, want ErrDispatchFailed", err)
	}
}

func TestClientSubmit_EmptyJobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "IN_QUEUE"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "rw_test_key", "https://example.com/cb")
	_, err := c.Submit(context.Background(), Job{Prompt: "x"})
	if !errors.Is(err, ErrDispatchFailed) {
		t.Fatalf("err = %v, want ErrDispatchFailed", err)
	}
}
