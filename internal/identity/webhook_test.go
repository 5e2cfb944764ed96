package identity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"
)

const testSecret = "whsec_dGVzdC1zaWduaW5nLWtleS0xMjM0NTY3OA=="

func signedHeaders(t *testing.T, payload []byte, id string, ts time.Time) WebhookHeaders {
	t.Helper()
	timestamp := fmt.Sprintf("%d", ts.Unix())
	sig, err := SignWebhook(payload, id, timestamp, testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return WebhookHeaders{ID: id, Timestamp: timestamp, Signature: sig}
}

func TestVerifyWebhook_Valid(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_2abc","public_metadata":{"session_id":"tok-123"}}}`)
	headers := signedHeaders(t, payload, "msg_1", time.Now())

	event, err := VerifyWebhook(payload, headers, testSecret)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if event.Type != "user.created" {
		t.Errorf("type = %q, want user.created", event.Type)
	}
	if event.Data.ID != "user_2abc" {
		t.Errorf("user id = %q, want user_2abc", event.Data.ID)
	}
	if event.Data.PublicMetadata.SessionToken != "tok-123" {
		t.Errorf("session token = %q, want tok-123", event.Data.PublicMetadata.SessionToken)
	}
}

func TestVerifyWebhook_MultipleSignatures(t *testing.T) {
	payload := []byte(`{"type":"user.updated","data":{"id":"user_2abc"}}`)
	headers := signedHeaders(t, payload, "msg_2", time.Now())

	bogus := "v1," + base64.StdEncoding.EncodeToString([]byte("wrong-signature-bytes-here-1234"))
	headers.Signature = bogus + " " + headers.Signature

	if _, err := VerifyWebhook(payload, headers, testSecret); err != nil {
		t.Fatalf("verify with extra signature entry: %v", err)
	}
}

func TestVerifyWebhook_BadSignature(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_2abc"}}`)
	headers := signedHeaders(t, payload, "msg_3", time.Now())
	headers.Signature = "v1," + base64.StdEncoding.EncodeToString([]byte("tampered"))

	_, err := VerifyWebhook(payload, headers, testSecret)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyWebhook_TamperedPayload(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_2abc"}}`)
	headers := signedHeaders(t, payload, "msg_4", time.Now())

	_, err := VerifyWebhook([]byte(`{"type":"user.created","data":{"id":"user_evil"}}`), headers, testSecret)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("err = %v, want ErrInvalidSignature", err)
	}
}

func TestVerifyWebhook_StaleTimestamp(t *testing.T) {
	payload := []byte(`{"type":"user.created","data":{"id":"user_2abc"}}`)
	headers := signedHeaders(t, payload, "msg_5", time.Now().Add(-time.Hour))

	_, err := VerifyWebhook(payload, headers, testSecret)
	if !errors.Is(err, ErrStaleTimestamp) {
		t.Fatalf("err = %v, want ErrStaleTimestamp", err)
	}
}

func TestVerifyWebhook_MissingHeaders(t *testing.T) {
	_, err := VerifyWebhook([]byte(`{}`), WebhookHeaders{}, testSecret)
	if !errors.Is(err, ErrMissingHeaders) {
		t.Fatalf("err = %v, want ErrMissingHeaders", err)
	}
}
