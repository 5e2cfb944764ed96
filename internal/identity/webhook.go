package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Webhook verification for identity-provider lifecycle events. The provider
// signs `{id}.{timestamp}.{body}` with HMAC-SHA256 using the base64 key behind
// the whsec_ prefix, and sends one or more `v1,<base64 sig>` entries in the
// signature header.

const signatureTolerance = 5 * time.Minute

var (
	// ErrMissingHeaders indicates one of the id/timestamp/signature headers was absent.
	ErrMissingHeaders = errors.New("missing webhook signature headers")

	// ErrInvalidSignature indicates no signature in the header matched the payload.
	ErrInvalidSignature = errors.New("webhook signature mismatch")

	// ErrStaleTimestamp indicates the signed timestamp is outside the tolerance window.
	ErrStaleTimestamp = errors.New("webhook timestamp outside tolerance")
)

// WebhookHeaders carries the three signature headers from an inbound event.
type WebhookHeaders struct {
	ID        string
	Timestamp string
	Signature string
}

// Event is an identity-provider lifecycle event.
type Event struct {
	Type string    `json:"type"`
	Data EventUser `json:"data"`
}

// EventUser is the user payload inside a lifecycle event.
type EventUser struct {
	ID             string `json:"id"`
	PublicMetadata struct {
		// SessionToken is the anonymous session the browser carried at
		// signup time, written by the frontend for promotion.
		SessionToken string `json:"session_id"`
	} `json:"public_metadata"`
}

// VerifyWebhook checks the payload's HMAC signature and freshness, and parses
// the event. It performs no side effects; callers mutate state only after a
// successful return.
func VerifyWebhook(payload []byte, headers WebhookHeaders, secret string) (*Event, error) {
	if headers.ID == "" || headers.Timestamp == "" || headers.Signature == "" {
		return nil, ErrMissingHeaders
	}

	ts, err := strconv.ParseInt(headers.Timestamp, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	if d := time.Since(time.Unix(ts, 0)); d > signatureTolerance || d < -signatureTolerance {
		return nil, ErrStaleTimestamp
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return nil, fmt.Errorf("decode webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", headers.ID, headers.Timestamp)
	mac.Write(payload)
	expected := mac.Sum(nil)

	if !signatureMatches(headers.Signature, expected) {
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("parse event: %w", err)
	}
	return &event, nil
}

// signatureMatches checks every space-separated `version,sig` entry against the
// expected MAC in constant time.
func signatureMatches(header string, expected []byte) bool {
	for _, entry := range strings.Fields(header) {
		version, sig, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return true
		}
	}
	return false
}

// SignWebhook produces a valid `v1,<sig>` signature for the given payload.
// Used by tests and local tooling to fabricate events.
func SignWebhook(payload []byte, id, timestamp, secret string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return "", fmt.Errorf("decode webhook secret: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
