package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SubscriptionMetadata is the typed shape mirrored onto the identity
// provider's public user metadata so the client can render subscription state
// without a ledger round trip. The ledger row is authoritative; this copy is
// best-effort and may lag.
type SubscriptionMetadata struct {
	SubscriptionType     string     `json:"subscription_type,omitempty"`
	SubscriptionStart    *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd      *time.Time `json:"subscription_end,omitempty"`
	NextPointsCredit     *time.Time `json:"next_points_credit,omitempty"`
	CancelAtPeriodEnd    bool       `json:"cancel_at_period_end,omitempty"`
	PointsPerCredit      int        `json:"points_per_credit,omitempty"`
	StripeSubscriptionID string     `json:"stripe_subscription_id,omitempty"`
	StripeCustomerID     string     `json:"stripe_customer_id,omitempty"`
}

// MetadataWriter mirrors subscription state onto the identity provider.
type MetadataWriter interface {
	UpdateSubscriptionMetadata(ctx context.Context, userID string, meta *SubscriptionMetadata) error
	MarkCancelAtPeriodEnd(ctx context.Context, userID string) error
	ClearSubscriptionMetadata(ctx context.Context, userID string) error
}

// Client is a thin REST wrapper for the identity provider's admin API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new identity provider API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type metadataPatch struct {
	PublicMetadata any `json:"public_metadata"`
}

// UpdateSubscriptionMetadata replaces the user's public subscription metadata.
func (c *Client) UpdateSubscriptionMetadata(ctx context.Context, userID string, meta *SubscriptionMetadata) error {
	return c.do(ctx, http.MethodPatch, "/users/"+userID+"/metadata", metadataPatch{PublicMetadata: meta}, nil)
}

// MarkCancelAtPeriodEnd merges the cancellation flag into the user's metadata
// without discarding the rest of it.
func (c *Client) MarkCancelAtPeriodEnd(ctx context.Context, userID string) error {
	var current struct {
		PublicMetadata map[string]any `json:"public_metadata"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+userID, nil, &current); err != nil {
		return fmt.Errorf("get user metadata: %w", err)
	}
	if current.PublicMetadata == nil {
		current.PublicMetadata = map[string]any{}
	}
	current.PublicMetadata["cancel_at_period_end"] = true
	return c.do(ctx, http.MethodPatch, "/users/"+userID+"/metadata", metadataPatch{PublicMetadata: current.PublicMetadata}, nil)
}

// ClearSubscriptionMetadata removes all mirrored subscription fields.
func (c *Client) ClearSubscriptionMetadata(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPatch, "/users/"+userID+"/metadata", metadataPatch{PublicMetadata: map[string]any{}}, nil)
}

// do executes an HTTP request against the identity API and decodes the response.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("identity API %s %s: status %d: %s", method, path, resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
