// Package cache holds the TTL'd session cache keyed by client IP. It is a
// performance and abuse-mitigation layer only: entries may vanish at any time
// and the relational store stays authoritative, so losing the cache can never
// lose points.
package cache

import (
	"context"
	"errors"
	"time"
)

const (
	// SessionTTL is how long a cached session entry lives.
	SessionTTL = 7 * 24 * time.Hour

	// RateWindow is the rolling window for the per-IP request counter.
	RateWindow = time.Hour

	// MaxRequestsPerWindow is the per-IP request ceiling inside RateWindow.
	MaxRequestsPerWindow = 100
)

// ErrCacheMiss indicates no entry exists for the key.
var ErrCacheMiss = errors.New("cache miss")

// Entry is the cached projection of an anonymous session.
type Entry struct {
	SessionID  int       `json:"session_id"`
	Token      string    `json:"token"`
	IPAddress  string    `json:"ip_address"`
	LastAccess time.Time `json:"last_access"`
}

// Store is the session cache boundary.
type Store interface {
	// GetSession returns the cached entry for an IP, or ErrCacheMiss.
	GetSession(ctx context.Context, ip string) (*Entry, error)

	// GetByToken returns the cached entry for a session token, or ErrCacheMiss.
	GetByToken(ctx context.Context, token string) (*Entry, error)

	// PutSession stores the entry under both the IP and token keys with SessionTTL.
	PutSession(ctx context.Context, entry *Entry) error

	// IncrRequests bumps the rolling per-IP request counter and returns the
	// count within the current window.
	IncrRequests(ctx context.Context, ip string) (int64, error)

	// InvalidateSession drops the entry for a token (and its IP mapping).
	InvalidateSession(ctx context.Context, token string) error
}
