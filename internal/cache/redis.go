package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	ipPrefix    = "ip_session:"
	tokenPrefix = "anon_session:"
	ratePrefix  = "ip_rate:"
)

// Redis is the production Store backed by a Redis server.
type Redis struct {
	rdb *redis.Client
}

// NewRedis creates a Redis cache from a connection URL.
func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{rdb: redis.NewClient(opts)}, nil
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

func (r *Redis) GetSession(ctx context.Context, ip string) (*Entry, error) {
	return r.get(ctx, ipPrefix+ip)
}

func (r *Redis) GetByToken(ctx context.Context, token string) (*Entry, error) {
	return r.get(ctx, tokenPrefix+token)
}

func (r *Redis) get(ctx context.Context, key string) (*Entry, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	return &entry, nil
}

func (r *Redis) PutSession(ctx context.Context, entry *Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	pipe := r.rdb.Pipeline()
	pipe.Set(ctx, ipPrefix+entry.IPAddress, raw, SessionTTL)
	pipe.Set(ctx, tokenPrefix+entry.Token, raw, SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// IncrRequests uses INCR with an expiry stamped on first increment, giving a
// rolling one-hour window per IP.
func (r *Redis) IncrRequests(ctx context.Context, ip string) (int64, error) {
	key := ratePrefix + ip
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := r.rdb.Expire(ctx, key, RateWindow).Err(); err != nil {
			return count, fmt.Errorf("redis expire: %w", err)
		}
	}
	return count, nil
}

func (r *Redis) InvalidateSession(ctx context.Context, token string) error {
	entry, err := r.GetByToken(ctx, token)
	if errors.Is(err, ErrCacheMiss) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.rdb.Pipeline()
	pipe.Del(ctx, tokenPrefix+token)
	pipe.Del(ctx, ipPrefix+entry.IPAddress)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
