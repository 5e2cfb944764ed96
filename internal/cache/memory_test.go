package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryPutAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	entry := &Entry{SessionID: 7, Token: "tok-1", IPAddress: "1.2.3.4", LastAccess: time.Now()}
	if err := m.PutSession(ctx, entry); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.GetSession(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("get by ip: %v", err)
	}
	if got.SessionID != 7 || got.Token != "tok-1" {
		t.Errorf("entry = %+v", got)
	}

	got, err = m.GetByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if got.IPAddress != "1.2.3.4" {
		t.Errorf("ip = %q", got.IPAddress)
	}
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory()
	if _, err := m.GetSession(context.Background(), "9.9.9.9"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.SetClock(func() time.Time { return now })

	m.PutSession(ctx, &Entry{SessionID: 1, Token: "tok-2", IPAddress: "2.2.2.2"})

	m.SetClock(func() time.Time { return now.Add(SessionTTL + time.Minute) })
	if _, err := m.GetSession(ctx, "2.2.2.2"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("err = %v, want ErrCacheMiss after TTL", err)
	}
}

func TestMemoryRequestCounterWindow(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	now := time.Now()
	m.SetClock(func() time.Time { return now })

	for i := 1; i <= 3; i++ {
		count, err := m.IncrRequests(ctx, "3.3.3.3")
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if count != int64(i) {
			t.Errorf("count = %d, want %d", count, i)
		}
	}

	// A new window resets the counter.
	m.SetClock(func() time.Time { return now.Add(RateWindow + time.Minute) })
	count, err := m.IncrRequests(ctx, "3.3.3.3")
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if count != 1 {
		t.Errorf("count after window reset = %d, want 1", count)
	}
}

func TestMemoryInvalidate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.PutSession(ctx, &Entry{SessionID: 1, Token: "tok-3", IPAddress: "4.4.4.4"})
	if err := m.InvalidateSession(ctx, "tok-3"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, err := m.GetByToken(ctx, "tok-3"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("token still cached after invalidate")
	}
	if _, err := m.GetSession(ctx, "4.4.4.4"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("ip still cached after invalidate")
	}
}
