package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store used in tests and single-instance dev setups.
type Memory struct {
	mu       sync.Mutex
	byIP     map[string]*memEntry
	byToken  map[string]*memEntry
	counters map[string]*memCounter

	now func() time.Time
}

type memEntry struct {
	entry     Entry
	expiresAt time.Time
}

type memCounter struct {
	count    int64
	windowAt time.Time
}

// NewMemory creates a new in-memory Store.
func NewMemory() *Memory {
	return &Memory{
		byIP:     make(map[string]*memEntry),
		byToken:  make(map[string]*memEntry),
		counters: make(map[string]*memCounter),
		now:      time.Now,
	}
}

// SetClock overrides the time source for tests.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) GetSession(ctx context.Context, ip string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(m.byIP, ip)
}

func (m *Memory) GetByToken(ctx context.Context, token string) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(m.byToken, token)
}

func (m *Memory) lookup(table map[string]*memEntry, key string) (*Entry, error) {
	me, ok := table[key]
	if !ok || m.now().After(me.expiresAt) {
		return nil, ErrCacheMiss
	}
	entry := me.entry
	return &entry, nil
}

func (m *Memory) PutSession(ctx context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	me := &memEntry{entry: *entry, expiresAt: m.now().Add(SessionTTL)}
	m.byIP[entry.IPAddress] = me
	m.byToken[entry.Token] = me
	return nil
}

func (m *Memory) IncrRequests(ctx context.Context, ip string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c, ok := m.counters[ip]
	if !ok || now.Sub(c.windowAt) > RateWindow {
		c = &memCounter{windowAt: now}
		m.counters[ip] = c
	}
	c.count++
	return c.count, nil
}

func (m *Memory) InvalidateSession(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	me, ok := m.byToken[token]
	if !ok {
		return nil
	}
	delete(m.byToken, token)
	delete(m.byIP, me.entry.IPAddress)
	return nil
}
