package worker

import (
	"context"
	"fmt"
	"sync"
)

// MockDispatcher is a test double for the Dispatcher interface.
type MockDispatcher struct {
	mu     sync.Mutex
	jobs   []Job
	nextID int
	Fail   bool // when true, Submit returns ErrDispatchFailed
}

// NewMock creates a new MockDispatcher.
func NewMock() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Submit(ctx context.Context, job Job) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail {
		return "", ErrDispatchFailed
	}

	m.nextID++
	m.jobs = append(m.jobs, job)
	return fmt.Sprintf("mock-job-%d", m.nextID), nil
}

// Submitted returns a copy of all jobs submitted so far.
func (m *MockDispatcher) Submitted() []Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Job(nil), m.jobs...)
}
