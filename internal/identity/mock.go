package identity

import (
	"context"
	"sync"
)

// MockMetadataWriter is a test double for the MetadataWriter interface.
type MockMetadataWriter struct {
	mu       sync.Mutex
	Metadata map[string]*SubscriptionMetadata
	Canceled map[string]bool
	Cleared  map[string]bool
}

// NewMockMetadataWriter creates a new MockMetadataWriter.
func NewMockMetadataWriter() *MockMetadataWriter {
	return &MockMetadataWriter{
		Metadata: make(map[string]*SubscriptionMetadata),
		Canceled: make(map[string]bool),
		Cleared:  make(map[string]bool),
	}
}

func (m *MockMetadataWriter) UpdateSubscriptionMetadata(ctx context.Context, userID string, meta *SubscriptionMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Metadata[userID] = meta
	delete(m.Cleared, userID)
	return nil
}

func (m *MockMetadataWriter) MarkCancelAtPeriodEnd(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Canceled[userID] = true
	return nil
}

func (m *MockMetadataWriter) ClearSubscriptionMetadata(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Metadata, userID)
	m.Cleared[userID] = true
	return nil
}
