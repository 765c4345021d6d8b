package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dfryer1193/memestack/image/domain"
	"github.com/dfryer1193/memestack/shared/errs"
)

var _ domain.StorageClient = (*MemoryStorageClient)(nil)

// MemoryStorageClient keeps base64 payloads in memory. It backs IMAGE_STORAGE=memory and tests.
type MemoryStorageClient struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorageClient() *MemoryStorageClient {
	return &MemoryStorageClient{
		data: make(map[string]string),
	}
}

func (m *MemoryStorageClient) CreateData(_ context.Context, key string, b64Data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = b64Data
	return nil
}

func (m *MemoryStorageClient) RetrieveData(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b64Data, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("key %s does not exist: %w", key, errs.ErrNotFound)
	}
	return b64Data, nil
}

func (m *MemoryStorageClient) DeleteData(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; !ok {
		return fmt.Errorf("key %s does not exist: %w", key, errs.ErrNotFound)
	}
	delete(m.data, key)
	return nil
}
