package persistence

import (
	"context"
	"sync"

	"github.com/dfryer1193/memestack/storage/domain"
)

var _ domain.BlobStore = (*MemoryBlobStore)(nil)

// MemoryBlobStore keeps blobs in process memory. It backs STORAGE_BACKEND=memory and tests.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string][]byte),
	}
}

func (m *MemoryBlobStore) Ensure(context.Context) error { return nil }

func (m *MemoryBlobStore) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *MemoryBlobStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), data...), nil
}

func (m *MemoryBlobStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[key]; !ok {
		return domain.ErrKeyNotFound
	}
	delete(m.blobs, key)
	return nil
}
