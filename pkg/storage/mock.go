package storage

import (
	"context"
	"fmt"
	"sync"
)

// MockStore is a map-backed Store for tests. Optional function
// fields override individual operations to simulate failures.
type MockStore struct {
	mu      sync.Mutex
	entries map[string]*Entry

	CreateFunc func(ctx context.Context, id string, e *Entry) error
	GetFunc    func(ctx context.Context, id string) (*Entry, error)
	PutFunc    func(ctx context.Context, id string, e *Entry) error
	DeleteFunc func(ctx context.Context, id string) error
}

var _ Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{entries: make(map[string]*Entry)}
}

func (m *MockStore) Create(ctx context.Context, id string, e *Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, id, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[id]; exists {
		return fmt.Errorf("session %s already exists", id)
	}
	m.entries[id] = e
	return nil
}

func (m *MockStore) Get(ctx context.Context, id string) (*Entry, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[id], nil
}

func (m *MockStore) Put(ctx context.Context, id string, e *Entry) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, id, e)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = e
	return nil
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MockStore) Close() error { return nil }
