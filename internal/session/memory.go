// Package session provides the store implementations behind
// storage.Store: an in-process map with idle eviction, and a
// Redis-backed store that delegates eviction to key TTLs.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// MemoryStore keeps sessions in-process. The mutex guards the map and
// every LastAccess stamp; game processing happens outside the lock, so
// sessions never block each other. A janitor goroutine sweeps idle
// entries.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*storage.Entry

	idle   time.Duration
	logger *slog.Logger
	done   chan struct{}
	once   sync.Once
}

var _ storage.Store = (*MemoryStore)(nil)

// NewMemoryStore creates a memory store and starts its eviction
// janitor. idle <= 0 uses the default idle timeout.
func NewMemoryStore(idle time.Duration, logger *slog.Logger) *MemoryStore {
	if idle <= 0 {
		idle = storage.DefaultIdleTimeout
	}
	s := &MemoryStore{
		entries: make(map[string]*storage.Entry),
		idle:    idle,
		logger:  logger,
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Create(ctx context.Context, id string, e *storage.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.entries[id]; exists {
		return fmt.Errorf("session %s already exists", id)
	}
	e.LastAccess = time.Now()
	s.entries[id] = e
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*storage.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	// An entry the janitor has not swept yet but whose idle window
	// has passed behaves exactly like an unknown session.
	if time.Since(e.LastAccess) > s.idle {
		delete(s.entries, id)
		return nil, nil
	}
	e.LastAccess = time.Now()
	return e, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, e *storage.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.LastAccess = time.Now()
	s.entries[id] = e
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Close stops the janitor. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) janitor() {
	interval := s.idle / 8
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if now.Sub(e.LastAccess) > s.idle {
			delete(s.entries, id)
			if s.logger != nil {
				s.logger.Info("Evicted idle session", "session_id", id)
			}
		}
	}
}
