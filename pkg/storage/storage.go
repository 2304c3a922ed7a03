// Package storage defines the session store contract. The store is
// the engine's only shared mutable resource; all concurrency
// discipline lives behind this interface.
package storage

import (
	"context"
	"time"

	"github.com/jwebster45206/adventure-engine/pkg/contract"
	"github.com/jwebster45206/adventure-engine/pkg/game"
	"github.com/jwebster45206/adventure-engine/pkg/gamemap"
)

// DefaultIdleTimeout is how long a session may sit untouched before
// it is evicted.
const DefaultIdleTimeout = 8 * time.Hour

// Entry is everything owned by one session: the game instance plus
// session-scoped rendering state. Entries are never shared between
// sessions.
type Entry struct {
	Instance   *game.Instance        `json:"instance"`
	Map        *gamemap.Model        `json:"map"`
	Display    contract.DisplayFlags `json:"display"`
	LastAccess time.Time             `json:"last_access"`
}

// Store is the session map. Get returns (nil, nil) for an unknown or
// expired id. Implementations serialize individual map operations but
// must let different session ids proceed in parallel.
type Store interface {
	Create(ctx context.Context, id string, e *Entry) error
	Get(ctx context.Context, id string) (*Entry, error)
	Put(ctx context.Context, id string, e *Entry) error
	Delete(ctx context.Context, id string) error
	Close() error
}
