package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/adventure-engine/pkg/storage"
)

// RedisStore keeps sessions in Redis with the idle window as key TTL,
// refreshed on every touch, so eviction is delegated to Redis.
type RedisStore struct {
	client *redis.Client
	idle   time.Duration
	logger *slog.Logger
}

var _ storage.Store = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string, idle time.Duration, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if idle <= 0 {
		idle = storage.DefaultIdleTimeout
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Connected to Redis for session storage", "url", redisURL)

	return &RedisStore{client: client, idle: idle, logger: logger}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func (s *RedisStore) Create(ctx context.Context, id string, e *storage.Entry) error {
	return s.Put(ctx, id, e)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*storage.Entry, error) {
	cmd := s.client.Get(ctx, sessionKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		s.logger.Error("Failed to load session", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var e storage.Entry
	if err := json.Unmarshal([]byte(cmd.Val()), &e); err != nil {
		s.logger.Error("Failed to unmarshal session", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Touch the key so the idle window restarts.
	if err := s.client.Expire(ctx, sessionKey(id), s.idle).Err(); err != nil {
		s.logger.Warn("Failed to refresh session TTL", "session_id", id, "error", err)
	}
	return &e, nil
}

func (s *RedisStore) Put(ctx context.Context, id string, e *storage.Entry) error {
	e.LastAccess = time.Now()
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(id), string(data), s.idle).Err(); err != nil {
		s.logger.Error("Failed to save session", "session_id", id, "error", err)
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
