package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/internal/domain"
)

// RedisSessionStore keeps session snapshots server-side, keyed by the opaque
// token handed to the client.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) SessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.SessionKey(token), payload, s.TTL).Err()
}

// Get returns (nil, nil) for an unknown or expired token.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, s.SessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.SessionKey(token)).Err()
}
