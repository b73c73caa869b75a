// File: services/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "session:"

// ErrNotFound is returned when no live session exists for the subject.
var ErrNotFound = errors.New("session not found or expired")

// Session is the server-side login state for one account. The token itself
// is never stored; only its hash is, for bearer verification.
type Session struct {
	SubjectID string    `json:"subjectId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenHash string    `json:"tokenHash"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is the explicit session persistence boundary. All session reads and
// writes go through it; nothing touches ambient storage directly.
type Store interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context, subjectID string) (*Session, error)
	Clear(ctx context.Context, subjectID string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by the given Redis client. Entries
// expire with the session itself, so an expired entry can never be loaded.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Save(ctx context.Context, s Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refusing to save already-expired session for %s", s.SubjectID)
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+s.SubjectID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *redisStore) Load(ctx context.Context, subjectID string) (*Session, error) {
	data, err := r.client.Get(ctx, keyPrefix+subjectID).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if time.Now().After(s.ExpiresAt) {
		// Defunct entry; clear it so the caller sees a clean logged-out state.
		_ = r.client.Del(ctx, keyPrefix+subjectID).Err()
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *redisStore) Clear(ctx context.Context, subjectID string) error {
	return r.client.Del(ctx, keyPrefix+subjectID).Err()
}
