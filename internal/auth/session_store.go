package auth

import (
	"context"
	"fmt"
	"time"

	"learnhub/internal/cache"
)

const sessionKeyPrefix = "session_token:"

// SessionStore keeps the single active session token per user.
type SessionStore interface {
	Get(ctx context.Context, userID uint) (string, error)
	Save(ctx context.Context, userID uint, token string) error
	Delete(ctx context.Context, userID uint) error
}

// RedisSessionStore stores session tokens in Redis keyed by user identifier.
//
// Login performs an unlocked check-then-set against this store, so two
// concurrent logins for the same user can race and each issue a token. The
// token-reuse behavior is best effort, not a strict single-session guarantee.
type RedisSessionStore struct {
	cache *cache.Client
	ttl   time.Duration
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store with the given token TTL.
func NewRedisSessionStore(cache *cache.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{cache: cache, ttl: ttl}
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, userID)
}

// Get returns the active token for the user, or "" when none exists.
func (s *RedisSessionStore) Get(ctx context.Context, userID uint) (string, error) {
	data, err := s.cache.Get(ctx, sessionKey(userID))
	if err != nil || data == nil {
		return "", nil
	}
	return string(data), nil
}

// Save stores the token for the user with the configured TTL.
func (s *RedisSessionStore) Save(ctx context.Context, userID uint, token string) error {
	return s.cache.Set(ctx, sessionKey(userID), []byte(token), s.ttl)
}

// Delete removes the user's session token. Deleting an absent key is a no-op.
func (s *RedisSessionStore) Delete(ctx context.Context, userID uint) error {
	return s.cache.Delete(ctx, sessionKey(userID))
}
