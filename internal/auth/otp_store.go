package auth

import (
	"context"
	"time"

	"learnhub/internal/cache"
)

const otpKeyPrefix = "password_otp:"

// OTPStore holds short-lived password-reset codes keyed by email.
type OTPStore interface {
	Save(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// RedisOTPStore keeps reset codes in Redis with a TTL, so codes expire on
// their own and survive process restarts in multi-instance deployments.
type RedisOTPStore struct {
	cache *cache.Client
	ttl   time.Duration
}

var _ OTPStore = (*RedisOTPStore)(nil)

// NewRedisOTPStore creates an OTP store with the given code TTL.
func NewRedisOTPStore(cache *cache.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{cache: cache, ttl: ttl}
}

// Save stores the code for the email, replacing any previous one.
func (s *RedisOTPStore) Save(ctx context.Context, email, code string) error {
	return s.cache.Set(ctx, otpKeyPrefix+email, []byte(code), s.ttl)
}

// Get returns the stored code, or "" when none exists or it expired.
func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, error) {
	data, err := s.cache.Get(ctx, otpKeyPrefix+email)
	if err != nil || data == nil {
		return "", nil
	}
	return string(data), nil
}

// Delete removes the code after a successful reset.
func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.cache.Delete(ctx, otpKeyPrefix+email)
}
