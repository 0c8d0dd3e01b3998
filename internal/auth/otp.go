package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpTTL       = 5 * time.Minute
	otpKeyPrefix = "otp:"
)

// OTPStore holds one live code per phone number. A new Issue supersedes any
// prior entry; a successful Verify consumes the entry.
type OTPStore interface {
	Issue(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) (bool, error)
	Invalidate(ctx context.Context, phone string) error
}

// generateCode returns a uniform random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// RedisOTPStore keeps codes in Redis with a 5-minute TTL. Only a bcrypt hash
// of the code is stored; expiry is enforced by the key TTL.
type RedisOTPStore struct {
	cache *redis.Client
}

// NewRedisOTPStore builds a Redis-backed OTP store.
func NewRedisOTPStore(cache *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{cache: cache}
}

func (s *RedisOTPStore) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	if err := s.cache.Set(ctx, otpKeyPrefix+phone, hash, otpTTL).Err(); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return code, nil
}

func (s *RedisOTPStore) Verify(ctx context.Context, phone, code string) (bool, error) {
	hash, err := s.cache.Get(ctx, otpKeyPrefix+phone).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load otp: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		// Wrong code must not consume the entry.
		return false, nil
	}
	if err := s.cache.Del(ctx, otpKeyPrefix+phone).Err(); err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	return true, nil
}

func (s *RedisOTPStore) Invalidate(ctx context.Context, phone string) error {
	return s.cache.Del(ctx, otpKeyPrefix+phone).Err()
}
