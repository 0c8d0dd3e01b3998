package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type memoryOTPEntry struct {
	hash      []byte
	expiresAt time.Time
}

// MemoryOTPStore is a mutex-guarded in-process store used in tests and in
// Redis-less development. Stale entries are never matched and get overwritten
// by the next Issue; there is no background sweep.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryOTPEntry
	now     func() time.Time
}

// NewMemoryOTPStore builds an in-memory OTP store.
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]memoryOTPEntry), now: time.Now}
}

func (s *MemoryOTPStore) Issue(_ context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.entries[phone] = memoryOTPEntry{hash: hash, expiresAt: s.now().Add(otpTTL)}
	s.mu.Unlock()
	return code, nil
}

func (s *MemoryOTPStore) Verify(_ context.Context, phone, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[phone]
	if !ok {
		return false, nil
	}
	if !s.now().Before(entry.expiresAt) {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword(entry.hash, []byte(code)) != nil {
		return false, nil
	}
	delete(s.entries, phone)
	return true, nil
}

func (s *MemoryOTPStore) Invalidate(_ context.Context, phone string) error {
	s.mu.Lock()
	delete(s.entries, phone)
	s.mu.Unlock()
	return nil
}
