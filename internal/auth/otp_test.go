package auth

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryOTPIssueVerifyOnce(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "+911234567890")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	ok, err := store.Verify(ctx, "+911234567890", code)
	if err != nil || !ok {
		t.Fatalf("expected verify success, got ok=%v err=%v", ok, err)
	}

	// Single use: the same code must not verify twice.
	ok, err = store.Verify(ctx, "+911234567890", code)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if ok {
		t.Fatal("expected second verify to fail")
	}
}

func TestMemoryOTPWrongCodeDoesNotConsume(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if ok, _ := store.Verify(ctx, "123", wrong); ok {
		t.Fatal("expected wrong code to fail")
	}

	// The entry survives a failed attempt.
	if ok, _ := store.Verify(ctx, "123", code); !ok {
		t.Fatal("expected correct code to still verify")
	}
}

func TestMemoryOTPExpiry(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	base := time.Now()
	current := base
	store.now = func() time.Time { return current }

	code, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Exactly at the expiry instant the code is already unusable.
	current = base.Add(otpTTL)
	if ok, _ := store.Verify(ctx, "123", code); ok {
		t.Fatal("expected expired code to fail")
	}
}

func TestMemoryOTPReissueSupersedes(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	first, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("reissue: %v", err)
	}

	if first != second {
		if ok, _ := store.Verify(ctx, "123", first); ok {
			t.Fatal("expected superseded code to fail")
		}
	}
	if ok, _ := store.Verify(ctx, "123", second); !ok {
		t.Fatal("expected latest code to verify")
	}
}

func TestMemoryOTPInvalidate(t *testing.T) {
	store := NewMemoryOTPStore()
	ctx := context.Background()

	code, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := store.Invalidate(ctx, "123"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if ok, _ := store.Verify(ctx, "123", code); ok {
		t.Fatal("expected invalidated code to fail")
	}
}

func setupRedisOTP(t *testing.T) (*RedisOTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		cache.Close()
		mr.Close()
	})
	return NewRedisOTPStore(cache), mr
}

func TestRedisOTPIssueVerifyOnce(t *testing.T) {
	store, _ := setupRedisOTP(t)
	ctx := context.Background()

	code, err := store.Issue(ctx, "+911234567890")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if ok, err := store.Verify(ctx, "+911234567890", code); err != nil || !ok {
		t.Fatalf("expected verify success, got ok=%v err=%v", ok, err)
	}
	if ok, _ := store.Verify(ctx, "+911234567890", code); ok {
		t.Fatal("expected second verify to fail")
	}
}

func TestRedisOTPExpiry(t *testing.T) {
	store, mr := setupRedisOTP(t)
	ctx := context.Background()

	code, err := store.Issue(ctx, "123")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	mr.FastForward(otpTTL + time.Second)

	if ok, _ := store.Verify(ctx, "123", code); ok {
		t.Fatal("expected expired code to fail")
	}
}
