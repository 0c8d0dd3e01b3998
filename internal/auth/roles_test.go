package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/littleoaks/preschool-api/internal/users"
)

const allowListed = "+911234567890"

func newTestResolver(t *testing.T, seed ...users.User) *Resolver {
	t.Helper()
	repo := users.NewMemoryRepository()
	for _, u := range seed {
		if err := repo.Create(context.Background(), u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return NewResolver([]string{allowListed}, repo)
}

func TestPrecheckAdminRequiresAllowList(t *testing.T) {
	r := newTestResolver(t)
	ctx := context.Background()

	if err := r.PrecheckRole(ctx, allowListed, users.RoleAdmin); err != nil {
		t.Fatalf("allow-listed admin precheck: %v", err)
	}
	if err := r.PrecheckRole(ctx, "+919999999999", users.RoleAdmin); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected role mismatch, got %v", err)
	}
}

func TestPrecheckDistinguishesBlockedFromMismatch(t *testing.T) {
	r := newTestResolver(t,
		users.User{ID: "u1", Phone: "+917000000001", Role: users.RoleTeacher, Active: false, CreatedAt: time.Now()},
	)
	ctx := context.Background()

	if err := r.PrecheckRole(ctx, "+917000000001", users.RoleTeacher); !errors.Is(err, ErrAccountBlocked) {
		t.Fatalf("expected blocked, got %v", err)
	}
	if err := r.PrecheckRole(ctx, "+917000000002", users.RoleTeacher); !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected mismatch for unknown phone, got %v", err)
	}
}

func TestPrecheckSkippedWithoutDeclaredRole(t *testing.T) {
	r := newTestResolver(t)
	if err := r.PrecheckRole(context.Background(), "+917000000003", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestResolveFinalRoleAllowListWinsOverStoredRecord(t *testing.T) {
	r := newTestResolver(t,
		users.User{ID: "u1", Name: "Priya", Phone: allowListed, Role: users.RoleTeacher, Active: true, CreatedAt: time.Now()},
	)

	id, err := r.ResolveFinalRole(context.Background(), allowListed)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != users.RoleAdmin {
		t.Fatalf("expected admin, got %s", id.Role)
	}
	// The stored row still contributes identity details.
	if id.UserID != "u1" || id.Name != "Priya" {
		t.Fatalf("expected stored id/name, got %+v", id)
	}
}

func TestResolveFinalRoleGuardianFallback(t *testing.T) {
	r := newTestResolver(t)

	id, err := r.ResolveFinalRole(context.Background(), "+917000000004")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != users.RoleParent || id.UserID != "" || !id.Active {
		t.Fatalf("expected active parent fallback, got %+v", id)
	}
}

func TestResolveFederatedRequiresRecord(t *testing.T) {
	r := newTestResolver(t,
		users.User{ID: "u1", Phone: "+917000000005", Role: users.RoleParent, Active: false, CreatedAt: time.Now()},
	)
	ctx := context.Background()

	if _, err := r.ResolveFederated(ctx, "+917000000006"); !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected not registered, got %v", err)
	}
	if _, err := r.ResolveFederated(ctx, "+917000000005"); !errors.Is(err, ErrAccountBlocked) {
		t.Fatalf("expected blocked, got %v", err)
	}

	id, err := r.ResolveFederated(ctx, allowListed)
	if err != nil {
		t.Fatalf("allow-listed federated resolve: %v", err)
	}
	if id.Role != users.RoleAdmin {
		t.Fatalf("expected admin, got %s", id.Role)
	}
}
