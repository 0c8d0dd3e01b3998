package users

import (
	"context"
	"errors"
	"testing"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Role: RoleTeacher}); err == nil {
		t.Fatal("expected error without phone")
	}
	if _, err := svc.Create(ctx, Input{Phone: "123", Role: "principal"}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	u, err := svc.Create(context.Background(), Input{Name: "Asha", Phone: "+917000000001", Role: RoleTeacher})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !u.Active {
		t.Fatal("expected new user to be active")
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestSetActiveBlocksAndUnblocks(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Create(ctx, Input{Phone: "+917000000001", Role: RoleParent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("block: %v", err)
	}
	got, err := svc.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active {
		t.Fatal("expected blocked user")
	}

	if err := svc.SetActive(ctx, u.ID, true); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	got, err = svc.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Active {
		t.Fatal("expected unblocked user")
	}

	if err := svc.SetActive(ctx, "missing", false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRejectsUnknownRole(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	u, err := svc.Create(ctx, Input{Phone: "123", Role: RoleParent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, u.ID, Input{Role: "janitor"}); err == nil {
		t.Fatal("expected error for unknown role")
	}

	updated, err := svc.Update(ctx, u.ID, Input{Role: RoleTeacher, Name: "Ravi"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != RoleTeacher || updated.Name != "Ravi" {
		t.Fatalf("unexpected user: %+v", updated)
	}
}
