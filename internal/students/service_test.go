package students

import (
	"context"
	"errors"
	"testing"
)

func TestEnrollValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Enroll(ctx, Input{ParentPhone: "123"}); err == nil {
		t.Fatal("expected error without name")
	}
	if _, err := svc.Enroll(ctx, Input{Name: "Aarav"}); err == nil {
		t.Fatal("expected error without parent phone")
	}
}

func TestEnrollAndScopedListing(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	teacher := "t1"
	if _, err := svc.Enroll(ctx, Input{Name: "Aarav", ClassName: "LKG-A", TeacherID: &teacher, ParentName: "Rohit", ParentPhone: "+917000000001"}); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := svc.Enroll(ctx, Input{Name: "Diya", ClassName: "UKG-B", ParentName: "Sneha", ParentPhone: "+917000000002"}); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 students, got %d", len(all))
	}

	roster, err := svc.Roster(ctx, teacher)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Aarav" {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	children, err := svc.Children(ctx, "+917000000002")
	if err != nil {
		t.Fatalf("children: %v", err)
	}
	if len(children) != 1 || children[0].Name != "Diya" {
		t.Fatalf("unexpected children: %+v", children)
	}
}

func TestUpdateKeepsUnsetFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	s, err := svc.Enroll(ctx, Input{Name: "Aarav", ClassName: "LKG-A", ParentName: "Rohit", ParentPhone: "+917000000001"})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}

	updated, err := svc.Update(ctx, s.ID, Input{ClassName: "UKG-A"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ClassName != "UKG-A" {
		t.Fatalf("expected class updated, got %q", updated.ClassName)
	}
	if updated.Name != "Aarav" || updated.ParentPhone != "+917000000001" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated)
	}
}

func TestRemove(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	s, err := svc.Enroll(ctx, Input{Name: "Aarav", ParentPhone: "123"})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.Remove(ctx, s.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := svc.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
