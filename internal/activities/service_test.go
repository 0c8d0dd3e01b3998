package activities

import (
	"context"
	"errors"
	"testing"
)

func TestCreateDedupesStudentSignups(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	a, err := svc.Create(context.Background(), Input{
		Title:      "Sports Day",
		StudentIDs: []string{"s1", "s2", "s1", "", "s2"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(a.StudentIDs) != 2 {
		t.Fatalf("expected 2 unique sign-ups, got %v", a.StudentIDs)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	if _, err := svc.Create(context.Background(), Input{Title: "  "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestCreateIsAtomicAcrossSignups(t *testing.T) {
	repo := NewMemoryRepository()
	repo.KnowStudents("s1", "s2")
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Title: "Painting", StudentIDs: []string{"s1", "s9"}}); !errors.Is(err, ErrUnknownStudent) {
		t.Fatalf("expected unknown student error, got %v", err)
	}

	// Nothing was half-written.
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d activities", len(all))
	}
}

func TestRemoveDeletesActivityWithSignups(t *testing.T) {
	repo := NewMemoryRepository()
	repo.KnowStudents("s1")
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, Input{Title: "Music", StudentIDs: []string{"s1"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Remove(ctx, a.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}

	got, err := svc.ForStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no sign-ups left, got %d", len(got))
	}
}

func TestForStudentFilters(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Title: "Yoga", StudentIDs: []string{"s1"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, Input{Title: "Dance", StudentIDs: []string{"s2"}}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ForStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Yoga" {
		t.Fatalf("unexpected activities: %+v", got)
	}
}
