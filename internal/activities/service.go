package activities

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service manages class activities.
type Service struct {
	repo Repository
}

// NewService creates a new activity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the caller-supplied activity fields.
type Input struct {
	Title       string
	Description string
	ScheduledOn *time.Time
	TeacherID   *string
	StudentIDs  []string
}

// Create stores the activity and its student sign-ups as one atomic unit.
func (s *Service) Create(ctx context.Context, in Input) (Activity, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return Activity{}, errors.New("title is required")
	}

	activity := Activity{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ScheduledOn: in.ScheduledOn,
		TeacherID:   in.TeacherID,
		StudentIDs:  dedupe(in.StudentIDs),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return Activity{}, err
	}
	return activity, nil
}

// Get fetches one activity with its sign-ups.
func (s *Service) Get(ctx context.Context, id string) (Activity, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all activities.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

// ForStudent returns the activities a student is signed up for.
func (s *Service) ForStudent(ctx context.Context, studentID string) ([]Activity, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// Remove deletes the activity and its sign-ups atomically.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
