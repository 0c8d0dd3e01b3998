package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service manages student enrollment records.
type Service struct {
	repo Repository
}

// NewService creates a new student service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the caller-supplied student fields.
type Input struct {
	Name        string
	DateOfBirth *time.Time
	ClassName   string
	TeacherID   *string
	ParentName  string
	ParentPhone string
}

// Enroll creates a student record.
func (s *Service) Enroll(ctx context.Context, in Input) (Student, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ParentPhone = strings.TrimSpace(in.ParentPhone)
	if in.Name == "" {
		return Student{}, errors.New("name is required")
	}
	if in.ParentPhone == "" {
		return Student{}, errors.New("parent phone is required")
	}

	student := Student{
		ID:          uuid.New().String(),
		Name:        in.Name,
		DateOfBirth: in.DateOfBirth,
		ClassName:   in.ClassName,
		TeacherID:   in.TeacherID,
		ParentName:  strings.TrimSpace(in.ParentName),
		ParentPhone: in.ParentPhone,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return Student{}, err
	}
	return student, nil
}

// Update rewrites an existing student record.
func (s *Service) Update(ctx context.Context, id string, in Input) (Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Student{}, err
	}
	if in.Name = strings.TrimSpace(in.Name); in.Name != "" {
		student.Name = in.Name
	}
	if in.DateOfBirth != nil {
		student.DateOfBirth = in.DateOfBirth
	}
	if in.ClassName != "" {
		student.ClassName = in.ClassName
	}
	if in.TeacherID != nil {
		student.TeacherID = in.TeacherID
	}
	if in.ParentName = strings.TrimSpace(in.ParentName); in.ParentName != "" {
		student.ParentName = in.ParentName
	}
	if in.ParentPhone = strings.TrimSpace(in.ParentPhone); in.ParentPhone != "" {
		student.ParentPhone = in.ParentPhone
	}
	if err := s.repo.Update(ctx, student); err != nil {
		return Student{}, err
	}
	return student, nil
}

// Get fetches one student.
func (s *Service) Get(ctx context.Context, id string) (Student, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every enrolled student.
func (s *Service) List(ctx context.Context) ([]Student, error) {
	return s.repo.List(ctx)
}

// Roster returns the students assigned to a teacher.
func (s *Service) Roster(ctx context.Context, teacherID string) ([]Student, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}

// Children returns the students linked to a guardian phone number.
func (s *Service) Children(ctx context.Context, parentPhone string) ([]Student, error) {
	return s.repo.ListByParentPhone(ctx, parentPhone)
}

// Remove deletes a student record.
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
