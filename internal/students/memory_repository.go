package students

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	students map[string]Student
}

// NewMemoryRepository builds an in-memory student store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{students: make(map[string]Student)}
}

func (r *memoryRepository) Create(_ context.Context, s Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[s.ID] = s
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.students[id]
	if !ok {
		return Student{}, ErrNotFound
	}
	return s, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Student, error) {
	return r.filter(func(Student) bool { return true }), nil
}

func (r *memoryRepository) ListByTeacher(_ context.Context, teacherID string) ([]Student, error) {
	return r.filter(func(s Student) bool { return s.TeacherID != nil && *s.TeacherID == teacherID }), nil
}

func (r *memoryRepository) ListByParentPhone(_ context.Context, phone string) ([]Student, error) {
	return r.filter(func(s Student) bool { return s.ParentPhone == phone }), nil
}

func (r *memoryRepository) Update(_ context.Context, s Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[s.ID]; !ok {
		return ErrNotFound
	}
	r.students[s.ID] = s
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return ErrNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *memoryRepository) filter(keep func(Student) bool) []Student {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Student
	for _, s := range r.students {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
