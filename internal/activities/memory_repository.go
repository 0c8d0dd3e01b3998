package activities

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrUnknownStudent mirrors the foreign-key violation the Postgres repository
// raises for an association pointing at a missing student.
var ErrUnknownStudent = errors.New("unknown student")

type memoryRepository struct {
	mu         sync.Mutex
	activities map[string]Activity

	// knownStudents, when non-nil, rejects associations to absent ids the
	// way the database foreign key would.
	knownStudents map[string]struct{}
}

// NewMemoryRepository builds an in-memory activity store for testing.
func NewMemoryRepository() *memoryRepository {
	return &memoryRepository{activities: make(map[string]Activity)}
}

// KnowStudents restricts valid association targets, emulating the FK check.
func (r *memoryRepository) KnowStudents(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.knownStudents = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		r.knownStudents[id] = struct{}{}
	}
}

func (r *memoryRepository) Create(_ context.Context, a Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.knownStudents != nil {
		for _, id := range a.StudentIDs {
			if _, ok := r.knownStudents[id]; !ok {
				// All-or-nothing: the activity row is not kept either.
				return ErrUnknownStudent
			}
		}
	}
	r.activities[a.ID] = a
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[id]
	if !ok {
		return Activity{}, ErrNotFound
	}
	return a, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Activity, error) {
	return r.filter(func(Activity) bool { return true }), nil
}

func (r *memoryRepository) ListByStudent(_ context.Context, studentID string) ([]Activity, error) {
	return r.filter(func(a Activity) bool {
		for _, id := range a.StudentIDs {
			if id == studentID {
				return true
			}
		}
		return false
	}), nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.activities[id]; !ok {
		return ErrNotFound
	}
	delete(r.activities, id)
	return nil
}

func (r *memoryRepository) filter(keep func(Activity) bool) []Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Activity
	for _, a := range r.activities {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
