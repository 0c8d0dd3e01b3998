package fees

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.Mutex
	fees     map[string]Fee
	payments map[string]Payment
}

// NewMemoryRepository builds an in-memory fee store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{fees: make(map[string]Fee), payments: make(map[string]Payment)}
}

func (r *memoryRepository) Create(_ context.Context, f Fee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fees[f.ID] = f
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Fee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fees[id]
	if !ok {
		return Fee{}, ErrNotFound
	}
	return f, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Fee, error) {
	return r.filter(func(Fee) bool { return true }), nil
}

func (r *memoryRepository) ListByStudent(_ context.Context, studentID string) ([]Fee, error) {
	return r.filter(func(f Fee) bool { return f.StudentID == studentID }), nil
}

func (r *memoryRepository) RecordPayment(_ context.Context, feeID string, amountCents int64, method string) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.fees[feeID]
	if !ok {
		return Payment{}, ErrNotFound
	}
	if f.Status == StatusPaid {
		return Payment{}, ErrAlreadyPaid
	}
	p := Payment{ID: uuid.New().String(), FeeID: feeID, AmountCents: amountCents, Method: method, PaidAt: time.Now().UTC()}
	r.payments[p.ID] = p
	f.Status = StatusPaid
	r.fees[feeID] = f
	return p, nil
}

func (r *memoryRepository) filter(keep func(Fee) bool) []Fee {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Fee
	for _, f := range r.fees {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
