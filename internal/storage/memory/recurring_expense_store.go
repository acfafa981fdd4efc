package memory

import (
	"context"
	"sort"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// RecurringExpenseStore is an in-memory implementation of
// storage.RecurringExpenseStore.
type RecurringExpenseStore struct {
	mu   sync.RWMutex
	data map[string]*domain.RecurringExpense
}

// NewRecurringExpenseStore creates a new in-memory recurring expense store.
func NewRecurringExpenseStore() *RecurringExpenseStore {
	return &RecurringExpenseStore{data: make(map[string]*domain.RecurringExpense)}
}

var _ storage.RecurringExpenseStore = (*RecurringExpenseStore)(nil)

func recurringKey(r *domain.RecurringExpense) string {
	return r.Vendor + "|" + r.Description + "|" + r.StartDate
}

// Insert adds a template. Returns ErrDuplicateKey if (vendor, description,
// start_date) already exists.
func (s *RecurringExpenseStore) Insert(_ context.Context, r *domain.RecurringExpense) error {
	if r == nil || r.Vendor == "" || r.StartDate == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := recurringKey(r)
	if _, exists := s.data[key]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *r
	cp.Category = domain.NormalizeExpenseCategory(cp.Category)
	s.data[key] = &cp
	return nil
}

// GetAll retrieves all templates ordered by start date ASC.
func (s *RecurringExpenseStore) GetAll(_ context.Context) ([]*domain.RecurringExpense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.RecurringExpense, 0, len(s.data))
	for _, r := range s.data {
		cp := *r
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartDate != result[j].StartDate {
			return result[i].StartDate < result[j].StartDate
		}
		return recurringKey(result[i]) < recurringKey(result[j])
	})
	return result, nil
}
