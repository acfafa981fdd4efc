package memory

import (
	"context"
	"sort"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// ExpenseStore is an in-memory implementation of storage.ExpenseStore.
type ExpenseStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Expense
}

// NewExpenseStore creates a new in-memory expense store.
func NewExpenseStore() *ExpenseStore {
	return &ExpenseStore{data: make(map[string]*domain.Expense)}
}

var _ storage.ExpenseStore = (*ExpenseStore)(nil)

func expenseKey(e *domain.Expense) string {
	return e.Date + "|" + e.Vendor + "|" + e.Description
}

// Insert adds an expense. Returns ErrDuplicateKey if (date, vendor,
// description) already exists.
func (s *ExpenseStore) Insert(_ context.Context, e *domain.Expense) error {
	if e == nil || e.Date == "" || e.Vendor == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := expenseKey(e)
	if _, exists := s.data[key]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *e
	cp.Category = domain.NormalizeExpenseCategory(cp.Category)
	s.data[key] = &cp
	return nil
}

// GetAll retrieves all expenses ordered by date ASC.
func (s *ExpenseStore) GetAll(_ context.Context) ([]*domain.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Expense, 0, len(s.data))
	for _, e := range s.data {
		cp := *e
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return expenseKey(result[i]) < expenseKey(result[j])
	})
	return result, nil
}
