package memory

import (
	"context"
	"sort"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// PriceStore is an in-memory implementation of storage.PriceStore.
type PriceStore struct {
	mu   sync.RWMutex
	data map[string]*domain.PricePoint
}

// NewPriceStore creates a new in-memory price store.
func NewPriceStore() *PriceStore {
	return &PriceStore{data: make(map[string]*domain.PricePoint)}
}

var _ storage.PriceStore = (*PriceStore)(nil)

// InsertBulk adds price points; duplicate dates fail the batch.
func (s *PriceStore) InsertBulk(_ context.Context, points []*domain.PricePoint) error {
	if len(points) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p == nil || p.Date == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[p.Date]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := batch[p.Date]; dup {
			return storage.ErrDuplicateKey
		}
		batch[p.Date] = struct{}{}
	}

	for _, p := range points {
		cp := *p
		s.data[p.Date] = &cp
	}
	return nil
}

// GetByDateRange retrieves points within [start, end] inclusive, ordered by
// date ASC.
func (s *PriceStore) GetByDateRange(_ context.Context, start, end string) ([]*domain.PricePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.PricePoint
	for date, p := range s.data {
		if date < start || date > end {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// GetAll retrieves the full series ordered by date ASC.
func (s *PriceStore) GetAll(_ context.Context) ([]*domain.PricePoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.PricePoint, 0, len(s.data))
	for _, p := range s.data {
		cp := *p
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}
