// Package memory provides in-memory store implementations, used for
// fixtures and tests and as the reference behavior for the database-backed
// stores.
package memory

import (
	"context"
	"sort"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// TransferStore is an in-memory implementation of storage.TransferStore.
type TransferStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Transfer
}

// NewTransferStore creates a new in-memory transfer store.
func NewTransferStore() *TransferStore {
	return &TransferStore{data: make(map[string]*domain.Transfer)}
}

var _ storage.TransferStore = (*TransferStore)(nil)

func transferKey(t *domain.Transfer) string {
	return t.Signature + "|" + t.From + "|" + t.To
}

// Insert adds a transfer. Returns ErrDuplicateKey if it exists.
func (s *TransferStore) Insert(_ context.Context, t *domain.Transfer) error {
	if t == nil || t.Signature == "" || t.From == "" || t.To == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := transferKey(t)
	if _, exists := s.data[key]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *t
	s.data[key] = &cp
	return nil
}

// InsertBulk adds multiple transfers atomically. Fails the entire batch on
// any duplicate.
func (s *TransferStore) InsertBulk(_ context.Context, transfers []*domain.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(transfers))
	for _, t := range transfers {
		if t == nil || t.Signature == "" || t.From == "" || t.To == "" {
			return storage.ErrInvalidInput
		}
		key := transferKey(t)
		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := batch[key]; dup {
			return storage.ErrDuplicateKey
		}
		batch[key] = struct{}{}
	}

	for _, t := range transfers {
		cp := *t
		s.data[transferKey(t)] = &cp
	}
	return nil
}

// GetAll retrieves all transfers ordered by date ASC, unknown dates last.
func (s *TransferStore) GetAll(_ context.Context) ([]*domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Transfer, 0, len(s.data))
	for _, t := range s.data {
		cp := *t
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		di, dj := sortableDate(result[i].Date), sortableDate(result[j].Date)
		if di != dj {
			return di < dj
		}
		return transferKey(result[i]) < transferKey(result[j])
	})
	return result, nil
}

// GetByDateRange retrieves transfers within [start, end] inclusive.
// Unknown-dated transfers are excluded.
func (s *TransferStore) GetByDateRange(_ context.Context, start, end string) ([]*domain.Transfer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Transfer
	for _, t := range s.data {
		if t.Date == "" || t.Date < start || t.Date > end {
			continue
		}
		cp := *t
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return transferKey(result[i]) < transferKey(result[j])
	})
	return result, nil
}

// sortableDate keys unknown dates after all real ISO dates.
func sortableDate(d string) string {
	if d == "" {
		return "9999-99-99"
	}
	return d
}
