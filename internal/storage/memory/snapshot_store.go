package memory

import (
	"context"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// SnapshotStore is an in-memory implementation of storage.SnapshotStore.
type SnapshotStore struct {
	mu   sync.RWMutex
	data map[uint64]*domain.ValidatorPosition
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{data: make(map[uint64]*domain.ValidatorPosition)}
}

var _ storage.SnapshotStore = (*SnapshotStore)(nil)

// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot for the slot
// exists.
func (s *SnapshotStore) Insert(_ context.Context, p *domain.ValidatorPosition) error {
	if p == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.SnapshotSlot]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *p
	s.data[p.SnapshotSlot] = &cp
	return nil
}

// Latest retrieves the most recent snapshot by slot.
func (s *SnapshotStore) Latest(_ context.Context) (*domain.ValidatorPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.ValidatorPosition
	for _, p := range s.data {
		if latest == nil || p.SnapshotSlot > latest.SnapshotSlot {
			latest = p
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}

	cp := *latest
	return &cp, nil
}
