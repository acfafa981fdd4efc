package memory

import (
	"context"
	"sort"
	"sync"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// epochStore holds one record per epoch. All six epoch-keyed record types
// share the same insert/range semantics, so they share this base.
type epochStore[T any] struct {
	mu      sync.RWMutex
	data    map[uint64]*T
	epochOf func(*T) uint64
}

func newEpochStore[T any](epochOf func(*T) uint64) *epochStore[T] {
	return &epochStore[T]{data: make(map[uint64]*T), epochOf: epochOf}
}

func (s *epochStore[T]) insert(r *T) error {
	if r == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	epoch := s.epochOf(r)
	if _, exists := s.data[epoch]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *r
	s.data[epoch] = &cp
	return nil
}

// replace overwrites the record for the epoch, inserting when missing.
func (s *epochStore[T]) replace(r *T) error {
	if r == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *r
	s.data[s.epochOf(r)] = &cp
	return nil
}

func (s *epochStore[T]) getByEpochRange(start, end uint64) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*T
	for epoch, r := range s.data {
		if epoch < start || epoch > end {
			continue
		}
		cp := *r
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		return s.epochOf(result[i]) < s.epochOf(result[j])
	})
	return result, nil
}

// RewardStore is an in-memory implementation of storage.RewardStore.
type RewardStore struct {
	*epochStore[domain.EpochReward]
}

// NewRewardStore creates a new in-memory reward store.
func NewRewardStore() *RewardStore {
	return &RewardStore{newEpochStore(func(r *domain.EpochReward) uint64 { return r.Epoch })}
}

var _ storage.RewardStore = (*RewardStore)(nil)

func (s *RewardStore) Insert(_ context.Context, r *domain.EpochReward) error {
	return s.insert(r)
}

func (s *RewardStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.EpochReward, error) {
	return s.getByEpochRange(start, end)
}

// LeaderFeeStore is an in-memory implementation of storage.LeaderFeeStore.
type LeaderFeeStore struct {
	*epochStore[domain.EpochLeaderFees]
}

// NewLeaderFeeStore creates a new in-memory leader fee store.
func NewLeaderFeeStore() *LeaderFeeStore {
	return &LeaderFeeStore{newEpochStore(func(f *domain.EpochLeaderFees) uint64 { return f.Epoch })}
}

var _ storage.LeaderFeeStore = (*LeaderFeeStore)(nil)

func (s *LeaderFeeStore) Insert(_ context.Context, f *domain.EpochLeaderFees) error {
	return s.insert(f)
}

func (s *LeaderFeeStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.EpochLeaderFees, error) {
	return s.getByEpochRange(start, end)
}

// MevClaimStore is an in-memory implementation of storage.MevClaimStore.
type MevClaimStore struct {
	*epochStore[domain.MevClaim]
}

// NewMevClaimStore creates a new in-memory MEV claim store.
func NewMevClaimStore() *MevClaimStore {
	return &MevClaimStore{newEpochStore(func(c *domain.MevClaim) uint64 { return c.Epoch })}
}

var _ storage.MevClaimStore = (*MevClaimStore)(nil)

func (s *MevClaimStore) Insert(_ context.Context, c *domain.MevClaim) error {
	return s.insert(c)
}

func (s *MevClaimStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.MevClaim, error) {
	return s.getByEpochRange(start, end)
}

// IncentiveClaimStore is an in-memory implementation of
// storage.IncentiveClaimStore.
type IncentiveClaimStore struct {
	*epochStore[domain.IncentiveClaim]
}

// NewIncentiveClaimStore creates a new in-memory incentive claim store.
func NewIncentiveClaimStore() *IncentiveClaimStore {
	return &IncentiveClaimStore{newEpochStore(func(c *domain.IncentiveClaim) uint64 { return c.Epoch })}
}

var _ storage.IncentiveClaimStore = (*IncentiveClaimStore)(nil)

func (s *IncentiveClaimStore) Insert(_ context.Context, c *domain.IncentiveClaim) error {
	return s.insert(c)
}

func (s *IncentiveClaimStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.IncentiveClaim, error) {
	return s.getByEpochRange(start, end)
}

// VoteCostStore is an in-memory implementation of storage.VoteCostStore.
type VoteCostStore struct {
	*epochStore[domain.EpochVoteCost]
}

// NewVoteCostStore creates a new in-memory vote cost store.
func NewVoteCostStore() *VoteCostStore {
	return &VoteCostStore{newEpochStore(func(v *domain.EpochVoteCost) uint64 { return v.Epoch })}
}

var _ storage.VoteCostStore = (*VoteCostStore)(nil)

func (s *VoteCostStore) Insert(_ context.Context, v *domain.EpochVoteCost) error {
	return s.insert(v)
}

func (s *VoteCostStore) Replace(_ context.Context, v *domain.EpochVoteCost) error {
	return s.replace(v)
}

func (s *VoteCostStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.EpochVoteCost, error) {
	return s.getByEpochRange(start, end)
}

// NetworkFeeStore is an in-memory implementation of storage.NetworkFeeStore.
type NetworkFeeStore struct {
	*epochStore[domain.NetworkFee]
}

// NewNetworkFeeStore creates a new in-memory network fee store.
func NewNetworkFeeStore() *NetworkFeeStore {
	return &NetworkFeeStore{newEpochStore(func(f *domain.NetworkFee) uint64 { return f.Epoch })}
}

var _ storage.NetworkFeeStore = (*NetworkFeeStore)(nil)

func (s *NetworkFeeStore) Insert(_ context.Context, f *domain.NetworkFee) error {
	return s.insert(f)
}

func (s *NetworkFeeStore) Replace(_ context.Context, f *domain.NetworkFee) error {
	return s.replace(f)
}

func (s *NetworkFeeStore) GetByEpochRange(_ context.Context, start, end uint64) ([]*domain.NetworkFee, error) {
	return s.getByEpochRange(start, end)
}
