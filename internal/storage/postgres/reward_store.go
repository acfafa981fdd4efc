package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// RewardStore implements storage.RewardStore using PostgreSQL.
type RewardStore struct {
	pool *Pool
}

// NewRewardStore creates a new RewardStore.
func NewRewardStore(pool *Pool) *RewardStore {
	return &RewardStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RewardStore = (*RewardStore)(nil)

// Insert adds a reward record. Returns ErrDuplicateKey if the epoch exists.
func (s *RewardStore) Insert(ctx context.Context, r *domain.EpochReward) error {
	if r == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO epoch_rewards (
			epoch, lamports, amount_sol, commission, date
		) VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.pool.Exec(ctx, query,
		r.Epoch,
		r.Lamports,
		r.AmountSOL,
		r.Commission,
		r.Date,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert epoch reward: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves rewards within [start, end] (inclusive), ordered by epoch ASC.
func (s *RewardStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochReward, error) {
	query := `
		SELECT epoch, lamports, amount_sol, commission, date
		FROM epoch_rewards
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get rewards by epoch range: %w", err)
	}
	defer rows.Close()

	var rewards []*domain.EpochReward
	for rows.Next() {
		var r domain.EpochReward
		if err := rows.Scan(&r.Epoch, &r.Lamports, &r.AmountSOL, &r.Commission, &r.Date); err != nil {
			return nil, fmt.Errorf("scan epoch reward row: %w", err)
		}
		rewards = append(rewards, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate epoch reward rows: %w", err)
	}

	return rewards, nil
}
