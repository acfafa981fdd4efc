package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// LeaderFeeStore implements storage.LeaderFeeStore using PostgreSQL.
type LeaderFeeStore struct {
	pool *Pool
}

// NewLeaderFeeStore creates a new LeaderFeeStore.
func NewLeaderFeeStore(pool *Pool) *LeaderFeeStore {
	return &LeaderFeeStore{pool: pool}
}

// Compile-time interface check.
var _ storage.LeaderFeeStore = (*LeaderFeeStore)(nil)

// Insert adds a leader fee record. Returns ErrDuplicateKey if the epoch exists.
func (s *LeaderFeeStore) Insert(ctx context.Context, f *domain.EpochLeaderFees) error {
	if f == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO leader_fees (
			epoch, lamports, total_fees_sol, blocks_produced, skipped_slots, date
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		f.Epoch,
		f.Lamports,
		f.TotalFeesSOL,
		f.BlocksProduced,
		f.SkippedSlots,
		f.Date,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert leader fees: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves leader fees within [start, end] (inclusive), ordered by epoch ASC.
func (s *LeaderFeeStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochLeaderFees, error) {
	query := `
		SELECT epoch, lamports, total_fees_sol, blocks_produced, skipped_slots, date
		FROM leader_fees
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get leader fees by epoch range: %w", err)
	}
	defer rows.Close()

	var fees []*domain.EpochLeaderFees
	for rows.Next() {
		var f domain.EpochLeaderFees
		err := rows.Scan(&f.Epoch, &f.Lamports, &f.TotalFeesSOL, &f.BlocksProduced, &f.SkippedSlots, &f.Date)
		if err != nil {
			return nil, fmt.Errorf("scan leader fee row: %w", err)
		}
		fees = append(fees, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leader fee rows: %w", err)
	}

	return fees, nil
}
