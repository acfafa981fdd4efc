package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// VoteCostStore implements storage.VoteCostStore using PostgreSQL.
type VoteCostStore struct {
	pool *Pool
}

// NewVoteCostStore creates a new VoteCostStore.
func NewVoteCostStore(pool *Pool) *VoteCostStore {
	return &VoteCostStore{pool: pool}
}

// Compile-time interface check.
var _ storage.VoteCostStore = (*VoteCostStore)(nil)

// Insert adds a vote cost record. Returns ErrDuplicateKey if the epoch exists.
func (s *VoteCostStore) Insert(ctx context.Context, v *domain.EpochVoteCost) error {
	if v == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO vote_costs (
			epoch, vote_count, lamports, total_fee_sol, source, date, is_estimate
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		v.Epoch,
		v.VoteCount,
		v.Lamports,
		v.TotalFeeSOL,
		v.Source,
		v.Date,
		v.IsEstimate,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert vote cost: %w", err)
	}
	return nil
}

// Replace overwrites the record for v.Epoch, inserting when missing. Used
// when an epoch estimate finalizes.
func (s *VoteCostStore) Replace(ctx context.Context, v *domain.EpochVoteCost) error {
	if v == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO vote_costs (
			epoch, vote_count, lamports, total_fee_sol, source, date, is_estimate
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (epoch) DO UPDATE SET
			vote_count = EXCLUDED.vote_count,
			lamports = EXCLUDED.lamports,
			total_fee_sol = EXCLUDED.total_fee_sol,
			source = EXCLUDED.source,
			date = EXCLUDED.date,
			is_estimate = EXCLUDED.is_estimate
	`

	_, err := s.pool.Exec(ctx, query,
		v.Epoch,
		v.VoteCount,
		v.Lamports,
		v.TotalFeeSOL,
		v.Source,
		v.Date,
		v.IsEstimate,
	)
	if err != nil {
		return fmt.Errorf("replace vote cost: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves vote costs within [start, end] (inclusive), ordered by epoch ASC.
func (s *VoteCostStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochVoteCost, error) {
	query := `
		SELECT epoch, vote_count, lamports, total_fee_sol, source, date, is_estimate
		FROM vote_costs
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get vote costs by epoch range: %w", err)
	}
	defer rows.Close()

	var costs []*domain.EpochVoteCost
	for rows.Next() {
		var v domain.EpochVoteCost
		err := rows.Scan(&v.Epoch, &v.VoteCount, &v.Lamports, &v.TotalFeeSOL, &v.Source, &v.Date, &v.IsEstimate)
		if err != nil {
			return nil, fmt.Errorf("scan vote cost row: %w", err)
		}
		costs = append(costs, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vote cost rows: %w", err)
	}

	return costs, nil
}
