package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// NetworkFeeStore implements storage.NetworkFeeStore using PostgreSQL.
type NetworkFeeStore struct {
	pool *Pool
}

// NewNetworkFeeStore creates a new NetworkFeeStore.
func NewNetworkFeeStore(pool *Pool) *NetworkFeeStore {
	return &NetworkFeeStore{pool: pool}
}

// Compile-time interface check.
var _ storage.NetworkFeeStore = (*NetworkFeeStore)(nil)

// Insert adds a network fee record. Returns ErrDuplicateKey if the epoch exists.
func (s *NetworkFeeStore) Insert(ctx context.Context, f *domain.NetworkFee) error {
	if f == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO network_fees (
			epoch, fee_base_lamports, liability_lamports, liability_sol, fee_rate_bps, date, source, is_estimate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.pool.Exec(ctx, query,
		f.Epoch,
		f.FeeBaseLamports,
		f.LiabilityLamports,
		f.LiabilitySOL,
		f.FeeRateBps,
		f.Date,
		f.Source,
		f.IsEstimate,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert network fee: %w", err)
	}
	return nil
}

// Replace overwrites the record for f.Epoch, inserting when missing.
func (s *NetworkFeeStore) Replace(ctx context.Context, f *domain.NetworkFee) error {
	if f == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO network_fees (
			epoch, fee_base_lamports, liability_lamports, liability_sol, fee_rate_bps, date, source, is_estimate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (epoch) DO UPDATE SET
			fee_base_lamports = EXCLUDED.fee_base_lamports,
			liability_lamports = EXCLUDED.liability_lamports,
			liability_sol = EXCLUDED.liability_sol,
			fee_rate_bps = EXCLUDED.fee_rate_bps,
			date = EXCLUDED.date,
			source = EXCLUDED.source,
			is_estimate = EXCLUDED.is_estimate
	`

	_, err := s.pool.Exec(ctx, query,
		f.Epoch,
		f.FeeBaseLamports,
		f.LiabilityLamports,
		f.LiabilitySOL,
		f.FeeRateBps,
		f.Date,
		f.Source,
		f.IsEstimate,
	)
	if err != nil {
		return fmt.Errorf("replace network fee: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves network fees within [start, end] (inclusive), ordered by epoch ASC.
func (s *NetworkFeeStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.NetworkFee, error) {
	query := `
		SELECT epoch, fee_base_lamports, liability_lamports, liability_sol, fee_rate_bps, date, source, is_estimate
		FROM network_fees
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get network fees by epoch range: %w", err)
	}
	defer rows.Close()

	var fees []*domain.NetworkFee
	for rows.Next() {
		var f domain.NetworkFee
		err := rows.Scan(&f.Epoch, &f.FeeBaseLamports, &f.LiabilityLamports, &f.LiabilitySOL, &f.FeeRateBps, &f.Date, &f.Source, &f.IsEstimate)
		if err != nil {
			return nil, fmt.Errorf("scan network fee row: %w", err)
		}
		fees = append(fees, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate network fee rows: %w", err)
	}

	return fees, nil
}
