package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// MevClaimStore implements storage.MevClaimStore using PostgreSQL.
type MevClaimStore struct {
	pool *Pool
}

// NewMevClaimStore creates a new MevClaimStore.
func NewMevClaimStore(pool *Pool) *MevClaimStore {
	return &MevClaimStore{pool: pool}
}

// Compile-time interface check.
var _ storage.MevClaimStore = (*MevClaimStore)(nil)

// Insert adds a MEV claim. Returns ErrDuplicateKey if the epoch exists.
func (s *MevClaimStore) Insert(ctx context.Context, c *domain.MevClaim) error {
	if c == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO mev_claims (
			epoch, lamports, amount_sol, total_tips_lamports, commission_lamports, date
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		c.Epoch,
		c.Lamports,
		c.AmountSOL,
		c.TotalTipsLamports,
		c.CommissionLamports,
		c.Date,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert mev claim: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves MEV claims within [start, end] (inclusive), ordered by epoch ASC.
func (s *MevClaimStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.MevClaim, error) {
	query := `
		SELECT epoch, lamports, amount_sol, total_tips_lamports, commission_lamports, date
		FROM mev_claims
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get mev claims by epoch range: %w", err)
	}
	defer rows.Close()

	var claims []*domain.MevClaim
	for rows.Next() {
		var c domain.MevClaim
		err := rows.Scan(&c.Epoch, &c.Lamports, &c.AmountSOL, &c.TotalTipsLamports, &c.CommissionLamports, &c.Date)
		if err != nil {
			return nil, fmt.Errorf("scan mev claim row: %w", err)
		}
		claims = append(claims, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mev claim rows: %w", err)
	}

	return claims, nil
}
