package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// IncentiveClaimStore implements storage.IncentiveClaimStore using PostgreSQL.
type IncentiveClaimStore struct {
	pool *Pool
}

// NewIncentiveClaimStore creates a new IncentiveClaimStore.
func NewIncentiveClaimStore(pool *Pool) *IncentiveClaimStore {
	return &IncentiveClaimStore{pool: pool}
}

// Compile-time interface check.
var _ storage.IncentiveClaimStore = (*IncentiveClaimStore)(nil)

// Insert adds an incentive claim. Returns ErrDuplicateKey if the epoch exists.
func (s *IncentiveClaimStore) Insert(ctx context.Context, c *domain.IncentiveClaim) error {
	if c == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO incentive_claims (
			epoch, token_lamports, amount_sol, token_sol_rate, tx_signature, date
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		c.Epoch,
		c.TokenLamports,
		c.AmountSOL,
		c.TokenSOLRate,
		c.TxSignature,
		c.Date,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert incentive claim: %w", err)
	}
	return nil
}

// GetByEpochRange retrieves incentive claims within [start, end] (inclusive), ordered by epoch ASC.
func (s *IncentiveClaimStore) GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.IncentiveClaim, error) {
	query := `
		SELECT epoch, token_lamports, amount_sol, token_sol_rate, tx_signature, date
		FROM incentive_claims
		WHERE epoch >= $1 AND epoch <= $2
		ORDER BY epoch ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get incentive claims by epoch range: %w", err)
	}
	defer rows.Close()

	var claims []*domain.IncentiveClaim
	for rows.Next() {
		var c domain.IncentiveClaim
		err := rows.Scan(&c.Epoch, &c.TokenLamports, &c.AmountSOL, &c.TokenSOLRate, &c.TxSignature, &c.Date)
		if err != nil {
			return nil, fmt.Errorf("scan incentive claim row: %w", err)
		}
		claims = append(claims, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incentive claim rows: %w", err)
	}

	return claims, nil
}
