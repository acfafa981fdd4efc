package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// SnapshotStore implements storage.SnapshotStore using PostgreSQL.
type SnapshotStore struct {
	pool *Pool
}

// NewSnapshotStore creates a new SnapshotStore.
func NewSnapshotStore(pool *Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SnapshotStore = (*SnapshotStore)(nil)

const snapshotColumns = `
	snapshot_time, snapshot_slot,
	vote_lamports, vote_withdrawable, identity_lamports, withdraw_authority_lamports,
	token_lamports, token_sol_rate, token_sol_equivalent,
	stake_liquid_lamports, stake_locked_lamports, stake_total_lamports, stake_account_count,
	total_liquid_lamports, total_locked_lamports, total_assets_lamports,
	lifetime_income_lamports, lifetime_expenses_lamports, lifetime_withdrawals_lamports, lifetime_deposits_lamports,
	token_appreciation_lamports, net_cash_flow_lamports, expected_balance_lamports, reconciliation_diff_lamports
`

// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot for the slot exists.
func (s *SnapshotStore) Insert(ctx context.Context, p *domain.ValidatorPosition) error {
	if p == nil {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO position_snapshots (` + snapshotColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
	`

	_, err := s.pool.Exec(ctx, query,
		p.SnapshotTime, p.SnapshotSlot,
		p.VoteLamports, p.VoteWithdrawable, p.IdentityLamports, p.WithdrawAuthorityLamports,
		p.TokenLamports, p.TokenSOLRate, p.TokenSOLEquivalent,
		p.StakeLiquidLamports, p.StakeLockedLamports, p.StakeTotalLamports, p.StakeAccountCount,
		p.TotalLiquidLamports, p.TotalLockedLamports, p.TotalAssetsLamports,
		p.LifetimeIncomeLamports, p.LifetimeExpensesLamports, p.LifetimeWithdrawalsLamports, p.LifetimeDepositsLamports,
		p.TokenAppreciationLamports, p.NetCashFlowLamports, p.ExpectedBalanceLamports, p.ReconciliationDiff,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert position snapshot: %w", err)
	}
	return nil
}

// Latest retrieves the most recent snapshot by slot. Returns ErrNotFound when
// no snapshot has been stored.
func (s *SnapshotStore) Latest(ctx context.Context) (*domain.ValidatorPosition, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM position_snapshots
		ORDER BY snapshot_slot DESC
		LIMIT 1
	`

	var p domain.ValidatorPosition
	err := s.pool.QueryRow(ctx, query).Scan(
		&p.SnapshotTime, &p.SnapshotSlot,
		&p.VoteLamports, &p.VoteWithdrawable, &p.IdentityLamports, &p.WithdrawAuthorityLamports,
		&p.TokenLamports, &p.TokenSOLRate, &p.TokenSOLEquivalent,
		&p.StakeLiquidLamports, &p.StakeLockedLamports, &p.StakeTotalLamports, &p.StakeAccountCount,
		&p.TotalLiquidLamports, &p.TotalLockedLamports, &p.TotalAssetsLamports,
		&p.LifetimeIncomeLamports, &p.LifetimeExpensesLamports, &p.LifetimeWithdrawalsLamports, &p.LifetimeDepositsLamports,
		&p.TokenAppreciationLamports, &p.NetCashFlowLamports, &p.ExpectedBalanceLamports, &p.ReconciliationDiff,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get latest snapshot: %w", err)
	}

	return &p, nil
}
