// Package storage defines the record store contracts the accounting core
// depends on. The core treats every store as a dumb range-addressable
// datastore: get records in range, store records. No component here does
// SQL, schema work or file I/O; that lives in the implementations.
package storage

import (
	"context"

	"validator-ledger/internal/domain"
)

// TransferStore provides access to recorded SOL transfers.
type TransferStore interface {
	// Insert adds a transfer. Returns ErrDuplicateKey if (signature,
	// from, to) already exists.
	Insert(ctx context.Context, t *domain.Transfer) error

	// InsertBulk adds multiple transfers atomically. Fails the entire
	// batch on any duplicate.
	InsertBulk(ctx context.Context, transfers []*domain.Transfer) error

	// GetAll retrieves all transfers ordered by date ASC, unknown dates
	// last.
	GetAll(ctx context.Context) ([]*domain.Transfer, error)

	// GetByDateRange retrieves transfers within [start, end] (inclusive,
	// ISO dates). Unknown-dated transfers are excluded.
	GetByDateRange(ctx context.Context, start, end string) ([]*domain.Transfer, error)
}

// RewardStore provides access to per-epoch staking commission records.
type RewardStore interface {
	// Insert adds a reward. Returns ErrDuplicateKey if the epoch exists.
	Insert(ctx context.Context, r *domain.EpochReward) error

	// GetByEpochRange retrieves rewards within [start, end] (inclusive),
	// ordered by epoch ASC.
	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochReward, error)
}

// LeaderFeeStore provides access to per-epoch block-production fee records.
type LeaderFeeStore interface {
	Insert(ctx context.Context, f *domain.EpochLeaderFees) error
	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochLeaderFees, error)
}

// MevClaimStore provides access to per-epoch MEV commission claims.
type MevClaimStore interface {
	Insert(ctx context.Context, c *domain.MevClaim) error
	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.MevClaim, error)
}

// IncentiveClaimStore provides access to liquid-token incentive claims.
type IncentiveClaimStore interface {
	Insert(ctx context.Context, c *domain.IncentiveClaim) error
	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.IncentiveClaim, error)
}

// VoteCostStore provides access to per-epoch vote transaction costs.
// Estimated records for an unfinished epoch are superseded by replacing
// the record, the one sanctioned mutation in the ledger.
type VoteCostStore interface {
	Insert(ctx context.Context, v *domain.EpochVoteCost) error

	// Replace overwrites the record for v.Epoch, or inserts it when
	// missing. Used when an estimate finalizes.
	Replace(ctx context.Context, v *domain.EpochVoteCost) error

	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.EpochVoteCost, error)
}

// NetworkFeeStore provides access to per-epoch network fee liabilities.
type NetworkFeeStore interface {
	Insert(ctx context.Context, f *domain.NetworkFee) error
	Replace(ctx context.Context, f *domain.NetworkFee) error
	GetByEpochRange(ctx context.Context, start, end uint64) ([]*domain.NetworkFee, error)
}

// ExpenseStore provides access to off-chain expense entries.
type ExpenseStore interface {
	// Insert adds an expense. Returns ErrDuplicateKey if (date, vendor,
	// description) already exists.
	Insert(ctx context.Context, e *domain.Expense) error

	// GetAll retrieves all expenses ordered by date ASC.
	GetAll(ctx context.Context) ([]*domain.Expense, error)
}

// RecurringExpenseStore provides access to monthly billing templates.
// Templates are expanded per report run; the expanded instances are never
// stored.
type RecurringExpenseStore interface {
	// Insert adds a template. Returns ErrDuplicateKey if (vendor,
	// description, start_date) already exists.
	Insert(ctx context.Context, r *domain.RecurringExpense) error

	// GetAll retrieves all templates ordered by start date ASC.
	GetAll(ctx context.Context) ([]*domain.RecurringExpense, error)
}

// PriceStore provides access to the daily price series.
type PriceStore interface {
	// InsertBulk adds price points; duplicate dates fail the batch.
	InsertBulk(ctx context.Context, points []*domain.PricePoint) error

	// GetByDateRange retrieves points within [start, end] (inclusive),
	// ordered by date ASC.
	GetByDateRange(ctx context.Context, start, end string) ([]*domain.PricePoint, error)

	// GetAll retrieves the full series ordered by date ASC.
	GetAll(ctx context.Context) ([]*domain.PricePoint, error)
}

// SnapshotStore provides access to position snapshots.
type SnapshotStore interface {
	// Insert adds a snapshot. Returns ErrDuplicateKey if a snapshot for
	// the slot exists.
	Insert(ctx context.Context, p *domain.ValidatorPosition) error

	// Latest retrieves the most recent snapshot by slot. Returns
	// ErrNotFound when no snapshot has been stored.
	Latest(ctx context.Context) (*domain.ValidatorPosition, error)
}

// PriceMapFrom flattens stored price points into the resolver's map shape.
func PriceMapFrom(points []*domain.PricePoint) domain.PriceMap {
	m := make(domain.PriceMap, len(points))
	for _, p := range points {
		m[p.Date] = p.PriceUSD
	}
	return m
}
