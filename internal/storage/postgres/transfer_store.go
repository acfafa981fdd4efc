package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// TransferStore implements storage.TransferStore using PostgreSQL.
type TransferStore struct {
	pool *Pool
}

// NewTransferStore creates a new TransferStore.
func NewTransferStore(pool *Pool) *TransferStore {
	return &TransferStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TransferStore = (*TransferStore)(nil)

const insertTransferQuery = `
	INSERT INTO transfers (
		signature, date, from_address, to_address, lamports, amount_sol, from_label, to_label
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// Insert adds a transfer. Returns ErrDuplicateKey if (signature, from, to) exists.
func (s *TransferStore) Insert(ctx context.Context, t *domain.Transfer) error {
	if t == nil || t.Signature == "" || t.From == "" || t.To == "" {
		return storage.ErrInvalidInput
	}

	_, err := s.pool.Exec(ctx, insertTransferQuery,
		t.Signature,
		t.Date,
		t.From,
		t.To,
		t.Lamports,
		t.AmountSOL,
		t.FromLabel,
		t.ToLabel,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// InsertBulk adds multiple transfers atomically. Fails entire batch on any duplicate.
func (s *TransferStore) InsertBulk(ctx context.Context, transfers []*domain.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range transfers {
		if t == nil || t.Signature == "" || t.From == "" || t.To == "" {
			return storage.ErrInvalidInput
		}

		_, err := tx.Exec(ctx, insertTransferQuery,
			t.Signature,
			t.Date,
			t.From,
			t.To,
			t.Lamports,
			t.AmountSOL,
			t.FromLabel,
			t.ToLabel,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert transfer in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetAll retrieves all transfers ordered by date ASC, unknown dates last.
func (s *TransferStore) GetAll(ctx context.Context) ([]*domain.Transfer, error) {
	query := `
		SELECT signature, date, from_address, to_address, lamports, amount_sol, from_label, to_label
		FROM transfers
		ORDER BY NULLIF(date, '') ASC NULLS LAST, signature ASC, from_address ASC, to_address ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all transfers: %w", err)
	}
	defer rows.Close()

	return scanTransfers(rows)
}

// GetByDateRange retrieves transfers within [start, end] (inclusive).
// Unknown-dated transfers are excluded.
func (s *TransferStore) GetByDateRange(ctx context.Context, start, end string) ([]*domain.Transfer, error) {
	query := `
		SELECT signature, date, from_address, to_address, lamports, amount_sol, from_label, to_label
		FROM transfers
		WHERE date <> '' AND date >= $1 AND date <= $2
		ORDER BY date ASC, signature ASC, from_address ASC, to_address ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get transfers by date range: %w", err)
	}
	defer rows.Close()

	return scanTransfers(rows)
}

// scanTransfers scans multiple rows into a slice of Transfer.
func scanTransfers(rows pgx.Rows) ([]*domain.Transfer, error) {
	var transfers []*domain.Transfer

	for rows.Next() {
		var t domain.Transfer

		err := rows.Scan(
			&t.Signature,
			&t.Date,
			&t.From,
			&t.To,
			&t.Lamports,
			&t.AmountSOL,
			&t.FromLabel,
			&t.ToLabel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}

		transfers = append(transfers, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}

	return transfers, nil
}
