package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// ExpenseStore implements storage.ExpenseStore using PostgreSQL.
type ExpenseStore struct {
	pool *Pool
}

// NewExpenseStore creates a new ExpenseStore.
func NewExpenseStore(pool *Pool) *ExpenseStore {
	return &ExpenseStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ExpenseStore = (*ExpenseStore)(nil)

// Insert adds an expense. Returns ErrDuplicateKey if (date, vendor, description) exists.
func (s *ExpenseStore) Insert(ctx context.Context, e *domain.Expense) error {
	if e == nil || e.Date == "" || e.Vendor == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO expenses (
			date, vendor, category, description, amount_usd, paid_with, invoice_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		e.Date,
		e.Vendor,
		domain.NormalizeExpenseCategory(e.Category),
		e.Description,
		e.AmountUSD,
		e.PaidWith,
		e.InvoiceID,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetAll retrieves all expenses ordered by date ASC.
func (s *ExpenseStore) GetAll(ctx context.Context) ([]*domain.Expense, error) {
	query := `
		SELECT date, vendor, category, description, amount_usd, paid_with, invoice_id
		FROM expenses
		ORDER BY date ASC, vendor ASC, description ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		err := rows.Scan(&e.Date, &e.Vendor, &e.Category, &e.Description, &e.AmountUSD, &e.PaidWith, &e.InvoiceID)
		if err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}

	return expenses, nil
}
