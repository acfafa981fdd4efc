package postgres

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// RecurringExpenseStore implements storage.RecurringExpenseStore using
// PostgreSQL.
type RecurringExpenseStore struct {
	pool *Pool
}

// NewRecurringExpenseStore creates a new RecurringExpenseStore.
func NewRecurringExpenseStore(pool *Pool) *RecurringExpenseStore {
	return &RecurringExpenseStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RecurringExpenseStore = (*RecurringExpenseStore)(nil)

// Insert adds a template. Returns ErrDuplicateKey if (vendor, description,
// start_date) exists.
func (s *RecurringExpenseStore) Insert(ctx context.Context, r *domain.RecurringExpense) error {
	if r == nil || r.Vendor == "" || r.StartDate == "" {
		return storage.ErrInvalidInput
	}

	query := `
		INSERT INTO recurring_expenses (
			vendor, category, description, amount_usd, paid_with, start_date, end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.pool.Exec(ctx, query,
		r.Vendor,
		domain.NormalizeExpenseCategory(r.Category),
		r.Description,
		r.AmountUSD,
		r.PaidWith,
		r.StartDate,
		r.EndDate,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert recurring expense: %w", err)
	}
	return nil
}

// GetAll retrieves all templates ordered by start date ASC.
func (s *RecurringExpenseStore) GetAll(ctx context.Context) ([]*domain.RecurringExpense, error) {
	query := `
		SELECT vendor, category, description, amount_usd, paid_with, start_date, end_date
		FROM recurring_expenses
		ORDER BY start_date ASC, vendor ASC, description ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all recurring expenses: %w", err)
	}
	defer rows.Close()

	var templates []*domain.RecurringExpense
	for rows.Next() {
		var r domain.RecurringExpense
		err := rows.Scan(&r.Vendor, &r.Category, &r.Description, &r.AmountUSD, &r.PaidWith, &r.StartDate, &r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("scan recurring expense row: %w", err)
		}
		templates = append(templates, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recurring expense rows: %w", err)
	}

	return templates, nil
}
