package clickhouse

import (
	"context"
	"fmt"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// PriceStore implements storage.PriceStore using ClickHouse.
//
// MergeTree does not enforce uniqueness at insert time, so duplicate dates
// are rejected with explicit checks before the batch is sent.
type PriceStore struct {
	conn *Conn
}

// NewPriceStore creates a new PriceStore.
func NewPriceStore(conn *Conn) *PriceStore {
	return &PriceStore{conn: conn}
}

// Compile-time interface check.
var _ storage.PriceStore = (*PriceStore)(nil)

// InsertBulk adds price points. Fails entire batch on a duplicate date.
func (s *PriceStore) InsertBulk(ctx context.Context, points []*domain.PricePoint) error {
	if len(points) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		if p == nil || p.Date == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := seen[p.Date]; exists {
			return storage.ErrDuplicateKey
		}
		seen[p.Date] = struct{}{}
	}

	// Check for duplicates against existing DB rows
	for _, p := range points {
		exists, err := s.exists(ctx, p.Date)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO price_points (date, price_usd, source)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, p := range points {
		if err := batch.Append(p.Date, p.PriceUSD, p.Source); err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByDateRange retrieves points within [start, end] (inclusive), ordered by date ASC.
func (s *PriceStore) GetByDateRange(ctx context.Context, start, end string) ([]*domain.PricePoint, error) {
	query := `
		SELECT date, price_usd, source
		FROM price_points
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := s.conn.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query prices by date range: %w", err)
	}
	defer rows.Close()

	return scanPricePoints(rows)
}

// GetAll retrieves the full series ordered by date ASC.
func (s *PriceStore) GetAll(ctx context.Context) ([]*domain.PricePoint, error) {
	query := `
		SELECT date, price_usd, source
		FROM price_points
		ORDER BY date ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all prices: %w", err)
	}
	defer rows.Close()

	return scanPricePoints(rows)
}

// exists checks if a point for the date exists.
func (s *PriceStore) exists(ctx context.Context, date string) (bool, error) {
	query := `
		SELECT count(*) FROM price_points
		WHERE date = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, date).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Rows interface for scanning
type chRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanPricePoints scans multiple rows.
func scanPricePoints(rows chRows) ([]*domain.PricePoint, error) {
	var points []*domain.PricePoint

	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.Date, &p.PriceUSD, &p.Source); err != nil {
			return nil, fmt.Errorf("scan price point row: %w", err)
		}
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price point rows: %w", err)
	}

	return points, nil
}
