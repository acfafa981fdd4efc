package memory

import (
	"context"
	"errors"
	"testing"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

func TestPriceStore_InsertBulkAndGet(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	err := store.InsertBulk(ctx, []*domain.PricePoint{
		{Date: "2025-11-05", PriceUSD: 173.80, Source: "test"},
		{Date: "2025-11-03", PriceUSD: 171.25, Source: "test"},
		{Date: "2025-11-07", PriceUSD: 169.10, Source: "test"},
	})
	if err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 3 || all[0].Date != "2025-11-03" || all[2].Date != "2025-11-07" {
		t.Errorf("GetAll order wrong: %+v", all)
	}

	ranged, err := store.GetByDateRange(ctx, "2025-11-04", "2025-11-06")
	if err != nil {
		t.Fatalf("GetByDateRange failed: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Date != "2025-11-05" {
		t.Errorf("Range result wrong: %+v", ranged)
	}
}

func TestPriceStore_DuplicateDateFailsBatch(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	if err := store.InsertBulk(ctx, []*domain.PricePoint{{Date: "2025-11-05", PriceUSD: 1}}); err != nil {
		t.Fatalf("First batch failed: %v", err)
	}

	err := store.InsertBulk(ctx, []*domain.PricePoint{
		{Date: "2025-11-06", PriceUSD: 2},
		{Date: "2025-11-05", PriceUSD: 3},
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	all, _ := store.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("Failed batch leaked records: %d stored", len(all))
	}
}

func TestPriceStore_IntraBatchDuplicate(t *testing.T) {
	store := NewPriceStore()

	err := store.InsertBulk(context.Background(), []*domain.PricePoint{
		{Date: "2025-11-05", PriceUSD: 1},
		{Date: "2025-11-05", PriceUSD: 2},
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestPriceStore_InvalidInput(t *testing.T) {
	store := NewPriceStore()

	err := store.InsertBulk(context.Background(), []*domain.PricePoint{{Date: ""}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
