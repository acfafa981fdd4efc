package memory

import (
	"context"
	"errors"
	"testing"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

func TestExpenseStore_InsertAndGetAll(t *testing.T) {
	store := NewExpenseStore()
	ctx := context.Background()

	expenses := []*domain.Expense{
		{Date: "2025-11-15", Vendor: "Teraswitch", Category: "Hosting", Description: "Bare metal", AmountUSD: 370},
		{Date: "2025-10-15", Vendor: "Teraswitch", Category: "Hosting", Description: "Bare metal", AmountUSD: 370},
	}
	for _, e := range expenses {
		if err := store.Insert(ctx, e); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	result, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(result))
	}
	if result[0].Date != "2025-10-15" {
		t.Errorf("Expenses must order by date, got %s first", result[0].Date)
	}
}

func TestExpenseStore_NormalizesCategory(t *testing.T) {
	store := NewExpenseStore()
	ctx := context.Background()

	if err := store.Insert(ctx, &domain.Expense{Date: "2025-11-15", Vendor: "V", Category: "hosting", Description: "d"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := store.Insert(ctx, &domain.Expense{Date: "2025-11-16", Vendor: "V", Category: "lunch", Description: "d"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	result, _ := store.GetAll(ctx)
	if result[0].Category != domain.ExpenseHosting {
		t.Errorf("Category not normalized: %s", result[0].Category)
	}
	if result[1].Category != domain.ExpenseOther {
		t.Errorf("Unknown category must map to Other: %s", result[1].Category)
	}
}

func TestExpenseStore_DuplicateKey(t *testing.T) {
	store := NewExpenseStore()
	ctx := context.Background()

	e := &domain.Expense{Date: "2025-11-15", Vendor: "V", Description: "d"}
	if err := store.Insert(ctx, e); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if err := store.Insert(ctx, e); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
	if err := store.Insert(ctx, &domain.Expense{Vendor: "V"}); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for missing date, got %v", err)
	}
}
