package timeline

import (
	"testing"

	"validator-ledger/internal/domain"
)

func TestExpandRecurring(t *testing.T) {
	recurring := []domain.RecurringExpense{
		{Vendor: "Teraswitch", Category: domain.ExpenseHosting, Description: "Bare metal", AmountUSD: 370, StartDate: "2025-10-15"},
	}

	expenses := ExpandRecurring(recurring, "2025-10", "2026-01")
	if len(expenses) != 4 {
		t.Fatalf("Expected 4 instances, got %d", len(expenses))
	}

	wantDates := []string{"2025-10-15", "2025-11-15", "2025-12-15", "2026-01-15"}
	for i, e := range expenses {
		if e.Date != wantDates[i] {
			t.Errorf("Instance %d date = %s, want %s", i, e.Date, wantDates[i])
		}
		if e.AmountUSD != 370 || e.Vendor != "Teraswitch" {
			t.Errorf("Instance %d fields wrong: %+v", i, e)
		}
	}
}

func TestExpandRecurring_BillingDayClamped(t *testing.T) {
	recurring := []domain.RecurringExpense{
		{Vendor: "V", Category: domain.ExpenseSoftware, AmountUSD: 10, StartDate: "2025-01-31"},
	}

	expenses := ExpandRecurring(recurring, "2025-01", "2025-04")
	wantDates := []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}
	if len(expenses) != len(wantDates) {
		t.Fatalf("Expected %d instances, got %d", len(wantDates), len(expenses))
	}
	for i, e := range expenses {
		if e.Date != wantDates[i] {
			t.Errorf("Instance %d date = %s, want %s", i, e.Date, wantDates[i])
		}
	}
}

func TestExpandRecurring_RespectsTemplateBounds(t *testing.T) {
	recurring := []domain.RecurringExpense{
		{Vendor: "V", Category: domain.ExpenseHosting, AmountUSD: 10, StartDate: "2025-11-01", EndDate: "2025-12-31"},
	}

	expenses := ExpandRecurring(recurring, "2025-09", "2026-03")
	if len(expenses) != 2 {
		t.Fatalf("Expected 2 instances inside template bounds, got %d", len(expenses))
	}
	if expenses[0].Date != "2025-11-01" || expenses[1].Date != "2025-12-01" {
		t.Errorf("Unexpected dates: %s, %s", expenses[0].Date, expenses[1].Date)
	}
}

func TestExpandRecurring_BadInput(t *testing.T) {
	if got := ExpandRecurring(nil, "bad", "2025-12"); got != nil {
		t.Error("Bad start month must yield nil")
	}

	recurring := []domain.RecurringExpense{
		{Vendor: "V", AmountUSD: 10, StartDate: "not-a-date"},
	}
	if got := ExpandRecurring(recurring, "2025-01", "2025-03"); len(got) != 0 {
		t.Errorf("Template with bad start date must be skipped, got %d", len(got))
	}
}
