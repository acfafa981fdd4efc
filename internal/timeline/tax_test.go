package timeline

import (
	"testing"

	"validator-ledger/internal/domain"
)

func TestBuildTax_SignConventions(t *testing.T) {
	rows := []domain.TaxRow{
		{Date: "2025-11-01", EntryType: domain.TaxEntryRevenue, Category: "Withdrawal", Lamports: 10, SOLAmount: 1, USDValue: 100},
		{Date: "2025-11-02", EntryType: domain.TaxEntryReturnOfCapital, Category: "Withdrawal", Lamports: 20, SOLAmount: 2, USDValue: 200},
		{Date: "2025-11-03", EntryType: domain.TaxEntryReimbursement, Category: "Vote Fee Reimbursement", Lamports: 5, SOLAmount: 0.5, USDValue: 50},
		{Date: "2025-11-04", EntryType: domain.TaxEntryExpense, Category: domain.ExpenseVoteFees, Lamports: 8, SOLAmount: 0.8, USDValue: 80},
	}

	events := BuildTax(rows)
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	byType := map[string]domain.TimelineEvent{}
	for _, ev := range events {
		byType[ev.EventType] = ev
	}

	rev := byType[domain.EventTaxRevenue]
	if !rev.IsPnL || rev.AmountUSD != 100 {
		t.Errorf("Revenue event wrong: %+v", rev)
	}

	roc := byType[domain.EventTaxReturnCapital]
	if roc.IsPnL {
		t.Error("Return of capital must not be PnL")
	}
	if roc.AmountUSD != 200 {
		t.Errorf("Return of capital must keep its positive amount, got %v", roc.AmountUSD)
	}

	reimb := byType[domain.EventTaxReimbursement]
	if !reimb.IsPnL || reimb.AmountUSD != 50 {
		t.Errorf("Reimbursement event wrong: %+v", reimb)
	}

	exp := byType[domain.EventTaxExpenseVoteFees]
	if !exp.IsPnL || exp.AmountUSD != -80 || exp.Lamports != -8 {
		t.Errorf("Expense must be negated: %+v", exp)
	}

	// Totals: 100 + 50 revenue, 80 expense.
	last := events[len(events)-1]
	if last.CumulativeRevenueUSD != 150 || last.CumulativeExpensesUSD != 80 || last.CumulativeProfitUSD != 70 {
		t.Errorf("Totals wrong: %+v", last)
	}
}

func TestTaxEventType_ExpenseCategories(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{domain.ExpenseVoteFees, domain.EventTaxExpenseVoteFees},
		{"Network Fees", domain.EventTaxExpenseNetworkFee},
		{domain.ExpenseHosting, domain.EventTaxExpenseHosting},
		{domain.ExpenseSoftware, domain.EventTaxExpenseSoftware},
		{domain.ExpenseContractor, domain.EventTaxExpenseContractor},
		{domain.ExpenseHardware, domain.EventTaxExpenseHardware},
		{domain.ExpenseOther, domain.EventTaxExpenseOther},
		{"whatever", domain.EventTaxExpenseOther},
	}

	for _, tc := range cases {
		row := domain.TaxRow{EntryType: domain.TaxEntryExpense, Category: tc.category}
		if got := taxEventType(&row); got != tc.want {
			t.Errorf("taxEventType(%q) = %s, want %s", tc.category, got, tc.want)
		}
	}
}

func TestTaxLabels_OffChainVendorSplit(t *testing.T) {
	row := domain.TaxRow{
		EntryType:   domain.TaxEntryExpense,
		Category:    domain.ExpenseHosting,
		Description: "Teraswitch - Bare metal, Frankfurt",
	}
	label, sublabel := taxLabels(&row, domain.EventTaxExpenseHosting)
	if label != "Teraswitch - Hosting" {
		t.Errorf("Label = %q", label)
	}
	if sublabel != "Bare metal, Frankfurt" {
		t.Errorf("Sublabel = %q", sublabel)
	}
}

func TestEpochFromDescription(t *testing.T) {
	cases := []struct {
		desc string
		want *uint64
	}{
		{"Vote transaction fees epoch 842 (43150 votes)", epochRef(842)},
		{"Network fee epoch 900 (500bps on leader fees)", epochRef(900)},
		{"Return of seed capital to Coinbase", nil},
		{"epoch ", nil},
	}

	for _, tc := range cases {
		got := epochFromDescription(tc.desc)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("epochFromDescription(%q) = %d, want nil", tc.desc, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("epochFromDescription(%q) = %v, want %d", tc.desc, got, *tc.want)
		}
	}
}
