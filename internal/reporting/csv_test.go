package reporting

import (
	"strings"
	"testing"

	"validator-ledger/internal/domain"
)

func TestRenderTaxCSV_Header(t *testing.T) {
	out := RenderTaxCSV(nil)
	want := "Date,Type,Category,Description,SOL Amount,SOL Price (USD),USD Value,Destination,Tx Signature\n"
	if out != want {
		t.Errorf("Header mismatch:\n got %q\nwant %q", out, want)
	}
}

func TestRenderTaxCSV_Rows(t *testing.T) {
	rows := []domain.TaxRow{
		{
			Date:        "2026-01-15",
			EntryType:   domain.TaxEntryRevenue,
			Category:    "Withdrawal",
			Description: "External withdrawal to Coinbase",
			SOLAmount:   30,
			HasSOL:      true,
			SOLPriceUSD: 182.30,
			USDValue:    5469,
			Destination: "Coinbase",
			TxSignature: "sig1",
		},
		{
			Date:        "2025-11-15",
			EntryType:   domain.TaxEntryExpense,
			Category:    domain.ExpenseHosting,
			Description: "Teraswitch - Bare metal",
			USDValue:    370,
		},
	}

	out := RenderTaxCSV(rows)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}

	if lines[1] != "2026-01-15,Revenue,Withdrawal,External withdrawal to Coinbase,30.000000,182.30,5469.00,Coinbase,sig1" {
		t.Errorf("Row 1 mismatch: %s", lines[1])
	}
	// Fiat-only rows leave the SOL columns empty.
	if lines[2] != "2025-11-15,Expense,Hosting,Teraswitch - Bare metal,,,370.00,," {
		t.Errorf("Row 2 mismatch: %s", lines[2])
	}
}

func TestRenderTaxCSV_Escaping(t *testing.T) {
	rows := []domain.TaxRow{
		{
			Date:        "2025-11-20",
			EntryType:   domain.TaxEntryExpense,
			Category:    domain.ExpenseContractor,
			Description: `J. Doe - Monitoring, "phase 1"`,
			USDValue:    250,
		},
	}

	out := RenderTaxCSV(rows)
	if !strings.Contains(out, `"J. Doe - Monitoring, ""phase 1"""`) {
		t.Errorf("Comma and quote escaping wrong:\n%s", out)
	}
}

func TestRenderTimelineCSV(t *testing.T) {
	epoch := uint64(800)
	events := []domain.TimelineEvent{
		{
			Date:                  "2025-11-03",
			Epoch:                 &epoch,
			EventType:             domain.EventCommission,
			Label:                 "Staking commission",
			Sublabel:              "Epoch 800",
			AmountSOL:             0.42,
			AmountUSD:             71.93,
			CumulativeProfitUSD:   71.93,
			CumulativeRevenueUSD:  71.93,
			CumulativeExpensesUSD: 0,
			IsPnL:                 true,
		},
		{
			Date:      "2025-12-01",
			EventType: domain.EventFeePrepayment,
			Label:     "Network fee prepayment",
			AmountSOL: 2,
			AmountUSD: 353.10,
		},
	}

	out := RenderTimelineCSV(events)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[0], "Date,Epoch,Event Type,Label,Sublabel") {
		t.Errorf("Header mismatch: %s", lines[0])
	}
	if lines[1] != "2025-11-03,800,commission,Staking commission,Epoch 800,0.420000,71.93,71.93,71.93,0.00,true" {
		t.Errorf("Row 1 mismatch: %s", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",false") {
		t.Errorf("Balance-sheet row must end with false: %s", lines[2])
	}
	// No epoch: column stays empty.
	if !strings.HasPrefix(lines[2], "2025-12-01,,fee_prepayment,") {
		t.Errorf("Row 2 mismatch: %s", lines[2])
	}
}
