package reporting

import (
	"strings"
	"testing"

	"validator-ledger/internal/domain"
)

func TestBuildSummary(t *testing.T) {
	events := []domain.TimelineEvent{
		{EventType: domain.EventCommission, AmountUSD: 100, IsPnL: true},
		{EventType: domain.EventLeaderFees, AmountUSD: 50, IsPnL: true},
		{EventType: domain.EventMev, AmountUSD: 25, IsPnL: true},
		{EventType: domain.EventIncentive, AmountUSD: 10, IsPnL: true},
		{EventType: domain.EventVoteCost, AmountUSD: -30, IsPnL: true},
		{EventType: domain.EventNetworkFee, AmountUSD: -5, IsPnL: true},
		{EventType: domain.EventExpense, AmountUSD: -40, IsPnL: true},
		{EventType: domain.EventSeeding, AmountSOL: 100},
		{EventType: domain.EventWithdrawal, AmountSOL: 30},
		{EventType: domain.EventFeePrepayment, AmountSOL: 2},
	}

	s := BuildSummary(events)

	if s.TotalRevenueUSD != 185 {
		t.Errorf("TotalRevenueUSD = %v, want 185", s.TotalRevenueUSD)
	}
	if s.VoteCostsNetUSD != 30 || s.NetworkFeesUSD != 5 || s.OffChainUSD != 40 {
		t.Errorf("Expense fields wrong: %+v", s)
	}
	if s.TotalExpensesUSD != 75 {
		t.Errorf("TotalExpensesUSD = %v, want 75", s.TotalExpensesUSD)
	}
	if s.NetProfitUSD != 110 {
		t.Errorf("NetProfitUSD = %v, want 110", s.NetProfitUSD)
	}
	if s.SeedingSOL != 100 || s.WithdrawalsSOL != 30 {
		t.Errorf("Capital fields wrong: %+v", s)
	}
}

func TestRenderSummary(t *testing.T) {
	s := Summary{
		CommissionUSD:    100,
		TotalRevenueUSD:  100,
		VoteCostsNetUSD:  30,
		TotalExpensesUSD: 30,
		NetProfitUSD:     70,
		SeedingSOL:       100,
		WithdrawalsSOL:   30,
	}

	out := RenderSummary(s, 0)
	for _, want := range []string{
		"FINANCIAL SUMMARY",
		"REVENUE:",
		"EXPENSES:",
		"PROFIT/LOSS:",
		"CAPITAL:",
		"$    100.00",
		"100.0000 SOL",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}

	// Zero-valued optional lines stay hidden.
	if strings.Contains(out, "Incentive rewards") || strings.Contains(out, "Network fees:") {
		t.Errorf("Optional zero lines must be omitted:\n%s", out)
	}

	filtered := RenderSummary(s, 2026)
	if !strings.Contains(filtered, "FINANCIAL SUMMARY (2026)") {
		t.Errorf("Year filter missing from title:\n%s", filtered)
	}
}
