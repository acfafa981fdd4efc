// Package timeline merges all revenue, cost and balance-sheet records into
// one chronologically ordered sequence with running P&L totals.
package timeline

import (
	"fmt"
	"sort"

	"validator-ledger/internal/coverage"
	"validator-ledger/internal/domain"
	"validator-ledger/internal/prices"
)

// ReportData bundles every input slice the builders consume. Each slice is
// independent: a collaborator that failed to fetch one source hands over an
// empty slice and the rest is still processed.
type ReportData struct {
	Rewards         []domain.EpochReward
	LeaderFees      []domain.EpochLeaderFees
	MevClaims       []domain.MevClaim
	IncentiveClaims []domain.IncentiveClaim
	VoteCosts       []domain.EpochVoteCost
	NetworkFees     []domain.NetworkFee
	Expenses        []domain.Expense
	Categorized     domain.CategorizedTransfers
	Prices          domain.PriceMap
	AcceptanceDate  string
}

// sortDate maps the unknown-date sentinel onto a key that sorts before all
// real ISO dates.
func sortDate(d string) string {
	if d == domain.UnknownDate || d == "" {
		return "0000-00-00"
	}
	return d
}

// typeOrder is the fixed total order across event kinds within one date:
// revenue first, then costs, then balance-sheet movements.
func typeOrder(eventType string) int {
	switch eventType {
	case domain.EventCommission, domain.EventTaxRevenue:
		return 0
	case domain.EventLeaderFees, domain.EventTaxReturnCapital:
		return 1
	case domain.EventMev, domain.EventTaxReimbursement:
		return 2
	case domain.EventIncentive, domain.EventTaxExpenseVoteFees:
		return 3
	case domain.EventVoteCost, domain.EventTaxExpenseNetworkFee:
		return 4
	case domain.EventNetworkFee, domain.EventTaxExpenseHosting:
		return 5
	case domain.EventExpense, domain.EventTaxExpenseSoftware:
		return 6
	case domain.EventSeeding, domain.EventTaxExpenseContractor:
		return 7
	case domain.EventWithdrawal, domain.EventTaxExpenseHardware:
		return 8
	case domain.EventFeePrepayment, domain.EventTaxExpenseOther:
		return 9
	default:
		return 10
	}
}

// sortEvents orders events by (date, type order). Unknown dates sort first.
// The sort is stable so re-running on the same input reproduces the exact
// sequence.
func sortEvents(events []domain.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := sortDate(events[i].Date), sortDate(events[j].Date)
		if di != dj {
			return di < dj
		}
		return typeOrder(events[i].EventType) < typeOrder(events[j].EventType)
	})
}

// accumulate walks the sorted events once, folding signed USD amounts into
// the three running totals. Balance-sheet events leave the totals untouched
// but still receive the values accumulated so far.
func accumulate(events []domain.TimelineEvent) {
	var profit, revenue, expenses float64

	for i := range events {
		ev := &events[i]
		if ev.IsPnL {
			if ev.AmountUSD >= 0 {
				revenue += ev.AmountUSD
			} else {
				expenses += -ev.AmountUSD
			}
			profit += ev.AmountUSD
		}
		ev.CumulativeProfitUSD = profit
		ev.CumulativeRevenueUSD = revenue
		ev.CumulativeExpensesUSD = expenses
	}
}

func epochRef(e uint64) *uint64 { return &e }

// Build produces the operating P&L timeline from all data sources.
func Build(data *ReportData) []domain.TimelineEvent {
	var events []domain.TimelineEvent

	for _, r := range data.Rewards {
		date := dateOrUnknown(r.Date)
		usd := r.AmountSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			Epoch:     epochRef(r.Epoch),
			EventType: domain.EventCommission,
			Label:     "Staking commission",
			Sublabel:  fmt.Sprintf("Epoch %d", r.Epoch),
			Lamports:  int64(r.Lamports),
			AmountSOL: r.AmountSOL,
			AmountUSD: usd,
			IsPnL:     true,
		})
	}

	for _, f := range data.LeaderFees {
		date := dateOrUnknown(f.Date)
		usd := f.TotalFeesSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			Epoch:     epochRef(f.Epoch),
			EventType: domain.EventLeaderFees,
			Label:     "Leader fees",
			Sublabel:  fmt.Sprintf("Epoch %d · %d blocks", f.Epoch, f.BlocksProduced),
			Lamports:  int64(f.Lamports),
			AmountSOL: f.TotalFeesSOL,
			AmountUSD: usd,
			IsPnL:     true,
		})
	}

	// Prefer per-epoch claim records; fall back to the raw deposit
	// transfers when the claim source failed or is not configured.
	if len(data.MevClaims) == 0 {
		for _, t := range data.Categorized.MevDeposits {
			date := t.DateOrUnknown()
			usd := t.AmountSOL * prices.Resolve(data.Prices, date)
			events = append(events, domain.TimelineEvent{
				Date:      date,
				EventType: domain.EventMev,
				Label:     "MEV tips",
				Lamports:  int64(t.Lamports),
				AmountSOL: t.AmountSOL,
				AmountUSD: usd,
				IsPnL:     true,
			})
		}
	} else {
		for _, c := range data.MevClaims {
			date := dateOrUnknown(c.Date)
			usd := c.AmountSOL * prices.Resolve(data.Prices, date)
			events = append(events, domain.TimelineEvent{
				Date:      date,
				Epoch:     epochRef(c.Epoch),
				EventType: domain.EventMev,
				Label:     "MEV tips",
				Sublabel:  fmt.Sprintf("Epoch %d", c.Epoch),
				Lamports:  int64(c.Lamports),
				AmountSOL: c.AmountSOL,
				AmountUSD: usd,
				IsPnL:     true,
			})
		}
	}

	for _, c := range data.IncentiveClaims {
		date := dateOrUnknown(c.Date)
		usd := c.AmountSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			Epoch:     epochRef(c.Epoch),
			EventType: domain.EventIncentive,
			Label:     "BAM incentives",
			Sublabel:  fmt.Sprintf("Epoch %d · liquid-token reward", c.Epoch),
			Lamports:  int64(c.TokenLamports),
			AmountSOL: c.AmountSOL,
			AmountUSD: usd,
			IsPnL:     true,
		})
	}

	for _, vc := range data.VoteCosts {
		date := dateOrUnknown(vc.Date)
		price := prices.Resolve(data.Prices, date)
		cov := coverage.Fraction(data.AcceptanceDate, date)

		reimbursed := uint64(float64(vc.Lamports) * cov)
		netLamports := vc.Lamports - reimbursed
		netSOL := vc.TotalFeeSOL * (1 - cov)

		sublabel := fmt.Sprintf("Epoch %d", vc.Epoch)
		if cov > 0 {
			sublabel = fmt.Sprintf("Epoch %d · %.0f%% program offset", vc.Epoch, cov*100)
		}

		events = append(events, domain.TimelineEvent{
			Date:      date,
			Epoch:     epochRef(vc.Epoch),
			EventType: domain.EventVoteCost,
			Label:     "Vote costs",
			Sublabel:  sublabel,
			Lamports:  -int64(netLamports),
			AmountSOL: -netSOL,
			AmountUSD: -netSOL * price,
			IsPnL:     true,
		})
	}

	for _, fee := range data.NetworkFees {
		date := dateOrUnknown(fee.Date)
		usd := fee.LiabilitySOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			Epoch:     epochRef(fee.Epoch),
			EventType: domain.EventNetworkFee,
			Label:     "Network fees",
			Sublabel:  fmt.Sprintf("Epoch %d", fee.Epoch),
			Lamports:  -int64(fee.LiabilityLamports),
			AmountSOL: -fee.LiabilitySOL,
			AmountUSD: -usd,
			IsPnL:     true,
		})
	}

	for _, exp := range data.Expenses {
		events = append(events, domain.TimelineEvent{
			Date:      exp.Date,
			EventType: domain.EventExpense,
			Label:     fmt.Sprintf("%s - %s", exp.Vendor, exp.Category),
			Sublabel:  exp.Description,
			AmountUSD: -exp.AmountUSD,
			IsPnL:     true,
		})
	}

	// Balance-sheet movements: recorded on the timeline, excluded from P&L.
	for _, t := range data.Categorized.Seeding {
		date := t.DateOrUnknown()
		usd := t.AmountSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			EventType: domain.EventSeeding,
			Label:     "Capital contribution",
			Sublabel:  fmt.Sprintf("%s → %s", t.FromLabel, t.ToLabel),
			Lamports:  int64(t.Lamports),
			AmountSOL: t.AmountSOL,
			AmountUSD: usd,
		})
	}

	for _, t := range data.Categorized.Withdrawals {
		date := t.DateOrUnknown()
		usd := t.AmountSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			EventType: domain.EventWithdrawal,
			Label:     "Withdrawal",
			Sublabel:  fmt.Sprintf("→ %s", t.ToLabel),
			Lamports:  int64(t.Lamports),
			AmountSOL: t.AmountSOL,
			AmountUSD: usd,
		})
	}

	for _, t := range data.Categorized.FeePrepayments {
		date := t.DateOrUnknown()
		usd := t.AmountSOL * prices.Resolve(data.Prices, date)
		events = append(events, domain.TimelineEvent{
			Date:      date,
			EventType: domain.EventFeePrepayment,
			Label:     "Network fee prepayment",
			Sublabel:  "Deposit to fee PDA",
			Lamports:  int64(t.Lamports),
			AmountSOL: t.AmountSOL,
			AmountUSD: usd,
		})
	}

	sortEvents(events)
	accumulate(events)
	return events
}

func dateOrUnknown(d string) string {
	if d == "" {
		return domain.UnknownDate
	}
	return d
}
