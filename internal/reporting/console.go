package reporting

import (
	"fmt"
	"strings"

	"validator-ledger/internal/domain"
)

// Summary holds the aggregate figures printed after a report run.
type Summary struct {
	CommissionUSD   float64
	LeaderFeesUSD   float64
	MevUSD          float64
	IncentivesUSD   float64
	TotalRevenueUSD float64

	VoteCostsNetUSD   float64
	NetworkFeesUSD    float64
	OffChainUSD       float64
	TotalExpensesUSD  float64

	NetProfitUSD float64

	SeedingSOL     float64
	WithdrawalsSOL float64
}

// BuildSummary folds a finished timeline into the summary figures. Vote
// costs are already net of program reimbursement at this point.
func BuildSummary(events []domain.TimelineEvent) Summary {
	var s Summary

	for _, ev := range events {
		switch ev.EventType {
		case domain.EventCommission:
			s.CommissionUSD += ev.AmountUSD
		case domain.EventLeaderFees:
			s.LeaderFeesUSD += ev.AmountUSD
		case domain.EventMev:
			s.MevUSD += ev.AmountUSD
		case domain.EventIncentive:
			s.IncentivesUSD += ev.AmountUSD
		case domain.EventVoteCost:
			s.VoteCostsNetUSD += -ev.AmountUSD
		case domain.EventNetworkFee:
			s.NetworkFeesUSD += -ev.AmountUSD
		case domain.EventExpense:
			s.OffChainUSD += -ev.AmountUSD
		case domain.EventSeeding:
			s.SeedingSOL += ev.AmountSOL
		case domain.EventWithdrawal:
			s.WithdrawalsSOL += ev.AmountSOL
		}
	}

	s.TotalRevenueUSD = s.CommissionUSD + s.LeaderFeesUSD + s.MevUSD + s.IncentivesUSD
	s.TotalExpensesUSD = s.VoteCostsNetUSD + s.NetworkFeesUSD + s.OffChainUSD
	s.NetProfitUSD = s.TotalRevenueUSD - s.TotalExpensesUSD
	return s
}

const summaryRule = "============================================================"

// RenderSummary renders the console financial summary.
func RenderSummary(s Summary, yearFilter int) string {
	var sb strings.Builder

	title := "FINANCIAL SUMMARY"
	if yearFilter != 0 {
		title = fmt.Sprintf("FINANCIAL SUMMARY (%d)", yearFilter)
	}

	sb.WriteString("\n" + summaryRule + "\n")
	fmt.Fprintf(&sb, "%*s\n", (len(summaryRule)+len(title))/2, title)
	sb.WriteString(summaryRule + "\n\n")

	sb.WriteString("REVENUE:\n")
	fmt.Fprintf(&sb, "  Staking commission:             $%10.2f\n", s.CommissionUSD)
	fmt.Fprintf(&sb, "  Leader fees:                    $%10.2f\n", s.LeaderFeesUSD)
	fmt.Fprintf(&sb, "  MEV tips:                       $%10.2f\n", s.MevUSD)
	if s.IncentivesUSD != 0 {
		fmt.Fprintf(&sb, "  Incentive rewards:              $%10.2f\n", s.IncentivesUSD)
	}
	fmt.Fprintf(&sb, "  Total Revenue:                  $%10.2f\n\n", s.TotalRevenueUSD)

	sb.WriteString("EXPENSES:\n")
	fmt.Fprintf(&sb, "  Vote fees (net):                $%10.2f\n", s.VoteCostsNetUSD)
	if s.NetworkFeesUSD != 0 {
		fmt.Fprintf(&sb, "  Network fees:                   $%10.2f\n", s.NetworkFeesUSD)
	}
	fmt.Fprintf(&sb, "  Off-chain:                      $%10.2f\n", s.OffChainUSD)
	fmt.Fprintf(&sb, "  Total Expenses:                 $%10.2f\n\n", s.TotalExpensesUSD)

	sb.WriteString("PROFIT/LOSS:\n")
	fmt.Fprintf(&sb, "  Net Profit:                     $%10.2f\n\n", s.NetProfitUSD)

	sb.WriteString("CAPITAL:\n")
	fmt.Fprintf(&sb, "  Initial Seeding:    %12.4f SOL\n", s.SeedingSOL)
	fmt.Fprintf(&sb, "  Withdrawals:        %12.4f SOL\n", s.WithdrawalsSOL)
	sb.WriteString(summaryRule + "\n")

	return sb.String()
}
