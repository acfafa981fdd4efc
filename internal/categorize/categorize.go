// Package categorize partitions raw SOL transfers into purpose buckets.
package categorize

import (
	"validator-ledger/internal/addressbook"
	"validator-ledger/internal/config"
	"validator-ledger/internal/domain"
)

// Categorize buckets transfers by purpose. Each transfer lands in exactly
// one bucket; transfers touching none of the operator's accounts are
// dropped.
//
// The fee-prepayment check must run before the general incoming/outgoing
// rules: from the deposit account's perspective a prepayment is an ordinary
// incoming transfer and would otherwise be mis-bucketed.
func Categorize(transfers []domain.Transfer, cfg *config.Config) domain.CategorizedTransfers {
	var cat domain.CategorizedTransfers

	for _, t := range transfers {
		// 1. Network-fee prepayment to the deposit PDA.
		if cfg.FeeDepositAccount != "" && t.To == cfg.FeeDepositAccount && cfg.IsOurAccount(t.From) {
			labeled := t
			labeled.ToLabel = "Network Fee Deposit"
			cat.FeePrepayments = append(cat.FeePrepayments, labeled)
			continue
		}

		switch {
		case cfg.IsOurAccount(t.To): // incoming
			switch {
			case t.From == cfg.PersonalWallet:
				cat.Seeding = append(cat.Seeding, t)
			case addressbook.IsFoundation(t.From):
				cat.ProgramReimbursements = append(cat.ProgramReimbursements, t)
			case addressbook.IsMevProgram(t.From):
				cat.MevDeposits = append(cat.MevDeposits, t)
			case addressbook.IsIncentiveProgram(t.From) || addressbook.IsDeFi(t.From):
				cat.IncentiveDeposits = append(cat.IncentiveDeposits, t)
			case cfg.IsOurAccount(t.From):
				cat.InternalFunding = append(cat.InternalFunding, t)
			default:
				cat.Uncategorized = append(cat.Uncategorized, t)
			}

		case cfg.IsOurAccount(t.From): // outgoing
			switch {
			case addressbook.IsExchange(t.To) || t.To == cfg.PersonalWallet:
				cat.Withdrawals = append(cat.Withdrawals, t)
			case cfg.IsOurAccount(t.To):
				cat.InternalFunding = append(cat.InternalFunding, t)
			default:
				cat.Uncategorized = append(cat.Uncategorized, t)
			}
		}
		// Neither side ours: dropped.
	}

	return cat
}

// TotalSeededLamports sums the seeding bucket in base units.
func TotalSeededLamports(cat *domain.CategorizedTransfers) uint64 {
	var total uint64
	for _, t := range cat.Seeding {
		total += t.Lamports
	}
	return total
}
