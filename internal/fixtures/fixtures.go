// Package fixtures loads a small self-consistent demo dataset into memory
// stores so the commands can run without databases.
package fixtures

import (
	"context"
	"fmt"

	"validator-ledger/internal/config"
	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

// Demo operator accounts. Not real keys.
const (
	demoVote         = "DemoVote4kP1yyaTNZsKv2WcRAB8oVnk93mLJw2Xzjt"
	demoIdentity     = "DemoIdent7maPM5tGv6MvB3v1sRMC86PZ8okm21hyQx"
	demoWithdraw     = "DemoWdrw2JpcEgPiATUXjQxA8QmafFegfQwSLWSprPi"
	demoPersonal     = "DemoPers5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9Tt"
	demoStakeAccount = "DemoStak8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdX"
	demoFeeDeposit   = "DemoFeeD9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPa"

	jitoTipDistribution = "4R3gSG8BpU4t19KYj8CfnbtRpnT8gtk4dvTHxVRwc2r7"
	foundationWallet    = "mpa4abUkjQoAvPzREkh5Mo75hZhPFQ2FSH6w7dWKuQ5"
)

// Stores bundles the store set the demo data is loaded into.
type Stores struct {
	Transfers  storage.TransferStore
	Rewards    storage.RewardStore
	LeaderFees storage.LeaderFeeStore
	MevClaims  storage.MevClaimStore
	Incentives storage.IncentiveClaimStore
	VoteCosts  storage.VoteCostStore
	NetFees    storage.NetworkFeeStore
	Expenses   storage.ExpenseStore
	Recurring  storage.RecurringExpenseStore
	Prices     storage.PriceStore
}

// DemoConfig builds the operator config matching the demo dataset.
func DemoConfig() (*config.Config, error) {
	return config.New(demoVote, demoIdentity, demoWithdraw, demoPersonal,
		[]string{demoStakeAccount},
		func(c *config.Config) {
			c.AcceptanceDate = "2025-10-01"
			c.FeeDepositAccount = demoFeeDeposit
			c.NetworkFeeRateBps = 500
			c.NetworkFeeFirstEpoch = 800
		})
}

// Load inserts the demo dataset. Stores must be empty.
func Load(ctx context.Context, s Stores) error {
	sol := func(v float64) uint64 { return uint64(v * domain.LamportsPerSOL) }

	transfers := []*domain.Transfer{
		{
			Signature: "demoSeed1", Date: "2025-10-02",
			From: demoPersonal, To: demoIdentity,
			Lamports: sol(100), AmountSOL: 100,
			FromLabel: "Personal Wallet", ToLabel: "Identity",
		},
		{
			Signature: "demoMev1", Date: "2025-11-05",
			From: jitoTipDistribution, To: demoVote,
			Lamports: sol(1.25), AmountSOL: 1.25,
			FromLabel: "Jito Tip Distribution", ToLabel: "Vote Account",
		},
		{
			Signature: "demoReimb1", Date: "2025-11-10",
			From: foundationWallet, To: demoIdentity,
			Lamports: sol(0.8), AmountSOL: 0.8,
			FromLabel: "Solana Foundation", ToLabel: "Identity",
		},
		{
			Signature: "demoPrepay1", Date: "2025-12-01",
			From: demoIdentity, To: demoFeeDeposit,
			Lamports: sol(2), AmountSOL: 2,
			FromLabel: "Identity",
		},
		{
			Signature: "demoWdrw1", Date: "2026-01-15",
			From: demoWithdraw, To: demoPersonal,
			Lamports: sol(30), AmountSOL: 30,
			FromLabel: "Withdraw Authority", ToLabel: "Personal Wallet",
		},
	}
	if err := s.Transfers.InsertBulk(ctx, transfers); err != nil {
		return fmt.Errorf("load transfers: %w", err)
	}

	rewards := []*domain.EpochReward{
		{Epoch: 800, Lamports: sol(0.42), AmountSOL: 0.42, Commission: 5, Date: "2025-11-03"},
		{Epoch: 801, Lamports: sol(0.45), AmountSOL: 0.45, Commission: 5, Date: "2025-11-05"},
		{Epoch: 802, Lamports: sol(0.47), AmountSOL: 0.47, Commission: 5, Date: "2025-11-07"},
	}
	for _, r := range rewards {
		if err := s.Rewards.Insert(ctx, r); err != nil {
			return fmt.Errorf("load rewards: %w", err)
		}
	}

	leaderFees := []*domain.EpochLeaderFees{
		{Epoch: 800, Lamports: sol(0.9), TotalFeesSOL: 0.9, BlocksProduced: 58, SkippedSlots: 2, Date: "2025-11-03"},
		{Epoch: 801, Lamports: sol(1.1), TotalFeesSOL: 1.1, BlocksProduced: 61, SkippedSlots: 1, Date: "2025-11-05"},
		{Epoch: 802, Lamports: sol(0.7), TotalFeesSOL: 0.7, BlocksProduced: 55, SkippedSlots: 4, Date: "2025-11-07"},
	}
	for _, f := range leaderFees {
		if err := s.LeaderFees.Insert(ctx, f); err != nil {
			return fmt.Errorf("load leader fees: %w", err)
		}
	}

	mevClaims := []*domain.MevClaim{
		{Epoch: 801, Lamports: sol(1.25), AmountSOL: 1.25, TotalTipsLamports: sol(15.6), CommissionLamports: sol(1.25), Date: "2025-11-05"},
	}
	for _, c := range mevClaims {
		if err := s.MevClaims.Insert(ctx, c); err != nil {
			return fmt.Errorf("load mev claims: %w", err)
		}
	}

	incentives := []*domain.IncentiveClaim{
		{Epoch: 802, TokenLamports: sol(0.5), AmountSOL: 0.55, TokenSOLRate: 1.1, TxSignature: "demoBam1", Date: "2025-11-08"},
	}
	for _, c := range incentives {
		if err := s.Incentives.Insert(ctx, c); err != nil {
			return fmt.Errorf("load incentive claims: %w", err)
		}
	}

	voteCosts := []*domain.EpochVoteCost{
		{Epoch: 800, VoteCount: 43150, Lamports: sol(0.216), TotalFeeSOL: 0.216, Source: "rpc", Date: "2025-11-03"},
		{Epoch: 801, VoteCount: 43300, Lamports: sol(0.217), TotalFeeSOL: 0.217, Source: "rpc", Date: "2025-11-05"},
		{Epoch: 802, VoteCount: 42980, Lamports: sol(0.215), TotalFeeSOL: 0.215, Source: "rpc", Date: "2025-11-07", IsEstimate: true},
	}
	for _, v := range voteCosts {
		if err := s.VoteCosts.Insert(ctx, v); err != nil {
			return fmt.Errorf("load vote costs: %w", err)
		}
	}

	epochDates := map[uint64]string{801: "2025-11-05", 802: "2025-11-07", 803: "2025-11-09"}
	lf := make([]domain.EpochLeaderFees, 0, len(leaderFees))
	for _, f := range leaderFees {
		lf = append(lf, *f)
	}
	netFees := domain.ComputeNetworkFees(lf, 500, 800, 803, func(e uint64) string { return epochDates[e] })
	for i := range netFees {
		if err := s.NetFees.Insert(ctx, &netFees[i]); err != nil {
			return fmt.Errorf("load network fees: %w", err)
		}
	}

	expenses := []*domain.Expense{
		{Date: "2025-10-15", Vendor: "Teraswitch", Category: domain.ExpenseHosting, Description: "Bare metal, Frankfurt", AmountUSD: 370, PaidWith: "card"},
		{Date: "2025-11-15", Vendor: "Teraswitch", Category: domain.ExpenseHosting, Description: "Bare metal, Frankfurt", AmountUSD: 370, PaidWith: "card"},
		{Date: "2025-11-20", Vendor: "J. Doe", Category: domain.ExpenseContractor, Description: "Monitoring setup", AmountUSD: 250, PaidWith: "wire"},
	}
	for _, e := range expenses {
		if err := s.Expenses.Insert(ctx, e); err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
	}

	recurring := []*domain.RecurringExpense{
		{
			Vendor: "Grafana Cloud", Category: domain.ExpenseSoftware,
			Description: "Dashboards and alerting", AmountUSD: 49, PaidWith: "card",
			StartDate: "2025-12-05", EndDate: "2026-01-31",
		},
	}
	for _, r := range recurring {
		if err := s.Recurring.Insert(ctx, r); err != nil {
			return fmt.Errorf("load recurring expenses: %w", err)
		}
	}

	prices := []*domain.PricePoint{
		{Date: "2025-10-02", PriceUSD: 168.40, Source: "demo"},
		{Date: "2025-11-03", PriceUSD: 171.25, Source: "demo"},
		{Date: "2025-11-05", PriceUSD: 173.80, Source: "demo"},
		{Date: "2025-11-07", PriceUSD: 169.10, Source: "demo"},
		{Date: "2025-11-08", PriceUSD: 170.00, Source: "demo"},
		{Date: "2025-12-01", PriceUSD: 176.55, Source: "demo"},
		{Date: "2026-01-15", PriceUSD: 182.30, Source: "demo"},
	}
	if err := s.Prices.InsertBulk(ctx, prices); err != nil {
		return fmt.Errorf("load prices: %w", err)
	}

	return nil
}
