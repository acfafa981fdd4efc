package domain

// EpochReward is the staking commission earned for one epoch.
type EpochReward struct {
	Epoch      uint64
	Lamports   uint64  // commission in lamports
	AmountSOL  float64 // commission in SOL (display only)
	Commission uint8   // commission rate in percent
	Date       string  // epoch settlement date, empty if unknown
}

// EpochLeaderFees is the block-production fee income for one epoch.
type EpochLeaderFees struct {
	Epoch          uint64
	Lamports       uint64  // total fees in lamports
	TotalFeesSOL   float64 // total fees in SOL (display only)
	BlocksProduced uint64
	SkippedSlots   uint64
	Date           string // epoch settlement date, empty if unknown
}

// MevClaim is the MEV tip commission claimed for one epoch.
type MevClaim struct {
	Epoch              uint64
	Lamports           uint64  // claimed commission in lamports
	AmountSOL          float64 // claimed commission in SOL (display only)
	TotalTipsLamports  uint64  // gross tips before commission split
	CommissionLamports uint64  // validator share of tips
	Date               string  // claim settlement date, empty if unknown
}

// IncentiveClaim is a liquid-token incentive reward claimed for one epoch.
// The token amount is carried raw (9 decimals); the SOL equivalent is
// computed with the pool exchange rate at claim time.
type IncentiveClaim struct {
	Epoch         uint64
	TokenLamports uint64  // raw token amount (9 decimals)
	AmountSOL     float64 // SOL equivalent (display only)
	TokenSOLRate  float64 // exchange rate used for the conversion
	TxSignature   string  // claim transaction signature
	Date          string  // claim settlement date, empty if unknown
}

// EpochVoteCost is the on-chain vote transaction spend for one epoch.
type EpochVoteCost struct {
	Epoch       uint64
	VoteCount   uint64
	Lamports    uint64  // total fees in lamports
	TotalFeeSOL float64 // total fees in SOL (display only)
	Source      string  // where the figure came from ("rpc", "manual", ...)
	Date        string  // epoch settlement date, empty if unknown
	IsEstimate  bool    // true for not-yet-finalized epochs
}

// NetworkFee is a third-party network fee liability for one epoch,
// computed as a flat bps rate on leader fees.
type NetworkFee struct {
	Epoch             uint64
	FeeBaseLamports   uint64  // leader fees the rate applies to
	LiabilityLamports uint64  // liability in lamports
	LiabilitySOL      float64 // liability in SOL (display only)
	FeeRateBps        uint64  // rate in basis points (500 = 5%)
	Date              string  // epoch end date, empty if unknown
	Source            string  // "computed" or "manual"
	IsEstimate        bool    // true for the current (unfinished) epoch
}

// ComputeNetworkFees derives per-epoch fee liabilities from leader fee
// records. Epochs before firstEpoch and epochs with zero fee base or zero
// resulting liability are skipped. Epochs at or past currentEpoch are
// flagged as estimates.
func ComputeNetworkFees(leaderFees []EpochLeaderFees, feeRateBps, firstEpoch, currentEpoch uint64, epochDate func(uint64) string) []NetworkFee {
	if feeRateBps == 0 {
		return nil
	}

	var fees []NetworkFee
	for _, lf := range leaderFees {
		if lf.Epoch < firstEpoch || lf.Lamports == 0 {
			continue
		}

		liability := bpsOf(lf.Lamports, feeRateBps)
		if liability == 0 {
			continue
		}

		date := ""
		if epochDate != nil {
			date = epochDate(lf.Epoch + 1) // accrue at epoch end
		}

		fees = append(fees, NetworkFee{
			Epoch:             lf.Epoch,
			FeeBaseLamports:   lf.Lamports,
			LiabilityLamports: liability,
			LiabilitySOL:      float64(liability) / LamportsPerSOL,
			FeeRateBps:        feeRateBps,
			Date:              date,
			Source:            "computed",
			IsEstimate:        lf.Epoch >= currentEpoch,
		})
	}
	return fees
}

// bpsOf computes amount*bps/10000 in integer math without overflowing the
// intermediate product. Exact: floor(a*b/c) = (a/c)*b + (a%c)*b/c.
func bpsOf(amount, bps uint64) uint64 {
	return amount/10_000*bps + amount%10_000*bps/10_000
}
