package domain

// Account types tracked in position snapshots.
const (
	AccountVote              = "vote"
	AccountIdentity          = "identity"
	AccountWithdrawAuthority = "withdraw_authority"
	AccountStake             = "stake"
	AccountTokenATA          = "token_ata"
	AccountPersonalWallet    = "personal_wallet"
)

// StakeState is the liquidity state of a stake account.
type StakeState string

const (
	// StakeActivating is warming up; not yet earning, not liquid.
	StakeActivating StakeState = "activating"
	// StakeActive is fully delegated and earning; not liquid.
	StakeActive StakeState = "active"
	// StakeDeactivating is cooling down; liquid after the deactivation epoch.
	StakeDeactivating StakeState = "deactivating"
	// StakeInactive is undelegated; liquid unless locked up.
	StakeInactive StakeState = "inactive"
	// StakeUnknown covers uninitialized and unparsable accounts.
	StakeUnknown StakeState = "unknown"
)

// AccountBalance is a point-in-time balance of one core account.
// All amounts in lamports; SOL conversion happens at display time only.
type AccountBalance struct {
	Account              string // base58 address
	AccountType          string // one of the Account* constants
	Lamports             uint64
	RentExemptReserve    uint64
	WithdrawableLamports uint64
	SnapshotSlot         uint64
	SnapshotTime         int64 // unix seconds, 0 if unknown
}

// BalanceSOL returns the balance in SOL for display.
func (b *AccountBalance) BalanceSOL() float64 {
	return float64(b.Lamports) / LamportsPerSOL
}

// StakeAccountInfo is the parsed state of one delegated-stake account.
// Produced by parsing; never mutated, replaced wholesale per snapshot.
type StakeAccountInfo struct {
	Account      string // base58 address
	Lamports     uint64
	State        StakeState
	Voter        string  // delegated-to vote account, empty if undelegated
	LockupEpoch  *uint64 // lockup expiry epoch, nil if no lockup
	IsLiquid     bool
	SnapshotSlot uint64
}

// BalanceSOL returns the balance in SOL for display.
func (s *StakeAccountInfo) BalanceSOL() float64 {
	return float64(s.Lamports) / LamportsPerSOL
}

// IncomeData carries lifetime cash-flow totals for reconciliation.
type IncomeData struct {
	IncomeLamports      uint64
	ExpensesLamports    uint64
	WithdrawalsLamports uint64
	DepositsLamports    uint64
}

// ValidatorPosition is a point-in-time aggregate across all operator
// accounts plus the derived reconciliation fields. Immutable once built.
type ValidatorPosition struct {
	SnapshotTime int64  `json:"snapshot_time"`
	SnapshotSlot uint64 `json:"snapshot_slot"`

	// Core account balances (lamports).
	VoteLamports              uint64 `json:"vote_lamports"`
	VoteWithdrawable          uint64 `json:"vote_withdrawable"`
	IdentityLamports          uint64 `json:"identity_lamports"`
	WithdrawAuthorityLamports uint64 `json:"withdraw_authority_lamports"`

	// Liquid-token holdings (incentive rewards).
	TokenLamports      uint64  `json:"token_lamports"`
	TokenSOLRate       float64 `json:"token_sol_rate"`
	TokenSOLEquivalent uint64  `json:"token_sol_equivalent"`

	// Stake accounts.
	StakeLiquidLamports uint64 `json:"stake_liquid_lamports"`
	StakeLockedLamports uint64 `json:"stake_locked_lamports"`
	StakeTotalLamports  uint64 `json:"stake_total_lamports"`
	StakeAccountCount   int    `json:"stake_account_count"`

	// Totals.
	TotalLiquidLamports uint64 `json:"total_liquid_lamports"`
	TotalLockedLamports uint64 `json:"total_locked_lamports"`
	TotalAssetsLamports uint64 `json:"total_assets_lamports"`

	// Reconciliation inputs.
	LifetimeIncomeLamports      uint64 `json:"lifetime_income_lamports"`
	LifetimeExpensesLamports    uint64 `json:"lifetime_expenses_lamports"`
	LifetimeWithdrawalsLamports uint64 `json:"lifetime_withdrawals_lamports"`
	LifetimeDepositsLamports    uint64 `json:"lifetime_deposits_lamports"`
	TokenAppreciationLamports   int64  `json:"token_appreciation_lamports"`

	// Reconciliation results.
	NetCashFlowLamports     int64 `json:"net_cash_flow_lamports"`
	ExpectedBalanceLamports int64 `json:"expected_balance_lamports"`
	ReconciliationDiff      int64 `json:"reconciliation_diff_lamports"`
}

// TotalAssetsSOL returns total assets in SOL for display.
func (p *ValidatorPosition) TotalAssetsSOL() float64 {
	return float64(p.TotalAssetsLamports) / LamportsPerSOL
}

// ReconciliationStatus classifies the drift between expected and actual.
type ReconciliationStatus string

const (
	ReconciliationOk       ReconciliationStatus = "OK"
	ReconciliationVariance ReconciliationStatus = "VARIANCE"
)

// ReconciliationResult is the outcome of comparing actual holdings against
// the cash-flow-derived expectation.
type ReconciliationResult struct {
	NetCashFlowLamports int64
	TokenAdjustment     int64
	ExpectedLamports    int64
	ActualLamports      uint64
	DifferenceLamports  int64
	Status              ReconciliationStatus
}
