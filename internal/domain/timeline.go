package domain

// Operating timeline event types, in their fixed sort order.
const (
	EventCommission     = "commission"
	EventLeaderFees     = "leader_fees"
	EventMev            = "mev"
	EventIncentive      = "incentive"
	EventVoteCost       = "vote_cost"
	EventNetworkFee     = "network_fee"
	EventExpense        = "expense"
	EventSeeding        = "seeding"
	EventWithdrawal     = "withdrawal"
	EventFeePrepayment  = "fee_prepayment"
)

// Tax timeline event types.
const (
	EventTaxRevenue           = "tax_revenue"
	EventTaxReturnCapital     = "tax_return_capital"
	EventTaxReimbursement     = "tax_reimbursement"
	EventTaxExpenseVoteFees   = "tax_expense_vote_fees"
	EventTaxExpenseNetworkFee = "tax_expense_network_fee"
	EventTaxExpenseHosting    = "tax_expense_hosting"
	EventTaxExpenseSoftware   = "tax_expense_software"
	EventTaxExpenseContractor = "tax_expense_contractor"
	EventTaxExpenseHardware   = "tax_expense_hardware"
	EventTaxExpenseOther      = "tax_expense_other"
)

// TimelineEvent is one atomic financial event in a cumulative timeline.
//
// Amounts are signed: revenue-like positive, cost-like negative. The three
// cumulative fields are computed by the builder in a single forward walk and
// must never be set by the caller. Balance-sheet events (IsPnL == false)
// leave the totals untouched but still carry the values accumulated so far,
// so rewinding to any event shows the P&L state immediately after it.
type TimelineEvent struct {
	Date      string  `json:"date"`
	Epoch     *uint64 `json:"epoch"`
	EventType string  `json:"event_type"`
	Label     string  `json:"label"`
	Sublabel  string  `json:"sublabel,omitempty"`

	Lamports  int64   `json:"amount_lamports"`
	AmountSOL float64 `json:"amount_sol"`
	AmountUSD float64 `json:"amount_usd"`

	CumulativeProfitUSD   float64 `json:"cumulative_profit_usd"`
	CumulativeRevenueUSD  float64 `json:"cumulative_revenue_usd"`
	CumulativeExpensesUSD float64 `json:"cumulative_expenses_usd"`

	IsPnL bool `json:"is_pnl"`
}
