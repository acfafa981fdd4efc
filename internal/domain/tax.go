package domain

// Tax row entry types. The reverse-lexicographic order of these names is
// load-bearing: rows sharing a date are sorted with entry_type descending,
// which puts Revenue, Return of Capital and Reimbursement ahead of Expense.
const (
	TaxEntryRevenue         = "Revenue"
	TaxEntryExpense         = "Expense"
	TaxEntryReturnOfCapital = "Return of Capital"
	TaxEntryReimbursement   = "Reimbursement"
)

// TaxRow is a single cash-basis ledger entry.
type TaxRow struct {
	Date        string // ISO date, or UnknownDate
	EntryType   string // one of the TaxEntry* constants
	Category    string // e.g. "Withdrawal", "Vote Fees", expense category
	Description string
	Lamports    uint64  // base-unit amount, 0 for fiat-only rows
	SOLAmount   float64 // display amount, 0 for fiat-only rows
	HasSOL      bool    // whether Lamports/SOLAmount/SOLPriceUSD are meaningful
	SOLPriceUSD float64 // price used for the USD valuation
	USDValue    float64
	Destination string // for withdrawals
	TxSignature string // for on-chain events
}
