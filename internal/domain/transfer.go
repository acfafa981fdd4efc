package domain

// UnknownDate is the sentinel used when a record's settlement date could not
// be resolved. It sorts before all real ISO dates in timeline ordering.
const UnknownDate = "unknown"

// LamportsPerSOL is the number of base units per display unit.
const LamportsPerSOL = 1_000_000_000

// Transfer represents a single SOL transfer between two addresses.
// Immutable once recorded; amount is non-negative, direction is From→To.
type Transfer struct {
	Signature string // transaction signature (unique reference)
	Date      string // ISO date "YYYY-MM-DD", empty if unknown
	From      string // source address (base58)
	To        string // destination address (base58)
	Lamports  uint64 // amount in lamports
	AmountSOL float64 // amount in SOL (display only)
	FromLabel string // optional human label for From
	ToLabel   string // optional human label for To
}

// DateOrUnknown returns the transfer date, or UnknownDate when unset.
func (t *Transfer) DateOrUnknown() string {
	if t.Date == "" {
		return UnknownDate
	}
	return t.Date
}

// CategorizedTransfers partitions a transfer set into purpose buckets.
// Every transfer touching one of the operator's accounts lands in exactly
// one bucket; transfers touching none of them are dropped.
type CategorizedTransfers struct {
	Seeding               []Transfer // personal wallet → operator accounts
	ProgramReimbursements []Transfer // foundation program payments in
	MevDeposits           []Transfer // MEV tip distribution payments in
	IncentiveDeposits     []Transfer // BAM/DeFi program payments in
	FeePrepayments        []Transfer // operator → network-fee deposit account
	InternalFunding       []Transfer // operator account ↔ operator account
	Withdrawals           []Transfer // operator → exchange or personal wallet
	Uncategorized         []Transfer // touches us, purpose unknown
}

// Count returns the total number of bucketed transfers.
func (c *CategorizedTransfers) Count() int {
	return len(c.Seeding) + len(c.ProgramReimbursements) + len(c.MevDeposits) +
		len(c.IncentiveDeposits) + len(c.FeePrepayments) + len(c.InternalFunding) +
		len(c.Withdrawals) + len(c.Uncategorized)
}
