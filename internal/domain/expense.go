package domain

// Expense categories (closed set).
const (
	ExpenseHosting    = "Hosting"
	ExpenseContractor = "Contractor"
	ExpenseHardware   = "Hardware"
	ExpenseSoftware   = "Software"
	ExpenseVoteFees   = "Vote Fees"
	ExpenseOther      = "Other"
)

// NormalizeExpenseCategory maps free-form category text onto the closed set.
// Unrecognized values fall back to ExpenseOther.
func NormalizeExpenseCategory(s string) string {
	switch s {
	case ExpenseHosting, ExpenseContractor, ExpenseHardware, ExpenseSoftware, ExpenseVoteFees, ExpenseOther:
		return s
	case "hosting":
		return ExpenseHosting
	case "contractor":
		return ExpenseContractor
	case "hardware":
		return ExpenseHardware
	case "software":
		return ExpenseSoftware
	case "votefees", "vote fees":
		return ExpenseVoteFees
	default:
		return ExpenseOther
	}
}

// Expense is a single off-chain cost paid in fiat.
type Expense struct {
	Date        string // ISO date "YYYY-MM-DD"
	Vendor      string
	Category    string // one of the Expense* constants
	Description string
	AmountUSD   float64
	PaidWith    string // payment method
	InvoiceID   string // optional invoice reference
}

// RecurringExpense is a monthly billing template. It is never persisted as
// individual entries; expansion into concrete Expense instances happens per
// report run for a bounded month range.
type RecurringExpense struct {
	Vendor      string
	Category    string // one of the Expense* constants
	Description string
	AmountUSD   float64
	PaidWith    string
	StartDate   string // ISO date of the first bill; its day is the billing day
	EndDate     string // ISO date, empty for open-ended
}
