package timeline

import (
	"strconv"
	"strings"

	"validator-ledger/internal/domain"
)

// BuildTax re-projects cash-basis tax rows as a cumulative timeline.
// Revenue and reimbursements count toward P&L; return-of-capital rows are
// balance-sheet movements and do not.
func BuildTax(rows []domain.TaxRow) []domain.TimelineEvent {
	var events []domain.TimelineEvent

	for _, row := range rows {
		eventType := taxEventType(&row)
		label, sublabel := taxLabels(&row, eventType)
		lamports, sol, usd, isPnL := signedTaxAmounts(&row, eventType)

		events = append(events, domain.TimelineEvent{
			Date:      row.Date,
			Epoch:     epochFromDescription(row.Description),
			EventType: eventType,
			Label:     label,
			Sublabel:  sublabel,
			Lamports:  lamports,
			AmountSOL: sol,
			AmountUSD: usd,
			IsPnL:     isPnL,
		})
	}

	sortEvents(events)
	accumulate(events)
	return events
}

func taxEventType(row *domain.TaxRow) string {
	switch row.EntryType {
	case domain.TaxEntryRevenue:
		return domain.EventTaxRevenue
	case domain.TaxEntryReimbursement:
		return domain.EventTaxReimbursement
	case domain.TaxEntryReturnOfCapital:
		return domain.EventTaxReturnCapital
	case domain.TaxEntryExpense:
		switch row.Category {
		case domain.ExpenseVoteFees:
			return domain.EventTaxExpenseVoteFees
		case "Network Fees":
			return domain.EventTaxExpenseNetworkFee
		case domain.ExpenseHosting:
			return domain.EventTaxExpenseHosting
		case domain.ExpenseSoftware:
			return domain.EventTaxExpenseSoftware
		case domain.ExpenseContractor:
			return domain.EventTaxExpenseContractor
		case domain.ExpenseHardware:
			return domain.EventTaxExpenseHardware
		}
	}
	return domain.EventTaxExpenseOther
}

func taxLabels(row *domain.TaxRow, eventType string) (string, string) {
	switch eventType {
	case domain.EventTaxRevenue:
		return "Taxable withdrawal", row.Description
	case domain.EventTaxReimbursement:
		return "Program reimbursement", row.Description
	case domain.EventTaxReturnCapital:
		return "Return of capital", row.Description
	case domain.EventTaxExpenseVoteFees:
		return "Vote fees", row.Description
	case domain.EventTaxExpenseNetworkFee:
		return "Network fees", row.Description
	}

	if row.EntryType == domain.TaxEntryExpense {
		// Off-chain rows carry "vendor - description".
		if vendor, desc, ok := strings.Cut(row.Description, " - "); ok {
			return strings.TrimSpace(vendor) + " - " + row.Category, strings.TrimSpace(desc)
		}
		return row.Category + " expense", row.Description
	}
	return row.Category, row.Description
}

func signedTaxAmounts(row *domain.TaxRow, eventType string) (int64, float64, float64, bool) {
	lamports := int64(row.Lamports)
	sol := row.SOLAmount
	usd := row.USDValue

	switch eventType {
	case domain.EventTaxRevenue, domain.EventTaxReimbursement:
		return lamports, sol, usd, true
	case domain.EventTaxReturnCapital:
		return lamports, sol, usd, false
	default:
		return -lamports, -sol, -usd, true
	}
}

// epochFromDescription pulls an "epoch N" reference out of row text, if any.
func epochFromDescription(description string) *uint64 {
	lower := strings.ToLower(description)
	idx := strings.Index(lower, "epoch ")
	if idx < 0 {
		return nil
	}
	rest := lower[idx+len("epoch "):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	epoch, err := strconv.ParseUint(rest[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &epoch
}
