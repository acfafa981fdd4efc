// Package taxledger derives cash-basis tax rows: withdrawals split into
// return-of-capital and taxable revenue by FIFO consumption of contributed
// capital, plus expense and reimbursement rows for period costs.
package taxledger

import (
	"fmt"
	"sort"
	"strconv"

	"validator-ledger/internal/addressbook"
	"validator-ledger/internal/config"
	"validator-ledger/internal/coverage"
	"validator-ledger/internal/domain"
	"validator-ledger/internal/prices"
)

// Data bundles the inputs for a tax report run.
type Data struct {
	Categorized domain.CategorizedTransfers
	VoteCosts   []domain.EpochVoteCost
	NetworkFees []domain.NetworkFee
	Expenses    []domain.Expense
	Prices      domain.PriceMap
}

// BuildRows builds the normalized tax rows. yearFilter limits which rows
// are emitted (0 = all years); capital consumption always runs across the
// entire history so prior-year withdrawals deplete the pool available to
// the filtered year. The second return value counts rows dropped because
// their date was unknown while a year filter was active.
func BuildRows(data *Data, cfg *config.Config, yearFilter int) ([]domain.TaxRow, int) {
	var rows []domain.TaxRow
	skipped := 0

	// Withdrawals plus outgoing uncategorized transfers that left the
	// operator's accounts: both reduce the business's holdings.
	outgoing := make([]domain.Transfer, 0, len(data.Categorized.Withdrawals))
	outgoing = append(outgoing, data.Categorized.Withdrawals...)
	for _, t := range data.Categorized.Uncategorized {
		if cfg.IsOurAccount(t.From) && !cfg.IsOurAccount(t.To) {
			outgoing = append(outgoing, t)
		}
	}

	var totalSeeded uint64
	for _, s := range data.Categorized.Seeding {
		totalSeeded += s.Lamports
	}

	addWithdrawalRows(&rows, outgoing, data.Prices, totalSeeded, yearFilter, &skipped)
	addVoteCostRows(&rows, data.VoteCosts, data.Prices, cfg.AcceptanceDate, yearFilter, &skipped)
	addNetworkFeeRows(&rows, data.NetworkFees, data.Prices, yearFilter, &skipped)
	addExpenseRows(&rows, data.Expenses, yearFilter, &skipped)

	// Date ascending; on equal dates entry types sort descending, which
	// puts Revenue-class rows ahead of Expense rows.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].EntryType > rows[j].EntryType
	})

	return rows, skipped
}

// consumeKey orders withdrawals for capital consumption. Unknown dates sort
// after all real dates so undatable withdrawals consume capital last.
func consumeKey(date string) string {
	if date == domain.UnknownDate {
		return "9999-99-99"
	}
	return date
}

func addWithdrawalRows(rows *[]domain.TaxRow, withdrawals []domain.Transfer, priceMap domain.PriceMap, totalSeeded uint64, yearFilter int, skipped *int) {
	sorted := make([]domain.Transfer, len(withdrawals))
	copy(sorted, withdrawals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return consumeKey(sorted[i].DateOrUnknown()) < consumeKey(sorted[j].DateOrUnknown())
	})

	remainingCapital := totalSeeded

	for _, w := range sorted {
		date := w.DateOrUnknown()

		// Consume capital regardless of the year filter.
		capitalPortion := w.Lamports
		if capitalPortion > remainingCapital {
			capitalPortion = remainingCapital
		}
		revenuePortion := w.Lamports - capitalPortion
		remainingCapital -= capitalPortion

		if !matchesYear(date, yearFilter, skipped) {
			continue
		}

		price := prices.Resolve(priceMap, date)
		dest := w.ToLabel
		if dest == "" {
			dest = addressbook.Shorten(w.To)
		}

		if capitalPortion > 0 {
			sol := float64(capitalPortion) / domain.LamportsPerSOL
			*rows = append(*rows, domain.TaxRow{
				Date:        date,
				EntryType:   domain.TaxEntryReturnOfCapital,
				Category:    "Withdrawal",
				Description: "Return of seed capital to " + dest,
				Lamports:    capitalPortion,
				SOLAmount:   sol,
				HasSOL:      true,
				SOLPriceUSD: price,
				USDValue:    sol * price,
				Destination: dest,
				TxSignature: w.Signature,
			})
		}

		if revenuePortion > 0 {
			sol := float64(revenuePortion) / domain.LamportsPerSOL
			*rows = append(*rows, domain.TaxRow{
				Date:        date,
				EntryType:   domain.TaxEntryRevenue,
				Category:    "Withdrawal",
				Description: "External withdrawal to " + dest,
				Lamports:    revenuePortion,
				SOLAmount:   sol,
				HasSOL:      true,
				SOLPriceUSD: price,
				USDValue:    sol * price,
				Destination: dest,
				TxSignature: w.Signature,
			})
		}
	}
}

func addVoteCostRows(rows *[]domain.TaxRow, voteCosts []domain.EpochVoteCost, priceMap domain.PriceMap, acceptanceDate string, yearFilter int, skipped *int) {
	for _, vc := range voteCosts {
		date := dateOrUnknown(vc.Date)
		if !matchesYear(date, yearFilter, skipped) {
			continue
		}

		price := prices.Resolve(priceMap, date)
		cov := coverage.Fraction(acceptanceDate, date)
		reimbursedLamports := uint64(float64(vc.Lamports) * cov)
		reimbursedSOL := vc.TotalFeeSOL * cov

		description := fmt.Sprintf("Vote transaction fees epoch %d (%d votes)", vc.Epoch, vc.VoteCount)
		if cov > 0 {
			description = fmt.Sprintf("Vote transaction fees epoch %d (%d votes, %.0f%% reimbursed)", vc.Epoch, vc.VoteCount, cov*100)
		}

		*rows = append(*rows, domain.TaxRow{
			Date:        date,
			EntryType:   domain.TaxEntryExpense,
			Category:    domain.ExpenseVoteFees,
			Description: description,
			Lamports:    vc.Lamports,
			SOLAmount:   vc.TotalFeeSOL,
			HasSOL:      true,
			SOLPriceUSD: price,
			USDValue:    vc.TotalFeeSOL * price,
		})

		if reimbursedLamports > 0 {
			*rows = append(*rows, domain.TaxRow{
				Date:        date,
				EntryType:   domain.TaxEntryReimbursement,
				Category:    "Vote Fee Reimbursement",
				Description: fmt.Sprintf("Program reimbursement epoch %d (%.0f%% coverage)", vc.Epoch, cov*100),
				Lamports:    reimbursedLamports,
				SOLAmount:   reimbursedSOL,
				HasSOL:      true,
				SOLPriceUSD: price,
				USDValue:    reimbursedSOL * price,
			})
		}
	}
}

func addNetworkFeeRows(rows *[]domain.TaxRow, fees []domain.NetworkFee, priceMap domain.PriceMap, yearFilter int, skipped *int) {
	for _, fee := range fees {
		date := dateOrUnknown(fee.Date)
		if !matchesYear(date, yearFilter, skipped) {
			continue
		}

		price := prices.Resolve(priceMap, date)
		*rows = append(*rows, domain.TaxRow{
			Date:        date,
			EntryType:   domain.TaxEntryExpense,
			Category:    "Network Fees",
			Description: fmt.Sprintf("Network fee epoch %d (%dbps on leader fees)", fee.Epoch, fee.FeeRateBps),
			Lamports:    fee.LiabilityLamports,
			SOLAmount:   fee.LiabilitySOL,
			HasSOL:      true,
			SOLPriceUSD: price,
			USDValue:    fee.LiabilitySOL * price,
		})
	}
}

func addExpenseRows(rows *[]domain.TaxRow, expenses []domain.Expense, yearFilter int, skipped *int) {
	for _, exp := range expenses {
		if !matchesYear(exp.Date, yearFilter, skipped) {
			continue
		}
		*rows = append(*rows, domain.TaxRow{
			Date:        exp.Date,
			EntryType:   domain.TaxEntryExpense,
			Category:    exp.Category,
			Description: exp.Vendor + " - " + exp.Description,
			USDValue:    exp.AmountUSD,
		})
	}
}

// matchesYear reports whether a row dated date belongs to the filter year.
// With no filter every row matches. Rows with unknown or unparsable dates
// cannot be assigned to a year and are skipped (and counted) when a filter
// is active.
func matchesYear(date string, yearFilter int, skipped *int) bool {
	if yearFilter == 0 {
		return true
	}
	if len(date) < 4 {
		*skipped++
		return false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		*skipped++
		return false
	}
	return year == yearFilter
}

func dateOrUnknown(d string) string {
	if d == "" {
		return domain.UnknownDate
	}
	return d
}
