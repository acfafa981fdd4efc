package timeline

import (
	"fmt"
	"time"

	"validator-ledger/internal/domain"
)

const monthLayout = "2006-01"

// ExpandRecurring expands recurring expense templates into concrete monthly
// entries for the [startMonth, endMonth] range (both "YYYY-MM", inclusive).
// The billing day is taken from the template's start date and clamped to
// the last day of short months. Templates never persist as instances.
func ExpandRecurring(recurring []domain.RecurringExpense, startMonth, endMonth string) []domain.Expense {
	start, err := time.Parse(monthLayout, startMonth)
	if err != nil {
		return nil
	}
	end, err := time.Parse(monthLayout, endMonth)
	if err != nil {
		return nil
	}

	var expenses []domain.Expense

	for _, rec := range recurring {
		recStart, err := time.Parse("2006-01-02", rec.StartDate)
		if err != nil {
			continue
		}
		billingDay := recStart.Day()
		recStartMonth := time.Date(recStart.Year(), recStart.Month(), 1, 0, 0, 0, 0, time.UTC)

		var recEndMonth time.Time
		hasEnd := false
		if rec.EndDate != "" {
			if e, err := time.Parse("2006-01-02", rec.EndDate); err == nil {
				recEndMonth = time.Date(e.Year(), e.Month(), 1, 0, 0, 0, 0, time.UTC)
				hasEnd = true
			}
		}

		for cur := start; !cur.After(end); cur = cur.AddDate(0, 1, 0) {
			if cur.Before(recStartMonth) {
				continue
			}
			if hasEnd && cur.After(recEndMonth) {
				continue
			}

			day := billingDay
			if dim := daysInMonth(cur.Year(), cur.Month()); day > dim {
				day = dim
			}

			expenses = append(expenses, domain.Expense{
				Date:        fmt.Sprintf("%04d-%02d-%02d", cur.Year(), cur.Month(), day),
				Vendor:      rec.Vendor,
				Category:    rec.Category,
				Description: rec.Description,
				AmountUSD:   rec.AmountUSD,
				PaidWith:    rec.PaidWith,
			})
		}
	}

	return expenses
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
