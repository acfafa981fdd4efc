package reporting

import (
	"fmt"
	"strings"

	"validator-ledger/internal/domain"
)

// RenderTaxCSV renders tax rows as CSV. The builders never escape their
// output; separators and quotes in descriptions and labels are handled here.
func RenderTaxCSV(rows []domain.TaxRow) string {
	var sb strings.Builder

	sb.WriteString("Date,Type,Category,Description,SOL Amount,SOL Price (USD),USD Value,Destination,Tx Signature\n")

	for _, r := range rows {
		solAmount, solPrice := "", ""
		if r.HasSOL {
			solAmount = fmt.Sprintf("%.6f", r.SOLAmount)
			solPrice = fmt.Sprintf("%.2f", r.SOLPriceUSD)
		}

		writeCSVRow(&sb,
			r.Date,
			r.EntryType,
			r.Category,
			r.Description,
			solAmount,
			solPrice,
			fmt.Sprintf("%.2f", r.USDValue),
			r.Destination,
			r.TxSignature,
		)
	}

	return sb.String()
}

// RenderTimelineCSV renders timeline events as CSV, running totals included.
func RenderTimelineCSV(events []domain.TimelineEvent) string {
	var sb strings.Builder

	sb.WriteString("Date,Epoch,Event Type,Label,Sublabel,SOL Amount,USD Amount,Cumulative Profit (USD),Cumulative Revenue (USD),Cumulative Expenses (USD),PnL\n")

	for _, ev := range events {
		epoch := ""
		if ev.Epoch != nil {
			epoch = fmt.Sprintf("%d", *ev.Epoch)
		}

		writeCSVRow(&sb,
			ev.Date,
			epoch,
			ev.EventType,
			ev.Label,
			ev.Sublabel,
			fmt.Sprintf("%.6f", ev.AmountSOL),
			fmt.Sprintf("%.2f", ev.AmountUSD),
			fmt.Sprintf("%.2f", ev.CumulativeProfitUSD),
			fmt.Sprintf("%.2f", ev.CumulativeRevenueUSD),
			fmt.Sprintf("%.2f", ev.CumulativeExpensesUSD),
			fmt.Sprintf("%t", ev.IsPnL),
		)
	}

	return sb.String()
}

func writeCSVRow(sb *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(csvField(f))
	}
	sb.WriteByte('\n')
}

// csvField quotes a field when it contains a separator, quote or newline.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
