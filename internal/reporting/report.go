// Package reporting assembles stored ledger records into the report
// artifacts: the P&L timeline, the tax ledger, CSV and HTML renderings and
// the console summary.
package reporting

import (
	"context"
	"fmt"
	"math"
	"time"

	"validator-ledger/internal/categorize"
	"validator-ledger/internal/config"
	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
	"validator-ledger/internal/taxledger"
	"validator-ledger/internal/timeline"
)

// Report is the complete output of one report run.
type Report struct {
	GeneratedAt time.Time
	YearFilter  int // 0 = all years

	Timeline    []domain.TimelineEvent
	TaxRows     []domain.TaxRow
	TaxTimeline []domain.TimelineEvent

	// Rows excluded from the tax ledger because their date was unknown
	// while a year filter was active.
	SkippedTaxRows int

	Summary Summary
}

// Generator produces reports from stored data.
type Generator struct {
	transfers  storage.TransferStore
	rewards    storage.RewardStore
	leaderFees storage.LeaderFeeStore
	mevClaims  storage.MevClaimStore
	incentives storage.IncentiveClaimStore
	voteCosts  storage.VoteCostStore
	netFees    storage.NetworkFeeStore
	expenses   storage.ExpenseStore
	recurring  storage.RecurringExpenseStore
	prices     storage.PriceStore

	cfg *config.Config
	now func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(
	transfers storage.TransferStore,
	rewards storage.RewardStore,
	leaderFees storage.LeaderFeeStore,
	mevClaims storage.MevClaimStore,
	incentives storage.IncentiveClaimStore,
	voteCosts storage.VoteCostStore,
	netFees storage.NetworkFeeStore,
	expenses storage.ExpenseStore,
	recurring storage.RecurringExpenseStore,
	prices storage.PriceStore,
	cfg *config.Config,
) *Generator {
	return &Generator{
		transfers:  transfers,
		rewards:    rewards,
		leaderFees: leaderFees,
		mevClaims:  mevClaims,
		incentives: incentives,
		voteCosts:  voteCosts,
		netFees:    netFees,
		expenses:   expenses,
		recurring:  recurring,
		prices:     prices,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate loads every record source, categorizes transfers and builds the
// full report. yearFilter limits the tax ledger to one calendar year
// (0 = all years); the P&L timeline always covers the full history.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	return g.GenerateForYear(ctx, 0)
}

// GenerateForYear is Generate with a tax-year filter.
func (g *Generator) GenerateForYear(ctx context.Context, yearFilter int) (*Report, error) {
	data, err := g.loadData(ctx)
	if err != nil {
		return nil, err
	}

	events := timeline.Build(data)

	taxData := &taxledger.Data{
		Categorized: data.Categorized,
		VoteCosts:   data.VoteCosts,
		NetworkFees: data.NetworkFees,
		Expenses:    data.Expenses,
		Prices:      data.Prices,
	}
	taxRows, skipped := taxledger.BuildRows(taxData, g.cfg, yearFilter)

	return &Report{
		GeneratedAt:    g.now(),
		YearFilter:     yearFilter,
		Timeline:       events,
		TaxRows:        taxRows,
		TaxTimeline:    timeline.BuildTax(taxRows),
		SkippedTaxRows: skipped,
		Summary:        BuildSummary(events),
	}, nil
}

// loadData pulls every record source into the timeline input shape.
func (g *Generator) loadData(ctx context.Context) (*timeline.ReportData, error) {
	const allEpochs = math.MaxUint64

	transfers, err := g.transfers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transfers: %w", err)
	}

	rewards, err := g.rewards.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load rewards: %w", err)
	}

	leaderFees, err := g.leaderFees.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load leader fees: %w", err)
	}

	mevClaims, err := g.mevClaims.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load mev claims: %w", err)
	}

	incentives, err := g.incentives.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load incentive claims: %w", err)
	}

	voteCosts, err := g.voteCosts.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load vote costs: %w", err)
	}

	netFees, err := g.netFees.GetByEpochRange(ctx, 0, allEpochs)
	if err != nil {
		return nil, fmt.Errorf("load network fees: %w", err)
	}

	expenses, err := g.expenses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}

	recurring, err := g.recurring.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recurring expenses: %w", err)
	}

	pricePoints, err := g.prices.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	return &timeline.ReportData{
		Rewards:         deref(rewards),
		LeaderFees:      deref(leaderFees),
		MevClaims:       deref(mevClaims),
		IncentiveClaims: deref(incentives),
		VoteCosts:       deref(voteCosts),
		NetworkFees:     deref(netFees),
		Expenses:        append(deref(expenses), g.expandRecurring(recurring)...),
		Categorized:     categorize.Categorize(deref(transfers), g.cfg),
		Prices:          storage.PriceMapFrom(pricePoints),
		AcceptanceDate:  g.cfg.AcceptanceDate,
	}, nil
}

// expandRecurring turns billing templates into concrete monthly expenses,
// covering every month from the earliest template start through the report
// month. Bounded templates stop at their own end date.
func (g *Generator) expandRecurring(templates []*domain.RecurringExpense) []domain.Expense {
	if len(templates) == 0 {
		return nil
	}

	endMonth := g.now().Format("2006-01")
	startMonth := endMonth
	for _, tpl := range templates {
		if len(tpl.StartDate) >= 7 && tpl.StartDate[:7] < startMonth {
			startMonth = tpl.StartDate[:7]
		}
	}
	return timeline.ExpandRecurring(deref(templates), startMonth, endMonth)
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		out = append(out, *p)
	}
	return out
}
