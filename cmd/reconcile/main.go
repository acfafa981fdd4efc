package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/observability"
	"validator-ledger/internal/position"
	"validator-ledger/internal/storage/migrations"
	pgstore "validator-ledger/internal/storage/postgres"
)

// snapshotInput is the on-disk shape of one reconciliation run: account
// balances and raw stake-account data fetched by an external collector.
type snapshotInput struct {
	SnapshotSlot uint64 `json:"snapshot_slot"`
	SnapshotTime int64  `json:"snapshot_time"`
	CurrentEpoch uint64 `json:"current_epoch"`

	Balances []struct {
		Account              string `json:"account"`
		AccountType          string `json:"account_type"`
		Lamports             uint64 `json:"lamports"`
		WithdrawableLamports uint64 `json:"withdrawable_lamports"`
	} `json:"balances"`

	StakeAccounts []struct {
		Account    string `json:"account"`
		Lamports   uint64 `json:"lamports"`
		DataBase64 string `json:"data_base64"`
	} `json:"stake_accounts"`

	TokenAccount  string  `json:"token_account"`
	TokenLamports uint64  `json:"token_lamports"`
	TokenSOLRate  float64 `json:"token_sol_rate"`

	Income struct {
		IncomeLamports      uint64 `json:"income_lamports"`
		ExpensesLamports    uint64 `json:"expenses_lamports"`
		WithdrawalsLamports uint64 `json:"withdrawals_lamports"`
		DepositsLamports    uint64 `json:"deposits_lamports"`
	} `json:"income"`
}

func main() {
	inputPath := flag.String("input", "", "Path to snapshot input JSON")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string; when set the snapshot is persisted")
	flag.Parse()

	_ = godotenv.Load()
	if *postgresDSN == "" {
		*postgresDSN = os.Getenv("POSTGRES_DSN")
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		os.Exit(1)
	}

	input, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := verifyTokenAccount(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	balances := make([]domain.AccountBalance, 0, len(input.Balances))
	for _, b := range input.Balances {
		balances = append(balances, domain.AccountBalance{
			Account:              b.Account,
			AccountType:          b.AccountType,
			Lamports:             b.Lamports,
			WithdrawableLamports: b.WithdrawableLamports,
			SnapshotSlot:         input.SnapshotSlot,
			SnapshotTime:         input.SnapshotTime,
		})
	}

	stakeAccounts := parseStakeAccounts(input)

	snapshot := position.BuildSnapshot(
		balances,
		stakeAccounts,
		input.TokenLamports,
		input.TokenSOLRate,
		domain.IncomeData(input.Income),
		input.SnapshotSlot,
		input.SnapshotTime,
	)

	result := position.Reconcile(&snapshot)
	observability.RecordSnapshot(result.DifferenceLamports, result.Status == domain.ReconciliationOk)

	printResult(&snapshot, result)

	if *postgresDSN != "" {
		if err := persistSnapshot(context.Background(), *postgresDSN, &snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "Error persisting snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSnapshot persisted (slot %d)\n", snapshot.SnapshotSlot)
	}

	if result.Status != domain.ReconciliationOk {
		os.Exit(2)
	}
}

func readInput(path string) (*snapshotInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var input snapshotInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return &input, nil
}

// verifyTokenAccount checks the collector's token account against the one
// derived from the withdraw authority. A mismatch is fatal: the snapshot
// would count token holdings that belong to some other wallet.
func verifyTokenAccount(input *snapshotInput) error {
	var authority string
	for _, b := range input.Balances {
		if b.AccountType == domain.AccountWithdrawAuthority {
			authority = b.Account
			break
		}
	}
	if authority == "" {
		return nil
	}

	derived, ok, err := position.VerifyTokenAccount(authority, input.TokenAccount)
	if err != nil {
		return fmt.Errorf("derive token account: %w", err)
	}
	if !ok {
		return fmt.Errorf("token account %s does not match %s derived from the withdraw authority", input.TokenAccount, derived)
	}
	return nil
}

// parseStakeAccounts decodes each raw stake account. A single unparsable
// account is excluded and reported, not fatal: reconciliation on the rest
// still produces a usable drift figure.
func parseStakeAccounts(input *snapshotInput) []domain.StakeAccountInfo {
	infos := make([]domain.StakeAccountInfo, 0, len(input.StakeAccounts))
	for _, sa := range input.StakeAccounts {
		data, err := base64.StdEncoding.DecodeString(sa.DataBase64)
		if err != nil {
			observability.RecordStakeParseError()
			fmt.Fprintf(os.Stderr, "Warning: stake account %s: bad base64: %v\n", sa.Account, err)
			continue
		}

		parsed, err := position.ParseStakeAccount(data, input.CurrentEpoch)
		if err != nil {
			observability.RecordStakeParseError()
			fmt.Fprintf(os.Stderr, "Warning: stake account %s: %v\n", sa.Account, err)
			continue
		}
		observability.RecordStakeParsed()

		infos = append(infos, domain.StakeAccountInfo{
			Account:      sa.Account,
			Lamports:     sa.Lamports,
			State:        parsed.State,
			Voter:        parsed.Voter,
			LockupEpoch:  parsed.LockupEpoch,
			IsLiquid:     parsed.IsLiquid,
			SnapshotSlot: input.SnapshotSlot,
		})
	}
	return infos
}

func printResult(p *domain.ValidatorPosition, r domain.ReconciliationResult) {
	toSOL := func(l int64) float64 { return float64(l) / domain.LamportsPerSOL }

	fmt.Printf("Position snapshot (slot %d)\n\n", p.SnapshotSlot)
	fmt.Printf("  Total assets:    %12.4f SOL\n", p.TotalAssetsSOL())
	fmt.Printf("  Liquid:          %12.4f SOL\n", float64(p.TotalLiquidLamports)/domain.LamportsPerSOL)
	fmt.Printf("  Locked:          %12.4f SOL\n", float64(p.TotalLockedLamports)/domain.LamportsPerSOL)
	fmt.Printf("  Stake accounts:  %d\n\n", p.StakeAccountCount)

	fmt.Printf("Reconciliation\n\n")
	fmt.Printf("  Net cash flow:   %12.4f SOL\n", toSOL(r.NetCashFlowLamports))
	fmt.Printf("  Expected:        %12.4f SOL\n", toSOL(r.ExpectedLamports))
	fmt.Printf("  Actual:          %12.4f SOL\n", float64(r.ActualLamports)/domain.LamportsPerSOL)
	fmt.Printf("  Difference:      %12.4f SOL\n", toSOL(r.DifferenceLamports))
	fmt.Printf("  Status:          %s\n", r.Status)
}

func persistSnapshot(ctx context.Context, dsn string, p *domain.ValidatorPosition) error {
	pool, err := pgstore.NewPool(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		return fmt.Errorf("postgres migrations: %w", err)
	}

	return pgstore.NewSnapshotStore(pool).Insert(ctx, p)
}
