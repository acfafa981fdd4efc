// Package addressbook maps known Solana addresses to semantic categories.
//
// The table is static and built once at package init; classification is a
// total function and never fails. Sources: Solscan labels, Solana
// documentation, Jito documentation.
package addressbook

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Category is the semantic class of a counterparty address.
type Category string

const (
	// CategoryFoundation covers foundation wallets used for delegation
	// program reimbursements.
	CategoryFoundation Category = "foundation"
	// CategoryMevProgram covers tip payment/distribution accounts.
	CategoryMevProgram Category = "mev_program"
	// CategoryIncentiveProgram covers the BAM boost program and the
	// liquid-token mint it pays rewards in.
	CategoryIncentiveProgram Category = "incentive_program"
	// CategoryExchange covers known exchange hot wallets.
	CategoryExchange Category = "exchange"
	// CategoryDeFi covers DEX/AMM/liquid-staking routing addresses.
	CategoryDeFi Category = "defi"
	// CategorySystemProgram covers the system, stake and vote programs.
	CategorySystemProgram Category = "system_program"
	// CategoryUnknown is the fallback for unlisted addresses.
	CategoryUnknown Category = "unknown"
)

// Label is the human-readable annotation for a known address.
type Label struct {
	Category Category
	Name     string
}

var known = map[string]Label{}

func add(addr string, cat Category, name string) {
	// The table is static; a malformed entry is a programming error.
	raw, err := base58.Decode(addr)
	if err != nil || len(raw) != 32 {
		panic(fmt.Sprintf("addressbook: invalid address %q", addr))
	}
	known[addr] = Label{Category: cat, Name: name}
}

func init() {
	// Foundation wallets (delegation program reimbursements).
	add("mpa4abUkjQoAvPzREkh5Mo75hZhPFQ2FSH6w7dWKuQ5", CategoryFoundation, "Solana Foundation")
	add("7K8DVxtNJGnMtUY1CQJT5jcs8sFGSZTDiG7kowvFpECh", CategoryFoundation, "SF Stake Authority")
	add("DRpbCBMxVnDK7maPM5tGv6MvB3v1sRMC86PZ8okm21hy", CategoryFoundation, "SF Delegation Program")
	add("4ZJhPQAgUseCsWhKvJLTmmRRUV74fdoTpQLNfKoHtFSP", CategoryFoundation, "SF Operations")
	add("DtZWL3BPKa5hw7yQYvaFR29PcXThpLHVU2XAAZrcLiSe", CategoryFoundation, "SFDP Vote Reimbursement")

	// MEV tip payment/distribution accounts.
	add("T1pyyaTNZsKv2WcRAB8oVnk93mLJw2XzjtVYqCsaHqt", CategoryMevProgram, "Jito Tip Payment Program")
	add("4R3gSG8BpU4t19KYj8CfnbtRpnT8gtk4dvTHxVRwc2r7", CategoryMevProgram, "Jito Tip Distribution Program")
	add("8F4jGUmxF36vQ6yabnsxX6AQVXdKBhs8kGSUuRKSg8Xt", CategoryMevProgram, "Jito Merkle Root Upload Authority")
	add("96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5", CategoryMevProgram, "Jito Tip Account 1")
	add("HFqU5x63VTqvQss8hp11i4wVV8bD44PvwucfZ2bU7gRe", CategoryMevProgram, "Jito Tip Account 2")
	add("Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY", CategoryMevProgram, "Jito Tip Account 3")
	add("ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPaS49", CategoryMevProgram, "Jito Tip Account 4")
	add("DfXygSm4jCyNCybVYYK6DwvWqjKee8pbDmJGcLWNDXjh", CategoryMevProgram, "Jito Tip Account 5")
	add("ADuUkR4vqLUMWXxW9gh6D6L8pMSawimctcNZ5pGwDcEt", CategoryMevProgram, "Jito Tip Account 6")
	add("DttWaMuVvTiduZRnguLF7jNxTgiMBZ1hyAumKUiL2KRL", CategoryMevProgram, "Jito Tip Account 7")
	add("3AVi9Tg9Uo68tJfuvoKvqKNWKkC5wPdSSdeBnizKZ6jT", CategoryMevProgram, "Jito Tip Account 8")

	// BAM boost program (liquid-token incentive rewards).
	add("BoostxbPp2ENYHGcTLYt1obpcY13HE4NojdqNWdzqSSb", CategoryIncentiveProgram, "Jito BAM Boost Program")
	add("J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn", CategoryIncentiveProgram, "jitoSOL Mint")

	// Exchanges.
	add("H8sMJSCQxfKiFTCfDR3DUMLPwcRbM61LGFJ8N4dK3WjS", CategoryExchange, "Coinbase")
	add("2AQdpHJ2JpcEgPiATUXjQxA8QmafFegfQwSLWSprPicm", CategoryExchange, "Binance")
	add("5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9", CategoryExchange, "Kraken")

	// DeFi routing addresses (DEX aggregators, AMMs, liquid staking).
	add("JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4", CategoryDeFi, "Jupiter v6")
	add("JUP4Fb2cqiRUcaTHdrPC8h2gNsA2ETXiPDD33WcGuJB", CategoryDeFi, "Jupiter v4")
	add("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8", CategoryDeFi, "Raydium AMM")
	add("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc", CategoryDeFi, "Orca Whirlpool")
	add("MarBmsSgKXdrN1egZf5sqe1TMai9K1rChYNDJgjq7aD", CategoryDeFi, "Marinade Finance")
	add("PhoeNiXZ8ByJGLkxNfZRnkUfjvmuYqLR89jjFHGqdXY", CategoryDeFi, "Phoenix DEX")
	add("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo", CategoryDeFi, "Meteora DLMM")
	add("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", CategoryDeFi, "SPL Token Program")
	add("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL", CategoryDeFi, "ATA Program")

	// System programs.
	add("11111111111111111111111111111111", CategorySystemProgram, "System Program")
	add("Stake11111111111111111111111111111111111111", CategorySystemProgram, "Stake Program")
	add("Vote111111111111111111111111111111111111111", CategorySystemProgram, "Vote Program")
}

// Classify returns the category for an address. Unknown addresses map to
// CategoryUnknown; the function never fails.
func Classify(addr string) Category {
	if l, ok := known[addr]; ok {
		return l.Category
	}
	return CategoryUnknown
}

// Lookup returns the label for an address. For unknown addresses the name
// is a shortened form of the address itself.
func Lookup(addr string) Label {
	if l, ok := known[addr]; ok {
		return l
	}
	return Label{Category: CategoryUnknown, Name: Shorten(addr)}
}

// IsFoundation reports whether the address is a known foundation wallet.
func IsFoundation(addr string) bool { return Classify(addr) == CategoryFoundation }

// IsMevProgram reports whether the address is a known MEV program account.
func IsMevProgram(addr string) bool { return Classify(addr) == CategoryMevProgram }

// IsIncentiveProgram reports whether the address belongs to the BAM boost
// incentive program.
func IsIncentiveProgram(addr string) bool { return Classify(addr) == CategoryIncentiveProgram }

// IsExchange reports whether the address is a known exchange wallet.
func IsExchange(addr string) bool { return Classify(addr) == CategoryExchange }

// IsDeFi reports whether the address is a known DeFi routing address.
func IsDeFi(addr string) bool { return Classify(addr) == CategoryDeFi }

// Shorten abbreviates a base58 address for display.
func Shorten(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}
