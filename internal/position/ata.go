package position

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"
)

// Program ids involved in associated-token-account derivation.
const (
	splTokenProgram = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	ataProgram      = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"

	// IncentiveTokenMint is the liquid-token mint incentive rewards are
	// paid in (jitoSOL).
	IncentiveTokenMint = "J1toso1uCk3RLmjorhTtrVwY9HJ7X8V9yYac6Y7kGCPn"
)

var errNoValidBump = errors.New("no valid bump seed found")

const pdaMarker = "ProgramDerivedAddress"

// DeriveTokenAccount computes the associated token account for an owner and
// mint. The snapshot path uses it to locate the operator's incentive-token
// holdings without a configured account address.
func DeriveTokenAccount(owner, mint string) (string, error) {
	ownerRaw, err := decodeAddress(owner)
	if err != nil {
		return "", fmt.Errorf("owner: %w", err)
	}
	mintRaw, err := decodeAddress(mint)
	if err != nil {
		return "", fmt.Errorf("mint: %w", err)
	}
	tokenRaw, err := decodeAddress(splTokenProgram)
	if err != nil {
		return "", err
	}
	programRaw, err := decodeAddress(ataProgram)
	if err != nil {
		return "", err
	}

	addr, _, err := findProgramAddress([][]byte{ownerRaw, tokenRaw, mintRaw}, programRaw)
	if err != nil {
		return "", err
	}
	return base58.Encode(addr), nil
}

// VerifyTokenAccount derives the owner's incentive-token account and checks
// the reported address against it. An empty reported address verifies
// trivially, for collectors that do not capture it.
func VerifyTokenAccount(owner, reported string) (string, bool, error) {
	derived, err := DeriveTokenAccount(owner, IncentiveTokenMint)
	if err != nil {
		return "", false, err
	}
	return derived, reported == "" || reported == derived, nil
}

// findProgramAddress searches bump seeds from 255 downward for the first
// derived address that is NOT a valid curve point. Program-derived
// addresses must be off-curve so no private key can exist for them.
func findProgramAddress(seeds [][]byte, programID []byte) ([]byte, uint8, error) {
	for bump := 255; bump >= 0; bump-- {
		h := sha256.New()
		for _, seed := range seeds {
			h.Write(seed)
		}
		h.Write([]byte{uint8(bump)})
		h.Write(programID)
		h.Write([]byte(pdaMarker))
		candidate := h.Sum(nil)

		if !isOnCurve(candidate) {
			return candidate, uint8(bump), nil
		}
	}
	return nil, 0, errNoValidBump
}

// isOnCurve reports whether the 32 bytes decode as an ed25519 point.
func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

func decodeAddress(addr string) ([]byte, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", addr, err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("address %q: expected 32 bytes, got %d", addr, len(raw))
	}
	return raw, nil
}
