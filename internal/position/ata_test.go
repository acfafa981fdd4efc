package position

import (
	"testing"

	"github.com/mr-tron/base58"
)

const testOwner = "mpa4abUkjQoAvPzREkh5Mo75hZhPFQ2FSH6w7dWKuQ5"

func TestDeriveTokenAccount_Deterministic(t *testing.T) {
	first, err := DeriveTokenAccount(testOwner, IncentiveTokenMint)
	if err != nil {
		t.Fatalf("DeriveTokenAccount failed: %v", err)
	}

	raw, err := base58.Decode(first)
	if err != nil || len(raw) != 32 {
		t.Fatalf("Derived address is not a 32-byte base58 value: %s", first)
	}
	if isOnCurve(raw) {
		t.Error("Derived address must be off-curve")
	}

	for i := 0; i < 5; i++ {
		again, err := DeriveTokenAccount(testOwner, IncentiveTokenMint)
		if err != nil {
			t.Fatalf("Run %d failed: %v", i, err)
		}
		if again != first {
			t.Fatalf("Derivation not deterministic: %s vs %s", again, first)
		}
	}
}

func TestDeriveTokenAccount_VariesByInput(t *testing.T) {
	a, err := DeriveTokenAccount(testOwner, IncentiveTokenMint)
	if err != nil {
		t.Fatalf("DeriveTokenAccount failed: %v", err)
	}
	b, err := DeriveTokenAccount(testOwner, splTokenProgram)
	if err != nil {
		t.Fatalf("DeriveTokenAccount failed: %v", err)
	}
	if a == b {
		t.Error("Different mints must derive different accounts")
	}

	c, err := DeriveTokenAccount("4R3gSG8BpU4t19KYj8CfnbtRpnT8gtk4dvTHxVRwc2r7", IncentiveTokenMint)
	if err != nil {
		t.Fatalf("DeriveTokenAccount failed: %v", err)
	}
	if a == c {
		t.Error("Different owners must derive different accounts")
	}
}

func TestVerifyTokenAccount(t *testing.T) {
	derived, err := DeriveTokenAccount(testOwner, IncentiveTokenMint)
	if err != nil {
		t.Fatalf("DeriveTokenAccount failed: %v", err)
	}

	got, ok, err := VerifyTokenAccount(testOwner, derived)
	if err != nil || !ok {
		t.Errorf("Matching account rejected: ok=%v err=%v", ok, err)
	}
	if got != derived {
		t.Errorf("Derived = %s, want %s", got, derived)
	}

	// An unreported account verifies trivially.
	if _, ok, err := VerifyTokenAccount(testOwner, ""); err != nil || !ok {
		t.Errorf("Empty reported account rejected: ok=%v err=%v", ok, err)
	}

	// Any other address fails.
	if _, ok, err := VerifyTokenAccount(testOwner, testOwner); err != nil || ok {
		t.Errorf("Mismatched account accepted: ok=%v err=%v", ok, err)
	}

	if _, _, err := VerifyTokenAccount("abc", ""); err == nil {
		t.Error("Expected error for invalid owner")
	}
}

func TestDeriveTokenAccount_InvalidInput(t *testing.T) {
	if _, err := DeriveTokenAccount("not-base58-0OIl", IncentiveTokenMint); err == nil {
		t.Error("Expected error for invalid owner")
	}
	// Valid base58 but not 32 bytes.
	if _, err := DeriveTokenAccount("abc", IncentiveTokenMint); err == nil {
		t.Error("Expected error for short owner")
	}
	if _, err := DeriveTokenAccount(testOwner, "abc"); err == nil {
		t.Error("Expected error for short mint")
	}
}
