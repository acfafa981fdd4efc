package position

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/mr-tron/base58"

	"validator-ledger/internal/domain"
)

// buildStakeData assembles a minimal bincode stake account buffer.
func buildStakeData(discriminant uint32, lockupEpoch uint64, voter []byte, stakeAmount, activation, deactivation uint64) []byte {
	data := make([]byte, stakeSize)
	binary.LittleEndian.PutUint32(data[0:4], discriminant)
	binary.LittleEndian.PutUint64(data[offLockupEpoch:], lockupEpoch)
	if voter != nil {
		copy(data[offVoter:offVoter+32], voter)
	}
	binary.LittleEndian.PutUint64(data[offStakeAmount:], stakeAmount)
	binary.LittleEndian.PutUint64(data[offActivationEpoch:], activation)
	binary.LittleEndian.PutUint64(data[offDeactivationEpoch:], deactivation)
	return data
}

func TestParseStakeAccount_Uninitialized(t *testing.T) {
	data := make([]byte, 8)
	parsed, err := ParseStakeAccount(data, 800)
	if err != nil {
		t.Fatalf("ParseStakeAccount failed: %v", err)
	}
	if parsed.State != domain.StakeUnknown || parsed.IsLiquid {
		t.Errorf("Uninitialized account wrong: %+v", parsed)
	}
}

func TestParseStakeAccount_Initialized(t *testing.T) {
	data := make([]byte, metaSize)
	binary.LittleEndian.PutUint32(data[0:4], 1)

	parsed, err := ParseStakeAccount(data, 800)
	if err != nil {
		t.Fatalf("ParseStakeAccount failed: %v", err)
	}
	if parsed.State != domain.StakeInactive || !parsed.IsLiquid {
		t.Errorf("Initialized account without lockup must be liquid inactive: %+v", parsed)
	}
	if parsed.LockupEpoch != nil {
		t.Errorf("Zero lockup epoch must map to nil, got %d", *parsed.LockupEpoch)
	}

	// Future lockup freezes the balance.
	binary.LittleEndian.PutUint64(data[offLockupEpoch:], 900)
	parsed, err = ParseStakeAccount(data, 800)
	if err != nil {
		t.Fatalf("ParseStakeAccount failed: %v", err)
	}
	if parsed.IsLiquid {
		t.Error("Locked-up account must not be liquid")
	}
	if parsed.LockupEpoch == nil || *parsed.LockupEpoch != 900 {
		t.Errorf("LockupEpoch wrong: %v", parsed.LockupEpoch)
	}
}

func TestParseStakeAccount_DelegationStates(t *testing.T) {
	voter := make([]byte, 32)
	voter[0] = 7

	cases := []struct {
		name                     string
		activation, deactivation uint64
		currentEpoch             uint64
		wantState                domain.StakeState
		wantLiquid               bool
	}{
		{"active", 790, MaxEpoch, 800, domain.StakeActive, false},
		{"activation epoch still warming up", 800, MaxEpoch, 800, domain.StakeActivating, false},
		{"activating", 805, MaxEpoch, 800, domain.StakeActivating, false},
		{"deactivating", 790, 805, 800, domain.StakeDeactivating, false},
		{"cooled down", 790, 795, 800, domain.StakeInactive, true},
		{"never delegated", MaxEpoch, MaxEpoch, 800, domain.StakeInactive, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := buildStakeData(2, 0, voter, 5_000_000_000, tc.activation, tc.deactivation)
			parsed, err := ParseStakeAccount(data, tc.currentEpoch)
			if err != nil {
				t.Fatalf("ParseStakeAccount failed: %v", err)
			}
			if parsed.State != tc.wantState {
				t.Errorf("State = %s, want %s", parsed.State, tc.wantState)
			}
			if parsed.IsLiquid != tc.wantLiquid {
				t.Errorf("IsLiquid = %v, want %v", parsed.IsLiquid, tc.wantLiquid)
			}
			if parsed.Voter != base58.Encode(voter) {
				t.Errorf("Voter mismatch: %s", parsed.Voter)
			}
			if parsed.StakeAmount != 5_000_000_000 {
				t.Errorf("StakeAmount = %d", parsed.StakeAmount)
			}
		})
	}
}

func TestParseStakeAccount_LockupBlocksCooledDownStake(t *testing.T) {
	data := buildStakeData(2, 900, make([]byte, 32), 1, 790, 795)
	parsed, err := ParseStakeAccount(data, 800)
	if err != nil {
		t.Fatalf("ParseStakeAccount failed: %v", err)
	}
	if parsed.State != domain.StakeInactive {
		t.Errorf("State = %s, want inactive", parsed.State)
	}
	if parsed.IsLiquid {
		t.Error("Lockup past the current epoch must block liquidity")
	}
}

func TestParseStakeAccount_Truncated(t *testing.T) {
	if _, err := ParseStakeAccount([]byte{1, 0}, 800); !errors.Is(err, ErrDataTooShort) {
		t.Errorf("Expected ErrDataTooShort, got %v", err)
	}

	short := make([]byte, 50)
	binary.LittleEndian.PutUint32(short[0:4], 1)
	if _, err := ParseStakeAccount(short, 800); !errors.Is(err, ErrDataTooShort) {
		t.Errorf("Expected ErrDataTooShort for truncated meta, got %v", err)
	}

	short = make([]byte, metaSize)
	binary.LittleEndian.PutUint32(short[0:4], 2)
	if _, err := ParseStakeAccount(short, 800); !errors.Is(err, ErrDataTooShort) {
		t.Errorf("Expected ErrDataTooShort for truncated delegation, got %v", err)
	}
}

func TestParseStakeAccount_UnknownDiscriminant(t *testing.T) {
	data := make([]byte, stakeSize)
	binary.LittleEndian.PutUint32(data[0:4], 42)
	if _, err := ParseStakeAccount(data, 800); !errors.Is(err, ErrUnknownStakeState) {
		t.Errorf("Expected ErrUnknownStakeState, got %v", err)
	}
}
