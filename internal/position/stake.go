// Package position parses stake-account state, aggregates the operator's
// holdings into a snapshot, and reconciles actual balances against the
// cash-flow-derived expectation.
package position

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"

	"validator-ledger/internal/domain"
)

// Decode errors. An unrecognized variant or truncated record is a hard
// failure for that one account: callers log and exclude it rather than
// defaulting, so format drift upstream cannot be masked.
var (
	ErrDataTooShort      = errors.New("stake account data too short")
	ErrUnknownStakeState = errors.New("unknown stake state discriminant")
)

// MaxEpoch is the sentinel the stake program uses for "epoch unset".
const MaxEpoch = ^uint64(0)

// Stake account binary layout (bincode, little-endian, fixed offsets):
//
//	0   u32  discriminant (0 Uninitialized, 1 Initialized, 2 Stake, 3 RewardsPool)
//	4   u64  meta.rent_exempt_reserve
//	12  [32] meta.authorized.staker
//	44  [32] meta.authorized.withdrawer
//	76  i64  meta.lockup.unix_timestamp
//	84  u64  meta.lockup.epoch
//	92  [32] meta.lockup.custodian
//	124 [32] stake.delegation.voter
//	156 u64  stake.delegation.stake
//	164 u64  stake.delegation.activation_epoch
//	172 u64  stake.delegation.deactivation_epoch
//	180 f64  stake.delegation.warmup_cooldown_rate
//	188 u64  stake.credits_observed
const (
	offLockupEpoch        = 84
	offVoter              = 124
	offStakeAmount        = 156
	offActivationEpoch    = 164
	offDeactivationEpoch  = 172
	metaSize              = 124
	stakeSize             = 196
)

// ParsedStake is the decoded liquidity-relevant state of a stake account.
type ParsedStake struct {
	State       domain.StakeState
	Voter       string  // delegated vote account, empty if undelegated
	StakeAmount uint64  // delegated lamports, 0 if undelegated
	LockupEpoch *uint64 // lockup expiry, nil when no lockup
	IsLiquid    bool
}

// ParseStakeAccount decodes a raw stake account and classifies it in the
// liquidity state machine for the given current epoch.
func ParseStakeAccount(data []byte, currentEpoch uint64) (ParsedStake, error) {
	if len(data) < 4 {
		return ParsedStake{}, fmt.Errorf("%w: %d bytes", ErrDataTooShort, len(data))
	}

	discriminant := binary.LittleEndian.Uint32(data[0:4])

	switch discriminant {
	case 0: // Uninitialized
		return ParsedStake{State: domain.StakeUnknown}, nil

	case 1: // Initialized: meta only, no delegation
		if len(data) < metaSize {
			return ParsedStake{}, fmt.Errorf("%w: %d bytes for initialized state", ErrDataTooShort, len(data))
		}
		lockup := binary.LittleEndian.Uint64(data[offLockupEpoch:])
		return ParsedStake{
			State:       domain.StakeInactive,
			LockupEpoch: lockupEpochRef(lockup),
			IsLiquid:    lockup <= currentEpoch,
		}, nil

	case 2: // Stake: meta + delegation
		if len(data) < stakeSize {
			return ParsedStake{}, fmt.Errorf("%w: %d bytes for stake state", ErrDataTooShort, len(data))
		}
		lockup := binary.LittleEndian.Uint64(data[offLockupEpoch:])
		voter := base58.Encode(data[offVoter : offVoter+32])
		stakeAmount := binary.LittleEndian.Uint64(data[offStakeAmount:])
		activation := binary.LittleEndian.Uint64(data[offActivationEpoch:])
		deactivation := binary.LittleEndian.Uint64(data[offDeactivationEpoch:])

		state, liquid := classifyDelegation(activation, deactivation, lockup, currentEpoch)
		return ParsedStake{
			State:       state,
			Voter:       voter,
			StakeAmount: stakeAmount,
			LockupEpoch: lockupEpochRef(lockup),
			IsLiquid:    liquid,
		}, nil

	case 3: // RewardsPool
		return ParsedStake{State: domain.StakeUnknown}, nil
	}

	return ParsedStake{}, fmt.Errorf("%w: %d", ErrUnknownStakeState, discriminant)
}

// classifyDelegation maps activation/deactivation epochs onto the stake
// state machine. Warmup completion is not modeled precisely: once the
// activation epoch has passed the stake counts as active, and the epoch of
// activation itself still counts as activating.
func classifyDelegation(activation, deactivation, lockupEpoch, currentEpoch uint64) (domain.StakeState, bool) {
	unlocked := lockupEpoch <= currentEpoch

	if deactivation != MaxEpoch {
		if currentEpoch >= deactivation {
			return domain.StakeInactive, unlocked
		}
		return domain.StakeDeactivating, false
	}
	if activation == MaxEpoch {
		return domain.StakeInactive, unlocked
	}
	if currentEpoch < activation {
		return domain.StakeActivating, false
	}
	if currentEpoch > activation {
		return domain.StakeActive, false
	}
	return domain.StakeActivating, false
}

func lockupEpochRef(epoch uint64) *uint64 {
	if epoch == 0 {
		return nil
	}
	return &epoch
}
