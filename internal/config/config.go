// Package config loads and validates the operator configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Validation errors.
var (
	ErrMissingVoteAccount    = errors.New("config: vote_account is required")
	ErrMissingIdentity       = errors.New("config: identity is required")
	ErrMissingWithdrawAuth   = errors.New("config: withdraw_authority is required")
	ErrMissingPersonalWallet = errors.New("config: personal_wallet is required")
)

// fileConfig is the on-disk JSON shape.
type fileConfig struct {
	VoteAccount          string   `json:"vote_account"`
	Identity             string   `json:"identity"`
	WithdrawAuthority    string   `json:"withdraw_authority"`
	PersonalWallet       string   `json:"personal_wallet"`
	StakeAccounts        []string `json:"stake_accounts"`
	AcceptanceDate       string   `json:"acceptance_date"`
	FeeDepositAccount    string   `json:"fee_deposit_account"`
	NetworkFeeRateBps    uint64   `json:"network_fee_rate_bps"`
	NetworkFeeFirstEpoch uint64   `json:"network_fee_first_epoch"`
	IncentiveFirstEpoch  uint64   `json:"incentive_first_epoch"`
}

// Config exposes the validated operator identity and program parameters.
type Config struct {
	VoteAccount       string
	Identity          string
	WithdrawAuthority string
	PersonalWallet    string

	// AcceptanceDate is the delegation-program acceptance date
	// ("YYYY-MM-DD"), empty when not enrolled.
	AcceptanceDate string

	// FeeDepositAccount is the network-fee prepayment PDA, empty when the
	// operator has no fee-sharing agreement.
	FeeDepositAccount string

	NetworkFeeRateBps    uint64
	NetworkFeeFirstEpoch uint64
	IncentiveFirstEpoch  uint64

	ourAccounts map[string]struct{}
}

// Load reads and validates a JSON config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return New(fc.VoteAccount, fc.Identity, fc.WithdrawAuthority, fc.PersonalWallet, fc.StakeAccounts, func(c *Config) {
		c.AcceptanceDate = fc.AcceptanceDate
		c.FeeDepositAccount = fc.FeeDepositAccount
		c.NetworkFeeRateBps = fc.NetworkFeeRateBps
		c.NetworkFeeFirstEpoch = fc.NetworkFeeFirstEpoch
		c.IncentiveFirstEpoch = fc.IncentiveFirstEpoch
	})
}

// New builds a validated Config. The personal wallet is deliberately NOT an
// operator account: transfers from it must categorize as seeding and
// transfers to it as withdrawals, not as internal funding.
func New(vote, identity, withdrawAuthority, personalWallet string, stakeAccounts []string, opts ...func(*Config)) (*Config, error) {
	switch {
	case vote == "":
		return nil, ErrMissingVoteAccount
	case identity == "":
		return nil, ErrMissingIdentity
	case withdrawAuthority == "":
		return nil, ErrMissingWithdrawAuth
	case personalWallet == "":
		return nil, ErrMissingPersonalWallet
	}

	c := &Config{
		VoteAccount:       vote,
		Identity:          identity,
		WithdrawAuthority: withdrawAuthority,
		PersonalWallet:    personalWallet,
		ourAccounts: map[string]struct{}{
			vote:              {},
			identity:          {},
			withdrawAuthority: {},
		},
	}
	for _, s := range stakeAccounts {
		c.ourAccounts[s] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// IsOurAccount reports whether the address is one of the operator's
// business accounts. The personal wallet always returns false.
func (c *Config) IsOurAccount(addr string) bool {
	_, ok := c.ourAccounts[addr]
	return ok
}

// IsRelatedAccount reports whether the address is an operator account or
// the personal wallet.
func (c *Config) IsRelatedAccount(addr string) bool {
	return c.IsOurAccount(addr) || addr == c.PersonalWallet
}
