package native

import "github.com/radixdlt/manifest-analyzer/value"

// ValidatorMethodKind tags which Validator blueprint method was invoked.
type ValidatorMethodKind uint8

const (
	ValidatorMethodStake ValidatorMethodKind = iota
	ValidatorMethodUnstake
	ValidatorMethodClaimXrd
)

type ValidatorMethod interface {
	ValidatorMethodKind() ValidatorMethodKind
}

// ValidatorStake consumes an XRD bucket and mints liquid stake units.
type ValidatorStake struct {
	StakeBucket value.Bucket
}

func (ValidatorStake) ValidatorMethodKind() ValidatorMethodKind { return ValidatorMethodStake }

// ValidatorUnstake consumes a liquid-stake-unit bucket and mints a claim
// NFT redeemable after the unbonding period.
type ValidatorUnstake struct {
	LiquidStakeUnitBucket value.Bucket
}

func (ValidatorUnstake) ValidatorMethodKind() ValidatorMethodKind { return ValidatorMethodUnstake }

// ValidatorClaimXrd consumes a claim-NFT bucket and returns the unbonded
// XRD.
type ValidatorClaimXrd struct {
	ClaimNftBucket value.Bucket
}

func (ValidatorClaimXrd) ValidatorMethodKind() ValidatorMethodKind { return ValidatorMethodClaimXrd }
