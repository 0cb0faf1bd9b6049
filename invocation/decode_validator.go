package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

const validatorBlueprint = address.ValidatorBlueprint

func decodeValidator(method string, args value.Value) (Invocation, bool, error) {
	f, err := fields(validatorBlueprint, method, args)
	if err != nil {
		return nil, false, err
	}

	switch method {
	case "stake":
		if err := want(validatorBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(validatorBlueprint, method, "stake", f[0])
		if err != nil {
			return nil, false, err
		}
		return ValidatorInvocation{Method: native.ValidatorStake{StakeBucket: bucket}}, true, nil

	case "unstake":
		if err := want(validatorBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(validatorBlueprint, method, "lsu", f[0])
		if err != nil {
			return nil, false, err
		}
		return ValidatorInvocation{Method: native.ValidatorUnstake{LiquidStakeUnitBucket: bucket}}, true, nil

	case "claim_xrd":
		if err := want(validatorBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(validatorBlueprint, method, "claim_nft", f[0])
		if err != nil {
			return nil, false, err
		}
		return ValidatorInvocation{Method: native.ValidatorClaimXrd{ClaimNftBucket: bucket}}, true, nil

	default:
		return nil, false, nil
	}
}
