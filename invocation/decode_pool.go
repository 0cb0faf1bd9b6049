package invocation

import (
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

func decodePool(blueprintName, method string, args value.Value) (Invocation, bool, error) {
	f, err := fields(blueprintName, method, args)
	if err != nil {
		return nil, false, err
	}

	switch method {
	case "contribute":
		if err := want(blueprintName, method, f, 1); err != nil {
			return nil, false, err
		}
		buckets, err := asBucketArray(blueprintName, method, "buckets", f[0])
		if err != nil {
			// OneResourcePool.contribute takes a single Bucket, not an array.
			bucket, bErr := asBucket(blueprintName, method, "bucket", f[0])
			if bErr != nil {
				return nil, false, err
			}
			buckets = []value.Bucket{bucket}
		}
		return PoolInvocation{Method: native.PoolContribute{Buckets: buckets}}, true, nil

	case "redeem":
		if err := want(blueprintName, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(blueprintName, method, "bucket_of_pool_units", f[0])
		if err != nil {
			return nil, false, err
		}
		return PoolInvocation{Method: native.PoolRedeem{PoolUnitBucket: bucket}}, true, nil

	case "protected_deposit":
		if err := want(blueprintName, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(blueprintName, method, "bucket", f[0])
		if err != nil {
			return nil, false, err
		}
		return PoolInvocation{Method: native.PoolProtectedDeposit{Bucket: bucket}}, true, nil

	case "protected_withdraw":
		if err := want(blueprintName, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(blueprintName, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(blueprintName, method, "amount", f[1])
		if err != nil {
			return nil, false, err
		}
		return PoolInvocation{Method: native.PoolProtectedWithdraw{ResourceAddress: resourceAddress, Amount: amount}}, true, nil

	default:
		return nil, false, nil
	}
}
