package invocation

import (
	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

const accountBlueprint = address.AccountBlueprint

func decodeAccount(method string, args value.Value) (Invocation, bool, error) {
	f, err := fields(accountBlueprint, method, args)
	if err != nil {
		return nil, false, err
	}

	switch method {
	case "withdraw":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountWithdraw{ResourceAddress: resourceAddress, Amount: amount}}, true, nil

	case "withdraw_non_fungibles":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		ids, err := asNonFungibleIdArray(accountBlueprint, method, "ids", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountWithdrawNonFungibles{ResourceAddress: resourceAddress, Ids: ids}}, true, nil

	case "lock_fee":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountLockFee{Amount: amount}}, true, nil

	case "lock_contingent_fee":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountLockContingentFee{Amount: amount}}, true, nil

	case "deposit":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(accountBlueprint, method, "bucket", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountDeposit{Bucket: bucket}}, true, nil

	case "deposit_batch":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		buckets, err := asBucketArray(accountBlueprint, method, "buckets", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountDepositBatch{Buckets: buckets}}, true, nil

	case "try_deposit_or_refund":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(accountBlueprint, method, "bucket", f[0])
		if err != nil {
			return nil, false, err
		}
		badge, err := asOption(accountBlueprint, method, "authorized_depositor_badge", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountTryDepositOrRefund{Bucket: bucket, AuthorizedDepositorBadge: badge}}, true, nil

	case "try_deposit_batch_or_refund":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		buckets, err := asBucketArray(accountBlueprint, method, "buckets", f[0])
		if err != nil {
			return nil, false, err
		}
		badge, err := asOption(accountBlueprint, method, "authorized_depositor_badge", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountTryDepositBatchOrRefund{Buckets: buckets, AuthorizedDepositorBadge: badge}}, true, nil

	case "try_deposit_or_abort":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		bucket, err := asBucket(accountBlueprint, method, "bucket", f[0])
		if err != nil {
			return nil, false, err
		}
		badge, err := asOption(accountBlueprint, method, "authorized_depositor_badge", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountTryDepositOrAbort{Bucket: bucket, AuthorizedDepositorBadge: badge}}, true, nil

	case "try_deposit_batch_or_abort":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		buckets, err := asBucketArray(accountBlueprint, method, "buckets", f[0])
		if err != nil {
			return nil, false, err
		}
		badge, err := asOption(accountBlueprint, method, "authorized_depositor_badge", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountTryDepositBatchOrAbort{Buckets: buckets, AuthorizedDepositorBadge: badge}}, true, nil

	case "create_proof_of_amount":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountCreateProofOfAmount{ResourceAddress: resourceAddress, Amount: amount}}, true, nil

	case "create_proof_of_non_fungibles":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		ids, err := asNonFungibleIdArray(accountBlueprint, method, "ids", f[1])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountCreateProofOfNonFungibles{ResourceAddress: resourceAddress, Ids: ids}}, true, nil

	case "securify":
		if err := want(accountBlueprint, method, f, 0); err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountSecurify{}}, true, nil

	case "set_default_deposit_rule":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		enumv, ok := f[0].(value.Enum)
		if !ok {
			return nil, false, &ErrTypedInvocationDecode{Blueprint: accountBlueprint, Method: method, Reason: "default is not an Enum"}
		}
		return AccountInvocation{Method: native.AccountSetDefaultDepositRule{Default: native.DefaultDepositRule(enumv.Discriminator)}}, true, nil

	case "set_resource_preference":
		if err := want(accountBlueprint, method, f, 2); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		enumv, ok := f[1].(value.Enum)
		if !ok {
			return nil, false, &ErrTypedInvocationDecode{Blueprint: accountBlueprint, Method: method, Reason: "resource_preference is not an Enum"}
		}
		return AccountInvocation{Method: native.AccountSetResourcePreference{
			ResourceAddress:    resourceAddress,
			ResourcePreference: native.ResourcePreference(enumv.Discriminator),
		}}, true, nil

	case "remove_resource_preference":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountRemoveResourcePreference{ResourceAddress: resourceAddress}}, true, nil

	case "add_authorized_depositor":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountAddAuthorizedDepositor{Badge: f[0]}}, true, nil

	case "remove_authorized_depositor":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountRemoveAuthorizedDepositor{Badge: f[0]}}, true, nil

	case "burn":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountBurn{Amount: amount}}, true, nil

	case "burn_non_fungibles":
		if err := want(accountBlueprint, method, f, 1); err != nil {
			return nil, false, err
		}
		ids, err := asNonFungibleIdArray(accountBlueprint, method, "ids", f[0])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountBurnNonFungibles{Ids: ids}}, true, nil

	case "lock_fee_and_withdraw":
		if err := want(accountBlueprint, method, f, 3); err != nil {
			return nil, false, err
		}
		amountToLock, err := asDecimal(accountBlueprint, method, "amount_to_lock", f[0])
		if err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[1])
		if err != nil {
			return nil, false, err
		}
		amount, err := asDecimal(accountBlueprint, method, "amount", f[2])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountLockFeeAndWithdraw{
			AmountToLock: amountToLock, ResourceAddress: resourceAddress, Amount: amount,
		}}, true, nil

	case "lock_fee_and_withdraw_non_fungibles":
		if err := want(accountBlueprint, method, f, 3); err != nil {
			return nil, false, err
		}
		amountToLock, err := asDecimal(accountBlueprint, method, "amount_to_lock", f[0])
		if err != nil {
			return nil, false, err
		}
		resourceAddress, err := asAddress(accountBlueprint, method, "resource_address", f[1])
		if err != nil {
			return nil, false, err
		}
		ids, err := asNonFungibleIdArray(accountBlueprint, method, "ids", f[2])
		if err != nil {
			return nil, false, err
		}
		return AccountInvocation{Method: native.AccountLockFeeAndWithdrawNonFungibles{
			AmountToLock: amountToLock, ResourceAddress: resourceAddress, Ids: ids,
		}}, true, nil

	default:
		// balance, non_fungible_local_ids, has_non_fungible and any other
		// read-only/unrecognized method: not typed, visible as raw invocation.
		return nil, false, nil
	}
}
