package invocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/radixdlt/manifest-analyzer/address"
	"github.com/radixdlt/manifest-analyzer/invocation"
	"github.com/radixdlt/manifest-analyzer/invocation/native"
	"github.com/radixdlt/manifest-analyzer/value"
)

func staticAddress(b byte) value.Address {
	var nodeID [30]byte
	nodeID[0] = b
	return value.Address{AddressKind: value.AddressStatic, NodeID: nodeID}
}

func dec(s string) value.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return value.NewDecimal(d)
}

func TestDecodeAccountWithdraw(t *testing.T) {
	resource := staticAddress(5)
	args := value.Tuple{Fields: []value.Value{resource, dec("100")}}

	inv, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "withdraw", args, nil)
	require.NoError(t, err)
	require.True(t, ok)

	accountInv, ok := inv.(invocation.AccountInvocation)
	require.True(t, ok)
	withdraw, ok := accountInv.Method.(native.AccountWithdraw)
	require.True(t, ok)
	require.Equal(t, resource, withdraw.ResourceAddress)
	require.True(t, dec("100").Value.Equal(withdraw.Amount.Value))
}

func TestDecodeAccountLockFeeWrongArity(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{}}
	_, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "lock_fee", args, nil)
	require.False(t, ok)
	require.Error(t, err)

	var decodeErr *invocation.ErrTypedInvocationDecode
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeAccountTryDepositOrRefundNoneBadge(t *testing.T) {
	bucket := value.Bucket{ID: 1}
	none := value.Enum{Discriminator: 0}
	args := value.Tuple{Fields: []value.Value{bucket, none}}

	inv, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "try_deposit_or_refund", args, nil)
	require.NoError(t, err)
	require.True(t, ok)

	accountInv := inv.(invocation.AccountInvocation)
	deposit := accountInv.Method.(native.AccountTryDepositOrRefund)
	require.Equal(t, bucket, deposit.Bucket)
	require.Nil(t, deposit.AuthorizedDepositorBadge)
}

func TestDecodeAccountUnrecognizedMethodIsNotTyped(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{}}
	inv, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "balance", args, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, inv)
}

func TestDecodeUnrecognizedBlueprintIsNotTyped(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{}}
	inv, ok, err := invocation.Decode("SomeCustomBlueprint", invocation.ModuleMain, "do_thing", args, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, inv)
}

func TestDecodeNonMainModuleIsNotTyped(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{dec("1")}}
	inv, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMetadata, "lock_fee", args, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, inv)
}

func TestDecodeValidatorStake(t *testing.T) {
	bucket := value.Bucket{ID: 7}
	args := value.Tuple{Fields: []value.Value{bucket}}

	inv, ok, err := invocation.Decode(address.ValidatorBlueprint, invocation.ModuleMain, "stake", args, nil)
	require.NoError(t, err)
	require.True(t, ok)

	validatorInv := inv.(invocation.ValidatorInvocation)
	stake := validatorInv.Method.(native.ValidatorStake)
	require.Equal(t, bucket, stake.StakeBucket)
}

func TestDecodePoolContributeSingleBucketFallsBackFromArray(t *testing.T) {
	bucket := value.Bucket{ID: 3}
	args := value.Tuple{Fields: []value.Value{bucket}}

	inv, ok, err := invocation.Decode(address.OneResourcePoolBlueprint, invocation.ModuleMain, "contribute", args, nil)
	require.NoError(t, err)
	require.True(t, ok)

	poolInv := inv.(invocation.PoolInvocation)
	contribute := poolInv.Method.(native.PoolContribute)
	require.Equal(t, []value.Bucket{bucket}, contribute.Buckets)
}

func TestDecodeIdentitySecurify(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{}}
	inv, ok, err := invocation.Decode(address.IdentityBlueprint, invocation.ModuleMain, "securify", args, nil)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok = inv.(invocation.IdentityInvocation)
	require.True(t, ok)
}

func TestDecodeAccessControllerCreateProof(t *testing.T) {
	args := value.Tuple{Fields: []value.Value{}}
	inv, ok, err := invocation.Decode(address.AccessControllerBlueprint, invocation.ModuleMain, "create_proof", args, nil)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok = inv.(invocation.AccessControllerInvocation)
	require.True(t, ok)
}

func TestDecodeRegistryVetoesUnknownMethod(t *testing.T) {
	registry := invocation.NewStaticSchemaRegistry()
	args := value.Tuple{Fields: []value.Value{dec("1")}}

	inv, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "lock_fee", args, registry)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, inv)

	registry.Add(address.AccountBlueprint, "Main", "lock_fee")
	inv, ok, err = invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "lock_fee", args, registry)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, inv)
}

func TestDecodeArgsNotTupleIsFatal(t *testing.T) {
	_, ok, err := invocation.Decode(address.AccountBlueprint, invocation.ModuleMain, "withdraw", dec("1"), nil)
	require.False(t, ok)
	require.Error(t, err)
}
